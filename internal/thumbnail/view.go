package thumbnail

import (
	"strings"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// Category groups content types that share a fallback image.
type Category string

// Known categories.
const (
	CategoryApp      Category = "app"
	CategoryDocument Category = "document"
	CategoryAPI      Category = "api"
	CategoryModel    Category = "model"
	CategoryOther    Category = "other"
)

var categories = map[string]Category{
	"shiny":                  CategoryApp,
	"rmd-shiny":              CategoryApp,
	"quarto-shiny":           CategoryApp,
	"python-dash":            CategoryApp,
	"python-streamlit":       CategoryApp,
	"python-bokeh":           CategoryApp,
	"python-shiny":           CategoryApp,
	"python-panel":           CategoryApp,
	"static":                 CategoryDocument,
	"rmd-static":             CategoryDocument,
	"quarto-static":          CategoryDocument,
	"jupyter-static":         CategoryDocument,
	"jupyter-voila":          CategoryApp,
	"api":                    CategoryAPI,
	"python-api":             CategoryAPI,
	"python-fastapi":         CategoryAPI,
	"tensorflow-saved-model": CategoryModel,
}

// CategoryOf maps a content type tag to its category.
func CategoryOf(contentType string) Category {
	if c, ok := categories[strings.ToLower(strings.TrimSpace(contentType))]; ok {
		return c
	}
	return CategoryOther
}

// View renders thumbnails as lazily loaded images linking to the content. When
// the image is missing the browser swaps in the fallback for the content
// category.
type View struct {
	// FallbackBase is the URL prefix of the <category>.svg fallback images.
	FallbackBase string
	// Fallbacks overrides the fallback image URL per category.
	Fallbacks map[Category]string
}

// FallbackURL returns the fallback image for contentType.
func (v View) FallbackURL(contentType string) string {
	category := CategoryOf(contentType)
	if u, ok := v.Fallbacks[category]; ok {
		return u
	}
	return strings.TrimRight(v.FallbackBase, "/") + "/" + string(category) + ".svg"
}

// Thumbnail renders the image for the content at contentURL.
func (v View) Thumbnail(imageURL, contentURL, contentType string) gomponents.Node {
	category := CategoryOf(contentType)
	fallback := v.FallbackURL(contentType)
	src := imageURL
	if src == "" {
		src = fallback
	}

	return html.A(
		html.Class("rsccard__img-link"),
		html.Href(contentURL),
		html.Target("_blank"),
		html.Rel("noreferrer"),
		html.Img(
			html.Class("rsccard__img-el rsccard__img-el--"+string(category)),
			html.Src(src),
			html.Alt(""),
			gomponents.Attr("loading", "lazy"),
			gomponents.Attr("data-content-type", contentType),
			gomponents.Attr("data-fallback", fallback),
			gomponents.Attr("onerror", "this.onerror=null;this.src=this.dataset.fallback;"),
		),
	)
}
