package ui

import (
	"encoding/base64"
	"io/fs"

	"rsccard/internal/card"
	"rsccard/internal/thumbnail"
	"rsccard/internal/ui/assets"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

var categories = []thumbnail.Category{
	thumbnail.CategoryApp,
	thumbnail.CategoryDocument,
	thumbnail.CategoryAPI,
	thumbnail.CategoryModel,
	thumbnail.CategoryOther,
}

// InlineFallbacks returns the embedded fallback thumbnails as data URIs, for
// pages that are served without the static tree.
func InlineFallbacks() map[thumbnail.Category]string {
	out := make(map[thumbnail.Category]string, len(categories))
	for _, c := range categories {
		svg, err := fs.ReadFile(assets.StaticFS(), "static/img/"+string(c)+".svg")
		if err != nil {
			continue
		}
		out[c] = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)
	}
	return out
}

// StandalonePage renders cards in a self-contained page: the stylesheet is
// inlined and no server routes are referenced.
func StandalonePage(title string, cards []card.Card) gomponents.Node {
	css, _ := fs.ReadFile(assets.StaticFS(), "static/css/card.css")
	return html.Doctype(html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title)),
			html.StyleEl(gomponents.Raw(string(css))),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				html.Div(html.Class("rsccard"), card.Group(cards)),
			),
		),
	))
}
