package thumbnail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryApp, CategoryOf("shiny"))
	assert.Equal(t, CategoryApp, CategoryOf(" Python-Dash "))
	assert.Equal(t, CategoryDocument, CategoryOf("rmd-static"))
	assert.Equal(t, CategoryAPI, CategoryOf("python-fastapi"))
	assert.Equal(t, CategoryModel, CategoryOf("tensorflow-saved-model"))
	assert.Equal(t, CategoryOther, CategoryOf(""))
	assert.Equal(t, CategoryOther, CategoryOf("something-new"))
}

func TestViewThumbnail(t *testing.T) {
	v := View{FallbackBase: "/static/img/"}

	var b strings.Builder
	require.NoError(t, v.Thumbnail("http://x/__api__/applications/g/image", "http://x/content/1/", "shiny").Render(&b))
	out := b.String()

	assert.Contains(t, out, `href="http://x/content/1/"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, `src="http://x/__api__/applications/g/image"`)
	assert.Contains(t, out, `data-content-type="shiny"`)
	assert.Contains(t, out, `data-fallback="/static/img/app.svg"`)
	assert.Contains(t, out, `rsccard__img-el--app`)
}

func TestViewThumbnail_NoImageUsesFallback(t *testing.T) {
	v := View{FallbackBase: "/static/img"}

	var b strings.Builder
	require.NoError(t, v.Thumbnail("", "http://x/content/1/", "api").Render(&b))

	assert.Contains(t, b.String(), `src="/static/img/api.svg"`)
}

func TestViewFallbackURL_Overrides(t *testing.T) {
	v := View{
		FallbackBase: "/static/img",
		Fallbacks:    map[Category]string{CategoryApp: "data:image/svg+xml;base64,AAAA"},
	}

	assert.Equal(t, "data:image/svg+xml;base64,AAAA", v.FallbackURL("shiny"))
	assert.Equal(t, "/static/img/document.svg", v.FallbackURL("quarto-static"))
}
