package ui

import (
	"strconv"
	"strings"

	"rsccard/internal/card"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"
)

const (
	stylesheetPath = "/static/css/card.css"
	datastarSrc    = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"

	// FallbackImagePath is where the per-category fallback thumbnails are served.
	FallbackImagePath = "/static/img"
)

const sampleTable = `{
  "url": ["https://connect.example.com/content/1/"],
  "guid": ["f2a1c9d0-0000-4000-8000-000000000001"],
  "app_mode": ["shiny"],
  "owner_username": ["alice"],
  "updated_time": ["2021-03-01T12:00:00Z"],
  "title": ["Sales Dashboard"],
  "description": ["Quarterly sales by region"]
}`

func page(title string, body ...gomponents.Node) gomponents.Node {
	return html.Doctype(html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | rsccard")),
			html.Link(html.Rel("icon"), html.Href("data:,")),
			html.Link(html.Rel("stylesheet"), html.Href(stylesheetPath)),
			html.Script(html.Type("module"), html.Src(datastarSrc)),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				gomponents.Group(body),
			),
		),
	))
}

func homePage() gomponents.Node {
	return page(
		"Content Cards",
		html.P(html.Class("muted"), gomponents.Text("Paste a column table (one array per field) to render it as cards.")),
		html.Form(
			html.Method("post"),
			html.Action("/widget"),
			html.Class("card"),
			html.Label(html.For("table"), gomponents.Text("Table")),
			html.Textarea(html.ID("table"), html.Name("table"), html.Rows("14"), gomponents.Text(sampleTable)),
			html.Label(html.For("format"), gomponents.Text("Format")),
			html.Select(
				html.ID("format"),
				html.Name("format"),
				html.Option(html.Value("json"), gomponents.Text("JSON")),
				html.Option(html.Value("yaml"), gomponents.Text("YAML")),
			),
			html.Button(html.Type("submit"), gomponents.Text("Render cards")),
		),
	)
}

// widgetPage wraps the cards in the grid container. Each card sits in a cell
// that the quick filter can hide.
func widgetPage(title string, cards []card.Card) gomponents.Node {
	cells := make([]gomponents.Node, 0, len(cards))
	for i := range cards {
		c := cards[i]
		cells = append(cells, html.Div(
			html.Class("rsccard__cell"),
			data.Show(containsExpr(c.Title+" "+c.Owner+" "+c.Description)),
			c,
		))
	}

	return page(
		title,
		filterInput("Filter by title, owner or description"),
		html.P(html.Class("muted"), gomponents.Text(countLabel(len(cards)))),
		html.Div(html.Class("rsccard"), gomponents.Group(cells)),
	)
}

func errorPage(title, message string) gomponents.Node {
	return page(
		title,
		html.P(gomponents.Text(message)),
		html.P(html.A(html.Href("/"), gomponents.Text("Back"))),
	)
}

func filterInput(placeholder string) gomponents.Node {
	return html.Div(
		html.Class("card"),
		data.Signals(map[string]any{"q": ""}),
		html.Label(gomponents.Text("Quick filter")),
		html.Input(html.Type("text"), html.Placeholder(placeholder), data.Bind("q")),
	)
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

func countLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " items"
}
