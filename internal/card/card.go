// Package card renders content records as cards.
package card

import (
	"io"
	"strconv"

	"github.com/samber/lo"

	"rsccard/internal/domain"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// OpenContentLabel is the text of every card's outbound link.
const OpenContentLabel = "Open Content"

// ThumbnailResolver maps a content URL and guid to a displayable image URL.
type ThumbnailResolver interface {
	ResolveURL(contentURL, guid string) string
}

// ResolverFunc adapts a function to ThumbnailResolver.
type ResolverFunc func(contentURL, guid string) string

// ResolveURL calls f.
func (f ResolverFunc) ResolveURL(contentURL, guid string) string { return f(contentURL, guid) }

// DateFormatter renders a timestamp as a short localized date.
type DateFormatter interface {
	FormatShort(ts any) string
}

// DateFormatterFunc adapts a function to DateFormatter.
type DateFormatterFunc func(ts any) string

// FormatShort calls f.
func (f DateFormatterFunc) FormatShort(ts any) string { return f(ts) }

// ThumbnailView renders the image part of a card.
type ThumbnailView interface {
	Thumbnail(imageURL, contentURL, contentType string) gomponents.Node
}

// ThumbnailViewFunc adapts a function to ThumbnailView.
type ThumbnailViewFunc func(imageURL, contentURL, contentType string) gomponents.Node

// Thumbnail calls f.
func (f ThumbnailViewFunc) Thumbnail(imageURL, contentURL, contentType string) gomponents.Node {
	return f(imageURL, contentURL, contentType)
}

// Card is one rendered content card. Key is the card's position in the list
// it was rendered from and carries no other identity.
type Card struct {
	Key         int
	URL         string
	Owner       string
	Updated     string
	Title       string
	Description string
	Thumbnail   gomponents.Node
}

// Render implements gomponents.Node.
func (c Card) Render(w io.Writer) error {
	return c.node().Render(w)
}

func (c Card) node() gomponents.Node {
	return html.Div(
		html.Class("rsccard__card"),
		gomponents.Attr("data-key", strconv.Itoa(c.Key)),
		html.Div(
			html.Class("rsccard__img"),
			gomponents.If(c.Thumbnail != nil, c.Thumbnail),
		),
		html.Div(
			html.Class("rsccard__meta"),
			html.Span(gomponents.Text(c.Owner)),
			gomponents.Text(" • "),
			gomponents.El("time", gomponents.Text(c.Updated)),
			html.H2(html.Class("rsccard__meta-title"), gomponents.Text(c.Title)),
			html.P(html.Class("rsccard__meta-description"), gomponents.Text(c.Description)),
			html.A(
				html.Class("rsccard__meta-link"),
				html.Href(c.URL),
				html.Target("_blank"),
				html.Rel("noreferrer"),
				gomponents.Text(OpenContentLabel),
			),
		),
	)
}

// Renderer turns records into cards using its collaborators.
type Renderer struct {
	resolver ThumbnailResolver
	dates    DateFormatter
	view     ThumbnailView
}

// NewRenderer returns a Renderer. All collaborators are required.
func NewRenderer(resolver ThumbnailResolver, dates DateFormatter, view ThumbnailView) *Renderer {
	return &Renderer{resolver: resolver, dates: dates, view: view}
}

// RenderCards renders one card per record, in order. Records are not validated;
// missing fields render empty.
func (r *Renderer) RenderCards(records []domain.Record) []Card {
	return lo.Map(records, func(rec domain.Record, i int) Card {
		return r.render(i, rec)
	})
}

func (r *Renderer) render(key int, rec domain.Record) Card {
	url := rec.String(domain.FieldURL)
	imgURL := r.resolver.ResolveURL(url, rec.String(domain.FieldGUID))
	return Card{
		Key:         key,
		URL:         url,
		Owner:       rec.String(domain.FieldOwnerUsername),
		Updated:     r.dates.FormatShort(rec.Value(domain.FieldUpdatedTime)),
		Title:       rec.Title(),
		Description: rec.String(domain.FieldDescription),
		Thumbnail:   r.view.Thumbnail(imgURL, url, rec.String(domain.FieldAppMode)),
	}
}

// Group folds cards into a single node, in order, without a container.
func Group(cards []Card) gomponents.Node {
	nodes := make([]gomponents.Node, len(cards))
	for i := range cards {
		nodes[i] = cards[i]
	}
	return gomponents.Group(nodes)
}
