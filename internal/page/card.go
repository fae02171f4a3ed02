package page

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/five82/welcome/internal/manifest"
	"github.com/five82/welcome/internal/markup"
	"github.com/five82/welcome/internal/reveal"
)

const (
	buttonClass    = "p-1.5 rounded-lg hover:bg-surface-400 transition-colors focus:outline-none focus:ring-2 focus:ring-brand/50"
	valueClass     = "font-mono text-sm select-all text-gray-300"
	actionIconBase = "w-4 h-4 text-gray-500 hover:text-brand transition-colors"
)

// RenderContext carries per-render state. Element ids are unique within one
// context, and a fresh context starts every secret masked.
type RenderContext struct {
	next int
}

// NewRenderContext returns an empty context.
func NewRenderContext() *RenderContext {
	return &RenderContext{}
}

// ID returns the next unique element id with the given prefix.
func (rc *RenderContext) ID(prefix string) string {
	rc.next++
	return fmt.Sprintf("%s-%d", prefix, rc.next)
}

// RenderCard builds the card element for one service instance.
func RenderCard(rc *RenderContext, key string, inst manifest.ServiceInstance) *html.Node {
	if rc == nil {
		rc = NewRenderContext()
	}
	return renderCard(rc, BuildCard(key, inst))
}

func renderCard(rc *RenderContext, c Card) *html.Node {
	card := element("article", "service-card bg-surface-100 rounded-xl border border-surface-400 p-5 hover-glow",
		"data-service", c.Key)
	if c.Meta.Category != "" {
		setAttr(card, "data-category", c.Meta.Category)
	}
	card.AppendChild(renderHeader(c))
	if details := renderDetails(rc, c.Rows); details != nil {
		card.AppendChild(details)
	}
	return card
}

func renderHeader(c Card) *html.Node {
	header := element("div", "flex items-start gap-4")

	badgeClass := c.Meta.Color + " service-badge w-11 h-11 rounded-lg flex items-center justify-center text-white font-bold text-sm flex-shrink-0 shadow-lg"
	var badge *html.Node
	if c.Meta.DocsURL != "" {
		badge = element("a", badgeClass, "href", c.Meta.DocsURL, "target", "_blank", "rel", "noopener",
			"aria-label", c.Meta.Name+" documentation")
	} else {
		badge = element("div", badgeClass)
	}
	withText(badge, c.Meta.Icon)

	content := element("div", "flex-1 min-w-0")
	title := element("h3", "service-name font-semibold text-white")
	if c.Meta.DocsURL != "" {
		title.AppendChild(withText(element("a", "hover:text-brand transition-colors",
			"href", c.Meta.DocsURL, "target", "_blank", "rel", "noopener"), c.Meta.Name))
	} else {
		withText(title, c.Meta.Name)
	}
	content.AppendChild(title)
	if c.Meta.Description != "" {
		content.AppendChild(withText(element("p", "text-sm text-gray-500 mb-2"), c.Meta.Description))
	}
	content.AppendChild(renderAddress(c.Address))

	return appendChildren(header, badge, content)
}

func renderAddress(a Address) *html.Node {
	switch a.Kind {
	case AddressExternal:
		link := element("a", "service-link text-brand hover:text-brand-400 text-sm font-medium inline-flex items-center gap-1 group transition-colors",
			"href", a.URL, "target", "_blank", "rel", "noopener")
		withText(link, a.Value)
		link.AppendChild(markup.IconNode("externalLink", "w-3 h-3 group-hover:translate-x-0.5 transition-transform"))
		return link
	case AddressInternal:
		return withText(element("span", "service-internal text-xs text-gray-600 font-mono"), a.Text())
	default:
		return withText(element("span", "service-internal text-sm text-gray-600 italic"), a.Text())
	}
}

func renderDetails(rc *RenderContext, rows []Row) *html.Node {
	if len(rows) == 0 {
		return nil
	}
	section := element("div", "service-details mt-4 pt-4 border-t border-surface-400 space-y-2")
	for _, row := range rows {
		section.AppendChild(renderRow(rc, row))
	}
	return section
}

func renderRow(rc *RenderContext, row Row) *html.Node {
	switch row.Kind {
	case RowNote:
		return withText(element("p", "text-sm text-gray-500 italic", "data-field", row.Key), row.Value)
	case RowText:
		return withText(element("p", "text-sm text-brand italic", "data-field", row.Key), row.Value)
	}

	line := element("div", "flex justify-between items-center", "data-field", row.Key)
	line.AppendChild(withText(element("span", "text-gray-500 text-sm"), row.Label+":"))

	value := element("div", "flex items-center gap-1")
	switch row.Kind {
	case RowSecret:
		id := rc.ID("secret")
		masked := element("span", valueClass, "id", id, "data-secret", row.Value, "data-hidden", "true")
		withText(masked, reveal.Mask(row.Value))
		appendChildren(value, masked, revealButton(id), copyButton(row.Value))
	case RowLink:
		link := element("a", "text-brand hover:text-brand-400 text-sm font-medium inline-flex items-center gap-1 group transition-colors",
			"href", row.Value, "target", "_blank", "rel", "noopener")
		withText(link, "Open")
		link.AppendChild(markup.IconNode("externalLink", "w-3 h-3 group-hover:translate-x-0.5 transition-transform"))
		value.AppendChild(link)
	default:
		appendChildren(value, withText(element("span", valueClass), row.Value), copyButton(row.Value))
	}
	line.AppendChild(value)
	return line
}

func copyButton(text string) *html.Node {
	btn := element("button", buttonClass, "type", "button", "aria-label", "Copy to clipboard", "data-copy", text)
	return appendChildren(btn,
		markup.IconNode("copy", actionIconBase+" icon-copy"),
		markup.IconNode("check", "w-4 h-4 text-brand icon-check hidden"),
	)
}

func revealButton(target string) *html.Node {
	btn := element("button", buttonClass, "type", "button", "aria-label", "Toggle password visibility",
		"aria-pressed", "false", "aria-controls", target, "data-reveal", target)
	return appendChildren(btn,
		markup.IconNode("eyeOpen", actionIconBase+" icon-eye-open"),
		markup.IconNode("eyeClosed", actionIconBase+" icon-eye-closed hidden"),
	)
}
