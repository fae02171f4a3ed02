package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/welcome/internal/page"
)

const labelWidth = 18

type targetKind int

const (
	targetCopy targetKind = iota
	targetSecret
	targetLink
)

// target is a focusable field. value is what the copy action places on the
// clipboard.
type target struct {
	id    string
	kind  targetKind
	value string
}

// layout is the rendered body plus the line each focusable field sits on.
type layout struct {
	lines       []string
	targets     []target
	targetLines []int
}

func (l *layout) line(s string) {
	l.lines = append(l.lines, s)
}

func (l *layout) target(t target, s string) {
	l.targets = append(l.targets, t)
	l.targetLines = append(l.targetLines, len(l.lines))
	l.line(s)
}

func (l *layout) next() int {
	return len(l.targets)
}

func rowID(service, row string) string {
	return "svc/" + service + "/" + row
}

// layout renders the scrollable body: services, quick start and commands.
func (m Model) layout() *layout {
	styles := m.theme.Styles()
	l := &layout{}

	l.line(styles.Section.Render(fmt.Sprintf("Services (%d)", len(m.cards))))
	l.line("")
	switch {
	case m.state == page.Loading:
		l.line("  " + styles.MutedText.Render("Loading service data..."))
		l.line("")
	case m.state == page.Error:
		l.line("  " + styles.DangerText.Render("⚠ "+page.ErrorPanelTitle))
		l.line("  " + styles.MutedText.Render(page.ErrorPanelDetail))
		l.line("")
	case len(m.cards) == 0:
		l.line("  " + styles.MutedText.Render(page.NoServicesMessage))
		l.line("")
	default:
		for _, card := range m.cards {
			m.layoutCard(l, styles, card)
			l.line("")
		}
	}

	l.line(styles.Section.Render("Quick Start"))
	l.line("")
	for _, s := range m.steps {
		l.line(fmt.Sprintf("  %s  %s",
			styles.AccentText.Render(fmt.Sprintf("%2d", s.Step)),
			styles.Text.Bold(true).Render(clean(s.Title))))
		if d := clean(s.Description); d != "" {
			l.line("      " + styles.MutedText.Render(d))
		}
	}
	l.line("")

	l.line(styles.Section.Render("Commands"))
	l.line("")
	for i, c := range m.commands {
		t := target{id: fmt.Sprintf("cmd/%d", i), kind: targetCopy, value: c.Cmd}
		text := styles.SuccessText.Render("$ "+c.Cmd) + "  " + styles.MutedText.Render(c.Desc)
		l.target(t, m.decorate(l.next(), t, text, styles))
	}
	return l
}

func (m Model) layoutCard(l *layout, styles Styles, card page.Card) {
	meta := card.Meta
	name := styles.Text.Bold(true).Render(clean(meta.Name))
	if meta.DocsURL != "" {
		name = hyperlink(clean(meta.DocsURL), name)
	}
	header := "  " + styles.BadgeStyle(meta.Color).Render(clean(meta.Icon)) + " " + name
	if meta.Description != "" {
		header += "  " + styles.MutedText.Render(meta.Description)
	}
	if meta.Category != "" {
		header += "  " + styles.CategoryStyle(meta.Category).Render("["+meta.Category+"]")
	}
	l.line(header)

	switch card.Address.Kind {
	case page.AddressExternal:
		t := target{id: rowID(card.Key, "address"), kind: targetLink, value: card.Address.URL}
		text := hyperlink(clean(card.Address.URL), styles.InfoText.Underline(true).Render(clean(card.Address.Value))+" ↗")
		l.target(t, m.decorate(l.next(), t, text, styles))
	case page.AddressInternal:
		l.line("    " + styles.MutedText.Render(clean(card.Address.Text())))
	default:
		l.line("    " + styles.FaintText.Render(page.InternalServiceLabel))
	}

	for _, row := range card.Rows {
		value := clean(row.Value)
		switch row.Kind {
		case page.RowNote:
			l.line("    " + styles.WarningText.Render("Note: "+value))
		case page.RowText:
			l.line("    " + styles.MutedText.Italic(true).Render(value))
		case page.RowCopy:
			t := target{id: rowID(card.Key, row.Key), kind: targetCopy, value: row.Value}
			l.target(t, m.decorate(l.next(), t, field(row.Label, styles.Text.Render(value), styles), styles))
		case page.RowSecret:
			id := rowID(card.Key, row.Key)
			display := value
			revealed := false
			if s := m.secrets[id]; s != nil {
				display = clean(s.Display())
				revealed = s.Revealed()
			}
			state := styles.FaintText.Render(" (hidden)")
			if revealed {
				state = styles.WarningText.Render(" (shown)")
			}
			t := target{id: id, kind: targetSecret, value: row.Value}
			l.target(t, m.decorate(l.next(), t, field(row.Label, styles.Text.Render(display)+state, styles), styles))
		case page.RowLink:
			t := target{id: rowID(card.Key, row.Key), kind: targetLink, value: row.Value}
			open := hyperlink(clean(row.Value), styles.InfoText.Underline(true).Render("Open")+" ↗")
			l.target(t, m.decorate(l.next(), t, field(row.Label, open+"  "+styles.FaintText.Render(value), styles), styles))
		}
	}
}

func field(label, value string, styles Styles) string {
	return styles.MutedText.Render(padRight(label+":", labelWidth)) + value
}

// decorate marks the focused field and the one just copied.
func (m Model) decorate(index int, t target, text string, styles Styles) string {
	prefix := "    "
	if index == m.focus {
		prefix = "  " + styles.AccentText.Render("▸") + " "
		text = styles.Selected.Render(" ") + text + styles.Selected.Render(" ")
	}
	if t.id == m.copiedID && m.indicator.Confirmed() {
		text += "  " + styles.SuccessText.Render("✓ Copied")
	}
	return prefix + text
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("welcome", styles.Logo)}
	switch m.state {
	case page.Loading:
		parts = append(parts, bg.Render("Loading...", styles.WarningText))
	case page.Error:
		parts = append(parts, bg.Render(page.ErrorToastMessage, styles.DangerText))
	default:
		if banner := clean(page.Banner(m.manifest)); banner != "" {
			parts = append(parts, bg.Render(truncate(banner, max(m.width-12, 10)), styles.MutedText))
		}
	}
	return bg.FillLine(bg.Join(parts, "  ")+sep, m.width)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	h := m.help
	h.Width = m.width
	h.Styles.ShortKey = styles.WarningText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	return lipgloss.NewStyle().Width(m.width).Render(h.View(m.keys))
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}
