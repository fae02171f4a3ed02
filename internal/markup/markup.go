package markup

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Escape returns text that is safe to place inside HTML content or a quoted
// attribute value. Empty input yields an empty string.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	return html.EscapeString(text)
}

// icons holds the path data of every icon; all icons share the same 24x24
// outline frame.
var icons = map[string][]string{
	"copy": {
		"M8 16H6a2 2 0 01-2-2V6a2 2 0 012-2h8a2 2 0 012 2v2m-6 12h8a2 2 0 002-2v-8a2 2 0 00-2-2h-8a2 2 0 00-2 2v8a2 2 0 002 2z",
	},
	"check": {
		"M5 13l4 4L19 7",
	},
	"eyeOpen": {
		"M15 12a3 3 0 11-6 0 3 3 0 016 0z",
		"M2.458 12C3.732 7.943 7.523 5 12 5c4.478 0 8.268 2.943 9.542 7-1.274 4.057-5.064 7-9.542 7-4.477 0-8.268-2.943-9.542-7z",
	},
	"eyeClosed": {
		"M13.875 18.825A10.05 10.05 0 0112 19c-4.478 0-8.268-2.943-9.543-7a9.97 9.97 0 011.563-3.029m5.858.908a3 3 0 114.243 4.243M9.878 9.878l4.242 4.242M9.88 9.88l-3.29-3.29m7.532 7.532l3.29 3.29M3 3l3.59 3.59m0 0A9.953 9.953 0 0112 5c4.478 0 8.268 2.943 9.543 7a10.025 10.025 0 01-4.132 5.411m0 0L21 21",
	},
	"externalLink": {
		"M10 6H6a2 2 0 00-2 2v10a2 2 0 002 2h10a2 2 0 002-2v-4M14 4h6m0 0v6m0-6L10 14",
	},
	"server": {
		"M19 11H5m14 0a2 2 0 012 2v6a2 2 0 01-2 2H5a2 2 0 01-2-2v-6a2 2 0 012-2m14 0V9a2 2 0 00-2-2M5 11V9a2 2 0 012-2m0 0V5a2 2 0 012-2h6a2 2 0 012 2v2M7 7h10",
	},
	"bolt": {
		"M13 10V3L4 14h7v7l9-11h-7z",
	},
	"refresh": {
		"M4 4v5h.582m15.356 2A8.001 8.001 0 004.582 9m0 0H9m11 11v-5h-.581m0 0a8.003 8.003 0 01-15.357-2m15.357 2H15",
	},
	"terminal": {
		"M8 9l3 3-3 3m5 0h3M5 20h14a2 2 0 002-2V6a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z",
	},
	"book": {
		"M12 6.253v13m0-13C10.832 5.477 9.246 5 7.5 5S4.168 5.477 3 6.253v13C4.168 18.477 5.754 18 7.5 18s3.332.477 4.5 1.253m0-13C13.168 5.477 14.754 5 16.5 5c1.747 0 3.332.477 4.5 1.253v13C19.832 18.477 18.247 18 16.5 18c-1.746 0-3.332.477-4.5 1.253",
	},
	"warning": {
		"M12 9v2m0 4h.01m-6.938 4h13.856c1.54 0 2.502-1.667 1.732-3L13.732 4c-.77-1.333-2.694-1.333-3.464 0L3.34 16c-.77 1.333.192 3 1.732 3z",
	},
}

// IconNames returns the names of every icon in the library, sorted.
func IconNames() []string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasIcon reports whether name is part of the library.
func HasIcon(name string) bool {
	_, ok := icons[name]
	return ok
}

// Icon returns the SVG markup for the named icon with class applied to the
// root element. Unknown names return "".
func Icon(name, class string) string {
	node := IconNode(name, class)
	if node == nil {
		return ""
	}
	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return ""
	}
	return b.String()
}

// IconNode builds the named icon as a detached DOM node. Unknown names
// return nil.
func IconNode(name, class string) *html.Node {
	paths, ok := icons[name]
	if !ok {
		return nil
	}
	svg := &html.Node{
		Type:      html.ElementNode,
		Data:      "svg",
		Namespace: "svg",
		Attr: []html.Attribute{
			{Key: "class", Val: class},
			{Key: "fill", Val: "none"},
			{Key: "stroke", Val: "currentColor"},
			{Key: "viewBox", Val: "0 0 24 24"},
			{Key: "aria-hidden", Val: "true"},
		},
	}
	for _, d := range paths {
		svg.AppendChild(&html.Node{
			Type:      html.ElementNode,
			Data:      "path",
			Namespace: "svg",
			Attr: []html.Attribute{
				{Key: "stroke-linecap", Val: "round"},
				{Key: "stroke-linejoin", Val: "round"},
				{Key: "stroke-width", Val: "2"},
				{Key: "d", Val: d},
			},
		})
	}
	return svg
}
