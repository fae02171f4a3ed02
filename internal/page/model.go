package page

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/welcome/internal/catalog"
	"github.com/five82/welcome/internal/manifest"
)

// RowKind selects how a card detail row is presented.
type RowKind int

const (
	RowNote RowKind = iota
	RowCopy
	RowSecret
	RowLink
	RowText
)

// Row is one line of a card's detail section.
type Row struct {
	Key   string
	Label string
	Value string
	Kind  RowKind
}

// AddressKind is which of the three address lines a card shows.
type AddressKind int

const (
	AddressNone AddressKind = iota
	AddressExternal
	AddressInternal
)

// InternalServiceLabel is shown when a service has neither a hostname nor an
// internal address.
const InternalServiceLabel = "Internal service"

// Address is the single address line under a card's description.
type Address struct {
	Kind  AddressKind
	Value string
	// URL is set for AddressExternal.
	URL string
}

// Text is the address as plain text.
func (a Address) Text() string {
	switch a.Kind {
	case AddressExternal:
		return a.Value
	case AddressInternal:
		return "Internal: " + a.Value
	default:
		return InternalServiceLabel
	}
}

// Card is the presentation model of one service. Both the HTML renderer and
// the terminal UI draw from it.
type Card struct {
	Key     string
	Meta    catalog.Metadata
	Address Address
	Rows    []Row
}

// BuildCard resolves metadata and lays out the address line and detail rows
// for one service instance.
func BuildCard(key string, inst manifest.ServiceInstance) Card {
	card := Card{Key: key, Meta: catalog.Resolve(key)}

	host := strings.TrimSpace(inst.Hostname)
	switch {
	case host != "":
		card.Address = Address{Kind: AddressExternal, Value: host, URL: "https://" + host}
	default:
		for _, k := range catalog.InternalKeys() {
			if v, ok := inst.Extra.Get(k); ok && strings.TrimSpace(v) != "" {
				card.Address = Address{Kind: AddressInternal, Value: v}
				break
			}
		}
	}

	if creds := inst.Credentials; creds != nil {
		if creds.HasNote() {
			card.Rows = append(card.Rows, Row{Key: "note", Value: creds.Note, Kind: RowNote})
		} else {
			if creds.Username != "" {
				card.Rows = append(card.Rows, Row{Key: "username", Label: "Username", Value: creds.Username, Kind: RowCopy})
			}
			if creds.Password != "" {
				card.Rows = append(card.Rows, Row{Key: "password", Label: "Password", Value: creds.Password, Kind: RowSecret})
			}
			if creds.APIKey != "" {
				card.Rows = append(card.Rows, Row{Key: "api_key", Label: "API Key", Value: creds.APIKey, Kind: RowSecret})
			}
		}
	}

	// An internal address line replaces every internal-URL row.
	for _, entry := range inst.Extra {
		if entry.Value == "" {
			continue
		}
		field, ok := catalog.Extra(entry.Key)
		if ok && field.Kind == catalog.ExtraInternal && card.Address.Kind == AddressInternal {
			continue
		}
		if !ok {
			if entry.Key == catalog.RecommendationKey {
				card.Rows = append(card.Rows, Row{Key: entry.Key, Value: entry.Value, Kind: RowText})
			}
			continue
		}
		row := Row{Key: entry.Key, Label: field.Label, Value: entry.Value}
		switch field.Kind {
		case catalog.ExtraLink:
			row.Kind = RowLink
			if !isWebURL(entry.Value) {
				row.Kind = RowCopy
			}
		case catalog.ExtraSecret:
			row.Kind = RowSecret
		default:
			row.Kind = RowCopy
		}
		card.Rows = append(card.Rows, row)
	}
	return card
}

// SortedKeys orders service keys by resolved display name, case-insensitively
// and locale-aware, with the key itself breaking ties.
func SortedKeys(services map[string]manifest.ServiceInstance) []string {
	keys := make([]string, 0, len(services))
	for key := range services {
		keys = append(keys, key)
	}
	col := collate.New(language.Und, collate.IgnoreCase)
	sort.Slice(keys, func(i, j int) bool {
		if c := col.CompareString(catalog.DisplayName(keys[i]), catalog.DisplayName(keys[j])); c != 0 {
			return c < 0
		}
		return keys[i] < keys[j]
	})
	return keys
}

// QuickStart returns the manifest's steps, or the defaults when it has none.
func QuickStart(steps []manifest.QuickStartStep) []catalog.Step {
	if len(steps) == 0 {
		return catalog.DefaultQuickStart()
	}
	out := make([]catalog.Step, 0, len(steps))
	for _, s := range steps {
		out = append(out, catalog.Step{Step: s.Step, Title: s.Title, Description: s.Description})
	}
	return out
}

// Banner is the "Domain: d | Generated: t" line. Missing parts are left out;
// an empty string means there is nothing to show.
func Banner(m *manifest.Manifest) string {
	if m == nil {
		return ""
	}
	var parts []string
	if d := strings.TrimSpace(m.Domain); d != "" {
		parts = append(parts, "Domain: "+d)
	}
	if g := strings.TrimSpace(m.GeneratedAt); g != "" {
		parts = append(parts, "Generated: "+formatGenerated(m))
	}
	return strings.Join(parts, " | ")
}

func formatGenerated(m *manifest.Manifest) string {
	ts := m.ParsedGeneratedAt()
	if ts.IsZero() {
		return strings.TrimSpace(m.GeneratedAt)
	}
	return ts.Local().Format(time.DateTime)
}

func isWebURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
