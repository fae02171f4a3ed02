package manifest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const installerTimestampLayout = "2006-01-02 15:04:05"

// Manifest mirrors the generated data.json document.
type Manifest struct {
	Domain      string                     `json:"domain"`
	GeneratedAt string                     `json:"generated_at"`
	Services    map[string]ServiceInstance `json:"services"`
	QuickStart  []QuickStartStep           `json:"quick_start"`
}

// ParsedGeneratedAt returns the generation timestamp as time.Time when possible.
func (m Manifest) ParsedGeneratedAt() time.Time {
	return parseTime(m.GeneratedAt)
}

// ServiceInstance is the per-installation data for one service key.
type ServiceInstance struct {
	Hostname    string       `json:"hostname"`
	Credentials *Credentials `json:"credentials"`
	Extra       Extras       `json:"extra"`
}

// Credentials holds optional login material. A non-empty Note replaces the
// other fields on the card.
type Credentials struct {
	Note     string `json:"note"`
	Username string `json:"username"`
	Password string `json:"password"`
	APIKey   string `json:"api_key"`
}

// HasNote reports whether the credentials carry a note.
func (c *Credentials) HasNote() bool {
	return c != nil && strings.TrimSpace(c.Note) != ""
}

// QuickStartStep is one onboarding instruction.
type QuickStartStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ExtraEntry is a single key/value pair of a service's extra map.
type ExtraEntry struct {
	Key   string
	Value string
}

// Extras is the extra map of a service in the order the manifest declares it.
type Extras []ExtraEntry

// MarshalJSON writes the entries back as an object in their current order.
func (e Extras) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// Get returns the value for key.
func (e Extras) Get(key string) (string, bool) {
	for _, entry := range e {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Parse decodes a manifest document. Only invalid JSON or a non-object
// document fail; malformed fields are dropped.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	layouts := []string{time.RFC3339Nano, time.RFC3339}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	if ts, err := time.ParseInLocation(installerTimestampLayout, value, time.Local); err == nil {
		return ts
	}
	return time.Time{}
}
