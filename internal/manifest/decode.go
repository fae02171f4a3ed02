package manifest

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotObject   = errors.New("document is not an object")
)

// The decoders below never fail on a well-formed document. A field of the
// wrong type is treated as absent so one bad value cannot hide the rest of
// the manifest.

// UnmarshalJSON decodes the manifest leniently.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return errNotObject
	}
	*m = decodeManifest(root)
	return nil
}

// UnmarshalJSON decodes a service leniently; anything but an object yields
// an empty instance.
func (s *ServiceInstance) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errInvalidJSON
	}
	*s = decodeService(gjson.ParseBytes(data))
	return nil
}

// UnmarshalJSON decodes credentials leniently. Numbers and booleans keep
// their JSON text.
func (c *Credentials) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errInvalidJSON
	}
	if creds := decodeCredentials(gjson.ParseBytes(data)); creds != nil {
		*c = *creds
	} else {
		*c = Credentials{}
	}
	return nil
}

// UnmarshalJSON decodes a step leniently. A numeric string step is
// accepted; an entry Parse would skip decodes to the zero value.
func (q *QuickStartStep) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errInvalidJSON
	}
	step, _ := decodeStep(gjson.ParseBytes(data))
	*q = step
	return nil
}

// UnmarshalJSON keeps declaration order. Strings are taken verbatim, numbers
// and booleans keep their JSON text, and null, object or array values are
// dropped. A repeated key keeps its first position and its last value.
func (e *Extras) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errInvalidJSON
	}
	*e = decodeExtras(gjson.ParseBytes(data))
	return nil
}

func decodeManifest(root gjson.Result) Manifest {
	m := Manifest{
		Domain:      scalarField(root, "domain"),
		GeneratedAt: scalarField(root, "generated_at"),
	}
	if services := root.Get("services"); services.IsObject() {
		m.Services = make(map[string]ServiceInstance)
		services.ForEach(func(key, value gjson.Result) bool {
			m.Services[key.String()] = decodeService(value)
			return true
		})
	}
	if steps := root.Get("quick_start"); steps.IsArray() {
		for _, value := range steps.Array() {
			if step, ok := decodeStep(value); ok {
				m.QuickStart = append(m.QuickStart, step)
			}
		}
	}
	return m
}

func decodeService(value gjson.Result) ServiceInstance {
	if !value.IsObject() {
		return ServiceInstance{}
	}
	return ServiceInstance{
		Hostname:    scalarField(value, "hostname"),
		Credentials: decodeCredentials(value.Get("credentials")),
		Extra:       decodeExtras(value.Get("extra")),
	}
}

func decodeCredentials(value gjson.Result) *Credentials {
	if !value.IsObject() {
		return nil
	}
	return &Credentials{
		Note:     scalarField(value, "note"),
		Username: scalarField(value, "username"),
		Password: scalarField(value, "password"),
		APIKey:   scalarField(value, "api_key"),
	}
}

// decodeStep reports false for entries that cannot be shown as a step: a
// non-object entry or a step number that is neither absent nor numeric.
func decodeStep(value gjson.Result) (QuickStartStep, bool) {
	if !value.IsObject() {
		return QuickStartStep{}, false
	}
	step := QuickStartStep{
		Title:       scalarField(value, "title"),
		Description: scalarField(value, "description"),
	}
	switch n := value.Get("step"); n.Type {
	case gjson.Null:
	case gjson.Number:
		step.Step = int(n.Int())
	case gjson.String:
		i, err := strconv.Atoi(strings.TrimSpace(n.String()))
		if err != nil {
			return QuickStartStep{}, false
		}
		step.Step = i
	default:
		return QuickStartStep{}, false
	}
	return step, true
}

func decodeExtras(value gjson.Result) Extras {
	if !value.IsObject() {
		return nil
	}
	var out Extras
	index := make(map[string]int)
	value.ForEach(func(key, value gjson.Result) bool {
		text, ok := scalarText(value)
		if !ok {
			return true
		}
		name := key.String()
		if i, ok := index[name]; ok {
			out[i].Value = text
			return true
		}
		index[name] = len(out)
		out = append(out, ExtraEntry{Key: name, Value: text})
		return true
	})
	return out
}

func scalarField(obj gjson.Result, name string) string {
	text, _ := scalarText(obj.Get(name))
	return text
}

func scalarText(value gjson.Result) (string, bool) {
	switch value.Type {
	case gjson.String:
		return value.String(), true
	case gjson.Number, gjson.True, gjson.False:
		return value.Raw, true
	}
	return "", false
}
