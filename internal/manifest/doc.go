// Package manifest loads the data.json document that describes an installed
// service bundle.
//
// # Document
//
// A manifest carries an optional domain and generation timestamp, a map of
// service key to ServiceInstance and an optional quick-start list. Unknown
// fields are ignored. Decoding is lenient: only invalid JSON or a document
// that is not an object is an error. Below that, a value of the wrong type
// is treated as absent. A service entry that is not an object decodes to an
// empty instance, a non-object credentials is nil, and a quick-start entry
// whose step is not a number (or a numeric string) is skipped.
//
// Every type is decoded with gjson so the declaration order of extra
// survives; Extras is a slice rather than a Go map. Numbers and booleans keep
// their JSON text in string fields, and nested or null values are dropped.
//
// # Sources
//
// NewSource returns a *Client for http:// and https:// locations and a *File
// for everything else:
//
//	src, err := manifest.NewSource(cfg.Manifest)
//	if err != nil {
//		return err
//	}
//	m, err := src.Fetch(ctx)
//
// The client sets Accept: application/json and User-Agent: welcome/0.1 and
// gives up after 5 seconds. A non-2xx response is returned as *StatusError.
// Other failures are wrapped with fmt.Errorf:
//
//   - "execute request: dial tcp: connection refused"
//   - "decode response: unexpected EOF"
//   - "read manifest: open data.json: no such file or directory"
//
// Sources never retry; the caller renders its error state instead.
package manifest
