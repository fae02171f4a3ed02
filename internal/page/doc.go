// Package page renders the welcome dashboard into a host HTML document.
//
// # Model
//
// BuildCard turns a service key and its manifest instance into a Card: the
// resolved metadata, exactly one address line (external hostname link, the
// first internal address, or the "Internal service" label) and the ordered
// detail rows. Row order is fixed: the credential note, which hides the
// username, password and API key, then username, password, API key, then
// recognized extra fields in manifest order and the recommendation text.
// The terminal UI draws from the same model.
//
// # Rendering
//
// Nodes are built with golang.org/x/net/html and never from concatenated
// strings; manifest values only ever become text nodes or attribute values,
// which html.Render escapes. Secrets are rendered masked; the literal value
// rides in data-secret for the reveal button in app.js. Ids come from a
// RenderContext that lives for one render.
//
// Every section renderer clears its container before rebuilding it and does
// nothing when the host page lacks the container.
//
// # Controller
//
// Controller.Load walks Loading to Rendered or Error:
//
//   - the command cheat-sheet is rendered before the manifest is fetched
//   - on success the banner, the sorted cards and the quick-start steps are
//     rendered
//   - on failure the services region shows a fixed warning panel, the
//     default quick-start steps are rendered and the error toast is shown;
//     the error itself only goes to the log
//
// There are no retries.
package page
