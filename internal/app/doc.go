// Package app wires configuration, logging and the manifest source into the
// three ways of showing the welcome page.
//
//   - Serve: HTTP server, JSON logs on stderr, cookie-gated confetti
//   - Render: writes index.html and static/ to a directory once, with the
//     confetti gated by the browser's localStorage
//   - RunTUI: Bubble Tea terminal UI, console logs appended to log_file,
//     confetti gated by welcomed_at in the prefs file
//
// Each entry point loads the config file, applies the command-line
// overrides from Options and validates the result before doing any work.
// Configuration and startup errors are returned; manifest failures are not,
// because every surface renders an error state instead.
package app
