// Package server exposes the welcome page over HTTP.
//
// Routes:
//
//   - GET / and GET /index.html: the page, rendered for this request
//   - GET /static/*: embedded app.js and style.css
//   - GET /health: plain "OK"
//
// Each page request parses its own copy of the host page, so no render state
// is shared between requests. The manifest is fetched per request and a
// failed fetch still yields a 200 with the error panel; the render state is
// reported in the X-Render-State header for monitoring.
//
// With Celebrate enabled the first response to a browser without the
// n8n_install_welcomed cookie sets the cookie and marks the page so app.js
// plays the confetti.
package server
