// Package celebrate implements the one-shot first-visit confetti.
//
// A Gate consults a MarkerStore. When no marker exists it schedules the
// Effect after Delay (800 ms by default) and writes the current time as the
// marker straight away, so a reload during the delay does not celebrate
// twice. Every collaborator is injected: tests pass a fake clock, an
// immediate scheduler and an in-memory store.
//
// The effect is decorative. A nil Effect or one that fails still consumes
// the marker and never affects the caller.
//
// Bursts is the animation plan shared by the browser page (as JSON on the
// body element, see PlanJSON) and the terminal UI: five staggered bursts of
// 200 particles in total, then two 50-particle side cannons 250 ms later.
//
// Stores:
//
//   - CookieStore: cookie n8n_install_welcomed, one-year max-age, used by
//     the HTTP server
//   - prefs.Marker: welcomed_at in the preferences file, used by the TUI
//
// The static render leaves the decision to the browser, which keeps the
// marker in localStorage under the same MarkerName.
package celebrate
