// Package ui is the terminal rendition of the welcome page, built on Bubble
// Tea.
//
// The screen has three parts: a header with the manifest banner or load
// state, a scrollable body, and a one-line key help footer. The body lists
// the service cards (shared with the HTML renderer through page.Card), the
// quick-start steps and the command cheat-sheet.
//
// Every copyable value is a focusable field. j/k move between fields, c or
// enter copies the focused value through a clipboard.Helper and shows a
// transient "Copied" mark, r or space toggles a secret between its mask and
// its value. Secrets always start masked.
//
// Manifest text is stripped of escape sequences and control characters
// before it reaches the terminal. Links are emitted as OSC 8 hyperlinks.
//
// With Options.Celebrate set, the first run for a preferences file plays a
// terminal confetti burst drawn from celebrate.Bursts.
package ui
