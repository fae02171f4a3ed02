// Package clipboard copies text and drives the short "copied" confirmation
// shown on the control that triggered the copy.
//
// Helper.Copy writes through a Writer. Only after the write returns without
// error does it call Control.Confirm and schedule Control.Revert ConfirmFor
// later. Write failures are logged at warn level and never reach the caller
// beyond the false return value.
//
// Writers:
//
//   - System: the OS clipboard via github.com/atotto/clipboard
//   - OSC52: an OSC 52 escape sequence for terminals, usable over SSH
//   - Chain: the first writer that succeeds
//
// Indicator is a mutex-guarded Control for callers whose revert fires on a
// timer goroutine, such as the terminal UI.
package clipboard
