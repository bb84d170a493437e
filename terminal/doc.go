// Package terminal owns the clock's terminal session on top of tcell.
//
// Features:
//   - Raw input mode and alternate screen for the lifetime of a Session
//   - Mouse capture (reported, unused by the clock)
//   - Bounded-wait input polling via a single event pump goroutine
//   - Guaranteed restoration on every exit path through With
//
// Log output written while the session is active goes through CRLFWriter,
// since raw mode disables the tty's LF to CRLF translation.
package terminal
