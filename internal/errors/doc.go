// Package errors provides structured, coded errors for markup.
//
// Every failure the engine or the CLI reports carries a code (E101,
// E120, ...) registered in this package, a category, a short message
// and optionally a longer detail, a fix suggestion and a source
// location. Errors with the same code compare equal under errors.Is,
// which lets packages expose code-only sentinels:
//
//	var ErrUnknownOperation = errors.New("E101")
//
//	if stderrors.Is(err, render.ErrUnknownOperation) { ... }
//
// Format renders an error for terminal display; FormatCompact and
// FormatJSON are meant for logs and HTTP responses.
package errors
