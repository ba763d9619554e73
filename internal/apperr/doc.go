// Package apperr provides the error taxonomy shared by the scheduler,
// pipeline manager, and CLI: a typed AppError carrying a machine-readable
// code plus optional cause and details, adapted from gokit's errors
// package with the HTTP-status mapping dropped (textpipe has no HTTP
// surface — see DESIGN.md).
package apperr
