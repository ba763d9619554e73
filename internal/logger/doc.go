// Package logger provides structured logging for textpipe using zerolog.
//
// It supports console and JSON output, level configuration, and
// component-scoped loggers carrying structured fields, following the same
// shape as the gokit logger this package is adapted from.
package logger
