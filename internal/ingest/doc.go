// Package ingest reads a delimited input file and produces the ordered
// sequence of non-empty UTF-8 document strings the pipeline core
// consumes. Quote handling, BOM stripping, and column-by-name selection
// are this package's concern; the delimiter is given by the caller and
// is not detected from the file. The core treats the output as an
// opaque []string.
package ingest
