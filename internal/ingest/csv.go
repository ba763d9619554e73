package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kbukum/textpipe/internal/apperr"
)

const utf8BOM = "\ufeff"

// DefaultDelimiter is used when no delimiter is explicitly configured.
const DefaultDelimiter = ','

// ReadDocuments reads path as a delimited text file with a header row
// and returns the ordered, non-empty values of the named column. column
// matching is case-insensitive. Blank rows and blank values for the
// target column are silently dropped.
func ReadDocuments(path, column string, delimiter rune) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.InputInvalid(fmt.Sprintf("cannot open %s", path)).WithCause(err)
	}
	defer f.Close()

	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	r := csv.NewReader(bufio.NewReader(f))
	r.Comma = delimiter
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, apperr.InputInvalid(fmt.Sprintf("reading header from %s", path)).WithCause(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, apperr.InputInvalid(fmt.Sprintf("column %q not found in %s", column, path))
	}

	var docs []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperr.InputInvalid(fmt.Sprintf("reading %s", path)).WithCause(err)
		}
		if col >= len(record) {
			continue
		}
		doc := strings.TrimSpace(record[col])
		if doc == "" {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
