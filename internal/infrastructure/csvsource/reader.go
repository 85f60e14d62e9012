// Package csvsource parses the scraped FBref exports (player table and league standing) into domain records.
package csvsource

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// ErrMissingColumn reports a required header that is absent.
var ErrMissingColumn = crerr.New("required csv column missing")

// table indexes a CSV header. Duplicate headers (FBref repeats per-90 columns) resolve to the first occurrence.
type table struct {
	source  string
	columns map[string]int
	reader  *csv.Reader
	line    int
}

func openTable(r io.Reader, source string, required ...string) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, crerr.Newf("%s: empty file", source)
		}
		return nil, crerr.Wrapf(err, "%s: read header", source)
	}

	columns := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, seen := columns[name]; !seen {
			columns[name] = idx
		}
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, crerr.Wrapf(ErrMissingColumn, "%s: column %q", source, name)
		}
	}

	return &table{source: source, columns: columns, reader: reader, line: 1}, nil
}

// next returns the following record, or io.EOF.
func (t *table) next() (row, error) {
	record, err := t.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return row{}, io.EOF
		}
		return row{}, crerr.Wrapf(err, "%s", t.source)
	}
	t.line++

	return row{table: t, record: record, line: t.line}, nil
}

type row struct {
	table  *table
	record []string
	line   int
}

func (r row) has(column string) bool {
	_, ok := r.table.columns[column]
	return ok
}

func (r row) text(column string) string {
	idx, ok := r.table.columns[column]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

func (r row) errorf(column string, err error) error {
	return crerr.Wrapf(err, "%s:%d: column %q", r.table.source, r.line, column)
}

// optInt parses integer cells. Empty cells are NULL; thousands separators and a trailing ".0"
// written by pandas for columns with gaps are accepted.
func (r row) optInt(column string) (*int, error) {
	raw := strings.ReplaceAll(r.text(column), ",", "")
	if raw == "" {
		return nil, nil
	}

	if v, err := strconv.Atoi(strings.TrimPrefix(raw, "+")); err == nil {
		return &v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return nil, r.errorf(column, crerr.Newf("invalid integer %q", raw))
	}
	v := int(f)
	return &v, nil
}

func (r row) optFloat(column string) (*float64, error) {
	raw := strings.ReplaceAll(r.text(column), ",", "")
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, r.errorf(column, crerr.Newf("invalid number %q", raw))
	}
	return &v, nil
}

// optAge accepts FBref's "years-days" form as well as plain years.
func (r row) optAge(column string) (*int, error) {
	raw := r.text(column)
	if years, _, found := strings.Cut(raw, "-"); found && years != "" {
		v, err := strconv.Atoi(years)
		if err != nil {
			return nil, r.errorf(column, crerr.Newf("invalid age %q", raw))
		}
		return &v, nil
	}
	return r.optInt(column)
}

// fieldSet collects the first parse error of a row so conversions can be written as a flat list.
type fieldSet struct {
	r   row
	err error
}

func (s *fieldSet) int(column string) *int {
	v, err := s.r.optInt(column)
	if err != nil && s.err == nil {
		s.err = err
	}
	return v
}

func (s *fieldSet) float(column string) *float64 {
	v, err := s.r.optFloat(column)
	if err != nil && s.err == nil {
		s.err = err
	}
	return v
}

func (s *fieldSet) age(column string) *int {
	v, err := s.r.optAge(column)
	if err != nil && s.err == nil {
		s.err = err
	}
	return v
}
