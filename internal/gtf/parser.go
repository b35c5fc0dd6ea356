// Package gtf parses GTF annotation files into a tabular record set.
package gtf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Row is one feature line of a GTF file: the eight leading positional
// columns plus the parsed attribute column.
type Row struct {
	Seqname string
	Source  string
	Feature string
	Start   int64
	End     int64
	Score   string
	Strand  string
	Frame   string

	attrs map[string]string
}

// Attr returns the value of the named attribute for this row, or ""
// when the row does not carry it.
func (r *Row) Attr(key string) string {
	return r.attrs[key]
}

// Table holds all feature rows of a file in file order, together with
// the set of attribute keys encountered anywhere in the file. A key
// seen on any row counts as a column of the whole table; rows that lack
// it read the value as empty.
type Table struct {
	Rows []*Row

	attrKeys map[string]struct{}
}

// HasColumn reports whether the named attribute key appears on any row
// of the file.
func (t *Table) HasColumn(key string) bool {
	_, ok := t.attrKeys[key]
	return ok
}

// Parse reads the GTF file at path and returns its feature rows.
// Gzipped files (.gz suffix) are decompressed transparently.
func Parse(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open GTF file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return ParseReader(reader)
}

// ParseReader parses GTF content from r. Comment and blank lines are
// skipped; any malformed data line is a parse error naming the line.
func ParseReader(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	table := &Table{attrKeys: make(map[string]struct{})}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		row, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		for key := range row.attrs {
			table.attrKeys[key] = struct{}{}
		}
		table.Rows = append(table.Rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan GTF: %w", err)
	}

	return table, nil
}

// parseLine parses a single GTF data line.
func parseLine(line string) (*Row, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 9 {
		return nil, fmt.Errorf("expected 9 tab-separated fields, got %d", len(fields))
	}

	start, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}

	end, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse end: %w", err)
	}

	return &Row{
		Seqname: fields[0],
		Source:  fields[1],
		Feature: fields[2],
		Start:   start,
		End:     end,
		Score:   fields[5],
		Strand:  fields[6],
		Frame:   fields[7],
		attrs:   parseAttributes(fields[8]),
	}, nil
}

// parseAttributes parses the GTF attribute column.
// Format: key "value"; key "value"; ...
func parseAttributes(attrStr string) map[string]string {
	attrs := make(map[string]string)

	parts := strings.Split(attrStr, ";")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Find the first space to separate key from value
		idx := strings.Index(part, " ")
		if idx == -1 {
			continue
		}

		key := part[:idx]
		value := strings.TrimSpace(part[idx+1:])
		value = strings.Trim(value, "\"")

		attrs[key] = value
	}

	return attrs
}
