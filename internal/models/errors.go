package models

import (
	"fmt"
	"strings"
)

// ParseError reports that the GTF file could not be parsed as the
// expected tabular schema. The collaborator's own failure is preserved
// as the cause.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse of GTF failed: %s", e.Path)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NoExonsError reports a file with no exon feature rows.
type NoExonsError struct {
	Path string
}

func (e *NoExonsError) Error() string {
	return fmt.Sprintf("no exon features found in GTF: %s", e.Path)
}

// MissingColumnError reports that a required attribute column is absent
// from the entire file.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required attribute %s not found in any record of the GTF", e.Column)
}

// MissingTranscriptIDError reports an exon record without a
// transcript_id attribute.
type MissingTranscriptIDError struct {
	Seqname string
	Start   int64
	End     int64
}

func (e *MissingTranscriptIDError) Error() string {
	return fmt.Sprintf("exon %s:%d-%d has no transcript_id attribute", e.Seqname, e.Start, e.End)
}

// MissingGeneIDError reports an exon record without a gene_id
// attribute.
type MissingGeneIDError struct {
	Seqname string
	Start   int64
	End     int64
}

func (e *MissingGeneIDError) Error() string {
	return fmt.Sprintf("exon %s:%d-%d has no gene_id attribute", e.Seqname, e.Start, e.End)
}

// InvalidCoordinatesError reports an exon record whose start is greater
// than its end.
type InvalidCoordinatesError struct {
	Seqname string
	Start   int64
	End     int64
}

func (e *InvalidCoordinatesError) Error() string {
	return fmt.Sprintf("exon %s:%d-%d has start greater than end", e.Seqname, e.Start, e.End)
}

// InvalidStrandError reports an exon record with a strand value outside
// {+, -, .}.
type InvalidStrandError struct {
	Seqname string
	Start   int64
	End     int64
	Strand  string
}

func (e *InvalidStrandError) Error() string {
	return fmt.Sprintf("exon %s:%d-%d has invalid strand %q, must be one of \"+\", \"-\" or \".\"",
		e.Seqname, e.Start, e.End, e.Strand)
}

// InconsistentAttributeError reports a transcript whose exons disagree
// on an attribute that must be transcript-invariant. Values holds every
// distinct value found, sorted, so the submitter sees all variants at
// once. The absent marker renders as an empty string.
type InconsistentAttributeError struct {
	TranscriptID string
	Attribute    string
	Values       []string
}

func (e *InconsistentAttributeError) Error() string {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("transcript %q has inconsistent %s values across its exons: [%s]",
		e.TranscriptID, e.Attribute, strings.Join(quoted, ", "))
}
