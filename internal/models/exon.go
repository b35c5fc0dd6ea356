// Package models validates transcript model GTF submissions: it checks
// exon records for required attributes and value constraints, groups
// them into transcripts, and verifies that transcript-invariant
// attributes are consistent across each transcript's exons.
package models

// Exon is one exon feature row of a model GTF. The reference fields are
// optional at the file level; the empty string is the explicit absent
// marker for them and for identifiers that failed normalization.
type Exon struct {
	Seqname string
	Start   int64
	End     int64
	Strand  string

	TranscriptID string
	GeneID       string

	RefGeneID       string
	RefTranscriptID string
}

// Transcript is the ordered set of exons sharing one transcript_id.
// It exists only for the duration of a validation run.
type Transcript struct {
	ID    string
	Exons []*Exon
}
