package models

import (
	"sort"

	"go.uber.org/zap"

	"github.com/andrewprzh/lrgasp-submissions/internal/gtf"
)

// Required identifying attributes; the reference attributes are
// optional at the file level.
const (
	attrTranscriptID    = "transcript_id"
	attrGeneID          = "gene_id"
	attrRefGeneID       = "reference_gene_id"
	attrRefTranscriptID = "reference_transcript_id"
)

// Validator runs the full validation pass over a model GTF file.
type Validator struct {
	logger *zap.Logger
}

// NewValidator creates a validator with logging disabled.
func NewValidator() *Validator {
	return &Validator{logger: zap.NewNop()}
}

// SetLogger sets the logger for progress messages.
func (v *Validator) SetLogger(l *zap.Logger) {
	v.logger = l
}

// ValidateFile validates the model GTF at path. It returns nil when the
// file is acceptable, otherwise the first violation found in pipeline
// order: parse, exon presence, required columns, per-record checks,
// transcript consistency.
func (v *Validator) ValidateFile(path string) error {
	table, err := gtf.Parse(path)
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}

	exons, err := v.loadExons(table, path)
	if err != nil {
		return err
	}

	transcripts, err := v.groupTranscripts(exons)
	if err != nil {
		return err
	}
	v.logger.Debug("grouped exons into transcripts", zap.Int("transcripts", len(transcripts)))

	// Each transcript is validated in isolation; iteration is sorted by
	// id so a file with several defective transcripts always reports
	// the same one first.
	ids := make([]string, 0, len(transcripts))
	for id := range transcripts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := checkTranscript(transcripts[id]); err != nil {
			return err
		}
	}

	return nil
}

// loadExons filters the parsed table to exon rows, verifies the
// required attribute columns exist somewhere in the file, and builds
// the typed record set. Empty attribute values normalize to the absent
// marker; a record-level absent required identifier is deferred to
// validateExon so the offending record can be named.
func (v *Validator) loadExons(table *gtf.Table, path string) ([]*Exon, error) {
	var rows []*gtf.Row
	for _, r := range table.Rows {
		if r.Feature == "exon" {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, &NoExonsError{Path: path}
	}

	for _, col := range []string{attrTranscriptID, attrGeneID} {
		if !table.HasColumn(col) {
			return nil, &MissingColumnError{Column: col}
		}
	}

	exons := make([]*Exon, 0, len(rows))
	for _, r := range rows {
		exons = append(exons, &Exon{
			Seqname:         r.Seqname,
			Start:           r.Start,
			End:             r.End,
			Strand:          r.Strand,
			TranscriptID:    r.Attr(attrTranscriptID),
			GeneID:          r.Attr(attrGeneID),
			RefGeneID:       r.Attr(attrRefGeneID),
			RefTranscriptID: r.Attr(attrRefTranscriptID),
		})
	}
	v.logger.Debug("loaded exon records", zap.Int("exons", len(exons)))

	return exons, nil
}

// validateExon checks one record against the per-record rules, in
// order: required identifiers, coordinate sanity, strand domain.
func validateExon(e *Exon) error {
	if e.TranscriptID == "" {
		return &MissingTranscriptIDError{Seqname: e.Seqname, Start: e.Start, End: e.End}
	}
	if e.GeneID == "" {
		return &MissingGeneIDError{Seqname: e.Seqname, Start: e.Start, End: e.End}
	}
	if e.Start > e.End {
		return &InvalidCoordinatesError{Seqname: e.Seqname, Start: e.Start, End: e.End}
	}
	switch e.Strand {
	case "+", "-", ".":
	default:
		return &InvalidStrandError{Seqname: e.Seqname, Start: e.Start, End: e.End, Strand: e.Strand}
	}
	return nil
}

// groupTranscripts validates each record and groups the records by
// transcript_id. Grouping is global across the file: a transcript_id
// appearing in disjoint file regions still forms one transcript. Each
// group is sorted ascending by (seqname, start), ties broken by
// descending end.
func (v *Validator) groupTranscripts(exons []*Exon) (map[string]*Transcript, error) {
	transcripts := make(map[string]*Transcript)
	for _, e := range exons {
		if err := validateExon(e); err != nil {
			return nil, err
		}
		t, ok := transcripts[e.TranscriptID]
		if !ok {
			t = &Transcript{ID: e.TranscriptID}
			transcripts[e.TranscriptID] = t
		}
		t.Exons = append(t.Exons, e)
	}

	for _, t := range transcripts {
		exons := t.Exons
		sort.Slice(exons, func(i, j int) bool {
			if exons[i].Seqname != exons[j].Seqname {
				return exons[i].Seqname < exons[j].Seqname
			}
			if exons[i].Start != exons[j].Start {
				return exons[i].Start < exons[j].Start
			}
			return exons[i].End > exons[j].End
		})
	}

	return transcripts, nil
}

// transcriptInvariants are the attributes that must hold one value
// across all exons of a transcript. Absence counts as one consistent
// value.
var transcriptInvariants = []struct {
	name string
	get  func(*Exon) string
}{
	{"seqname", func(e *Exon) string { return e.Seqname }},
	{"strand", func(e *Exon) string { return e.Strand }},
	{attrGeneID, func(e *Exon) string { return e.GeneID }},
	{attrRefGeneID, func(e *Exon) string { return e.RefGeneID }},
	{attrRefTranscriptID, func(e *Exon) string { return e.RefTranscriptID }},
}

// checkTranscript verifies cross-exon consistency for one transcript.
func checkTranscript(t *Transcript) error {
	for _, inv := range transcriptInvariants {
		seen := make(map[string]struct{})
		for _, e := range t.Exons {
			seen[inv.get(e)] = struct{}{}
		}
		if len(seen) > 1 {
			values := make([]string, 0, len(seen))
			for val := range seen {
				values = append(values, val)
			}
			sort.Strings(values)
			return &InconsistentAttributeError{
				TranscriptID: t.ID,
				Attribute:    inv.name,
				Values:       values,
			}
		}
	}
	return nil
}
