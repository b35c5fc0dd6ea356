package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGTF writes content to a temporary models.gtf and returns its path.
func writeGTF(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.gtf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateFile_Accepts(t *testing.T) {
	path := writeGTF(t, `chr1	tool	exon	100	200	.	+	.	gene_id "G1"; transcript_id "T1";
chr1	tool	exon	300	400	.	+	.	gene_id "G1"; transcript_id "T1";
`)

	require.NoError(t, NewValidator().ValidateFile(path))
}

func TestValidateFile_AcceptsReferenceAttributes(t *testing.T) {
	path := writeGTF(t, `chr1	tool	exon	100	200	.	-	.	gene_id "G1"; transcript_id "T1"; reference_gene_id "ENSG01"; reference_transcript_id "ENST01";
chr1	tool	exon	300	400	.	-	.	gene_id "G1"; transcript_id "T1"; reference_gene_id "ENSG01"; reference_transcript_id "ENST01";
`)

	require.NoError(t, NewValidator().ValidateFile(path))
}

func TestValidateFile_ParseError(t *testing.T) {
	path := writeGTF(t, "chr1\ttool\texon\t100\n")

	err := NewValidator().ValidateFile(path)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "parse of GTF failed")
	require.NotNil(t, errors.Unwrap(err))
	assert.Contains(t, errors.Unwrap(err).Error(), "line 1")
}

func TestValidateFile_NoExons(t *testing.T) {
	path := writeGTF(t, `chr1	tool	CDS	100	200	.	+	.	gene_id "G1"; transcript_id "T1";
chr1	tool	CDS	300	400	.	+	.	gene_id "G1"; transcript_id "T1";
`)

	err := NewValidator().ValidateFile(path)
	var nerr *NoExonsError
	require.ErrorAs(t, err, &nerr)
}

func TestValidateFile_MissingColumn(t *testing.T) {
	tests := []struct {
		name    string
		content string
		column  string
	}{
		{
			name:    "no transcript_id anywhere",
			content: "chr1\ttool\texon\t100\t200\t.\t+\t.\tgene_id \"G1\";\n",
			column:  "transcript_id",
		},
		{
			name:    "no gene_id anywhere",
			content: "chr1\ttool\texon\t100\t200\t.\t+\t.\ttranscript_id \"T1\";\n",
			column:  "gene_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidator().ValidateFile(writeGTF(t, tt.content))
			var merr *MissingColumnError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, tt.column, merr.Column)
		})
	}
}

func TestValidateFile_ColumnCountsFileWide(t *testing.T) {
	// transcript_id appears only on a non-exon row, so the column
	// exists; the exon record itself then fails the presence check.
	path := writeGTF(t, `chr1	tool	transcript	100	200	.	+	.	gene_id "G1"; transcript_id "T1";
chr1	tool	exon	100	200	.	+	.	gene_id "G1";
`)

	err := NewValidator().ValidateFile(path)
	var terr *MissingTranscriptIDError
	require.ErrorAs(t, err, &terr)
}

func TestValidateFile_MissingTranscriptID(t *testing.T) {
	// Empty string normalizes to absent and still fails, naming the
	// record by feature and coordinates.
	path := writeGTF(t, `chr1	tool	exon	100	200	.	+	.	gene_id "G1"; transcript_id "";
`)

	err := NewValidator().ValidateFile(path)
	var terr *MissingTranscriptIDError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, err.Error(), "exon chr1:100-200")
}

func TestValidateFile_MissingGeneID(t *testing.T) {
	path := writeGTF(t, `chr2	tool	exon	500	700	.	+	.	gene_id ""; transcript_id "T1";
`)

	err := NewValidator().ValidateFile(path)
	var gerr *MissingGeneIDError
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, err.Error(), "exon chr2:500-700")
}

func TestValidateFile_InvalidCoordinates(t *testing.T) {
	path := writeGTF(t, `chr1	tool	exon	300	200	.	+	.	gene_id "G1"; transcript_id "T1";
`)

	err := NewValidator().ValidateFile(path)
	var cerr *InvalidCoordinatesError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "exon chr1:300-200")
}

func TestValidateFile_InvalidStrand(t *testing.T) {
	path := writeGTF(t, `chr1	tool	exon	100	200	.	x	.	gene_id "G1"; transcript_id "T1";
`)

	err := NewValidator().ValidateFile(path)
	var serr *InvalidStrandError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "x", serr.Strand)
	assert.Contains(t, err.Error(), "exon chr1:100-200")
}

func TestValidateFile_InconsistentGeneID(t *testing.T) {
	path := writeGTF(t, `chr1	tool	exon	100	200	.	+	.	gene_id "G2"; transcript_id "T1";
chr1	tool	exon	300	400	.	+	.	gene_id "G1"; transcript_id "T1";
`)

	err := NewValidator().ValidateFile(path)
	var ierr *InconsistentAttributeError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "T1", ierr.TranscriptID)
	assert.Equal(t, "gene_id", ierr.Attribute)
	// Every distinct value, sorted
	assert.Equal(t, []string{"G1", "G2"}, ierr.Values)
}

func TestValidateFile_InconsistentSeqname(t *testing.T) {
	path := writeGTF(t, `chr2	tool	exon	100	200	.	+	.	gene_id "G1"; transcript_id "T1";
chr1	tool	exon	300	400	.	+	.	gene_id "G1"; transcript_id "T1";
`)

	err := NewValidator().ValidateFile(path)
	var ierr *InconsistentAttributeError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "seqname", ierr.Attribute)
	assert.Equal(t, []string{"chr1", "chr2"}, ierr.Values)
}

func TestValidateFile_InconsistentStrand(t *testing.T) {
	path := writeGTF(t, `chr1	tool	exon	100	200	.	+	.	gene_id "G1"; transcript_id "T1";
chr1	tool	exon	300	400	.	-	.	gene_id "G1"; transcript_id "T1";
`)

	err := NewValidator().ValidateFile(path)
	var ierr *InconsistentAttributeError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "strand", ierr.Attribute)
}

func TestValidateFile_InconsistentReferenceGene(t *testing.T) {
	// One exon states a reference gene, the other does not: absence is
	// a distinct value, so the transcript is inconsistent.
	path := writeGTF(t, `chr1	tool	exon	100	200	.	+	.	gene_id "G1"; transcript_id "T1"; reference_gene_id "ENSG01";
chr1	tool	exon	300	400	.	+	.	gene_id "G1"; transcript_id "T1";
`)

	err := NewValidator().ValidateFile(path)
	var ierr *InconsistentAttributeError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "reference_gene_id", ierr.Attribute)
	assert.Equal(t, []string{"", "ENSG01"}, ierr.Values)
}

func TestValidateFile_Idempotent(t *testing.T) {
	path := writeGTF(t, `chr1	tool	exon	100	200	.	+	.	gene_id "G1"; transcript_id "T1";
chr1	tool	exon	300	400	.	+	.	gene_id "G2"; transcript_id "T1";
`)

	v := NewValidator()
	first := v.ValidateFile(path)
	second := v.ValidateFile(path)
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

func TestGroupTranscripts_Ordering(t *testing.T) {
	// File order is scrambled; within the group, exons sort ascending
	// by (seqname, start) with ties broken by descending end.
	exons := []*Exon{
		{Seqname: "chr1", Start: 300, End: 400, Strand: "+", TranscriptID: "T1", GeneID: "G1"},
		{Seqname: "chr1", Start: 100, End: 150, Strand: "+", TranscriptID: "T1", GeneID: "G1"},
		{Seqname: "chr1", Start: 100, End: 200, Strand: "+", TranscriptID: "T1", GeneID: "G1"},
	}

	groups, err := NewValidator().groupTranscripts(exons)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	got := groups["T1"].Exons
	require.Len(t, got, 3)
	assert.Equal(t, int64(100), got[0].Start)
	assert.Equal(t, int64(200), got[0].End)
	assert.Equal(t, int64(100), got[1].Start)
	assert.Equal(t, int64(150), got[1].End)
	assert.Equal(t, int64(300), got[2].Start)
}

func TestGroupTranscripts_MergesDisjointRegions(t *testing.T) {
	// Grouping is global across the file: the same transcript_id in
	// disjoint regions forms a single transcript.
	exons := []*Exon{
		{Seqname: "chr1", Start: 100, End: 200, Strand: "+", TranscriptID: "T1", GeneID: "G1"},
		{Seqname: "chr1", Start: 5000, End: 5100, Strand: "+", TranscriptID: "T2", GeneID: "G1"},
		{Seqname: "chr1", Start: 9000, End: 9100, Strand: "+", TranscriptID: "T1", GeneID: "G1"},
	}

	groups, err := NewValidator().groupTranscripts(exons)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Len(t, groups["T1"].Exons, 2)
	assert.Len(t, groups["T2"].Exons, 1)
}

func TestGroupTranscripts_RejectsBeforeSorting(t *testing.T) {
	// The first invalid record anywhere aborts grouping.
	exons := []*Exon{
		{Seqname: "chr1", Start: 100, End: 200, Strand: "+", TranscriptID: "T1", GeneID: "G1"},
		{Seqname: "chr1", Start: 300, End: 250, Strand: "+", TranscriptID: "T1", GeneID: "G1"},
	}

	_, err := NewValidator().groupTranscripts(exons)
	var cerr *InvalidCoordinatesError
	require.ErrorAs(t, err, &cerr)
}

func TestValidateExon_RuleOrder(t *testing.T) {
	// A record violating several rules reports the identifier check
	// first.
	e := &Exon{Seqname: "chr1", Start: 300, End: 200, Strand: "x"}

	err := validateExon(e)
	var terr *MissingTranscriptIDError
	require.ErrorAs(t, err, &terr)
}
