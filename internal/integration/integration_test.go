package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"strtable/internal/app"
)

const database = `[
  {
    "id": "HD",
    "chrom": "chr4",
    "gene": "HTT",
    "gnomad": ["HTT"],
    "inheritance": ["AD"],
    "pathogenic_motif_reference_orientation": ["CAG"],
    "pathogenic_min": 40,
    "pathogenic_max": 200,
    "prevalence": "1/2500"
  },
  {
    "id": "FXS",
    "chrom": "chrX",
    "gene": "FMR1",
    "gnomad": ["FMR1"],
    "inheritance": ["XD"],
    "pathogenic_motif_reference_orientation": ["CGG"],
    "pathogenic_min": 200,
    "pathogenic_max": 1000,
    "prevalence": null
  },
  {
    "id": "GHOST",
    "chrom": "chr2",
    "gene": "NOWHERE",
    "gnomad": [],
    "inheritance": ["AR"],
    "pathogenic_motif_reference_orientation": ["AT"],
    "pathogenic_min": 10,
    "pathogenic_max": 50,
    "prevalence": null
  }
]`

const genotypes = "Id\tPopulation\tSex\tGenotypeConfidenceInterval\tMotif\n" +
	// HD: one pathogenic (expanded + matching motif), one benign size,
	// one expanded but wrong motif
	"HTT\tnfe\tXX\t20-22/46-48\tCAG\n" +
	"HTT\tnfe\tXY\t18-19/20-21\tCAG\n" +
	"HTT\tafr\tXX\t20-22/46-48\tTTC\n" +
	// FXS: expanded XX (one allele, dominant) and benign XY
	"FMR1\tfin\tXX\t30-31/250-260\tCGG\n" +
	"FMR1\tfin\tXY\t29-30\tCGG\n" +
	// FXS: expanded allele but off-motif; pathogenic per sex, benign merged
	"FMR1\tsas\tXX\t30-31/250-260\tTTT\n"

func run(t *testing.T, argv ...string) (string, string, int) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return out.String(), errBuf.String(), code
}

func writeInputs(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	db := filepath.Join(dir, "db.json")
	tsv := filepath.Join(dir, "gnomad.tsv")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(db, []byte(database), 0644))
	require.NoError(t, os.WriteFile(tsv, []byte(genotypes), 0644))
	return db, tsv, out
}

func TestEndToEnd(t *testing.T) {
	db, tsv, out := writeInputs(t)
	_, errOut, code := run(t, "--quiet", db, tsv, out)
	require.Equal(t, 0, code, "stderr: %s", errOut)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Contains(t, doc, "HD")
	require.Contains(t, doc, "FXS")
	require.NotContains(t, doc, "GHOST", "locus without genotype rows must be omitted")

	// loci keep database file order, not key order
	require.Less(t, bytes.Index(raw, []byte(`"HD"`)), bytes.Index(raw, []byte(`"FXS"`)))

	var hd struct {
		Labels     []string  `json:"labels"`
		Values     []float64 `json:"values"`
		Counts     []int     `json:"counts"`
		Lower      []float64 `json:"confidence_lowerbounds"`
		Upper      []float64 `json:"confidence_upperbounds"`
		Title      string    `json:"title"`
		Prevalence float64   `json:"prevalence"`
	}
	require.NoError(t, json.Unmarshal(doc["HD"], &hd))
	require.Equal(t, "HTT", hd.Title)
	require.Len(t, hd.Values, 10)
	require.InDelta(t, 0.04, hd.Prevalence, 1e-9)

	// nfe (index 4): 2 samples, 1 pathogenic; afr (index 1): wrong motif
	require.Equal(t, 2, hd.Counts[4])
	require.InDelta(t, 50, hd.Values[4], 1e-9)
	require.Equal(t, 1, hd.Counts[1])
	require.Zero(t, hd.Values[1])
	// empty population: count 0, value 0, zero-trial interval
	require.Zero(t, hd.Counts[0])
	require.Zero(t, hd.Values[0])
	require.Zero(t, hd.Lower[0])
	require.InDelta(t, 100, hd.Upper[0], 1e-9)

	var fxs struct {
		XX struct {
			Title  string `json:"title"`
			Counts []int  `json:"counts"`
		} `json:"XX"`
		XY struct {
			Title string `json:"title"`
		} `json:"XY"`
		Title  string    `json:"title"`
		Values []float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal(doc["FXS"], &fxs))
	require.Equal(t, "FMR1_XX", fxs.XX.Title)
	require.Equal(t, "FMR1_XY", fxs.XY.Title)
	require.Equal(t, "FMR1", fxs.Title)
	require.Equal(t, 1, fxs.XX.Counts[5]) // fin
	// merged summary: 2 fin samples, 1 pathogenic with matching motif
	require.InDelta(t, 50, fxs.Values[5], 1e-9)
}

func TestXLinkedMergedSummaryRequiresMotif(t *testing.T) {
	db, tsv, out := writeInputs(t)
	_, errOut, code := run(t, "--quiet", db, tsv, out)
	require.Equal(t, 0, code, "stderr: %s", errOut)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))

	var fxs struct {
		XX struct {
			Counts []int     `json:"counts"`
			Values []float64 `json:"values"`
		} `json:"XX"`
		Counts []int     `json:"counts"`
		Values []float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal(doc["FXS"], &fxs))

	// The sas sample has an expanded allele but an off-motif repeat: the
	// per-sex figure counts it (size-only rule), the merged XX/XY summary
	// vetoes it on the motif.
	sas := 7 // index in the fixed population order
	require.Equal(t, 1, fxs.XX.Counts[sas])
	require.InDelta(t, 100, fxs.XX.Values[sas], 1e-9)
	require.Equal(t, 1, fxs.Counts[sas])
	require.Zero(t, fxs.Values[sas])
}

func TestEndToEndStdout(t *testing.T) {
	db, tsv, _ := writeInputs(t)
	out, errOut, code := run(t, "--quiet", db, tsv, "-")
	require.Equal(t, 0, code, "stderr: %s", errOut)
	require.True(t, strings.HasPrefix(out, "{\n"), "stdout should carry the document")
	require.Empty(t, errOut)
}

func TestEndToEndTSV(t *testing.T) {
	db, tsv, _ := writeInputs(t)
	out, _, code := run(t, "--quiet", "--output", "tsv", db, tsv, "-")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header + 10 populations for HD + 30 for FXS (XX, XY, all)
	require.Len(t, lines, 1+10+30)
	require.Equal(t, "locus\tscope\tpopulation\tcount\tpercent\tci_lower\tci_upper",
		lines[0])
}

func TestDiagnosticsSummary(t *testing.T) {
	db, tsv, out := writeInputs(t)
	_, errOut, code := run(t, db, tsv, out)
	require.Equal(t, 0, code)
	require.Contains(t, errOut, "2 loci written, 1 without genotype rows")
}

func TestWriteFailureExitThree(t *testing.T) {
	db, tsv, _ := writeInputs(t)
	bad := filepath.Join(t.TempDir(), "no-such-dir", "out.json")
	_, errOut, code := run(t, db, tsv, bad)
	require.Equal(t, 3, code)
	require.NotContains(t, errOut, "loci written", "failed run must not claim success")
}

func TestBadInputsExitTwo(t *testing.T) {
	db, tsv, out := writeInputs(t)

	_, _, code := run(t, "missing.json", tsv, out)
	require.Equal(t, 2, code)

	badDB := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badDB, []byte(`[{"id":"X","chrom":"chr1","gene":"G","prevalence":"bogus"}]`), 0644))
	_, errOut, code := run(t, badDB, tsv, out)
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "prevalence")

	_, _, code = run(t, db, "missing.tsv", out)
	require.Equal(t, 2, code)
}

func TestUnsupportedInheritanceExitTwo(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db.json")
	tsv := filepath.Join(dir, "g.tsv")
	require.NoError(t, os.WriteFile(db, []byte(`[
	  {"id":"ODD","chrom":"chr1","gene":"G1","gnomad":["G1"],"inheritance":[],
	   "pathogenic_motif_reference_orientation":["AT"],
	   "pathogenic_min":5,"pathogenic_max":10,"prevalence":null}
	]`), 0644))
	require.NoError(t, os.WriteFile(tsv, []byte(
		"Id\tPopulation\tSex\tGenotypeConfidenceInterval\tMotif\n"+
			"G1\tnfe\tXX\t1-2/3-4\tAT\n"), 0644))

	_, errOut, code := run(t, "--quiet", db, tsv, "-")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "inheritance")
}

func TestVersionFlag(t *testing.T) {
	out, _, code := run(t, "--version")
	require.Equal(t, 0, code)
	require.Contains(t, out, "strtable version")
}

func TestNoArgsPrintsUsage(t *testing.T) {
	out, _, code := run(t)
	require.Equal(t, 0, code)
	require.Contains(t, out, "Usage")
}
