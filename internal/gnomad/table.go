// internal/gnomad/table.go
package gnomad

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Required header columns; extra columns are ignored.
var required = []string{"Id", "Population", "Sex", "GenotypeConfidenceInterval", "Motif"}

// Row is one per-sample genotype call from the gnomAD table.
type Row struct {
	ID         string // locus/gene identifier used to join against the database
	Population string
	Sex        string // "XX" or "XY"
	GenotypeCI string // two allele ranges: "20-22/46-48"
	Motif      string
	Line       int // 1-based line number in the source file
}

// Table holds the full genotype table in memory, indexed by locus id.
type Table struct {
	rows   []Row
	byGene map[string][]Row
}

// ReadTSV loads a tab-separated genotype table with a header row.
func ReadTSV(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: empty file", path)
	}
	col := map[string]int{}
	header := strings.Split(strings.TrimRight(sc.Text(), "\r\n"), "\t")
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, name)
		}
	}

	t := &Table{byGene: map[string][]Row{}}
	ln := 1
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < len(header) {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		r := Row{
			ID:         f[col["Id"]],
			Population: f[col["Population"]],
			Sex:        f[col["Sex"]],
			GenotypeCI: f[col["GenotypeConfidenceInterval"]],
			Motif:      f[col["Motif"]],
			Line:       ln,
		}
		t.rows = append(t.rows, r)
		t.byGene[r.ID] = append(t.byGene[r.ID], r)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ByGene returns the rows for one locus id in file order (nil when absent).
func (t *Table) ByGene(id string) []Row { return t.byGene[id] }

// Len returns the total row count.
func (t *Table) Len() int { return len(t.rows) }

// AlleleMin parses the genotype confidence-interval string and returns the
// minimum repeat size of allele 1 or 2. Each allele range is a '-'-separated
// list of integers; a bare integer is a valid single-point range.
func AlleleMin(ci string, allele int) (int, error) {
	if allele != 1 && allele != 2 {
		return 0, fmt.Errorf("allele index %d out of range", allele)
	}
	parts := strings.Split(ci, "/")
	if allele > len(parts) {
		return 0, fmt.Errorf("genotype %q has no allele %d", ci, allele)
	}
	min := 0
	for i, s := range strings.Split(parts[allele-1], "-") {
		var v int
		if _, err := fmt.Sscan(strings.TrimSpace(s), &v); err != nil {
			return 0, fmt.Errorf("genotype %q: bad size %q", ci, s)
		}
		if i == 0 || v < min {
			min = v
		}
	}
	return min, nil
}
