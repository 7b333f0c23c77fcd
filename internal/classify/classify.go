// internal/classify/classify.go
package classify

import (
	"fmt"

	"strtable/internal/gnomad"
	"strtable/internal/locus"
	"strtable/internal/motif"
)

// Sample is one genotype row classified against a locus.
type Sample struct {
	Row         gnomad.Row
	MinAllele1  int
	MinAllele2  int
	HasAllele2  bool // false for XY samples on X-linked loci
	Pathogenic1 bool
	Pathogenic2 bool
	MotifMatch  bool

	// Pathogenic is the inheritance-combined verdict. For autosomal loci it
	// already includes the motif requirement. For X-linked loci it is the
	// size-only per-sex verdict; the motif factor is applied only when the
	// XX and XY groups are merged into the combined summary.
	Pathogenic bool
}

// Result holds the classified samples for one locus.
type Result struct {
	XLinked bool
	All     []Sample // autosomal loci: every sample
	XX, XY  []Sample // X-linked loci: per-sex split (All stays empty)
}

// Merged returns the XX and XY samples as one group for the combined
// X-linked summary.
func (r Result) Merged() []Sample {
	out := make([]Sample, 0, len(r.XX)+len(r.XY))
	out = append(out, r.XX...)
	out = append(out, r.XY...)
	return out
}

// Classifier applies one locus's pathogenicity rules to genotype rows.
type Classifier struct {
	loc      locus.Locus
	mode     string
	variants motif.Set
}

// New builds a Classifier for the locus, pre-expanding its motif variations.
// It fails when the inheritance mode has no combination rule or does not
// match the chromosome.
func New(loc locus.Locus) (*Classifier, error) {
	mode := loc.Mode()
	switch mode {
	case locus.ModeAD, locus.ModeAR:
		if loc.XLinked() {
			return nil, fmt.Errorf("locus %s: autosomal mode %s on %s", loc.ID, mode, loc.Chrom)
		}
	case locus.ModeXD, locus.ModeXR:
		if !loc.XLinked() {
			return nil, fmt.Errorf("locus %s: X-linked mode %s on %s", loc.ID, mode, loc.Chrom)
		}
	default:
		return nil, fmt.Errorf("locus %s: unsupported inheritance mode %q", loc.ID, mode)
	}
	return &Classifier{
		loc:      loc,
		mode:     mode,
		variants: motif.Variations(loc.PathogenicMotifs),
	}, nil
}

// Classify labels every row. On X-linked loci rows are split by sex; rows
// with a sex other than XX/XY are dropped, as they have no combination rule.
func (c *Classifier) Classify(rows []gnomad.Row) (Result, error) {
	res := Result{XLinked: c.loc.XLinked()}
	for _, r := range rows {
		if res.XLinked && r.Sex != "XX" && r.Sex != "XY" {
			continue
		}
		s, err := c.classifyRow(r)
		if err != nil {
			return Result{}, fmt.Errorf("locus %s: %w", c.loc.ID, err)
		}
		switch {
		case !res.XLinked:
			res.All = append(res.All, s)
		case r.Sex == "XX":
			res.XX = append(res.XX, s)
		default:
			res.XY = append(res.XY, s)
		}
	}
	return res, nil
}

func (c *Classifier) classifyRow(r gnomad.Row) (Sample, error) {
	s := Sample{Row: r}

	var err error
	if s.MinAllele1, err = gnomad.AlleleMin(r.GenotypeCI, 1); err != nil {
		return s, fmt.Errorf("line %d: %w", r.Line, err)
	}
	hemizygous := c.loc.XLinked() && r.Sex == "XY"
	if !hemizygous {
		if s.MinAllele2, err = gnomad.AlleleMin(r.GenotypeCI, 2); err != nil {
			return s, fmt.Errorf("line %d: %w", r.Line, err)
		}
		s.HasAllele2 = true
	}

	s.Pathogenic1 = c.alleleExceeds(s.MinAllele1)
	if s.HasAllele2 {
		s.Pathogenic2 = c.alleleExceeds(s.MinAllele2)
	}
	s.MotifMatch = c.variants.Contains(r.Motif)

	switch c.mode {
	case locus.ModeAD:
		s.Pathogenic = (s.Pathogenic1 || s.Pathogenic2) && s.MotifMatch
	case locus.ModeAR:
		s.Pathogenic = (s.Pathogenic1 && s.Pathogenic2) && s.MotifMatch
	case locus.ModeXD:
		if hemizygous {
			s.Pathogenic = s.Pathogenic1
		} else {
			s.Pathogenic = s.Pathogenic1 || s.Pathogenic2
		}
	case locus.ModeXR:
		if hemizygous {
			s.Pathogenic = s.Pathogenic1
		} else {
			s.Pathogenic = s.Pathogenic1 && s.Pathogenic2
		}
	}
	return s, nil
}

// alleleExceeds is the per-allele size test. VWA1 is a dataset-specific
// exception: its pathogenic call is any allele away from the benign length,
// not an expansion past pathogenic_min.
func (c *Classifier) alleleExceeds(minSize int) bool {
	if c.loc.GeneKey() == "VWA1" {
		return float64(minSize) != c.loc.BenignMin
	}
	return c.loc.PathogenicMin < float64(minSize)
}
