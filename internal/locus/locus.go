// internal/locus/locus.go
package locus

import (
	"fmt"
	"strconv"
	"strings"
)

// Inheritance modes recognised by the classifier.
const (
	ModeAD = "AD" // autosomal dominant
	ModeAR = "AR" // autosomal recessive
	ModeXD = "XD" // X-linked dominant
	ModeXR = "XR" // X-linked recessive
)

// Locus is one record of the STRchive disease-locus database.
type Locus struct {
	ID               string   `json:"id"`
	Chrom            string   `json:"chrom"`
	Gene             string   `json:"gene"`
	GnomadGenes      []string `json:"gnomad"`
	PathogenicMotifs []string `json:"pathogenic_motif_reference_orientation"`
	InheritanceModes []string `json:"inheritance"`
	PathogenicMin    float64  `json:"pathogenic_min"`
	PathogenicMax    float64  `json:"pathogenic_max"`
	BenignMin        float64  `json:"benign_min"`
	Prevalence       *string  `json:"prevalence"`

	// PrevalencePct is derived from Prevalence ("1/2500" → 0.04) at load time.
	PrevalencePct *float64 `json:"-"`
}

// GeneKey returns the dataset-specific gene alias used to join genotype rows,
// falling back to the canonical gene symbol when no alias exists.
func (l Locus) GeneKey() string {
	if len(l.GnomadGenes) > 0 {
		return l.GnomadGenes[0]
	}
	return l.Gene
}

// Mode returns the first inheritance mode, or "" when the list is empty.
func (l Locus) Mode() string {
	if len(l.InheritanceModes) > 0 {
		return l.InheritanceModes[0]
	}
	return ""
}

// XLinked reports whether the locus lies on the X chromosome.
func (l Locus) XLinked() bool { return l.Chrom == "chrX" }

// init derives per-record fields and validates the ones that cannot be
// checked by the JSON decoder.
func (l *Locus) init() error {
	if l.ID == "" {
		return fmt.Errorf("locus with empty id")
	}
	if l.Gene == "" && len(l.GnomadGenes) == 0 {
		return fmt.Errorf("locus %s: no gene symbol", l.ID)
	}
	if l.Prevalence == nil {
		return nil
	}
	parts := strings.SplitN(*l.Prevalence, "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("locus %s: bad prevalence %q", l.ID, *l.Prevalence)
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Errorf("locus %s: bad prevalence %q: %v", l.ID, *l.Prevalence, err)
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || den == 0 {
		return fmt.Errorf("locus %s: bad prevalence %q", l.ID, *l.Prevalence)
	}
	pct := num / den * 100
	l.PrevalencePct = &pct
	return nil
}
