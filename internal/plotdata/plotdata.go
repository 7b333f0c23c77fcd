// internal/plotdata/plotdata.go
package plotdata

import (
	"strtable/internal/classify"
	"strtable/internal/stats"
	"strtable/pkg/api"
)

// Populations is the fixed output order of gnomAD population codes.
var Populations = []string{"amr", "afr", "ami", "asj", "nfe", "fin", "mid", "sas", "eas", "oth"}

var populationNames = map[string]string{
	"amr": "Admixed American",
	"afr": "African/African American",
	"asj": "Ashkenazi Jewish",
	"ami": "Amish",
	"eas": "East Asian",
	"fin": "Finnish",
	"nfe": "European (non Finnish)",
	"mid": "Middle Eastern",
	"sas": "South Asian",
	"oth": "Others",
}

// Name returns the human-readable label for a population code.
func Name(code string) string { return populationNames[code] }

// Pathogenic selects which per-sample verdict an aggregate counts.
type Pathogenic func(classify.Sample) bool

// Combined is the per-sample verdict as classified (autosomal and per-sex
// X-linked figures).
func Combined(s classify.Sample) bool { return s.Pathogenic }

// CombinedWithMotif additionally requires the motif match; used for the
// merged XX/XY summary of X-linked loci.
func CombinedWithMotif(s classify.Sample) bool { return s.Pathogenic && s.MotifMatch }

// SexLinked assembles the three-way aggregate for an X-linked locus.
func SexLinked(xx, xy, merged api.PlotV1) api.SexLinkedV1 {
	return api.SexLinkedV1{XX: xx, XY: xy, PlotV1: merged}
}

// Build aggregates classified samples into one plot block. Every population
// appears, in fixed order; empty populations get count 0, value 0 and the
// zero-trial confidence interval.
func Build(id, title string, samples []classify.Sample, pathogenic Pathogenic, confidence float64) api.PlotV1 {
	p := api.PlotV1{ID: id, Title: title}
	for _, code := range Populations {
		count, pcount := 0, 0
		for _, s := range samples {
			if s.Row.Population != code {
				continue
			}
			count++
			if pathogenic(s) {
				pcount++
			}
		}
		value := 0.0
		if pcount > 0 {
			value = float64(pcount) / float64(count) * 100
		}
		lo, hi := stats.ProportionCI(pcount, count, confidence)

		p.Labels = append(p.Labels, populationNames[code])
		p.Counts = append(p.Counts, count)
		p.Values = append(p.Values, value)
		p.ConfidenceLowerbounds = append(p.ConfidenceLowerbounds, lo*100)
		p.ConfidenceUpperbounds = append(p.ConfidenceUpperbounds, hi*100)
	}
	return p
}
