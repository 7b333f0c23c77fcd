// pkg/api/plot_v1.go
package api

// PlotV1 is the stable wire schema for one per-population aggregate, as
// consumed by the charting frontend. Slices are parallel and follow the
// fixed population order; values and bounds are percentages.
type PlotV1 struct {
	ID                    string    `json:"id"`
	Labels                []string  `json:"labels"`
	Values                []float64 `json:"values"`
	Counts                []int     `json:"counts"`
	ConfidenceLowerbounds []float64 `json:"confidence_lowerbounds"`
	ConfidenceUpperbounds []float64 `json:"confidence_upperbounds"`
	Title                 string    `json:"title"`
	Prevalence            *float64  `json:"prevalence,omitempty"`
}

// SexLinkedV1 is the three-way aggregate for X-linked loci: one block per
// sex plus the merged summary inlined at the top level.
type SexLinkedV1 struct {
	XX PlotV1 `json:"XX"`
	XY PlotV1 `json:"XY"`
	PlotV1
}
