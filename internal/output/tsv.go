// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"strtable/pkg/api"
)

// TSVHeader is the canonical header row for the tabular output format.
const TSVHeader = "locus\tscope\tpopulation\tcount\tpercent\tci_lower\tci_upper"

// WriteTSV writes one row per locus/scope/population. Autosomal loci emit a
// single "all" scope; sex-linked loci emit XX, XY and the merged "all".
func WriteTSV(w io.Writer, d *Document) error {
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for _, e := range d.entries {
		if e.Autosomal != nil {
			if err := writeRows(w, e.ID, "all", *e.Autosomal); err != nil {
				return err
			}
			continue
		}
		for _, block := range []struct {
			scope string
			p     api.PlotV1
		}{
			{"XX", e.SexLinked.XX},
			{"XY", e.SexLinked.XY},
			{"all", e.SexLinked.PlotV1},
		} {
			if err := writeRows(w, e.ID, block.scope, block.p); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRows(w io.Writer, id, scope string, p api.PlotV1) error {
	for i, label := range p.Labels {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g\t%g\t%g\n",
			id, scope, label, p.Counts[i], p.Values[i],
			p.ConfidenceLowerbounds[i], p.ConfidenceUpperbounds[i])
		if err != nil {
			return err
		}
	}
	return nil
}
