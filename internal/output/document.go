// internal/output/document.go
package output

import "strtable/pkg/api"

// Entry is one locus aggregate: either autosomal or sex-linked, never both.
type Entry struct {
	ID        string
	Autosomal *api.PlotV1
	SexLinked *api.SexLinkedV1
}

// Document is an insertion-ordered collection of locus aggregates. Order is
// significant: the JSON object must list loci in database file order, which
// a plain Go map would alphabetize.
type Document struct {
	entries []Entry
}

func (d *Document) AddAutosomal(p api.PlotV1) {
	d.entries = append(d.entries, Entry{ID: p.ID, Autosomal: &p})
}

func (d *Document) AddSexLinked(p api.SexLinkedV1) {
	d.entries = append(d.entries, Entry{ID: p.ID, SexLinked: &p})
}

func (d *Document) Len() int { return len(d.entries) }

func (d *Document) Entries() []Entry { return d.entries }
