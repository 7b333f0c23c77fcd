// internal/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// indent matches the reference output: 4 spaces.
const indent = "    "

// WriteJSON writes the document as one pretty-printed JSON object mapping
// locus id to its aggregate, preserving insertion order.
func WriteJSON(w io.Writer, d *Document) error {
	if d.Len() == 0 {
		_, err := io.WriteString(w, "{}\n")
		return err
	}
	if _, err := io.WriteString(w, "{\n"); err != nil {
		return err
	}
	for i, e := range d.entries {
		var v any = e.Autosomal
		if e.SexLinked != nil {
			v = e.SexLinked
		}
		b, err := json.MarshalIndent(v, indent, indent)
		if err != nil {
			return err
		}
		sep := ","
		if i == len(d.entries)-1 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%q: %s%s\n", indent, e.ID, b, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
