// internal/locus/loader.go
package locus

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the locus database: a JSON array of locus records.
// Records are returned in file order; output order depends on it.
func Load(path string) ([]Locus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []Locus
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	for i := range list {
		if err := list[i].init(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return list, nil
}
