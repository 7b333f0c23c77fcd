// internal/motif/motif.go
package motif

import "strings"

// Wildcard is the "any base" character in database motifs.
const Wildcard = 'N'

var nucs = []byte{'A', 'C', 'G', 'T'}

// Set holds every cyclic variation of a group of motifs.
type Set map[string]struct{}

// Contains reports whether m is a cyclic variation of any source motif.
func (s Set) Contains(m string) bool {
	_, ok := s[m]
	return ok
}

// Variations builds the set of all cyclic variations of the given motifs.
// Each wildcard is substituted with every nucleotide base (first occurrence,
// then recursively, so multiple wildcards expand to the full Cartesian
// product); every fully-expanded motif contributes all of its rotations.
// A wildcard-free motif of length n contributes exactly its n rotations.
func Variations(motifs []string) Set {
	s := make(Set)
	for _, m := range motifs {
		expand(strings.ToUpper(strings.TrimSpace(m)), s)
	}
	return s
}

func expand(m string, s Set) {
	if i := strings.IndexByte(m, Wildcard); i >= 0 {
		for _, n := range nucs {
			expand(m[:i]+string(n)+m[i+1:], s)
		}
		return
	}
	for r := 0; r < len(m); r++ {
		s[m[r:]+m[:r]] = struct{}{}
	}
}
