// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"strtable/internal/version"
)

// Output formats
const (
	FormatJSON = "json"
	FormatTSV  = "tsv"
)

// Options holds all CLI flags and positional arguments.
type Options struct {
	// Positional inputs
	DatabasePath string // STRchive locus database (JSON array)
	GenotypePath string // gnomAD genotype table (TSV)
	OutputPath   string // output file, or "-" for stdout

	// Statistics
	Confidence float64

	// Output
	Output string
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: per-population pathogenicity rates for tandem-repeat loci

Reads a locus database (JSON) and a gnomAD genotype table (TSV), classifies
every sample at every locus, and writes plot-ready aggregates.

Version: %s

Usage: %s [options] <database.json> <gnomad.tsv> <output>
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.Float64Var(&opt.Confidence, "confidence", 0.95, "confidence level for binomial intervals [0.95]")
	fs.StringVar(&opt.Output, "output", FormatJSON, "output format: json | tsv [json]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress diagnostics on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	args := fs.Args()
	if len(args) != 3 {
		return opt, errors.New("expected three arguments: <database.json> <gnomad.tsv> <output>")
	}
	opt.DatabasePath = args[0]
	opt.GenotypePath = args[1]
	opt.OutputPath = args[2]

	// Validation
	if opt.Confidence <= 0 || opt.Confidence >= 1 {
		return opt, errors.New("--confidence must be in (0, 1)")
	}
	if opt.Output != FormatJSON && opt.Output != FormatTSV {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
