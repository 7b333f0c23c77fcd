// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"strtable/internal/classify"
	"strtable/internal/cli"
	"strtable/internal/gnomad"
	"strtable/internal/locus"
	"strtable/internal/output"
	"strtable/internal/plotdata"
	"strtable/internal/version"
)

// Run executes the full pipeline: parse arguments, load the locus database
// and genotype table, classify loci in database order, write the aggregates.
// Exit codes: 0 ok, 2 usage/input error, 3 write error.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("strtable")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "strtable version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	loci, err := locus.Load(opts.DatabasePath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	table, err := gnomad.ReadTSV(opts.GenotypePath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	doc := &output.Document{}
	skipped := 0
	for _, loc := range loci {
		rows := table.ByGene(loc.GeneKey())
		if len(rows) == 0 {
			skipped++
			continue
		}
		cls, err := classify.New(loc)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		res, err := cls.Classify(rows)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		addLocus(doc, loc, res, opts.Confidence)
	}

	if err := write(outw, doc, opts); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if !opts.Quiet {
		_, _ = fmt.Fprintf(stderr, "strtable: %d loci written, %d without genotype rows\n", doc.Len(), skipped)
	}
	return flushCode(outw, stderr, 0)
}

// addLocus turns one classified locus into its document entry.
func addLocus(doc *output.Document, loc locus.Locus, res classify.Result, confidence float64) {
	gene := loc.GeneKey()
	if !res.XLinked {
		p := plotdata.Build(loc.ID, gene, res.All, plotdata.Combined, confidence)
		p.Prevalence = loc.PrevalencePct
		doc.AddAutosomal(p)
		return
	}
	// Per-sex figures ignore the motif; the merged summary requires it.
	merged := plotdata.Build(loc.ID, gene, res.Merged(), plotdata.CombinedWithMotif, confidence)
	merged.Prevalence = loc.PrevalencePct
	doc.AddSexLinked(plotdata.SexLinked(
		plotdata.Build(loc.ID, gene+"_XX", res.XX, plotdata.Combined, confidence),
		plotdata.Build(loc.ID, gene+"_XY", res.XY, plotdata.Combined, confidence),
		merged,
	))
}

func write(outw *bufio.Writer, doc *output.Document, opts cli.Options) error {
	dst := io.Writer(outw)
	var fh *os.File
	if opts.OutputPath != "-" {
		var err error
		if fh, err = os.Create(opts.OutputPath); err != nil {
			return err
		}
		dst = fh
	}
	var err error
	switch opts.Output {
	case cli.FormatTSV:
		err = output.WriteTSV(dst, doc)
	default:
		err = output.WriteJSON(dst, doc)
	}
	if fh != nil {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
