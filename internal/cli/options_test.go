package cli

import (
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("strtable")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParsePositionals(t *testing.T) {
	opt, err := parse(t, "db.json", "gnomad.tsv", "out.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.DatabasePath != "db.json" || opt.GenotypePath != "gnomad.tsv" || opt.OutputPath != "out.json" {
		t.Fatalf("positionals not captured: %+v", opt)
	}
	if opt.Confidence != 0.95 || opt.Output != FormatJSON {
		t.Fatalf("bad defaults: %+v", opt)
	}
}

func TestParseFlags(t *testing.T) {
	opt, err := parse(t, "--confidence", "0.9", "--output", "tsv", "--quiet", "db.json", "g.tsv", "-")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.Confidence != 0.9 || opt.Output != FormatTSV || !opt.Quiet || opt.OutputPath != "-" {
		t.Fatalf("flags not captured: %+v", opt)
	}
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		{},                   // no args
		{"db.json", "g.tsv"}, // too few
		{"a", "b", "c", "d"}, // too many
		{"--confidence", "1.5", "a", "b", "c"},
		{"--output", "xml", "a", "b", "c"},
	}
	for _, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Fatalf("expected error for %v", argv)
		}
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	if _, err := parse(t, "-h"); err != flag.ErrHelp {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "-v")
	if err != nil || !opt.Version {
		t.Fatalf("version parse failed: %+v %v", opt, err)
	}
}
