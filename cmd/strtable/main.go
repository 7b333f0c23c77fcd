// cmd/strtable/main.go
//
// strtable turns a disease-locus database and a gnomAD genotype table into
// per-population pathogenicity aggregates. All logic lives in internal/app;
// main only routes buffered output and the exit code.
package main

import (
	"bytes"
	"fmt"
	"os"

	"strtable/internal/app"
)

func main() {
	var out, errBuf bytes.Buffer
	code := app.Run(os.Args[1:], &out, &errBuf)

	if out.Len() > 0 {
		fmt.Print(out.String())
	}
	if errBuf.Len() > 0 {
		fmt.Fprint(os.Stderr, errBuf.String())
	}
	os.Exit(code)
}
