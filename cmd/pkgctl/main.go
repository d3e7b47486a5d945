package main

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/pkgctl/internal/cli"
	"github.com/ariel-frischer/pkgctl/internal/cli/shared"
)

func main() {
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pkgctl: determining working directory: %v\n", err)
		os.Exit(shared.ExitFailure)
	}

	rt := shared.Runtime{WorkDir: workDir, Environ: os.Environ()}
	os.Exit(cli.Execute(rt, os.Args[1:], os.Stdout, os.Stderr))
}
