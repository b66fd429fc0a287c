//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Export builds the CLI and runs an incremental export in the current
// directory. INPUT and OUTPUT override the default file names.
func Export() error {
	mg.Deps(Build)
	args := []string{"export"}
	if in := os.Getenv("INPUT"); in != "" {
		args = append(args, "--input_file", in)
	}
	if out := os.Getenv("OUTPUT"); out != "" {
		args = append(args, "--output_file", out)
	}
	return sh.RunV(binPath, args...)
}

// Runs lists the runs recorded in the ledger named by LEDGER.
func Runs() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "runs", "--ledger", os.Getenv("LEDGER"))
}
