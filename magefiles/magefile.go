//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir = "bin"
	pkg    = "./cmd/arcade"
)

var Default = Build

// Build compiles the arcade binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binDir, "arcade")
	fmt.Println("Building", out)
	return sh.RunV("go", "build", "-o", out, pkg)
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Lint runs go vet, plus golangci-lint when it is installed.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if _, err := sh.Output("golangci-lint", "version"); err != nil {
		fmt.Println("golangci-lint not found, skipping")
		return nil
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Run builds and opens the desktop arcade.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, "arcade"))
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
