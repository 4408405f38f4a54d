//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

var Default = Build

var programs = []string{"mass_pt", "mass_pt_dr", "dr_effi"}

// Build compiles every plot program into ./bin.
func Build() error {
	mg.Deps(BuildMassPT, BuildMassPTDR, BuildDREffi)
	fmt.Println("Compilation finished")
	return nil
}

func BuildMassPT() error   { return build("mass_pt") }
func BuildMassPTDR() error { return build("mass_pt_dr") }
func BuildDREffi() error   { return build("dr_effi") }

// Test runs the package tests.
func Test() error {
	return run("go", "test", "./...")
}

// Plots builds and runs every program with the default configuration.
func Plots() error {
	mg.Deps(Build)
	for _, prog := range programs {
		if err := run("./bin/" + prog); err != nil {
			return err
		}
	}
	return nil
}

func build(prog string) error {
	fmt.Printf("Building %s executable...\n", prog)
	return run("go", "build", "-o", "./bin/"+prog, "./"+prog)
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
