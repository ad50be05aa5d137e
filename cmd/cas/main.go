/*
File    : algebra-cas/cmd/cas/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the algebra-cas command-line tool.
It dispatches on a single subcommand read from os.Args onto the three
operations this engine exposes: simplify, isolate, and solve.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/akashmaji946/algebra-cas/cas"
)

// VERSION is the tool's version string, printed by the version subcommand.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the engine's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

func main() {
	if len(os.Args) < 2 {
		showHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		showHelp()
	case "--version", "-v", "version":
		showVersion()
	case "simplify":
		runSimplify(os.Args[2:])
	case "isolate":
		runIsolate(os.Args[2:])
	case "solve":
		runSolve(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "[USAGE ERROR] unknown subcommand %q\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}
}

// showHelp prints the tool's usage summary.
func showHelp() {
	fmt.Println("algebra-cas - a symbolic algebra engine")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  cas simplify <expr>")
	fmt.Println("  cas isolate <equation> <variable>")
	fmt.Println("  cas solve <eq1> [eq2 ...] <variable>")
	fmt.Println("  cas --help")
	fmt.Println("  cas --version")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println(`  cas simplify "2 * (x + 1) - x"`)
	fmt.Println(`  cas isolate "2 * x + 3 = 11" x`)
	fmt.Println(`  cas solve "x = y + 2" "y = 5" x`)
}

// showVersion prints the tool's version and author.
func showVersion() {
	fmt.Printf("algebra-cas %s\n", VERSION)
	fmt.Printf("Author: %s\n", AUTHOR)
}

// runSimplify implements the "simplify" subcommand: one expression
// argument, printed in canonical form or reported as an error.
func runSimplify(args []string) {
	if len(args) != 1 {
		fail("usage: cas simplify <expr>")
	}
	result, err := cas.Simplify(args[0])
	if err != nil {
		fail(err.Error())
	}
	fmt.Println(result)
}

// runIsolate implements the "isolate" subcommand: an equation argument
// followed by the variable to isolate.
func runIsolate(args []string) {
	if len(args) != 2 {
		fail("usage: cas isolate <equation> <variable>")
	}
	result, err := cas.Isolate(args[0], args[1])
	if err != nil {
		fail(err.Error())
	}
	fmt.Println(result)
}

// runSolve implements the "solve" subcommand: one or more equation
// arguments followed by the variable to solve for, which is always the
// last argument.
func runSolve(args []string) {
	if len(args) < 2 {
		fail("usage: cas solve <eq1> [eq2 ...] <variable>")
	}
	variable := args[len(args)-1]
	equations := args[:len(args)-1]

	result, err := cas.Solve(equations, variable)
	if err != nil {
		fail(err.Error())
	}
	fmt.Println(result.Result)
	if len(result.Steps) > 0 {
		fmt.Fprintln(os.Stderr, "steps:")
		fmt.Fprintln(os.Stderr, strings.Join(result.Steps, "\n"))
	}
}

// fail prints an error message to stderr and exits with a non-zero status.
func fail(message string) {
	fmt.Fprintf(os.Stderr, "[ERROR] %s\n", message)
	os.Exit(1)
}
