// Command urm runs, lints and prints register-machine programs.
//
//	urm run [-config file] [-programs file] [-timed] [-dump n] NAME [INPUT...]
//	urm lint [-config file] [-programs file]
//	urm print [-config file] [-programs file] [-yaml [-o file]] [NAME...]
//	urm demo [-config file] [-programs file] [-report file]
//
// Without -programs the built-in library is used.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tebeka/atexit"
)

const usage = `usage: urm <command> [flags] [args]

commands:
  run     run a program on the given inputs and print register 1
  lint    check programs for malformed or unreachable code
  print   list programs as text or YAML
  demo    build the library and run its verification cases
`

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "run":
		return runCommand(args[1:], stdout, stderr)
	case "lint":
		return lintCommand(args[1:], stdout, stderr)
	case "print":
		return printCommand(args[1:], stdout, stderr)
	case "demo":
		return demoCommand(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	}

	fmt.Fprintf(stderr, "urm: unknown command %q\n\n%s", args[0], usage)

	return exitUsage
}
