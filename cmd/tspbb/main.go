// Command tspbb solves Travelling Salesman instances exactly with
// Branch-and-Bound.
//
// Usage:
//
//	tspbb solve four.yaml
//	tspbb solve --order nearest --timeout 30s --verify a.yaml b.yaml
//	tspbb gen --cities 9 --seed 7 > random.yaml
//	tspbb history --history runs.db
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/bnbtsp/tsp"
)

// Exit codes.
const (
	exitOK         = 0
	exitError      = 1
	exitInfeasible = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd(newApp(os.Stdin, os.Stderr))
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, tsp.ErrNoHamiltonianCycle) {
			return exitInfeasible
		}
		return exitError
	}

	return exitOK
}
