package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bnbtsp/internal/instance"
	"github.com/katalvlaran/bnbtsp/tsp"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		cities     int
		seed       int64
		asymmetric bool
		name, out  string
		cfg        = tsp.DefaultRandomConfig()
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Symmetric = !asymmetric
			rows, err := tsp.RandomRows(cities, seed, cfg)
			if err != nil {
				return err
			}
			if name == "" {
				name = fmt.Sprintf("random-%d-%d", cities, seed)
			}
			in := &instance.Instance{Name: name, Costs: rows}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			a.log.Debug("instance generated", "name", name, "cities", cities, "seed", seed)

			return in.Encode(w)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cities, "cities", "n", 8, "number of cities")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.BoolVar(&asymmetric, "asymmetric", false, "draw both directions independently")
	f.IntVar(&cfg.MaxCost, "max-cost", cfg.MaxCost, "largest edge cost")
	f.Float64Var(&cfg.MissingProb, "missing", cfg.MissingProb, "probability that an edge is absent")
	f.StringVar(&name, "name", "", "instance name")
	f.StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}
