package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bnbtsp/internal/history"
	"github.com/katalvlaran/bnbtsp/internal/instance"
	"github.com/katalvlaran/bnbtsp/internal/metrics"
	"github.com/katalvlaran/bnbtsp/tsp"
)

// report is the outcome of one instance file.
type report struct {
	runID string
	in    *instance.Instance
	res   tsp.Result
	hk    float64
	err   error
}

func newSolveCmd(a *app) *cobra.Command {
	s := &a.cfg.Solver
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve one or more instances to optimality",
		Long: `Solve reads each instance (use "-" for stdin), runs Branch-and-Bound
and prints the optimal tour and its cost. With --verify the answer is
cross-checked against Held-Karp dynamic programming (at most 16 cities).`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runSolve,
	}

	f := cmd.Flags()
	f.StringVar(&s.Bound, "bound", s.Bound, "pruning bound: min-outgoing or none")
	f.StringVar(&s.Order, "order", s.Order, "branching order: index or nearest")
	f.DurationVar(&s.Timeout, "timeout", s.Timeout, "per-instance time limit (0 = none)")
	f.Int64Var(&s.MaxNodes, "max-nodes", s.MaxNodes, "per-instance search node budget (0 = none)")
	f.BoolVar(&s.RejectDeadEnds, "reject-dead-ends", s.RejectDeadEnds, "fail fast when a city has no in- or out-edge")
	f.BoolVar(&s.Verify, "verify", s.Verify, "cross-check against Held-Karp")
	f.IntVarP(&s.Jobs, "jobs", "j", s.Jobs, "instances solved in parallel")
	f.StringVar(&a.cfg.Metrics.Out, "metrics-out", a.cfg.Metrics.Out, "write Prometheus metrics to this textfile")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		reg       *prometheus.Registry
		collector *metrics.Collector
		store     *history.Store
		err       error
	)
	if a.cfg.Metrics.Out != "" {
		reg = prometheus.NewRegistry()
		if collector, err = metrics.NewCollector(reg); err != nil {
			return err
		}
	}
	if a.cfg.History.Path != "" {
		if store, err = history.Open(a.cfg.History.Path); err != nil {
			return err
		}
		defer store.Close()
	}

	reports := make([]report, len(args))
	var g errgroup.Group
	g.SetLimit(a.cfg.Solver.Jobs)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			reports[i] = a.solveFile(ctx, path)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	out := cmd.OutOrStdout()
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if r.in == nil {
			errs = append(errs, r.err)
			continue
		}
		printReport(out, r, a.cfg.Solver.Verify)
		if collector != nil {
			collector.Observe(r.in.N(), r.res, r.err)
		}
		if store != nil {
			if _, err = store.Record(ctx, toRun(r)); err != nil {
				errs = append(errs, err)
			}
		}
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.in.Name, r.err))
		}
	}
	if reg != nil {
		if err = metrics.WriteTextfile(a.cfg.Metrics.Out, reg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// solveFile loads and solves one instance. A nil report.in means the file
// could not be loaded.
func (a *app) solveFile(ctx context.Context, path string) report {
	var r = report{runID: uuid.NewString()}
	in, err := a.loadInstance(path)
	if err != nil {
		r.err = err
		return r
	}
	r.in = in

	d, err := in.Matrix()
	if err != nil {
		r.err = err
		return r
	}
	log := a.log.With(slog.String("run_id", r.runID), slog.String("instance", in.Name))
	opts := a.cfg.Solver.options()
	opts.Logger = log

	if a.cfg.Solver.Verify {
		r.res, r.hk, r.err = tsp.CrossCheck(ctx, d, opts)
	} else {
		r.res, r.err = tsp.Solve(ctx, d, opts)
	}
	log.Info("instance solved",
		slog.Int("cities", in.N()),
		slog.String("outcome", metrics.Outcome(r.err)),
		slog.Float64("cost", r.res.Cost),
		slog.Int64("nodes", r.res.Stats.Nodes),
		slog.Duration("elapsed", r.res.Stats.Elapsed))

	return r
}

func (a *app) loadInstance(path string) (*instance.Instance, error) {
	if path != "-" {
		return instance.Load(path)
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	in, err := instance.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	if in.Name == "" {
		in.Name = "stdin"
	}

	return in, nil
}

func printReport(w io.Writer, r report, verify bool) {
	fmt.Fprintf(w, "instance: %s (%d cities)\n", r.in.Name, r.in.N())
	switch {
	case r.res.Found():
		fmt.Fprintf(w, "tour:     %s\n", r.in.FormatTour(r.res.Tour))
		fmt.Fprintf(w, "cost:     %s\n", formatCost(r.res.Cost))
	case errors.Is(r.err, tsp.ErrNoHamiltonianCycle):
		fmt.Fprintln(w, "tour:     no Hamiltonian cycle")
		fmt.Fprintln(w, "cost:     +Inf")
	default:
		fmt.Fprintln(w, "tour:     none")
	}
	fmt.Fprintf(w, "optimal:  %t\n", r.res.Optimal)
	fmt.Fprintf(w, "nodes:    %d (pruned %d, leaves %d)\n",
		r.res.Stats.Nodes, r.res.Stats.Pruned, r.res.Stats.Leaves)
	fmt.Fprintf(w, "elapsed:  %s\n", r.res.Stats.Elapsed)
	if verify && r.err == nil {
		fmt.Fprintf(w, "verified: held-karp %s\n", formatCost(r.hk))
	}
	if r.err != nil && !errors.Is(r.err, tsp.ErrNoHamiltonianCycle) {
		fmt.Fprintf(w, "stopped:  %v\n", r.err)
	}
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func toRun(r report) history.Run {
	return history.Run{
		ID:       r.runID,
		Instance: r.in.Name,
		Cities:   r.in.N(),
		Cost:     r.res.Cost,
		Tour:     r.res.Tour,
		Optimal:  r.res.Optimal,
		Outcome:  metrics.Outcome(r.err),
		Nodes:    r.res.Stats.Nodes,
		Pruned:   r.res.Stats.Pruned,
		Elapsed:  r.res.Stats.Elapsed,
	}
}
