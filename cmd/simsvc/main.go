package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pvpsim/internal/combat"
	"pvpsim/internal/config"
	"pvpsim/internal/matchup"
	"pvpsim/internal/util"
)

func main() {
	var cfgDir, out string
	var seed int64
	var n, workers int
	var debug, timeline, matchups bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file")
	flag.Int64Var(&seed, "seed", 0, "seed override (0 keeps the scenario seed)")
	flag.IntVar(&n, "n", 1, "number of simulations of the scenario")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "batch workers")
	flag.BoolVar(&debug, "debug", false, "log every decision")
	flag.BoolVar(&timeline, "timeline", true, "include the event timeline when n==1")
	flag.BoolVar(&matchups, "matchups", false, "run the roster round robin instead of the scenario")
	flag.Parse()

	log, err := util.NewLogger(debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, cfgDir, out, seed, n, workers, timeline, matchups); err != nil {
		log.Fatal("simsvc failed", zap.Error(err))
	}
}

func run(log *zap.Logger, cfgDir, out string, seed int64, n, workers int, timeline, matchups bool) error {
	gm, sc, roster, err := config.LoadAll(cfgDir)
	if err != nil {
		return err
	}
	dex, err := combat.NewDex(gm)
	if err != nil {
		return err
	}

	if matchups {
		if roster == nil {
			return fmt.Errorf("no roster.yaml in %s", cfgDir)
		}
		settings, err := combat.SettingsFrom(roster.Settings)
		if err != nil {
			return err
		}
		if seed != 0 {
			settings.Seed = seed
		}
		r := &matchup.Runner{Dex: dex, Settings: settings, Workers: workers, Log: log}
		m, err := r.Run(context.Background(), roster.Entrants, roster.Shields)
		if err != nil {
			return err
		}
		return write(log, out, m)
	}

	settings, err := combat.SettingsFrom(sc.Settings)
	if err != nil {
		return err
	}
	if seed != 0 {
		settings.Seed = seed
	}
	build := func() (*combat.Combatant, *combat.Combatant, error) {
		a, err := dex.Build(sc.Combatants[0])
		if err != nil {
			return nil, nil, err
		}
		b, err := dex.Build(sc.Combatants[1])
		return a, b, err
	}

	if n <= 1 {
		a, b, err := build()
		if err != nil {
			return err
		}
		res, err := combat.NewBattle(a, b, combat.WithSettings(settings), combat.WithLogger(log)).Simulate(timeline)
		if err != nil {
			return err
		}
		log.Info("battle done",
			zap.String("a", a.Name()), zap.String("b", b.Name()),
			zap.Int("winner", res.Winner), zap.Int("rating_a", res.RatingA), zap.Int("rating_b", res.RatingB))
		return write(log, out, res)
	}

	results := make([]combat.Result, n)
	g := new(errgroup.Group)
	g.SetLimit(max(workers, 1))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			a, b, err := build()
			if err != nil {
				return err
			}
			s := settings
			s.Seed = util.SubSeed(settings.Seed, i)
			results[i], err = combat.NewBattle(a, b, combat.WithSettings(s)).Simulate(false)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return write(log, out, summarize(results))
}

type summary struct {
	Runs       int     `json:"runs"`
	WinsA      int     `json:"wins_a"`
	WinsB      int     `json:"wins_b"`
	Draws      int     `json:"draws"`
	AvgRatingA float64 `json:"avg_rating_a"`
	AvgRatingB float64 `json:"avg_rating_b"`
	AvgTicks   float64 `json:"avg_ticks"`
}

func summarize(results []combat.Result) summary {
	s := summary{Runs: len(results)}
	for _, r := range results {
		switch r.Winner {
		case 0:
			s.WinsA++
		case 1:
			s.WinsB++
		default:
			s.Draws++
		}
		s.AvgRatingA += float64(r.RatingA)
		s.AvgRatingB += float64(r.RatingB)
		s.AvgTicks += float64(r.Ticks)
	}
	if n := float64(len(results)); n > 0 {
		s.AvgRatingA /= n
		s.AvgRatingB /= n
		s.AvgTicks /= n
	}
	return s
}

func write(log *zap.Logger, out string, v any) error {
	if err := os.WriteFile(out, combat.MarshalPretty(v), 0644); err != nil {
		return err
	}
	log.Info("wrote output", zap.String("path", out))
	return nil
}
