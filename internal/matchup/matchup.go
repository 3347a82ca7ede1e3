package matchup

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pvpsim/internal/combat"
	"pvpsim/internal/config"
	"pvpsim/internal/util"
)

// Cell is one battle of the round robin.
type Cell struct {
	A       int `json:"a"`
	B       int `json:"b"`
	Shields int `json:"shields"`
	Winner  int `json:"winner"`
	RatingA int `json:"rating_a"`
	Ticks   int `json:"ticks"`
}

type Matrix struct {
	Labels  []string           `json:"labels"`
	Shields []int              `json:"shields"`
	Ratings map[string][][]int `json:"ratings"` // shield scenario -> [a][b] rating for a
	Average []float64          `json:"average"` // mean rating per entrant over every battle it fought
	Cells   []Cell             `json:"-"`
}

type Runner struct {
	Dex      *combat.Dex
	Settings combat.Settings
	Workers  int
	Log      *zap.Logger
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.NumCPU()
}

// Run fights every ordered pair of distinct entrants once per shield
// scenario, with both sides starting on that many shields.
func (r *Runner) Run(ctx context.Context, entrants []config.CombatantDef, shields []int) (*Matrix, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	if len(shields) == 0 {
		shields = []int{0, 1, 2}
	}
	base := make([]*combat.Combatant, len(entrants))
	labels := make([]string, len(entrants))
	for i, def := range entrants {
		c, err := r.Dex.Build(def)
		if err != nil {
			return nil, fmt.Errorf("entrant %d: %w", i, err)
		}
		base[i] = c
		labels[i] = label(def, i, entrants)
	}

	var cells []Cell
	for _, s := range shields {
		if s < 0 || s > combat.DefaultShields {
			return nil, fmt.Errorf("shield scenario %d out of range", s)
		}
		for a := range base {
			for b := range base {
				if a != b {
					cells = append(cells, Cell{A: a, B: b, Shields: s})
				}
			}
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i := range cells {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cell := &cells[i]
			a, b := base[cell.A].Clone(), base[cell.B].Clone()
			a.StartShields, b.StartShields = cell.Shields, cell.Shields
			settings := r.Settings
			settings.Seed = util.SubSeed(r.Settings.Seed, i)
			res, err := combat.NewBattle(a, b, combat.WithSettings(settings)).Simulate(false)
			if err != nil {
				return err
			}
			cell.Winner, cell.RatingA, cell.Ticks = res.Winner, res.RatingA, res.Ticks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := &Matrix{
		Labels:  labels,
		Shields: shields,
		Ratings: map[string][][]int{},
		Average: make([]float64, len(base)),
		Cells:   cells,
	}
	counts := make([]int, len(base))
	for _, s := range shields {
		grid := make([][]int, len(base))
		for i := range grid {
			grid[i] = make([]int, len(base))
			grid[i][i] = 500
		}
		m.Ratings[fmt.Sprint(s)] = grid
	}
	for _, c := range cells {
		m.Ratings[fmt.Sprint(c.Shields)][c.A][c.B] = c.RatingA
		m.Average[c.A] += float64(c.RatingA)
		counts[c.A]++
	}
	for i, n := range counts {
		if n > 0 {
			m.Average[i] /= float64(n)
		}
	}
	log.Info("matchups complete", zap.Int("entrants", len(base)), zap.Int("battles", len(cells)))
	return m, nil
}

func label(def config.CombatantDef, i int, all []config.CombatantDef) string {
	name := def.Species
	if def.Corrupted {
		name += "_shadow"
	}
	dup := 0
	for j := 0; j < i; j++ {
		if all[j].Species == def.Species && all[j].Corrupted == def.Corrupted {
			dup++
		}
	}
	if dup > 0 {
		name = fmt.Sprintf("%s#%d", name, dup+1)
	}
	return name
}
