package combat

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"pvpsim/internal/config"
)

type Mode int

const (
	ModeSimulate Mode = iota
	ModeAdversarial
)

type BuffMode int

const (
	BuffDeterministic BuffMode = iota
	BuffRandom
	BuffAlways
)

type Policy int

const (
	PolicyOptimal Policy = iota
	PolicyRandom
)

type Settings struct {
	BuffMode       BuffMode
	Seed           int64
	Mode           Mode
	SearchLimit    int
	RandomTieBreak bool
	Policy         Policy
}

func DefaultSettings() Settings {
	return Settings{SearchLimit: DefaultSearchLimit}
}

func SettingsFrom(def config.SettingsDef) (Settings, error) {
	s := DefaultSettings()
	s.Seed = def.Seed
	s.RandomTieBreak = def.RandomTieBreak
	if def.SearchLimit > 0 {
		s.SearchLimit = def.SearchLimit
	}
	switch def.BuffMode {
	case "", "deterministic":
	case "random":
		s.BuffMode = BuffRandom
	case "always":
		s.BuffMode = BuffAlways
	default:
		return s, fmt.Errorf("unknown buff mode %q", def.BuffMode)
	}
	switch def.Mode {
	case "", "simulate":
	case "adversarial":
		s.Mode = ModeAdversarial
	default:
		return s, fmt.Errorf("unknown mode %q", def.Mode)
	}
	switch def.Policy {
	case "", "optimal":
	case "random":
		s.Policy = PolicyRandom
	default:
		return s, fmt.Errorf("unknown policy %q", def.Policy)
	}
	return s, nil
}

// Action is a committed move for one tick. Slot is -1 for the basic move.
type Action struct {
	Actor int
	Kind  MoveKind
	Slot  int
	Tick  int
}

// Env is the context handed to every decision.
type Env struct {
	Tick           int
	Time           int
	Mode           Mode
	Rng            *rand.Rand
	Log            *zap.Logger
	SearchLimit    int
	RandomTieBreak bool
}

var nopLogger = zap.NewNop()

func (e *Env) logger() *zap.Logger {
	if e == nil || e.Log == nil {
		return nopLogger
	}
	return e.Log
}

func (e *Env) searchLimit() int {
	if e == nil || e.SearchLimit <= 0 {
		return DefaultSearchLimit
	}
	return e.SearchLimit
}

func (e *Env) mode() Mode {
	if e == nil {
		return ModeSimulate
	}
	return e.Mode
}
