package combat

import "errors"

var (
	ErrUnassigned     = errors.New("combatant slot not assigned")
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
	ErrNoBasicMove    = errors.New("combatant has no basic move")
	ErrIllegalMove    = errors.New("move not in species movepool")
	ErrBadMove        = errors.New("invalid move definition")
)
