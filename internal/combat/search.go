package combat

import (
	"sync"

	"go.uber.org/zap"
)

// SearchState is one node of the knockout search: where the fight stands
// after a sequence of specials, and which slot that sequence opened with.
type SearchState struct {
	Energy     int
	OppHP      int
	Tick       int
	OppShields int
	AtkStage   int
	Chance     float64
	First      int
}

func (s SearchState) dominates(o SearchState) bool {
	return s.OppHP <= o.OppHP && s.Energy >= o.Energy && s.AtkStage >= o.AtkStage && s.OppShields <= o.OppShields
}

type searchQueue struct {
	states []SearchState
	head   int
}

var queuePool = sync.Pool{
	New: func() any { return &searchQueue{states: make([]SearchState, 0, 64)} },
}

func (q *searchQueue) size() int { return len(q.states) - q.head }

func (q *searchQueue) reset() {
	q.states = q.states[:0]
	q.head = 0
}

// before orders states by tick, then energy descending, then opponent HP.
func (s SearchState) before(o SearchState) bool {
	if s.Tick != o.Tick {
		return s.Tick < o.Tick
	}
	if s.Energy != o.Energy {
		return s.Energy > o.Energy
	}
	return s.OppHP < o.OppHP
}

// push inserts s in order and drops it if a queued state that is not later
// already dominates it.
func (q *searchQueue) push(s SearchState) {
	for j := q.head; j < len(q.states) && q.states[j].Tick <= s.Tick; j++ {
		if q.states[j].dominates(s) {
			return
		}
	}
	i := q.head
	for i < len(q.states) && !s.before(q.states[i]) {
		i++
	}
	q.states = append(q.states, SearchState{})
	copy(q.states[i+1:], q.states[i:])
	q.states[i] = s
}

func (q *searchQueue) pop() SearchState {
	s := q.states[q.head]
	q.head++
	return s
}

// search explores special-move sequences breadth-first by elapsed ticks and
// returns the opening slot of the fastest knockout line. The queue is
// bounded by the env's search limit; hitting it without a knockout yields
// no plan.
func (d *decider) search() (int, bool) {
	limit := d.env.searchLimit()
	q := queuePool.Get().(*searchQueue)
	q.reset()
	defer queuePool.Put(q)

	q.push(SearchState{
		Energy:     d.self.Energy,
		OppHP:      d.opp.HP,
		OppShields: d.opp.Shields,
		AtkStage:   d.self.Stages[0],
		Chance:     1,
		First:      -1,
	})
	var best SearchState
	found := false
	explored := 0
	for q.size() > 0 {
		if explored >= limit {
			d.log.Debug("search limit reached", zap.Int("actor", d.self.Index), zap.Int("explored", explored))
			break
		}
		explored++
		cur := q.pop()
		if cur.OppHP <= 0 {
			if !found || cur.Chance > best.Chance {
				best, found = cur, true
			}
			if cur.Chance >= 1 {
				break
			}
			continue
		}
		for slot, m := range d.self.Specials {
			d.expand(q, cur, slot, m)
		}
	}
	if !found || best.First < 0 {
		return -1, false
	}
	return best.First, true
}

func (d *decider) expand(q *searchQueue, cur SearchState, slot int, m *Move) {
	next := cur
	if next.First < 0 {
		next.First = slot
	}
	defStage := d.opp.Stages[1]
	if cur.Energy >= m.EnergyCost {
		next.Energy = cur.Energy - m.EnergyCost
		next.Tick = cur.Tick + 1
	} else {
		gain := d.self.Basic.EnergyGain
		if gain <= 0 {
			return
		}
		k := ceilDiv(m.EnergyCost-cur.Energy, gain)
		next.Energy = min(MaxEnergy, cur.Energy+k*gain) - m.EnergyCost
		next.Tick = cur.Tick + k*d.self.Basic.Turns + 1
		next.OppHP -= k * damageAt(d.self, d.opp, d.self.Basic, 1, cur.AtkStage, defStage)
	}
	if next.OppShields > 0 {
		next.OppShields--
		next.OppHP -= ShieldedDamage
	} else {
		next.OppHP -= damageAt(d.self, d.opp, m, 1, cur.AtkStage, defStage)
	}

	b := m.Buff
	if b == nil || b.Target != BuffSelf || b.Stages[0] == 0 {
		q.push(next)
		return
	}
	buffed := next
	buffed.AtkStage = clampInt(cur.AtkStage+b.Stages[0], -MaxStage, MaxStage)
	if b.Chance >= 1 {
		q.push(buffed)
		return
	}
	q.push(next)
	if b.Chance > 0 {
		buffed.Chance = cur.Chance * b.Chance
		q.push(buffed)
	}
}
