/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package swiss implements FIDE Dutch-system Swiss pairing: score-group
// brackets with moved-down players, candidate search over transpositions
// and exchanges, lexicographic quality selection, and Article 5 color
// assignment. The search is time-boxed; when the budget is exhausted the
// remaining players are paired by a greedy fallback.
package swiss

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidInput is wrapped by every validation failure from
// ComputeRoundPairings.
var ErrInvalidInput = errors.New("invalid pairing input")

// ByeSelector picks the bye recipient from the active players when the
// count is odd. Returning nil declines the bye; one player is then left
// unpaired instead. Candidates arrive in rank order.
type ByeSelector func(candidates []*Player) *Player

// RepeatConfirmer is consulted before two players who have already met are
// paired again. This only happens in last-resort situations where no
// repeat-free pairing exists; a nil confirmer refuses all repeats.
type RepeatConfirmer func(p1, p2 *Player) bool

// Result is one round's output. Pairings are in bracket order, top score
// group first. Unpaired players could not be matched without violating an
// absolute criterion (or an unconfirmed repeat).
type Result struct {
	Pairings []Pairing
	Bye      *Player
	Unpaired []*Player
}

// Engine computes pairings for successive rounds of one Swiss section.
type Engine struct {
	totalRounds int
	log         zerolog.Logger
	now         func() time.Time
	budget      func(numPlayers int) time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes the engine's diagnostics to the given logger. The
// default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithClock substitutes the time source used for budget enforcement.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithBudget substitutes the search budget curve.
func WithBudget(budget func(numPlayers int) time.Duration) Option {
	return func(e *Engine) {
		e.budget = budget
	}
}

// NewEngine returns an engine for a section scheduled for totalRounds
// rounds. totalRounds is needed to recognize the final round, which
// relaxes the same-color-preference restriction for topscorers.
func NewEngine(totalRounds int, opts ...Option) *Engine {
	e := &Engine{
		totalRounds: totalRounds,
		log:         zerolog.Nop(),
		now:         time.Now,
		budget:      defaultBudget,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// defaultBudget scales the search deadline with field size, clamped to
// [15s, 60s].
func defaultBudget(numPlayers int) time.Duration {
	d := time.Duration(numPlayers) * 500 * time.Millisecond
	if d < 15*time.Second {
		d = 15 * time.Second
	}
	if d > 60*time.Second {
		d = 60 * time.Second
	}
	return d
}

// ComputeRoundPairings pairs the active players for the given round
// (1-based). prev holds every game already played; it is only read. byeFn
// may be nil, in which case DefaultByeSelector is used when the active
// count is odd. confirm may be nil; repeats are then never allowed.
//
// Players' FloatHistory is updated for any player who floats down a score
// group or goes unpaired. All other player state is left untouched.
func (e *Engine) ComputeRoundPairings(players []*Player, round int,
	prev PreviousMatches, byeFn ByeSelector,
	confirm RepeatConfirmer) (*Result, error) {

	if round < 1 {
		return nil, fmt.Errorf("%w: round %v", ErrInvalidInput, round)
	}
	if e.totalRounds > 0 && round > e.totalRounds {
		return nil, fmt.Errorf("%w: round %v of %v", ErrInvalidInput,
			round, e.totalRounds)
	}
	if prev == nil {
		prev = NewPreviousMatches()
	}

	active := make([]*Player, 0, len(players))
	seen := make(map[string]bool)
	for _, p := range players {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: player %q has no id",
				ErrInvalidInput, p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate player id %v",
				ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
		if p.Score < 0 {
			return nil, fmt.Errorf("%w: player %v has negative score",
				ErrInvalidInput, p.ID)
		}
		p.resetRoundState()
		if p.Active {
			active = append(active, p)
		}
	}
	if len(active) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 active players, have %v",
			ErrInvalidInput, len(active))
	}

	sortByRank(active)

	result := &Result{}
	if len(active)%2 == 1 {
		if byeFn == nil {
			byeFn = DefaultByeSelector
		}
		if bye := byeFn(active); bye != nil {
			result.Bye = bye
			active = removePlayer(active, bye)
			e.log.Debug().Str("player", bye.Name).Int("round", round).
				Msg("bye assigned")
		}
	}

	if round == 1 {
		var leftover *Player
		result.Pairings, leftover = pairFirstRound(active)
		if leftover != nil {
			result.Unpaired = append(result.Unpaired, leftover)
		}
		return result, nil
	}

	start := e.now()
	deadline := start.Add(e.budget(len(active)))

	brackets := buildBrackets(active)
	var carry []*Player
	for i, b := range brackets {
		if e.now().After(deadline) {
			e.log.Warn().Int("round", round).
				Dur("budget", e.budget(len(active))).
				Msg("pairing budget exhausted; using greedy fallback")
			remaining := clonePlayers(carry)
			for _, rb := range brackets[i:] {
				remaining = append(remaining, rb.residents...)
			}
			pairs, unpaired := greedyPair(remaining, prev, round,
				e.totalRounds, confirm)
			result.Pairings = append(result.Pairings, pairs...)
			markUnpaired(result, unpaired, round)
			return result, nil
		}

		b.movedDown = carry
		b.assignBSNs()
		cfg := bestForBracket(b, prev, round, e.totalRounds)
		result.Pairings = append(result.Pairings, cfg.pairs...)
		carry = cfg.unpaired
		for _, p := range carry {
			p.recordFloat(round)
		}
	}

	if len(carry) > 0 {
		pairs, unpaired := greedyPair(carry, prev, round, e.totalRounds,
			confirm)
		result.Pairings = append(result.Pairings, pairs...)
		markUnpaired(result, unpaired, round)
	}

	return result, nil
}

func markUnpaired(result *Result, unpaired []*Player, round int) {
	for _, p := range unpaired {
		p.recordFloat(round)
	}
	result.Unpaired = append(result.Unpaired, unpaired...)
}

// pairFirstRound pairs by rating, rating ties by pairing number: rank i
// plays rank i+n/2, with the higher ranked player taking white on odd
// boards and black on even boards. With an odd count (bye declined by the
// caller) the lowest rated player is returned unpaired.
func pairFirstRound(players []*Player) ([]Pairing, *Player) {
	ranked := clonePlayers(players)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].PairingNumber < ranked[j].PairingNumber
	})

	var leftover *Player
	if len(ranked)%2 == 1 {
		leftover = ranked[len(ranked)-1]
		ranked = ranked[:len(ranked)-1]
	}

	half := len(ranked) / 2
	pairs := make([]Pairing, 0, half)
	for i := 0; i < half; i++ {
		top, bottom := ranked[i], ranked[half+i]
		if i%2 == 0 {
			pairs = append(pairs, Pairing{White: top, Black: bottom})
		} else {
			pairs = append(pairs, Pairing{White: bottom, Black: top})
		}
	}
	return pairs, leftover
}

// DefaultByeSelector implements the standard bye rule: a player who has
// already had a bye is skipped while anyone else remains, and among the
// eligible the lowest score, then lowest rating, then first name
// alphabetically is chosen. It never returns nil for a non-empty candidate
// list.
func DefaultByeSelector(candidates []*Player) *Player {
	if len(candidates) == 0 {
		return nil
	}
	eligible := make([]*Player, 0, len(candidates))
	for _, p := range candidates {
		if !p.HasReceivedBye {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		eligible = candidates
	}

	best := eligible[0]
	for _, p := range eligible[1:] {
		if byeBefore(p, best) {
			best = p
		}
	}
	return best
}

func byeBefore(p, q *Player) bool {
	if p.Score != q.Score {
		return p.Score < q.Score
	}
	if p.Rating != q.Rating {
		return p.Rating < q.Rating
	}
	if p.Name != q.Name {
		return p.Name < q.Name
	}
	return p.PairingNumber < q.PairingNumber
}

func removePlayer(players []*Player, target *Player) []*Player {
	out := players[:0]
	for _, p := range players {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}
