/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package tournament manages a multi-section Swiss event around the swiss
// engine: player rosters, round pairing, result recording, standings, and
// the aligned text output used for posting.
package tournament

import (
	"fmt"
	"sort"

	"github.com/rs/xid"

	"github.com/mikeb26/swisspair/internal"
	"github.com/mikeb26/swisspair/swiss"
)

// GameResult is one board's outcome from White's perspective.
type GameResult int

const (
	WhiteWins GameResult = iota
	BlackWins
	Draw
)

func (g GameResult) String() string {
	switch g {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	}
	return "½-½"
}

func (g GameResult) points() (white, black float64) {
	switch g {
	case WhiteWins:
		return 1, 0
	case BlackWins:
		return 0, 1
	}
	return 0.5, 0.5
}

// Round is one section's pairings for a single round, plus the per-board
// results as they come in.
type Round struct {
	Number   int
	Pairings []swiss.Pairing
	Bye      *swiss.Player
	Unpaired []*swiss.Player

	recorded []bool
}

// Section is one group of players paired independently of the event's
// other sections.
type Section struct {
	Name        string
	TotalRounds int

	players []*swiss.Player
	byID    map[string]*swiss.Player
	prev    swiss.PreviousMatches
	rounds  []*Round
	current *Round
	engine  *swiss.Engine
}

// NewSection creates an empty section scheduled for totalRounds rounds.
// Engine options (logger, budget, clock) pass through to the pairing
// engine.
func NewSection(name string, totalRounds int, opts ...swiss.Option) *Section {
	return &Section{
		Name:        name,
		TotalRounds: totalRounds,
		byID:        make(map[string]*swiss.Player),
		prev:        swiss.NewPreviousMatches(),
		engine:      swiss.NewEngine(totalRounds, opts...),
	}
}

// AddPlayer registers a player and returns the roster entry. Registration
// closes once the first round is paired.
func (s *Section) AddPlayer(name string, rating int) (*swiss.Player, error) {
	if len(s.rounds) > 0 || s.current != nil {
		return nil, fmt.Errorf("section %v: registration closed after round 1 pairing",
			s.Name)
	}
	p := &swiss.Player{
		ID:     xid.New().String(),
		Name:   internal.NormalizeName(name),
		Rating: rating,
		Active: true,
	}
	s.players = append(s.players, p)
	s.byID[p.ID] = p
	return p, nil
}

// Players returns the roster in registration order.
func (s *Section) Players() []*swiss.Player {
	out := make([]*swiss.Player, len(s.players))
	copy(out, s.players)
	return out
}

// Player looks up a roster entry by ID.
func (s *Section) Player(id string) (*swiss.Player, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Withdraw removes a player from future pairings. Results already recorded
// stand.
func (s *Section) Withdraw(id string) error {
	p, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("section %v: no such player %v", s.Name, id)
	}
	p.Active = false
	return nil
}

// Reinstate returns a withdrawn player to the pairing pool.
func (s *Section) Reinstate(id string) error {
	p, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("section %v: no such player %v", s.Name, id)
	}
	p.Active = true
	return nil
}

// CurrentRound returns the round awaiting results, or the last completed
// round when none is pending.
func (s *Section) CurrentRound() *Round {
	if s.current != nil {
		return s.current
	}
	if n := len(s.rounds); n > 0 {
		return s.rounds[n-1]
	}
	return nil
}

// NextRoundNumber is the 1-based number of the round PairNextRound would
// produce.
func (s *Section) NextRoundNumber() int {
	return len(s.rounds) + 1
}

// PairNextRound computes the next round's pairings. The previous round must
// be complete. byeFn and confirm follow the engine's semantics and may be
// nil.
func (s *Section) PairNextRound(byeFn swiss.ByeSelector,
	confirm swiss.RepeatConfirmer) (*Round, error) {

	if s.current != nil {
		return nil, fmt.Errorf("section %v: round %v is not complete",
			s.Name, s.current.Number)
	}
	round := s.NextRoundNumber()
	if s.TotalRounds > 0 && round > s.TotalRounds {
		return nil, fmt.Errorf("section %v: all %v rounds already paired",
			s.Name, s.TotalRounds)
	}
	if round == 1 {
		s.assignPairingNumbers()
	}

	result, err := s.engine.ComputeRoundPairings(s.players, round, s.prev,
		byeFn, confirm)
	if err != nil {
		return nil, fmt.Errorf("section %v: %w", s.Name, err)
	}

	s.current = &Round{
		Number:   round,
		Pairings: result.Pairings,
		Bye:      result.Bye,
		Unpaired: result.Unpaired,
		recorded: make([]bool, len(result.Pairings)),
	}
	return s.current, nil
}

// assignPairingNumbers numbers the roster by rating (FIDE initial order).
func (s *Section) assignPairingNumbers() {
	ranked := make([]*swiss.Player, len(s.players))
	copy(ranked, s.players)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].Name < ranked[j].Name
	})
	for i, p := range ranked {
		p.PairingNumber = i + 1
	}
}

// RecordResult stores the outcome of one board of the pending round,
// updating both players' scores and color histories and the accumulated
// match set.
func (s *Section) RecordResult(whiteID, blackID string, result GameResult) error {
	if s.current == nil {
		return fmt.Errorf("section %v: no round awaiting results", s.Name)
	}
	for i, pr := range s.current.Pairings {
		if pr.White.ID != whiteID || pr.Black.ID != blackID {
			continue
		}
		if s.current.recorded[i] {
			return fmt.Errorf("section %v: board %v already recorded",
				s.Name, i+1)
		}
		wpts, bpts := result.points()
		pr.White.Score += wpts
		pr.Black.Score += bpts
		pr.White.ColorHistory = append(pr.White.ColorHistory, swiss.White)
		pr.Black.ColorHistory = append(pr.Black.ColorHistory, swiss.Black)
		s.prev.Add(whiteID, blackID)
		s.current.recorded[i] = true
		return nil
	}
	return fmt.Errorf("section %v: no pending board %v vs %v", s.Name,
		whiteID, blackID)
}

// CompleteRound finalizes the pending round: every board must be recorded,
// the bye point is awarded, and unpaired players get a bye-less history
// entry so color bookkeeping stays one entry per round.
func (s *Section) CompleteRound() error {
	if s.current == nil {
		return fmt.Errorf("section %v: no round awaiting results", s.Name)
	}
	for i, done := range s.current.recorded {
		if !done {
			pr := s.current.Pairings[i]
			return fmt.Errorf("section %v: board %v (%v vs %v) has no result",
				s.Name, i+1, pr.White.Name, pr.Black.Name)
		}
	}

	if bye := s.current.Bye; bye != nil {
		bye.Score += 1
		bye.HasReceivedBye = true
		bye.ColorHistory = append(bye.ColorHistory, swiss.NoColor)
	}
	for _, p := range s.current.Unpaired {
		p.ColorHistory = append(p.ColorHistory, swiss.NoColor)
	}

	s.rounds = append(s.rounds, s.current)
	s.current = nil
	return nil
}

// Standings returns the roster in standings order: score, then rating,
// then name.
func (s *Section) Standings() []*swiss.Player {
	out := make([]*swiss.Player, len(s.players))
	copy(out, s.players)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Name < out[j].Name
	})
	return out
}
