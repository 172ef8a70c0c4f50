/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// scoreEpsilon absorbs float drift from half-point accumulation when
// comparing scores and score differences.
const scoreEpsilon = 1e-9

// Pairing is one board: White has the white pieces.
type Pairing struct {
	White *Player
	Black *Player
}

// quality is the lexicographic evaluation vector for one configuration.
// Fields are compared in declaration order; every field after paired is
// minimized.
type quality struct {
	paired            int
	downfloaters      int
	psd               []float64
	absoluteColor     int
	strongColor       int
	threeConsecutive  int
	repeatFloatCount  int
	repeatFloatScores []float64
	mildColor         int
}

// betterThan reports whether q is strictly preferable to o.
func (q quality) betterThan(o quality) bool {
	if q.paired != o.paired {
		return q.paired > o.paired
	}
	if q.downfloaters != o.downfloaters {
		return q.downfloaters < o.downfloaters
	}
	if c := compareDescFloats(q.psd, o.psd); c != 0 {
		return c < 0
	}
	if q.absoluteColor != o.absoluteColor {
		return q.absoluteColor < o.absoluteColor
	}
	if q.strongColor != o.strongColor {
		return q.strongColor < o.strongColor
	}
	if q.threeConsecutive != o.threeConsecutive {
		return q.threeConsecutive < o.threeConsecutive
	}
	if q.repeatFloatCount != o.repeatFloatCount {
		return q.repeatFloatCount < o.repeatFloatCount
	}
	if c := compareDescFloats(q.repeatFloatScores, o.repeatFloatScores); c != 0 {
		return c < 0
	}
	return q.mildColor < o.mildColor
}

// compareDescFloats compares two descending-sorted lists element-wise and
// returns -1, 0, or 1. When one list is a prefix of the other the shorter
// list compares lower: fewer or smaller differences is always better.
func compareDescFloats(a, b []float64) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i]-scoreEpsilon {
			return -1
		}
		if a[i] > b[i]+scoreEpsilon {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// configuration is a fully evaluated candidate: the boards it produces, the
// players it floats down, and its quality vector.
type configuration struct {
	pairs    []Pairing
	unpaired []*Player
	q        quality
}

// scoreConfiguration builds the quality vector for a set of boards and
// downfloaters. floorScore is the lowest score present in the bracket;
// downfloaters are charged against an artificial opponent one point below
// it, so that floating a higher-scoring player always costs more.
func scoreConfiguration(pairs []Pairing, unpaired []*Player, round int, floorScore float64) quality {
	q := quality{
		paired:       len(pairs),
		downfloaters: len(unpaired),
	}

	for _, pr := range pairs {
		diff := pr.White.Score - pr.Black.Score
		if diff < 0 {
			diff = -diff
		}
		q.psd = append(q.psd, diff)
		q.tallyColor(pr.White, White)
		q.tallyColor(pr.Black, Black)
	}
	artificial := floorScore - 1
	for _, p := range unpaired {
		q.psd = append(q.psd, p.Score-artificial)
		if c := p.recentFloatCount(round); c > 0 {
			q.repeatFloatCount += c
			q.repeatFloatScores = append(q.repeatFloatScores, p.Score)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(q.psd)))
	sort.Sort(sort.Reverse(sort.Float64Slice(q.repeatFloatScores)))
	return q
}

func (q *quality) tallyColor(p *Player, assigned Color) {
	if pref := p.ColorPreference(); pref != NoColor && pref != assigned {
		switch p.PrefStrength() {
		case PrefAbsolute:
			q.absoluteColor++
		case PrefStrong:
			q.strongColor++
		case PrefMild:
			q.mildColor++
		}
	}
	if p.repeatedColor() == assigned {
		q.threeConsecutive++
	}
}

// evaluateSplit pairs s1[i] against s2[i] board by board, sending both
// players of any incompatible proposal (and any S2 surplus) to the
// downfloater list. It never fails outright: the quality vector decides.
func evaluateSplit(s1, s2 []*Player, prev PreviousMatches, round, totalRounds int, floorScore float64) *configuration {
	cfg := &configuration{}
	n := len(s1)
	if len(s2) < n {
		n = len(s2)
	}
	for i := 0; i < n; i++ {
		if !meetsAbsoluteCriteria(s1[i], s2[i], prev, round, totalRounds) {
			cfg.unpaired = append(cfg.unpaired, s1[i], s2[i])
			continue
		}
		w, b := assignColors(s1[i], s2[i])
		cfg.pairs = append(cfg.pairs, Pairing{White: w, Black: b})
	}
	cfg.unpaired = append(cfg.unpaired, s1[n:]...)
	cfg.unpaired = append(cfg.unpaired, s2[n:]...)
	cfg.q = scoreConfiguration(cfg.pairs, cfg.unpaired, round, floorScore)
	return cfg
}

// bestHomogeneous searches the candidate sequence for the given same-score
// players (in BSN order) and returns the best configuration found. The
// first candidate achieving a given quality wins ties, preserving the FIDE
// generation order.
func bestHomogeneous(players []*Player, prev PreviousMatches, round, totalRounds int, floorScore float64) *configuration {
	switch len(players) {
	case 0:
		return &configuration{}
	case 1:
		cfg := &configuration{unpaired: []*Player{players[0]}}
		cfg.q = scoreConfiguration(nil, cfg.unpaired, round, floorScore)
		return cfg
	}

	var best *configuration
	for _, c := range generateHomogeneous(players) {
		cfg := evaluateSplit(c.s1, c.s2, prev, round, totalRounds, floorScore)
		if best == nil || cfg.q.betterThan(best.q) {
			best = cfg
		}
	}
	return best
}

// evaluateHeterogeneous scores a candidate for a bracket containing MDPs.
// Every MDP in S1 must be paired against its S2 counterpart or the
// candidate is rejected outright (all-or-nothing, FIDE Article 3.3); the
// remaining residents are then paired as a homogeneous remainder and the
// limbo MDPs float down.
func evaluateHeterogeneous(c candidate, prev PreviousMatches, round, totalRounds int, floorScore float64) *configuration {
	cfg := &configuration{}
	for i, mdp := range c.s1 {
		if i >= len(c.s2) {
			return nil
		}
		if !meetsAbsoluteCriteria(mdp, c.s2[i], prev, round, totalRounds) {
			return nil
		}
		w, b := assignColors(mdp, c.s2[i])
		cfg.pairs = append(cfg.pairs, Pairing{White: w, Black: b})
	}

	remainder := c.s2[len(c.s1):]
	sub := bestHomogeneous(remainder, prev, round, totalRounds, floorScore)
	cfg.pairs = append(cfg.pairs, sub.pairs...)
	cfg.unpaired = append(cfg.unpaired, sub.unpaired...)
	cfg.unpaired = append(cfg.unpaired, c.limbo...)
	cfg.q = scoreConfiguration(cfg.pairs, cfg.unpaired, round, floorScore)
	return cfg
}

// bestForBracket pairs one bracket, dispatching on whether it contains
// moved-down players.
func bestForBracket(b *bracket, prev PreviousMatches, round, totalRounds int) *configuration {
	floorScore := b.score
	for _, p := range b.players() {
		if p.Score < floorScore {
			floorScore = p.Score
		}
	}

	if !b.heterogeneous() {
		return bestHomogeneous(b.players(), prev, round, totalRounds, floorScore)
	}

	var best *configuration
	for _, c := range generateHeterogeneous(b) {
		cfg := evaluateHeterogeneous(c, prev, round, totalRounds, floorScore)
		if cfg == nil {
			continue
		}
		if best == nil || cfg.q.betterThan(best.q) {
			best = cfg
		}
	}
	if best == nil {
		// No candidate could seat every MDP; the whole bracket is
		// re-examined with the MDPs treated as residents, and if even
		// that fails everyone floats.
		all := clonePlayers(b.players())
		sortByRank(all)
		best = bestHomogeneous(all, prev, round, totalRounds, floorScore)
	}
	return best
}
