/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"math/rand"
	"sort"
)

// candidate is one S1/S2 arrangement to evaluate: S1[i] is proposed against
// S2[i]. For heterogeneous brackets limbo carries the excess MDPs that must
// float down regardless of the outcome.
type candidate struct {
	s1    []*Player
	s2    []*Player
	limbo []*Player
}

// fullEnumeration marks a ladder rung where every S2 permutation is tried.
const fullEnumeration = -1

// budgetRung caps candidate generation for brackets up to maxSize players.
// The caps shrink as brackets grow; this trades FIDE optimality for bounded
// latency on large fields and is exercised directly by the budget tests.
type budgetRung struct {
	maxSize        int
	transpositions int
	exchanges      int
}

var budgetLadder = []budgetRung{
	{maxSize: 6, transpositions: fullEnumeration, exchanges: 50},
	{maxSize: 12, transpositions: 50, exchanges: 30},
	{maxSize: 20, transpositions: 25, exchanges: 15},
	{maxSize: int(^uint(0) >> 1), transpositions: 10, exchanges: 10},
}

// budgetFor returns the generation caps for a bracket of the given size.
func budgetFor(bracketSize int) budgetRung {
	for _, rung := range budgetLadder {
		if bracketSize <= rung.maxSize {
			return rung
		}
	}
	return budgetLadder[len(budgetLadder)-1]
}

// maxCandidates bounds the total number of configurations generated for a
// bracket of the given size: the original split, the transposition budget,
// and the exchange budget. A full-enumeration rung is bounded by |S2|!.
func maxCandidates(bracketSize int) int {
	rung := budgetFor(bracketSize)
	trans := rung.transpositions
	if trans == fullEnumeration {
		trans = factorial(bracketSize - bracketSize/2)
	}
	return 1 + trans + rung.exchanges
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// generateHomogeneous produces the candidate sequence for a bracket whose
// players all share one score, in the FIDE-mandated order: the original
// S1/S2 split, then S2 transpositions, then resident exchanges. Players must
// already be in BSN order.
func generateHomogeneous(players []*Player) []candidate {
	n1 := len(players) / 2
	s1 := players[:n1]
	s2 := players[n1:]
	rung := budgetFor(len(players))

	candidates := []candidate{{s1: s1, s2: s2}}
	for _, variant := range transposeS2(s2, n1, rung.transpositions) {
		candidates = append(candidates, candidate{s1: s1, s2: variant})
	}
	candidates = append(candidates, residentExchanges(s1, s2, rung.exchanges)...)

	return candidates
}

// generateHeterogeneous produces the candidate sequence for a bracket with
// MDPs: S1 holds the m1 pairable MDPs, S2 the residents, limbo the excess
// MDPs. The order mirrors the homogeneous case, with S1-limbo exchanges in
// place of resident exchanges.
func generateHeterogeneous(b *bracket) []candidate {
	all := b.players()
	m0, m1 := b.m0(), b.m1()
	s1 := all[:m1]
	s2 := make([]*Player, len(b.residents))
	copy(s2, b.residents)
	var limbo []*Player
	if m0 > m1 {
		limbo = all[m1:m0]
	}
	rung := budgetFor(b.size())

	candidates := []candidate{{s1: s1, s2: s2, limbo: limbo}}
	for _, variant := range transposeS2(s2, m1, rung.transpositions) {
		candidates = append(candidates, candidate{s1: s1, s2: variant, limbo: limbo})
	}
	if len(limbo) > 0 {
		for _, ex := range limboExchanges(s1, limbo, rung.exchanges) {
			candidates = append(candidates, candidate{s1: ex.s1, s2: s2, limbo: ex.limbo})
		}
	}

	return candidates
}

// transposeS2 enumerates reorderings of S2, excluding the original order.
// Below the full-enumeration threshold every permutation is produced in
// ascending lexicographic order of the BSNs occupying the first
// min(n1, |S2|) positions (FIDE Article 4.2); above it a deterministic set
// of structured patterns plus a seeded swap sample is produced, capped at
// limit.
func transposeS2(s2 []*Player, n1 int, limit int) [][]*Player {
	if len(s2) < 2 {
		return nil
	}
	if limit == fullEnumeration {
		return enumerateTranspositions(s2, n1)
	}
	return heuristicTranspositions(s2, n1, limit)
}

// enumerateTranspositions yields every distinct ordering of the first
// min(n1, |S2|) positions in lexicographic BSN order. Orderings that agree
// on those positions pair identically, so they are deduplicated by prefix.
func enumerateTranspositions(s2 []*Player, n1 int) [][]*Player {
	prefix := n1
	if len(s2) < prefix {
		prefix = len(s2)
	}

	// S2 arrives in ascending BSN order, so repeated next-permutation
	// steps walk the orderings lexicographically.
	work := make([]*Player, len(s2))
	copy(work, s2)

	var out [][]*Player
	seen := map[string]bool{signature(work[:prefix]): true}
	for nextPermutation(work) {
		sig := signature(work[:prefix])
		if seen[sig] {
			continue
		}
		seen[sig] = true
		variant := make([]*Player, len(work))
		copy(variant, work)
		out = append(out, variant)
	}

	return out
}

// nextPermutation advances players to the next lexicographic ordering by
// BSN, returning false once the ordering is the last one.
func nextPermutation(players []*Player) bool {
	i := len(players) - 2
	for i >= 0 && players[i].bsn >= players[i+1].bsn {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(players) - 1
	for players[j].bsn <= players[i].bsn {
		j--
	}
	players[i], players[j] = players[j], players[i]
	for l, r := i+1, len(players)-1; l < r; l, r = l+1, r-1 {
		players[l], players[r] = players[r], players[l]
	}
	return true
}

// heuristicTranspositions produces a bounded, deterministic sample of S2
// reorderings for brackets too large to enumerate: reversal, rotations,
// adjacent swaps, a half-interleave, score/rating resorts, then seeded
// random swap patterns up to the cap.
func heuristicTranspositions(s2 []*Player, n1 int, limit int) [][]*Player {
	n := len(s2)
	seen := map[string]bool{signature(s2): true}
	var out [][]*Player
	add := func(variant []*Player) bool {
		if len(out) >= limit {
			return false
		}
		sig := signature(variant)
		if seen[sig] {
			return true
		}
		seen[sig] = true
		out = append(out, variant)
		return len(out) < limit
	}

	reversed := make([]*Player, n)
	for i, p := range s2 {
		reversed[n-1-i] = p
	}
	if !add(reversed) {
		return out
	}

	for shift := 1; shift < n && shift <= 5; shift++ {
		rotated := make([]*Player, 0, n)
		rotated = append(rotated, s2[shift:]...)
		rotated = append(rotated, s2[:shift]...)
		if !add(rotated) {
			return out
		}
	}

	for i := 0; i+1 < n && i < 10; i += 2 {
		swapped := make([]*Player, n)
		copy(swapped, s2)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		if !add(swapped) {
			return out
		}
	}

	if n >= 4 {
		mid := n / 2
		interleaved := make([]*Player, 0, n)
		for i := 0; i < mid; i++ {
			interleaved = append(interleaved, s2[i])
			if mid+i < n {
				interleaved = append(interleaved, s2[mid+i])
			}
		}
		if n%2 == 1 {
			interleaved = append(interleaved, s2[n-1])
		}
		if !add(interleaved) {
			return out
		}
	}

	byScore := make([]*Player, n)
	copy(byScore, s2)
	sortByRank(byScore)
	if !add(byScore) {
		return out
	}

	byRating := make([]*Player, n)
	copy(byRating, s2)
	sort.SliceStable(byRating, func(i, j int) bool {
		if byRating[i].Rating != byRating[j].Rating {
			return byRating[i].Rating > byRating[j].Rating
		}
		return byRating[i].PairingNumber < byRating[j].PairingNumber
	})
	if !add(byRating) {
		return out
	}

	// Seeded by bracket size only, so repeat invocations generate the
	// same sample (required for reproducible output).
	rng := rand.New(rand.NewSource(int64(42 + n)))
	for attempts := 0; attempts < 4*limit && len(out) < limit; attempts++ {
		variant := make([]*Player, n)
		copy(variant, s2)
		for swaps := 1 + rng.Intn(3); swaps > 0; swaps-- {
			i, j := rng.Intn(n), rng.Intn(n)
			variant[i], variant[j] = variant[j], variant[i]
		}
		if !add(variant) {
			return out
		}
	}

	return out
}

// exchange is one S1-side swap result.
type exchange struct {
	s1    []*Player
	s2    []*Player
	limbo []*Player
}

// exchangeKey orders exchanges per FIDE Article 4.3: fewest swapped players,
// then smallest BSN-sum difference, then the highest BSN moved out of S1,
// then the lowest BSN moved out of S2.
type exchangeKey struct {
	count      int
	bsnSumDiff int
	maxS1BSN   int
	minS2BSN   int
}

func (k exchangeKey) less(o exchangeKey) bool {
	if k.count != o.count {
		return k.count < o.count
	}
	if k.bsnSumDiff != o.bsnSumDiff {
		return k.bsnSumDiff < o.bsnSumDiff
	}
	if k.maxS1BSN != o.maxS1BSN {
		return k.maxS1BSN > o.maxS1BSN
	}
	return k.minS2BSN < o.minS2BSN
}

// residentExchanges swaps one player (or two, for small brackets) between
// S1 and S2, re-sorting each side by score then pairing number afterwards.
func residentExchanges(s1, s2 []*Player, limit int) []candidate {
	if len(s1) == 0 || len(s2) == 0 {
		return nil
	}

	type keyed struct {
		key exchangeKey
		c   candidate
	}
	var all []keyed

	maxS1 := len(s1)
	if maxS1 > 8 {
		maxS1 = 8
	}
	maxS2 := len(s2)
	if maxS2 > 8 {
		maxS2 = 8
	}
	for i := 0; i < maxS1; i++ {
		for j := 0; j < maxS2; j++ {
			ns1, ns2 := swapAcross(s1, s2, i, j)
			all = append(all, keyed{
				key: exchangeKey{
					count:      1,
					bsnSumDiff: abs(s2[j].bsn - s1[i].bsn),
					maxS1BSN:   s1[i].bsn,
					minS2BSN:   s2[j].bsn,
				},
				c: candidate{s1: ns1, s2: ns2},
			})
		}
	}

	// Two-player exchanges only for small sides; the pair count explodes
	// quartically otherwise.
	if len(s1) <= 4 && len(s2) <= 4 {
		for i1 := 0; i1 < len(s1); i1++ {
			for i2 := i1 + 1; i2 < len(s1); i2++ {
				for j1 := 0; j1 < len(s2); j1++ {
					for j2 := j1 + 1; j2 < len(s2); j2++ {
						ns1 := clonePlayers(s1)
						ns2 := clonePlayers(s2)
						ns1[i1], ns2[j1] = ns2[j1], ns1[i1]
						ns1[i2], ns2[j2] = ns2[j2], ns1[i2]
						sortByRank(ns1)
						sortByRank(ns2)
						all = append(all, keyed{
							key: exchangeKey{
								count:      2,
								bsnSumDiff: abs(s2[j1].bsn + s2[j2].bsn - s1[i1].bsn - s1[i2].bsn),
								maxS1BSN:   maxInt(s1[i1].bsn, s1[i2].bsn),
								minS2BSN:   minInt(s2[j1].bsn, s2[j2].bsn),
							},
							c: candidate{s1: ns1, s2: ns2},
						})
					}
				}
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].key.less(all[j].key) })
	if len(all) > limit {
		all = all[:limit]
	}

	out := make([]candidate, len(all))
	for i, k := range all {
		out[i] = k.c
	}
	return out
}

// limboExchanges swaps one MDP between S1 and limbo (FIDE Article 4.4),
// ordered by the BSN of the limbo player pulled into S1.
func limboExchanges(s1, limbo []*Player, limit int) []exchange {
	type keyed struct {
		bsn int
		ex  exchange
	}
	var all []keyed
	for i := range s1 {
		for j := range limbo {
			ns1 := clonePlayers(s1)
			nlimbo := clonePlayers(limbo)
			ns1[i], nlimbo[j] = nlimbo[j], ns1[i]
			sortByRank(ns1)
			all = append(all, keyed{bsn: limbo[j].bsn, ex: exchange{s1: ns1, limbo: nlimbo}})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].bsn < all[j].bsn })
	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]exchange, len(all))
	for i, k := range all {
		out[i] = k.ex
	}
	return out
}

func swapAcross(s1, s2 []*Player, i, j int) ([]*Player, []*Player) {
	ns1 := clonePlayers(s1)
	ns2 := clonePlayers(s2)
	ns1[i], ns2[j] = ns2[j], ns1[i]
	sortByRank(ns1)
	sortByRank(ns2)
	return ns1, ns2
}

func clonePlayers(players []*Player) []*Player {
	out := make([]*Player, len(players))
	copy(out, players)
	return out
}

// signature identifies an ordering by its BSN sequence.
func signature(players []*Player) string {
	buf := make([]byte, 0, 3*len(players))
	for _, p := range players {
		buf = append(buf, byte(p.bsn), byte(p.bsn>>8), ',')
	}
	return string(buf)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
