/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sameScoreBracket builds a homogeneous bracket of n players with BSNs
// assigned, pairing numbers 1..n.
func sameScoreBracket(n int) *bracket {
	b := &bracket{score: 1}
	for i := 1; i <= n; i++ {
		p := testPlayer(fmt.Sprintf("p%v", i), 2000-10*i, 1)
		p.PairingNumber = i
		b.residents = append(b.residents, p)
	}
	b.assignBSNs()
	return b
}

func bsns(players []*Player) []int {
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.bsn
	}
	return out
}

func TestGenerateRespectsBudget(t *testing.T) {
	for _, n := range []int{2, 4, 6, 8, 14, 22, 40} {
		b := sameScoreBracket(n)
		candidates := generateHomogeneous(b.players())
		assert.LessOrEqual(t, len(candidates), maxCandidates(n),
			"bracket size %v", n)
	}
}

func TestGenerateFirstCandidateIsOriginalSplit(t *testing.T) {
	b := sameScoreBracket(6)
	candidates := generateHomogeneous(b.players())
	require.NotEmpty(t, candidates)
	assert.Equal(t, []int{1, 2, 3}, bsns(candidates[0].s1))
	assert.Equal(t, []int{4, 5, 6}, bsns(candidates[0].s2))
}

func TestTranspositionsEnumerateLexicographically(t *testing.T) {
	b := sameScoreBracket(6)
	s2 := b.players()[3:]

	variants := transposeS2(s2, 3, fullEnumeration)
	require.Len(t, variants, 5) // 3! orderings minus the original

	expected := [][]int{
		{4, 6, 5},
		{5, 4, 6},
		{5, 6, 4},
		{6, 4, 5},
		{6, 5, 4},
	}
	for i, variant := range variants {
		assert.Equal(t, expected[i], bsns(variant), "variant %v", i)
	}
}

func TestTranspositionsDedupeByPairedPrefix(t *testing.T) {
	// With n1=1 only the first S2 slot matters, so 3 elements yield just
	// 2 distinct non-original orderings.
	b := sameScoreBracket(6)
	s2 := b.players()[3:]

	variants := transposeS2(s2, 1, fullEnumeration)
	require.Len(t, variants, 2)
	assert.Equal(t, 5, variants[0][0].bsn)
	assert.Equal(t, 6, variants[1][0].bsn)
}

func TestHeuristicTranspositionsDeterministic(t *testing.T) {
	b := sameScoreBracket(16)
	s2 := b.players()[8:]

	first := transposeS2(s2, 8, 25)
	second := transposeS2(s2, 8, 25)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, bsns(first[i]), bsns(second[i]), "variant %v", i)
	}
	assert.LessOrEqual(t, len(first), 25)
}

func TestResidentExchangeOrdering(t *testing.T) {
	b := sameScoreBracket(4)
	players := b.players()
	exchanges := residentExchanges(players[:2], players[2:], 50)
	require.NotEmpty(t, exchanges)

	// Smallest BSN-sum difference first: swapping BSN 2 with BSN 3.
	assert.Equal(t, []int{1, 3}, bsns(exchanges[0].s1))
	assert.Equal(t, []int{2, 4}, bsns(exchanges[0].s2))

	// On a difference tie, the higher BSN out of S1 goes first:
	// 2<->4 before 1<->3.
	assert.Equal(t, []int{1, 4}, bsns(exchanges[1].s1))
	assert.Equal(t, []int{2, 3}, bsns(exchanges[2].s1))
}

func TestHeterogeneousCandidateShape(t *testing.T) {
	b := &bracket{score: 1}
	for i := 1; i <= 3; i++ {
		mdp := testPlayer(fmt.Sprintf("m%v", i), 1900-10*i, 1.5)
		mdp.PairingNumber = i
		b.movedDown = append(b.movedDown, mdp)
	}
	for i := 4; i <= 5; i++ {
		res := testPlayer(fmt.Sprintf("r%v", i), 1900-10*i, 1)
		res.PairingNumber = i
		b.residents = append(b.residents, res)
	}
	b.assignBSNs()

	require.Equal(t, 3, b.m0())
	require.Equal(t, 2, b.m1()) // floor(5/2) = 2 pairable MDPs

	candidates := generateHeterogeneous(b)
	require.NotEmpty(t, candidates)

	first := candidates[0]
	assert.Equal(t, []int{1, 2}, bsns(first.s1))
	assert.Equal(t, []int{4, 5}, bsns(first.s2))
	assert.Equal(t, []int{3}, bsns(first.limbo))

	for _, c := range candidates {
		assert.Len(t, c.s1, 2)
		assert.Len(t, c.limbo, 1)
	}
}

func TestBudgetLadderMonotonic(t *testing.T) {
	// Larger brackets never get a bigger per-kind budget.
	prev := budgetFor(7) // first rung above full enumeration
	for _, n := range []int{13, 21, 100} {
		rung := budgetFor(n)
		assert.LessOrEqual(t, rung.transpositions, prev.transpositions)
		assert.LessOrEqual(t, rung.exchanges, prev.exchanges)
		prev = rung
	}
}
