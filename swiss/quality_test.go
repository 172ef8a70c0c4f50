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

func TestCompareDescFloats(t *testing.T) {
	testCases := []struct {
		name string
		a, b []float64
		want int
	}{
		{"equal", []float64{1, 0.5}, []float64{1, 0.5}, 0},
		{"element-wise", []float64{1, 0.5}, []float64{1, 1}, -1},
		{"first element dominates", []float64{2, 0}, []float64{1, 5}, 1},
		{"shorter prefix wins", []float64{1}, []float64{1, 0.5}, -1},
		{"empty beats anything", nil, []float64{0.5}, -1},
		{"epsilon absorbs drift", []float64{0.30000000000000004}, []float64{0.3}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, compareDescFloats(tc.a, tc.b))
		})
	}
}

func TestQualityOrdering(t *testing.T) {
	base := quality{paired: 3, downfloaters: 0}

	morePaired := base
	morePaired.paired = 4
	assert.True(t, morePaired.betterThan(base))

	fewerFloats := quality{paired: 3, downfloaters: 1}
	assert.True(t, base.betterThan(fewerFloats))

	lowPSD := quality{paired: 3, psd: []float64{0.5}}
	highPSD := quality{paired: 3, psd: []float64{1.0}}
	assert.True(t, lowPSD.betterThan(highPSD))

	// Color violations only break PSD ties, in severity order.
	absViol := quality{paired: 3, absoluteColor: 1}
	strongViol := quality{paired: 3, strongColor: 2}
	assert.True(t, strongViol.betterThan(absViol))

	mildLast := quality{paired: 3, mildColor: 5}
	repeatFloat := quality{paired: 3, repeatFloatCount: 1}
	assert.True(t, mildLast.betterThan(repeatFloat))
}

func TestScoreConfigurationChargesDownfloaters(t *testing.T) {
	a := testPlayer("a", 1800, 2)
	b := testPlayer("b", 1700, 1.5)
	floater := testPlayer("f", 1600, 1)

	q := scoreConfiguration([]Pairing{{White: a, Black: b}},
		[]*Player{floater}, 3, 1)

	// Pair gap 0.5 plus the artificial gap 1 - (1-1) = 1, sorted desc.
	require.Len(t, q.psd, 2)
	assert.InDelta(t, 1.0, q.psd[0], scoreEpsilon)
	assert.InDelta(t, 0.5, q.psd[1], scoreEpsilon)
	assert.Equal(t, 1, q.downfloaters)
}

func TestScoreConfigurationRepeatFloats(t *testing.T) {
	floater := testPlayer("f", 1600, 1.5)
	floater.FloatHistory = []int{2}

	q := scoreConfiguration(nil, []*Player{floater}, 3, 1)
	assert.Equal(t, 1, q.repeatFloatCount)
	assert.Equal(t, []float64{1.5}, q.repeatFloatScores)

	fresh := testPlayer("g", 1600, 1.5)
	q = scoreConfiguration(nil, []*Player{fresh}, 3, 1)
	assert.Equal(t, 0, q.repeatFloatCount)
	assert.Empty(t, q.repeatFloatScores)
}

func TestEvaluateSplitFloatsIncompatiblePairs(t *testing.T) {
	prev := NewPreviousMatches()
	a := testPlayer("a", 1800, 1)
	b := testPlayer("b", 1700, 1)
	c := testPlayer("c", 1600, 1)
	d := testPlayer("d", 1500, 1)
	prev.Add("a", "c")

	cfg := evaluateSplit([]*Player{a, b}, []*Player{c, d}, prev, 2, 4, 1)
	require.Len(t, cfg.pairs, 1)
	assert.ElementsMatch(t, []*Player{a, c}, cfg.unpaired)
}

// The selected configuration's PSD list must be lexicographically no worse
// than any other valid configuration the generator produced.
func TestPSDMinimality(t *testing.T) {
	prev := NewPreviousMatches()
	b := sameScoreBracket(6)
	players := b.players()

	best := bestHomogeneous(players, prev, 2, 4, b.score)
	require.NotNil(t, best)

	for _, c := range generateHomogeneous(players) {
		cfg := evaluateSplit(c.s1, c.s2, prev, 2, 4, b.score)
		if cfg.q.paired != best.q.paired {
			continue
		}
		assert.LessOrEqual(t, compareDescFloats(best.q.psd, cfg.q.psd), 0)
	}
}

func TestBestForBracketHeterogeneousAllOrNothing(t *testing.T) {
	prev := NewPreviousMatches()
	b := &bracket{score: 1}

	mdp := testPlayer("m1", 1900, 1.5)
	mdp.PairingNumber = 1
	b.movedDown = []*Player{mdp}
	for i := 2; i <= 4; i++ {
		res := testPlayer(fmt.Sprintf("r%v", i), 1900-10*i, 1)
		res.PairingNumber = i
		b.residents = append(b.residents, res)
	}
	b.assignBSNs()

	cfg := bestForBracket(b, prev, 2, 4)
	require.NotNil(t, cfg)
	require.Len(t, cfg.pairs, 2)

	// The MDP must be seated against a resident and nobody floats.
	seated := map[*Player]bool{}
	for _, pr := range cfg.pairs {
		seated[pr.White] = true
		seated[pr.Black] = true
	}
	assert.True(t, seated[mdp])
	assert.Empty(t, cfg.unpaired)
}

func TestBestForBracketUnresolvable(t *testing.T) {
	prev := NewPreviousMatches()
	a := testPlayer("a", 1800, 2)
	a.PairingNumber = 1
	z := testPlayer("z", 1700, 2)
	z.PairingNumber = 2
	prev.Add("a", "z")

	b := &bracket{score: 2, residents: []*Player{a, z}}
	b.assignBSNs()

	cfg := bestForBracket(b, prev, 3, 4)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.pairs)
	assert.Len(t, cfg.unpaired, 2)
}
