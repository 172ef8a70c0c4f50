/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPlayer(id string, rating int, score float64, colors ...Color) *Player {
	return &Player{
		ID:           id,
		Name:         id,
		Rating:       rating,
		Score:        score,
		ColorHistory: colors,
		Active:       true,
	}
}

func TestColorPreference(t *testing.T) {
	testCases := []struct {
		name     string
		colors   []Color
		pref     Color
		strength PrefStrength
	}{
		{"no games", nil, NoColor, PrefNone},
		{"bye only", []Color{NoColor}, NoColor, PrefNone},
		{"one white", []Color{White}, Black, PrefStrong},
		{"one black", []Color{Black}, White, PrefStrong},
		{"balanced alternates", []Color{White, Black}, White, PrefMild},
		{"balanced alternates other way", []Color{Black, White}, Black, PrefMild},
		{"two whites in a row", []Color{White, White}, Black, PrefAbsolute},
		{"two blacks in a row", []Color{Black, Black}, White, PrefAbsolute},
		{"imbalance two", []Color{White, Black, White, White}, Black, PrefAbsolute},
		{"imbalance one", []Color{Black, White, Black}, White, PrefStrong},
		{"bye ignored between repeats", []Color{White, NoColor, White}, Black, PrefAbsolute},
		{"repetition overrides imbalance direction",
			[]Color{White, White, White, Black, Black}, White, PrefAbsolute},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := testPlayer("p", 1500, 0, tc.colors...)
			assert.Equal(t, tc.pref, p.ColorPreference())
			assert.Equal(t, tc.strength, p.PrefStrength())
		})
	}
}

func TestColorImbalance(t *testing.T) {
	p := testPlayer("p", 1500, 0, White, Black, White, NoColor, White)
	assert.Equal(t, 2, p.ColorImbalance())
}

func TestThreeConsecutiveColors(t *testing.T) {
	p := testPlayer("p", 1500, 0, Black, NoColor, Black, Black)
	assert.True(t, p.hasThreeConsecutiveColors())

	q := testPlayer("q", 1500, 0, White, Black, Black)
	assert.False(t, q.hasThreeConsecutiveColors())
}

func TestTopscorer(t *testing.T) {
	p := testPlayer("p", 1500, 2.5)

	// 2.5 of a possible 3.0 through round 3; only the final round counts.
	assert.True(t, p.isTopscorer(4, 4))
	assert.False(t, p.isTopscorer(3, 4))
	assert.False(t, p.isTopscorer(4, 0))

	q := testPlayer("q", 1500, 1.5)
	assert.False(t, q.isTopscorer(4, 4))
}

func TestRecordFloatIdempotent(t *testing.T) {
	p := testPlayer("p", 1500, 0)
	p.recordFloat(3)
	p.recordFloat(3)
	p.recordFloat(4)
	assert.Equal(t, []int{3, 4}, p.FloatHistory)
}

func TestRecentFloatCount(t *testing.T) {
	p := testPlayer("p", 1500, 0)
	p.FloatHistory = []int{1, 3}

	assert.Equal(t, 1, p.recentFloatCount(4)) // round 3 in window, round 1 not
	assert.Equal(t, 1, p.recentFloatCount(3)) // rounds 2 and 1: only round 1
	assert.Equal(t, 1, p.recentFloatCount(5)) // rounds 4 and 3: only round 3

	p.FloatHistory = []int{3, 4}
	assert.Equal(t, 2, p.recentFloatCount(5))
}

func TestRankBefore(t *testing.T) {
	a := testPlayer("a", 1800, 2.0)
	b := testPlayer("b", 1900, 1.5)
	c := testPlayer("c", 1800, 1.5)

	assert.True(t, a.rankBefore(b))  // score first
	assert.True(t, b.rankBefore(c))  // then rating
	assert.False(t, c.rankBefore(b))

	c.PairingNumber, b.PairingNumber = 1, 2
	d := testPlayer("d", 1800, 1.5)
	d.PairingNumber = 3
	assert.True(t, c.rankBefore(d)) // then pairing number
}
