/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPairingsOutput(t *testing.T) {
	ev := buildEvent(t)
	out := BuildPairingsOutput(ev)
	assert.Equal(t, "No pairings computed yet\n", out)

	_, err := ev.PairNextRound(nil, nil)
	require.Nil(t, err)

	out = BuildPairingsOutput(ev)
	assert.Contains(t, out, "Round 1 Pairings:")
	assert.Contains(t, out, "Open Section")
	assert.Contains(t, out, "U1800 Section")
	assert.Contains(t, out, "Board")
	assert.Contains(t, out, "White")
	assert.Contains(t, out, "Black")

	// Open comes before the U-sections.
	assert.Less(t, strings.Index(out, "Open Section"),
		strings.Index(out, "U1800 Section"))
	assert.Less(t, strings.Index(out, "U1800 Section"),
		strings.Index(out, "U1400 Section"))
}

func TestBuildStandingsOutputTiedRanks(t *testing.T) {
	ev := New("Quads", time.Time{}, 3)
	sec := ev.AddSection("Open")
	a, err := sec.AddPlayer("alice adams", 1900)
	require.Nil(t, err)
	b, err := sec.AddPlayer("bob brown", 1800)
	require.Nil(t, err)
	c, err := sec.AddPlayer("carol clark", 1700)
	require.Nil(t, err)
	d, err := sec.AddPlayer("dave davis", 1600)
	require.Nil(t, err)
	a.Score, b.Score, c.Score, d.Score = 2, 1.5, 1.5, 0

	out := BuildStandingsOutput(ev)
	assert.Contains(t, out, "Place")
	assert.Contains(t, out, "Alice Adams")

	// Tied players share one place number: 1, 2, blank, 4.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "1."))
	assert.True(t, strings.HasPrefix(lines[2], "2."))
	assert.True(t, strings.HasPrefix(lines[3], " "))
	assert.True(t, strings.HasPrefix(lines[4], "4."))

	// Half points use the glyph form.
	assert.Contains(t, out, "1½")
}

func TestBuildEntriesOutput(t *testing.T) {
	ev := New("Quads", time.Time{}, 3)
	sec := ev.AddSection("Open")
	_, err := sec.AddPlayer("strong player", 2200)
	require.Nil(t, err)
	_, err = sec.AddPlayer("new player", 0)
	require.Nil(t, err)

	out := BuildEntriesOutput(ev)
	assert.Contains(t, out, "Player")
	assert.Contains(t, out, "Rating")
	assert.Contains(t, out, "2200")
	assert.Contains(t, out, "unrated")

	// Highest rated listed first.
	assert.Less(t, strings.Index(out, "Strong Player"),
		strings.Index(out, "New Player"))
}
