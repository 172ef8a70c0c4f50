/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEvent(t *testing.T) *Tournament {
	t.Helper()
	ev := New("Club Championship", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 3)
	for i, secName := range []string{"Open", "U1800", "U1400"} {
		sec := ev.AddSection(secName)
		base := 2100 - 400*i
		for j := 0; j < 6; j++ {
			_, err := sec.AddPlayer(fmt.Sprintf("%s player %d", secName, j+1),
				base-25*j)
			require.Nil(t, err)
		}
	}
	return ev
}

func TestTournamentSectionOrder(t *testing.T) {
	ev := buildEvent(t)
	ev.AddSection("Booster")
	assert.Equal(t, []string{"Open", "U1800", "U1400", "Booster"},
		ev.SectionNames())
}

func TestTournamentAddSectionIdempotent(t *testing.T) {
	ev := buildEvent(t)
	assert.Same(t, ev.Section("Open"), ev.AddSection("Open"))
	assert.Len(t, ev.SectionNames(), 3)
}

func TestTournamentPairsAllSections(t *testing.T) {
	ev := buildEvent(t)
	rounds, err := ev.PairNextRound(nil, nil)
	require.Nil(t, err)
	require.Len(t, rounds, 3)

	// Sections never mix players.
	for secName, round := range rounds {
		require.Len(t, round.Pairings, 3)
		sec := ev.Section(secName)
		for _, pr := range round.Pairings {
			_, ok := sec.Player(pr.White.ID)
			assert.True(t, ok)
			_, ok = sec.Player(pr.Black.ID)
			assert.True(t, ok)
		}
	}
}

func TestTournamentCompleteRound(t *testing.T) {
	ev := buildEvent(t)
	rounds, err := ev.PairNextRound(nil, nil)
	require.Nil(t, err)

	// Completing with outstanding results fails.
	assert.NotNil(t, ev.CompleteRound())

	for secName, round := range rounds {
		sec := ev.Section(secName)
		for _, pr := range round.Pairings {
			require.Nil(t, sec.RecordResult(pr.White.ID, pr.Black.ID, Draw))
		}
	}
	require.Nil(t, ev.CompleteRound())

	// A second full round pairs cleanly.
	rounds, err = ev.PairNextRound(nil, nil)
	require.Nil(t, err)
	for _, round := range rounds {
		assert.Equal(t, 2, round.Number)
	}
}

func TestTournamentSkipsEmptySections(t *testing.T) {
	ev := buildEvent(t)
	ev.AddSection("Empty")

	rounds, err := ev.PairNextRound(nil, nil)
	require.Nil(t, err)
	assert.Len(t, rounds, 3)
	_, ok := rounds["Empty"]
	assert.False(t, ok)
}
