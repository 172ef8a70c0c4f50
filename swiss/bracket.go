/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// bracket is one score group being paired, made of resident players at the
// bracket score plus any moved-down players (MDPs) carried from above.
type bracket struct {
	score     float64
	residents []*Player
	movedDown []*Player
}

// players returns the bracket in pairing order: MDPs first, then residents,
// both in the order they were added (score desc, pairing number asc).
func (b *bracket) players() []*Player {
	all := make([]*Player, 0, len(b.movedDown)+len(b.residents))
	all = append(all, b.movedDown...)
	all = append(all, b.residents...)
	return all
}

func (b *bracket) size() int {
	return len(b.movedDown) + len(b.residents)
}

// m0 is the number of MDPs in the bracket.
func (b *bracket) m0() int { return len(b.movedDown) }

// m1 is the number of MDPs that can actually be paired here:
// min(M0, residents, floor(bracket/2)).
func (b *bracket) m1() int {
	m1 := b.m0()
	if r := len(b.residents); r < m1 {
		m1 = r
	}
	if half := b.size() / 2; half < m1 {
		m1 = half
	}
	return m1
}

// heterogeneous reports whether the bracket carries MDPs.
func (b *bracket) heterogeneous() bool { return b.m0() > 0 }

// assignBSNs numbers the bracket 1..N in pairing order and flags the MDPs.
// BSNs have no life beyond the current round.
func (b *bracket) assignBSNs() {
	n := 1
	for _, p := range b.movedDown {
		p.bsn = n
		p.movedDown = true
		n++
	}
	for _, p := range b.residents {
		p.bsn = n
		n++
	}
}

// sortByRank orders players by score desc, then pairing number asc
// (FIDE Article 1.2). Used for the initial bracket build and for re-sorting
// S1/S2 after exchanges.
func sortByRank(players []*Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		return players[i].PairingNumber < players[j].PairingNumber
	})
}

// buildBrackets groups players into descending score groups. MDP carry
// between brackets happens in the engine loop, not here, because each
// bracket's downfloaters are only known after it is paired.
func buildBrackets(players []*Player) []*bracket {
	sorted := make([]*Player, len(players))
	copy(sorted, players)
	sortByRank(sorted)

	var brackets []*bracket
	for _, p := range sorted {
		n := len(brackets)
		if n == 0 || brackets[n-1].score != p.Score {
			brackets = append(brackets, &bracket{score: p.Score})
			n++
		}
		brackets[n-1].residents = append(brackets[n-1].residents, p)
	}

	return brackets
}
