/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// greedyPair matches players top-down by rank, taking for each player the
// highest-ranked remaining opponent they have not already faced. A second
// pass over the leftovers permits repeats, but only with the confirmer's
// approval. Used when the bracket search runs out of budget and for the
// collapsed final score group.
func greedyPair(players []*Player, prev PreviousMatches, round,
	totalRounds int, confirm RepeatConfirmer) ([]Pairing, []*Player) {

	pool := clonePlayers(players)
	sortByRank(pool)

	var pairs []Pairing
	used := make(map[*Player]bool)

	match := func(allowRepeat bool) {
		for i, p := range pool {
			if used[p] {
				continue
			}
			for _, q := range pool[i+1:] {
				if used[q] {
					continue
				}
				repeat := prev.Contains(p.ID, q.ID)
				if repeat && !allowRepeat {
					continue
				}
				if repeat && (confirm == nil || !confirm(p, q)) {
					continue
				}
				if !colorsCompatible(p, q, round, totalRounds) {
					continue
				}
				w, b := assignColors(p, q)
				pairs = append(pairs, Pairing{White: w, Black: b})
				used[p], used[q] = true, true
				break
			}
		}
	}

	match(false)
	match(true)

	var unpaired []*Player
	for _, p := range pool {
		if !used[p] {
			unpaired = append(unpaired, p)
		}
	}
	return pairs, unpaired
}

// colorsCompatible applies the same-absolute-preference restriction used by
// the bracket search, so the fallback cannot produce a board the main path
// would refuse.
func colorsCompatible(p1, p2 *Player, round, totalRounds int) bool {
	if totalRounds <= 0 || round != totalRounds {
		return true
	}
	if p1.isTopscorer(round, totalRounds) || p2.isTopscorer(round, totalRounds) {
		return true
	}
	if p1.PrefStrength() != PrefAbsolute || p2.PrefStrength() != PrefAbsolute {
		return true
	}
	return p1.ColorPreference() != p2.ColorPreference()
}
