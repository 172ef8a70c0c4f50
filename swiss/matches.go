/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// MatchKey identifies an unordered pair of player IDs.
type MatchKey struct {
	lo, hi string
}

// NewMatchKey builds the canonical key for a pair of player IDs.
func NewMatchKey(id1, id2 string) MatchKey {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return MatchKey{lo: id1, hi: id2}
}

// Lo returns the lexicographically smaller player ID of the pair.
func (k MatchKey) Lo() string { return k.lo }

// Hi returns the lexicographically larger player ID of the pair.
func (k MatchKey) Hi() string { return k.hi }

// PreviousMatches records every pair of players who have already met.
// The engine only reads it; the caller appends after each round is recorded.
type PreviousMatches map[MatchKey]struct{}

// NewPreviousMatches returns an empty match set.
func NewPreviousMatches() PreviousMatches {
	return make(PreviousMatches)
}

// Add records that the two players have met. Append-only by convention.
func (pm PreviousMatches) Add(id1, id2 string) {
	pm[NewMatchKey(id1, id2)] = struct{}{}
}

// Contains reports whether the two players have already met.
func (pm PreviousMatches) Contains(id1, id2 string) bool {
	_, ok := pm[NewMatchKey(id1, id2)]
	return ok
}
