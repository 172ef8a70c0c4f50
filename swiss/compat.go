/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// meetsAbsoluteCriteria checks the never-violate pairing criteria:
//
//	C1: the two players must not have met before.
//	C3: when pairing the final round, two non-topscorers may not meet if
//	    both hold an absolute preference for the same color.
//
// C2 (no second bye while others are unbyed) is enforced by the bye
// selection step, outside bracket search.
func meetsAbsoluteCriteria(p1, p2 *Player, prev PreviousMatches, round, totalRounds int) bool {
	if prev.Contains(p1.ID, p2.ID) {
		return false
	}

	if totalRounds > 0 && round == totalRounds &&
		!p1.isTopscorer(round, totalRounds) && !p2.isTopscorer(round, totalRounds) {
		if p1.PrefStrength() == PrefAbsolute && p2.PrefStrength() == PrefAbsolute &&
			p1.ColorPreference() == p2.ColorPreference() {
			return false
		}
	}

	return true
}
