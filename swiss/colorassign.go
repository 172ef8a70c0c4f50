/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// assignColors decides which of two compatible players receives White,
// following the FIDE Article 5.2 priority chain:
//
//  1. both preferences non-null and different: grant both
//  2. both absolute and conflicting: grant the wider imbalance; an equal
//     imbalance falls through to the later rules, an implementation-defined
//     tie-break (such a pair is rejected by the absolute criteria unless a
//     topscorer is involved)
//  3. one absolute: the absolute preference wins
//  4. both strong with the same preference: fall through
//  5. one strong vs mild/none: the strong preference wins
//  6. alternate from the most recent round where the two held different
//     colors
//  7. grant the higher-ranked player's preference
//  8. pairing-number parity of the higher-ranked player: odd gets White
func assignColors(p1, p2 *Player) (white, black *Player) {
	pref1, pref2 := p1.ColorPreference(), p2.ColorPreference()
	str1, str2 := p1.PrefStrength(), p2.PrefStrength()

	// Rule 1: compatible preferences.
	if pref1 != NoColor && pref2 != NoColor && pref1 != pref2 {
		return orient(p1, p2, pref1)
	}

	abs1, abs2 := str1 == PrefAbsolute, str2 == PrefAbsolute
	switch {
	case abs1 && abs2:
		// Rule 2: wider imbalance wins; equal imbalances fall through.
		imb1, imb2 := abs(p1.ColorImbalance()), abs(p2.ColorImbalance())
		if imb1 > imb2 {
			return orient(p1, p2, pref1)
		}
		if imb2 > imb1 {
			return orient(p2, p1, pref2)
		}
	case abs1:
		// Rule 3.
		return orient(p1, p2, pref1)
	case abs2:
		return orient(p2, p1, pref2)
	case str1 == PrefStrong && str2 == PrefStrong:
		// Rule 4: differing strong preferences were already granted by
		// rule 1; same preference falls through.
	case str1 == PrefStrong:
		// Rule 5.
		return orient(p1, p2, pref1)
	case str2 == PrefStrong:
		return orient(p2, p1, pref2)
	}

	// Rule 6: alternate from the most recent round with differing colors.
	if c := lastDifferingColor(p1, p2); c != NoColor {
		// c is p1's color in that round; flip it now.
		return orient(p1, p2, c.Opposite())
	}

	// Rules 7 and 8.
	higher, lower := p1, p2
	if p2.rankBefore(p1) {
		higher, lower = p2, p1
	}
	if pref := higher.ColorPreference(); pref != NoColor {
		return orient(higher, lower, pref)
	}
	if higher.PairingNumber%2 == 1 {
		return higher, lower
	}
	return lower, higher
}

// orient returns (white, black) such that p receives want.
func orient(p, q *Player, want Color) (*Player, *Player) {
	if want == Black {
		return q, p
	}
	return p, q
}

// lastDifferingColor searches both played-color histories backward for the
// most recent round in which the two players held different colors, and
// returns p1's color in that round. NoColor when no such round exists.
func lastDifferingColor(p1, p2 *Player) Color {
	c1 := p1.playedColors()
	c2 := p2.playedColors()
	n := len(c1)
	if len(c2) < n {
		n = len(c2)
	}
	for i := n - 1; i >= 0; i-- {
		if c1[i] != c2[i] {
			return c1[i]
		}
	}
	return NoColor
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
