/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Color is the color a player held in one round. NoColor records a bye.
type Color int

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the other playing color. NoColor maps to itself.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// PrefStrength classifies how badly a player needs a particular color next
// round, per FIDE Article 1.6. Absolute preferences participate in the
// absolute pairing criteria; the weaker grades only steer color assignment
// and configuration scoring.
type PrefStrength int

const (
	PrefNone PrefStrength = iota
	PrefMild
	PrefStrong
	PrefAbsolute
)

func (s PrefStrength) String() string {
	switch s {
	case PrefMild:
		return "mild"
	case PrefStrong:
		return "strong"
	case PrefAbsolute:
		return "absolute"
	}
	return "none"
}

// Player is the pairing-relevant projection of a competitor. Score, rating,
// and the history fields are owned by the caller; the engine only appends
// per-round annotations (FloatHistory) and maintains the transient bracket
// fields (bsn, movedDown) which are reset at the start of every round.
type Player struct {
	ID            string
	Name          string
	Rating        int
	Score         float64
	PairingNumber int

	// ColorHistory holds one entry per completed round; NoColor means bye.
	ColorHistory []Color
	// FloatHistory holds the 1-based round numbers in which the player
	// floated down (or took the bye).
	FloatHistory []int

	HasReceivedBye bool
	Active         bool

	// Transient per-round state. Zero between rounds.
	bsn       int
	movedDown bool
}

func (p *Player) resetRoundState() {
	p.bsn = 0
	p.movedDown = false
}

// playedColors returns the color history with byes removed.
func (p *Player) playedColors() []Color {
	colors := make([]Color, 0, len(p.ColorHistory))
	for _, c := range p.ColorHistory {
		if c != NoColor {
			colors = append(colors, c)
		}
	}
	return colors
}

// ColorImbalance returns white games minus black games; positive means the
// player has held White more often.
func (p *Player) ColorImbalance() int {
	imbalance := 0
	for _, c := range p.ColorHistory {
		switch c {
		case White:
			imbalance++
		case Black:
			imbalance--
		}
	}
	return imbalance
}

// repeatedColor returns the color held in the last two played games when
// they match, else NoColor.
func (p *Player) repeatedColor() Color {
	colors := p.playedColors()
	if len(colors) >= 2 && colors[len(colors)-1] == colors[len(colors)-2] {
		return colors[len(colors)-1]
	}
	return NoColor
}

// hasThreeConsecutiveColors reports whether the last three played games were
// all the same color (FIDE C11 safety net).
func (p *Player) hasThreeConsecutiveColors() bool {
	colors := p.playedColors()
	n := len(colors)
	return n >= 3 && colors[n-1] == colors[n-2] && colors[n-2] == colors[n-3]
}

// PrefStrength classifies the player's color preference:
//
//	absolute: |imbalance| > 1, or the last two played games had one color
//	strong:   |imbalance| == 1
//	mild:     balanced history with at least one played game
//	none:     no games played
func (p *Player) PrefStrength() PrefStrength {
	colors := p.playedColors()
	if len(colors) == 0 {
		return PrefNone
	}
	imbalance := p.ColorImbalance()
	if imbalance > 1 || imbalance < -1 || p.repeatedColor() != NoColor {
		return PrefAbsolute
	}
	if imbalance == 1 || imbalance == -1 {
		return PrefStrong
	}
	return PrefMild
}

// ColorPreference returns the color the player is due next round, or NoColor
// when the player has no games played. An absolute preference from color
// repetition overrides the imbalance direction; a mild preference simply
// alternates from the last game played.
func (p *Player) ColorPreference() Color {
	colors := p.playedColors()
	if len(colors) == 0 {
		return NoColor
	}
	if rep := p.repeatedColor(); rep != NoColor {
		return rep.Opposite()
	}
	imbalance := p.ColorImbalance()
	switch {
	case imbalance > 0:
		return Black
	case imbalance < 0:
		return White
	}
	// Balanced: alternate from the most recent game.
	return colors[len(colors)-1].Opposite()
}

// isTopscorer reports whether the player scores over 50% of the maximum
// possible score through the round before the final. Topscorer status only
// exists while pairing the final round (FIDE Article 1.7).
func (p *Player) isTopscorer(round, totalRounds int) bool {
	if totalRounds <= 0 || round != totalRounds {
		return false
	}
	return p.Score > float64(round-1)*0.5
}

// recordFloat appends round to FloatHistory. Calling it twice for the same
// round is a no-op so that a duplicate engine invocation cannot double-count
// a float (callers must still compute each round only once).
func (p *Player) recordFloat(round int) {
	if n := len(p.FloatHistory); n > 0 && p.FloatHistory[n-1] == round {
		return
	}
	p.FloatHistory = append(p.FloatHistory, round)
}

// floatedInRound reports whether the player floated down in the given round.
func (p *Player) floatedInRound(round int) bool {
	for i := len(p.FloatHistory) - 1; i >= 0; i-- {
		if p.FloatHistory[i] == round {
			return true
		}
		if p.FloatHistory[i] < round {
			break
		}
	}
	return false
}

// recentFloatCount counts floats within the last two completed rounds, the
// lookback window FIDE C14-C21 cares about.
func (p *Player) recentFloatCount(round int) int {
	count := 0
	if p.floatedInRound(round - 1) {
		count++
	}
	if p.floatedInRound(round - 2) {
		count++
	}
	return count
}

// rankBefore reports whether p outranks q: better score, then higher rating,
// then lower pairing number (FIDE Article 1.2 ordering).
func (p *Player) rankBefore(q *Player) bool {
	if p.Score != q.Score {
		return p.Score > q.Score
	}
	if p.Rating != q.Rating {
		return p.Rating > q.Rating
	}
	return p.PairingNumber < q.PairingNumber
}
