/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package roundrobin schedules all-play-all tournaments from the FIDE
// Berger tables. It supports 3 to 16 players; with an odd count the
// highest table number is the bye slot, per FIDE convention.
package roundrobin

import (
	"fmt"
)

// Pairing is one board: 0-based player indexes in registration order.
// White holds the white pieces.
type Pairing struct {
	White int
	Black int
}

// Round is one round of the schedule. Bye is the index of the player
// sitting out, or -1.
type Round struct {
	Pairings []Pairing
	Bye      int
}

// bergerTables holds the FIDE schedules, 0-indexed, keyed by table size.
// Each entry covers size-1 and size players; the final slot doubles as the
// bye for the odd count.
var bergerTables = map[int][][][2]int{
	4: {
		{{0, 3}, {1, 2}},
		{{3, 2}, {0, 1}},
		{{1, 3}, {2, 0}},
	},
	6: {
		{{0, 5}, {1, 4}, {2, 3}},
		{{5, 3}, {4, 2}, {0, 1}},
		{{1, 5}, {2, 0}, {3, 4}},
		{{5, 4}, {0, 3}, {1, 2}},
		{{2, 5}, {3, 1}, {4, 0}},
	},
	8: {
		{{0, 7}, {1, 6}, {2, 5}, {3, 4}},
		{{7, 4}, {5, 3}, {6, 2}, {0, 1}},
		{{1, 7}, {2, 0}, {3, 6}, {4, 5}},
		{{7, 5}, {6, 4}, {0, 3}, {1, 2}},
		{{2, 7}, {3, 1}, {4, 0}, {5, 6}},
		{{7, 6}, {0, 5}, {1, 4}, {2, 3}},
		{{3, 7}, {4, 2}, {5, 1}, {6, 0}},
	},
	10: {
		{{0, 9}, {1, 8}, {2, 7}, {3, 6}, {4, 5}},
		{{9, 5}, {6, 4}, {7, 3}, {8, 2}, {0, 1}},
		{{1, 9}, {2, 0}, {3, 8}, {4, 7}, {5, 6}},
		{{9, 6}, {7, 5}, {8, 4}, {0, 3}, {1, 2}},
		{{2, 9}, {3, 1}, {4, 0}, {5, 8}, {6, 7}},
		{{9, 7}, {8, 6}, {0, 5}, {1, 4}, {2, 3}},
		{{3, 9}, {4, 2}, {5, 1}, {6, 0}, {7, 8}},
		{{9, 8}, {0, 7}, {1, 6}, {2, 5}, {3, 4}},
		{{4, 9}, {5, 3}, {6, 2}, {7, 1}, {8, 0}},
	},
	12: {
		{{0, 11}, {1, 10}, {2, 9}, {3, 8}, {4, 7}, {5, 6}},
		{{11, 6}, {7, 5}, {8, 4}, {9, 3}, {10, 2}, {0, 1}},
		{{1, 11}, {2, 0}, {3, 10}, {4, 9}, {5, 8}, {6, 7}},
		{{11, 7}, {8, 6}, {9, 5}, {10, 4}, {0, 3}, {1, 2}},
		{{2, 11}, {3, 1}, {4, 0}, {5, 10}, {6, 9}, {7, 8}},
		{{11, 8}, {9, 7}, {10, 6}, {0, 5}, {1, 4}, {2, 3}},
		{{3, 11}, {4, 2}, {5, 1}, {6, 0}, {7, 10}, {8, 9}},
		{{11, 9}, {10, 8}, {0, 7}, {1, 6}, {2, 5}, {3, 4}},
		{{4, 11}, {5, 3}, {6, 2}, {7, 1}, {8, 0}, {9, 10}},
		{{11, 10}, {0, 9}, {1, 8}, {2, 7}, {3, 6}, {4, 5}},
		{{5, 11}, {6, 4}, {7, 3}, {8, 2}, {9, 1}, {10, 0}},
	},
	14: {
		{{0, 13}, {1, 12}, {2, 11}, {3, 10}, {4, 9}, {5, 8}, {6, 7}},
		{{13, 7}, {8, 6}, {9, 5}, {10, 4}, {11, 3}, {12, 2}, {0, 1}},
		{{1, 13}, {2, 0}, {3, 12}, {4, 11}, {5, 10}, {6, 9}, {7, 8}},
		{{13, 8}, {9, 7}, {10, 6}, {11, 5}, {12, 4}, {0, 3}, {1, 2}},
		{{2, 13}, {3, 1}, {4, 0}, {5, 12}, {6, 11}, {7, 10}, {8, 9}},
		{{13, 9}, {10, 8}, {11, 7}, {12, 6}, {0, 5}, {1, 4}, {2, 3}},
		{{3, 13}, {4, 2}, {5, 1}, {6, 0}, {7, 12}, {8, 11}, {9, 10}},
		{{13, 10}, {11, 9}, {12, 8}, {0, 7}, {1, 6}, {2, 5}, {3, 4}},
		{{4, 13}, {5, 3}, {6, 2}, {7, 1}, {8, 0}, {9, 12}, {10, 11}},
		{{13, 11}, {12, 10}, {0, 9}, {1, 8}, {2, 7}, {3, 6}, {4, 5}},
		{{5, 13}, {6, 4}, {7, 3}, {8, 2}, {9, 1}, {10, 0}, {11, 12}},
		{{13, 12}, {0, 11}, {1, 10}, {2, 9}, {3, 8}, {4, 7}, {5, 6}},
		{{6, 13}, {7, 5}, {8, 4}, {9, 3}, {10, 2}, {11, 1}, {12, 0}},
	},
	16: {
		{{0, 15}, {1, 14}, {2, 13}, {3, 12}, {4, 11}, {5, 10}, {6, 9}, {7, 8}},
		{{15, 8}, {9, 7}, {10, 6}, {11, 5}, {12, 4}, {13, 3}, {14, 2}, {0, 1}},
		{{1, 15}, {2, 0}, {3, 14}, {4, 13}, {5, 12}, {6, 11}, {7, 10}, {8, 9}},
		{{15, 9}, {10, 8}, {11, 7}, {12, 6}, {13, 5}, {14, 4}, {0, 3}, {1, 2}},
		{{2, 15}, {3, 1}, {4, 0}, {5, 14}, {6, 13}, {7, 12}, {8, 11}, {9, 10}},
		{{15, 10}, {11, 9}, {12, 8}, {13, 7}, {14, 6}, {0, 5}, {1, 4}, {2, 3}},
		{{3, 15}, {4, 2}, {5, 1}, {6, 0}, {7, 14}, {8, 13}, {9, 12}, {10, 11}},
		{{15, 11}, {12, 10}, {13, 9}, {14, 8}, {0, 7}, {1, 6}, {2, 5}, {3, 4}},
		{{4, 15}, {5, 3}, {6, 2}, {7, 1}, {8, 0}, {9, 14}, {10, 13}, {11, 12}},
		{{15, 12}, {13, 11}, {14, 10}, {0, 9}, {1, 8}, {2, 7}, {3, 6}, {4, 5}},
		{{5, 15}, {6, 4}, {7, 3}, {8, 2}, {9, 1}, {10, 0}, {11, 14}, {12, 13}},
		{{15, 13}, {14, 12}, {0, 11}, {1, 10}, {2, 9}, {3, 8}, {4, 7}, {5, 6}},
		{{6, 15}, {7, 5}, {8, 4}, {9, 3}, {10, 2}, {11, 1}, {12, 0}, {13, 14}},
		{{15, 14}, {0, 13}, {1, 12}, {2, 11}, {3, 10}, {4, 9}, {5, 8}, {6, 7}},
		{{7, 15}, {8, 6}, {9, 5}, {10, 4}, {11, 3}, {12, 2}, {13, 1}, {14, 0}},
	},
}

// Schedule returns the full round-robin schedule for numPlayers players in
// registration order. Even counts play numPlayers-1 rounds; odd counts play
// numPlayers rounds with one bye per round.
func Schedule(numPlayers int) ([]Round, error) {
	if numPlayers < 3 || numPlayers > 16 {
		return nil, fmt.Errorf("round robin supports 3-16 players, got %v",
			numPlayers)
	}

	tableSize := numPlayers
	if tableSize%2 == 1 {
		tableSize++
	}
	table := bergerTables[tableSize]
	byeSlot := -1
	if numPlayers%2 == 1 {
		byeSlot = tableSize - 1
	}

	rounds := make([]Round, 0, len(table))
	for _, roundTable := range table {
		round := Round{Bye: -1}
		for _, board := range roundTable {
			w, b := board[0], board[1]
			if w == byeSlot || b == byeSlot {
				if w == byeSlot {
					round.Bye = b
				} else {
					round.Bye = w
				}
				continue
			}
			round.Pairings = append(round.Pairings, Pairing{White: w, Black: b})
		}
		rounds = append(rounds, round)
	}

	return rounds, nil
}

// NumRounds returns the schedule length for the given player count without
// materializing it.
func NumRounds(numPlayers int) (int, error) {
	if numPlayers < 3 || numPlayers > 16 {
		return 0, fmt.Errorf("round robin supports 3-16 players, got %v",
			numPlayers)
	}
	if numPlayers%2 == 0 {
		return numPlayers - 1, nil
	}
	return numPlayers, nil
}
