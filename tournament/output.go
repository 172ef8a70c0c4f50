/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikeb26/swisspair/internal"
	"github.com/mikeb26/swisspair/swiss"
)

// BuildPairingsOutput formats each section's latest round into grouped,
// aligned string output.
func BuildPairingsOutput(t *Tournament) string {
	var sb strings.Builder

	sections := t.Sections()
	wroteAny := false
	for _, sec := range sections {
		round := sec.CurrentRound()
		if round == nil {
			continue
		}
		if !wroteAny {
			sb.WriteString(fmt.Sprintf("Round %v Pairings:\n\n", round.Number))
			wroteAny = true
		}

		type row struct{ board, white, black string }
		var rows []row
		for i, pr := range round.Pairings {
			rows = append(rows, row{
				board: fmt.Sprintf("%d.", i+1),
				white: playerCell(pr.White),
				black: playerCell(pr.Black),
			})
		}
		if round.Bye != nil {
			rows = append(rows, row{
				board: "n/a",
				white: playerCell(round.Bye),
				black: "BYE(1)",
			})
		}
		for _, p := range round.Unpaired {
			rows = append(rows, row{
				board: "n/a",
				white: playerCell(p),
				black: "UNPAIRED",
			})
		}

		// Compute column widths
		maxB, maxW, maxBl := len("Board"), len("White"), len("Black")
		for _, r := range rows {
			if l := len(r.board); l > maxB {
				maxB = l
			}
			if l := len(r.white); l > maxW {
				maxW = l
			}
			if l := len(r.black); l > maxBl {
				maxBl = l
			}
		}

		if len(sections) > 1 {
			sb.WriteString(fmt.Sprintf("%s Section\n", sectionHeader(sec.Name)))
		}
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, "Board", maxW,
			"White", maxBl, "Black"))
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, r.board,
				maxW, r.white, maxBl, r.black))
		}
		sb.WriteString("\n")
	}

	if !wroteAny {
		return "No pairings computed yet\n"
	}
	return sb.String()
}

// BuildStandingsOutput formats per-section standings into grouped, aligned
// string output. Tied players share a place number, shown once.
func BuildStandingsOutput(t *Tournament) string {
	var sb strings.Builder

	sections := t.Sections()
	for _, sec := range sections {
		players := sec.Standings()
		if len(players) == 0 {
			continue
		}

		type row struct{ rank, player, score string }
		var rows []row
		priorScore := -1.0
		for idx, p := range players {
			var rank string
			if idx != 0 && p.Score == priorScore {
				rank = ""
			} else {
				rank = fmt.Sprintf("%v.", idx+1)
				priorScore = p.Score
			}
			rows = append(rows, row{
				rank:   rank,
				player: p.Name,
				score:  internal.ScoreToString(p.Score),
			})
		}

		// Compute column widths
		maxP, maxN, maxS := len("Place"), len("Name"), len("Score")
		for _, r := range rows {
			if l := len(r.rank); l > maxP {
				maxP = l
			}
			if l := len(r.player); l > maxN {
				maxN = l
			}
			if l := len(r.score); l > maxS {
				maxS = l
			}
		}

		if len(sections) > 1 {
			sb.WriteString(fmt.Sprintf("%s Section\n", sectionHeader(sec.Name)))
		}
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, "Place", maxN,
			"Name", maxS, "Score"))
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, r.rank,
				maxN, r.player, maxS, r.score))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// BuildEntriesOutput formats each section's roster into grouped, aligned
// string output, highest rated first.
func BuildEntriesOutput(t *Tournament) string {
	var sb strings.Builder

	sections := t.Sections()
	for _, sec := range sections {
		players := sec.Players()
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].Rating > players[j].Rating
		})

		type row struct{ player, rating string }
		var rows []row
		for _, p := range players {
			r := "unrated"
			if p.Rating != 0 {
				r = fmt.Sprintf("%v", p.Rating)
			}
			rows = append(rows, row{player: p.Name, rating: r})
		}

		// Compute column widths
		maxP, maxR := len("Player"), len("Rating")
		for _, r := range rows {
			if l := len(r.player); l > maxP {
				maxP = l
			}
			if l := len(r.rating); l > maxR {
				maxR = l
			}
		}

		if len(sections) > 1 {
			sb.WriteString(fmt.Sprintf("%s Section\n", sectionHeader(sec.Name)))
		}
		sb.WriteString(fmt.Sprintf("%-*s  %-*s\n", maxP, "Player", maxR,
			"Rating"))
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("%-*s  %-*s\n", maxP, r.player,
				maxR, r.rating))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func playerCell(p *swiss.Player) string {
	return fmt.Sprintf("%s(%d %v)", p.Name, p.Rating,
		internal.ScoreToString(p.Score))
}

func sectionHeader(name string) string {
	if name == "" {
		return "UNNAMED"
	}
	return name
}
