/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mikeb26/swisspair/roster"
	"github.com/mikeb26/swisspair/tournament"
)

func main() {
	path, rounds := parseArgs()

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: Failed to open %v: %v", os.Args[0], path, err)
	}
	defer f.Close()

	reg, err := roster.Parse(f)
	if err != nil {
		log.Fatalf("%v: Failed to parse %v: %v", os.Args[0], path, err)
	}

	event := tournament.New(reg.EventName, reg.Date, rounds)
	requestedByes := make(map[string][]string)
	for secName, entries := range reg.BySection() {
		sec := event.AddSection(secName)
		for _, e := range entries {
			if e.RequestsBye(1) {
				requestedByes[secName] = append(requestedByes[secName], e.Name)
				continue
			}
			if _, err := sec.AddPlayer(e.Name, e.Rating); err != nil {
				log.Fatalf("%v: Failed to add %v: %v", os.Args[0], e.Name, err)
			}
		}
	}

	if _, err := event.PairNextRound(nil, nil); err != nil {
		log.Fatalf("%v: Failed to pair round 1: %v", os.Args[0], err)
	}

	fmt.Printf("Predicted Round 1 Pairings")
	if reg.EventName != "" {
		fmt.Printf(" for %v", reg.EventName)
	}
	if !reg.Date.IsZero() {
		fmt.Printf(" (%v)", reg.Date.Format("Jan 2, 2006"))
	}
	fmt.Printf(":\n\n")
	fmt.Print(tournament.BuildPairingsOutput(event))

	for secName, names := range requestedByes {
		for _, name := range names {
			if secName != "" {
				fmt.Printf("  BYE(½) [%v]: %v\n", secName, name)
			} else {
				fmt.Printf("  BYE(½): %v\n", name)
			}
		}
	}
}

func parseArgs() (string, int) {
	rounds := flag.Int("rounds", 4, "number of rounds in the event")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *rounds < 1 {
		fmt.Fprintf(flag.CommandLine.Output(), "invalid round count %v\n",
			strconv.Itoa(*rounds))
		os.Exit(1)
	}

	return flag.Arg(0), *rounds
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage:\n\n%v [-rounds <n>] <entries.html>\n\nRead a saved tournament registration page and predict first round pairings.\n",
		os.Args[0])
}
