/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swisspair/swiss"
)

// Tournament is one event: a set of sections paired independently on the
// same round schedule.
type Tournament struct {
	Name        string
	Date        time.Time
	TotalRounds int

	sections map[string]*Section
	engOpts  []swiss.Option
}

// New creates an event scheduled for totalRounds rounds. Engine options
// apply to every section's pairing engine.
func New(name string, date time.Time, totalRounds int,
	opts ...swiss.Option) *Tournament {

	return &Tournament{
		Name:        name,
		Date:        date,
		TotalRounds: totalRounds,
		sections:    make(map[string]*Section),
		engOpts:     opts,
	}
}

// AddSection returns the named section, creating it on first use.
func (t *Tournament) AddSection(name string) *Section {
	if sec, ok := t.sections[name]; ok {
		return sec
	}
	sec := NewSection(name, t.TotalRounds, t.engOpts...)
	t.sections[name] = sec
	return sec
}

// Section returns the named section, or nil.
func (t *Tournament) Section(name string) *Section {
	return t.sections[name]
}

// SectionNames returns the section names in display order: Open and
// Championship first, then U-sections by descending bound, then the rest
// lexicographically.
func (t *Tournament) SectionNames() []string {
	names := make([]string, 0, len(t.sections))
	for name := range t.sections {
		names = append(names, name)
	}
	sort.Sort(SectionSorter(names))
	return names
}

// Sections returns the sections in display order.
func (t *Tournament) Sections() []*Section {
	var out []*Section
	for _, name := range t.SectionNames() {
		out = append(out, t.sections[name])
	}
	return out
}

// PairNextRound pairs every section's next round concurrently. Sections
// hold disjoint player sets, so the per-section engines never share state;
// byeFn and confirm, if non-nil, must tolerate concurrent calls. On error
// the successfully paired sections keep their pending rounds.
func (t *Tournament) PairNextRound(byeFn swiss.ByeSelector,
	confirm swiss.RepeatConfirmer) (map[string]*Round, error) {

	var mu sync.Mutex
	rounds := make(map[string]*Round)

	g, _ := errgroup.WithContext(context.Background())
	for _, name := range t.SectionNames() {
		sec := t.sections[name]
		if len(sec.players) < 2 {
			continue
		}
		g.Go(func() error {
			round, err := sec.PairNextRound(byeFn, confirm)
			if err != nil {
				return err
			}
			mu.Lock()
			rounds[sec.Name] = round
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rounds, fmt.Errorf("unable to pair round: %w", err)
	}

	return rounds, nil
}

// CompleteRound finalizes the pending round in every paired section.
func (t *Tournament) CompleteRound() error {
	for _, name := range t.SectionNames() {
		sec := t.sections[name]
		if sec.current == nil {
			continue
		}
		if err := sec.CompleteRound(); err != nil {
			return err
		}
	}
	return nil
}
