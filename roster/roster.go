/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package roster imports a saved tournament registration page. The page
// layout is the common club format: a table with id "members" whose header
// row names the columns (Name, Rating, Section, USCF ID, Byes in any
// order), one player per body row.
package roster

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/swisspair/internal"
)

// Entry is one registration row.
type Entry struct {
	Name        string
	Rating      int
	Section     string
	UscfID      string
	ByeRequests string
}

// Roster is a parsed registration page.
type Roster struct {
	EventName string
	Date      time.Time
	Entries   []Entry
}

// Parse reads a registration HTML document. The document must contain a
// members table; event name and date are taken from the page header when
// present.
func Parse(r io.Reader) (*Roster, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse registration page: %w", err)
	}

	roster := &Roster{
		EventName: strings.TrimSpace(doc.Find("h1").First().Text()),
	}
	if dateText := strings.TrimSpace(doc.Find(".event-date, time").First().Text()); dateText != "" {
		if date, err := internal.ParseDateOrZero(dateText); err == nil {
			roster.Date = date
		}
	}

	table := doc.Find("table#members")
	if table.Length() == 0 {
		return nil, fmt.Errorf("registration page has no members table")
	}

	cols := findColumns(table)
	if cols.name == -1 {
		return nil, fmt.Errorf("members table has no name column")
	}

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		name := cellText(cells, cols.name)
		if name == "" {
			return
		}
		e := Entry{
			Name:        internal.NormalizeName(name),
			Section:     cellText(cells, cols.section),
			UscfID:      cellText(cells, cols.uscfID),
			ByeRequests: cellText(cells, cols.byes),
		}
		if r, err := strconv.Atoi(cellText(cells, cols.rating)); err == nil {
			e.Rating = r
		}
		roster.Entries = append(roster.Entries, e)
	})

	if len(roster.Entries) == 0 {
		return nil, fmt.Errorf("members table has no entries")
	}

	return roster, nil
}

type columns struct {
	name, rating, section, uscfID, byes int
}

// findColumns maps header labels to cell indexes. Missing columns stay -1.
func findColumns(table *goquery.Selection) columns {
	cols := columns{name: -1, rating: -1, section: -1, uscfID: -1, byes: -1}
	table.Find("thead th").Each(func(i int, th *goquery.Selection) {
		switch strings.ToLower(strings.TrimSpace(th.Text())) {
		case "name", "player":
			cols.name = i
		case "rating":
			cols.rating = i
		case "section":
			cols.section = i
		case "uscf id", "id":
			cols.uscfID = i
		case "byes", "bye requests":
			cols.byes = i
		}
	})
	return cols
}

func cellText(cells *goquery.Selection, idx int) string {
	if idx < 0 || idx >= cells.Length() {
		return ""
	}
	return strings.TrimSpace(cells.Eq(idx).Text())
}

var byeListRe = regexp.MustCompile(`(?i)\b(?:round|rnd|rounds|rnds)\b[\s:]*((?:\d+(?:\s*[,&;/]\s*\d+)*))`)
var numOnlyRe = regexp.MustCompile(`^\d+$`)
var digitsRe = regexp.MustCompile(`\d+`)

// RequestsBye reports whether the entry asked for a bye in the given round.
// Registration forms accept free text like "1", "round 1,5", or "rnds 1&4".
func (e Entry) RequestsBye(round int) bool {
	s := strings.TrimSpace(e.ByeRequests)
	if s == "" {
		return false
	}
	if numOnlyRe.MatchString(s) {
		if n, err := strconv.Atoi(s); err == nil && n == round {
			return true
		}
		return false
	}
	if matches := byeListRe.FindStringSubmatch(strings.ToLower(s)); matches != nil {
		for _, m := range digitsRe.FindAllString(matches[1], -1) {
			if n, err := strconv.Atoi(m); err == nil && n == round {
				return true
			}
		}
	}
	return false
}

// BySection groups entries by section name, preserving row order.
func (r *Roster) BySection() map[string][]Entry {
	out := make(map[string][]Entry)
	for _, e := range r.Entries {
		out[e.Section] = append(out[e.Section], e)
	}
	return out
}
