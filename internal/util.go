/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeName title-cases each word of a name. Registration pages mix
// ALL CAPS, lower case, and "Last, First" entry styles.
func NormalizeName(s string) string {
	if idx := strings.Index(s, ","); idx != -1 {
		s = strings.TrimSpace(s[idx+1:]) + " " + strings.TrimSpace(s[:idx])
	}
	parts := strings.Fields(s)
	for i, part := range parts {
		runes := []rune(strings.ToLower(part))
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

// ScoreToString renders a chess score with a half-point glyph: 0.5 -> "½",
// 2.5 -> "2½", 3.0 -> "3".
func ScoreToString(score float64) string {
	whole := int(math.Floor(score))
	half := score-math.Floor(score) >= 0.25
	switch {
	case whole == 0 && half:
		return "½"
	case half:
		return fmt.Sprintf("%d½", whole)
	}
	return strconv.Itoa(whole)
}
