package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

var (
	// reTitleSeparator matches the run of '=' that separates the patch title
	// from its changelog. The colon ending the title line may precede it.
	reTitleSeparator = regexp.MustCompile(`:?\s*=+`)

	// reDayMonthYear matches "21 December 2016", "21-Dec-16", "21/Dec/2016".
	reDayMonthYear = regexp.MustCompile(`(\d{1,2})[ .,/-]*([A-Za-z]+)[ .,/-]*(\d{2,4})`)

	// reMonthDayYear matches "December 21, 2016" as used on the blog.
	reMonthDayYear = regexp.MustCompile(`([A-Za-z]+)[ .]+(\d{1,2})(?:st|nd|rd|th)?,?[ ]+(\d{4})`)
)

var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// SplitDocument separates a post's plain-text contents into the release ID
// and the changelog body. The release ID is the trimmed, upper-cased text
// before the separator.
func SplitDocument(contents string) (releaseID, changelog string, err error) {
	loc := reTitleSeparator.FindStringIndex(contents)
	if loc == nil {
		return "", "", entities.ErrMalformedDocument
	}

	releaseID = strings.ToUpper(strings.TrimSpace(contents[:loc[0]]))
	if releaseID == "" {
		return "", "", fmt.Errorf("%w: empty release id", entities.ErrMalformedDocument)
	}

	return releaseID, contents[loc[1]:], nil
}

// ExtractDate finds a date in raw and returns it at midnight in now's
// location. Numeric months and month-first day ordering other than the blog's
// "Month day, year" form are not recognized; in those cases, and whenever
// nothing matches, today's date is returned.
func ExtractDate(raw string, now func() time.Time) time.Time {
	today := now()
	loc := today.Location()

	if m := reDayMonthYear.FindStringSubmatch(raw); m != nil {
		if d, ok := buildDate(m[1], m[2], m[3], loc); ok {
			return d
		}
	}
	if m := reMonthDayYear.FindStringSubmatch(raw); m != nil {
		if d, ok := buildDate(m[2], m[1], m[3], loc); ok {
			return d
		}
	}

	y, mo, d := today.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, loc)
}

func buildDate(dayStr, monthStr, yearStr string, loc *time.Location) (time.Time, bool) {
	month, ok := parseMonth(monthStr)
	if !ok {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	switch {
	case len(yearStr) == 2:
		year += 2000
	case len(yearStr) != 4:
		return time.Time{}, false
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if d.Day() != day || d.Month() != month {
		// time.Date normalizes overflow such as 31 February
		return time.Time{}, false
	}
	return d, true
}

func parseMonth(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	if m, ok := months[name]; ok {
		return m, true
	}
	if len(name) == 3 {
		for full, m := range months {
			if strings.HasPrefix(full, name) {
				return m, true
			}
		}
	}
	return 0, false
}
