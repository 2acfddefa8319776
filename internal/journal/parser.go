package journal

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the YYYY.MM.DD form used in descriptions and the mirror file.
	DateLayout = "2006.01.02"
	// TimeLayout is the HH:MM form used in descriptions and the mirror file.
	TimeLayout = "15:04"

	fieldCount = 4
)

// ParseDescription splits a description into its four fields.
//
// The input is split at every comma, so neither the teacher nor the title may
// contain one. Each segment is trimmed of whitespace and the teacher and title
// segments also lose any double quotes at either end. Every date and time
// component must be zero-padded: 2024.01.05 and 09:05, never 2024.1.5 or 9:5.
func ParseDescription(description string) (Fields, error) {
	if strings.TrimSpace(description) == "" {
		return Fields{}, ErrEmptyDescription
	}

	parts := strings.Split(description, ",")
	if len(parts) != fieldCount {
		return Fields{}, &FormatError{
			Input:  description,
			Reason: fmt.Sprintf("expected %d comma-separated fields, got %d", fieldCount, len(parts)),
		}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	date, err := parseExact(DateLayout, parts[0])
	if err != nil {
		return Fields{}, &FormatError{Input: description, Reason: fmt.Sprintf("date %q is not YYYY.MM.DD", parts[0])}
	}

	clock, err := parseExact(TimeLayout, parts[1])
	if err != nil {
		return Fields{}, &FormatError{Input: description, Reason: fmt.Sprintf("time %q is not HH:MM", parts[1])}
	}

	teacher := unquote(parts[2])
	if strings.TrimSpace(teacher) == "" {
		return Fields{}, &FormatError{Input: description, Reason: "teacher name is empty"}
	}
	title := unquote(parts[3])
	if strings.TrimSpace(title) == "" {
		return Fields{}, &FormatError{Input: description, Reason: "title is empty"}
	}

	return Fields{
		Date:    date,
		Time:    clock,
		Teacher: teacher,
		Title:   title,
	}, nil
}

// parseExact parses value and rejects forms the layout only tolerates, such as
// the single-digit hour "15" accepts.
func parseExact(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(layout) != value {
		return time.Time{}, fmt.Errorf("%q is not in canonical %s form", value, layout)
	}
	return t, nil
}

func unquote(segment string) string {
	return strings.Trim(segment, `"`)
}
