package journal

import (
	"errors"
	"testing"
	"time"
)

func TestParseDescriptionValid(t *testing.T) {
	fields, err := ParseDescription(`2024.01.15, 09:30, "Иванов", "Война и мир"`)
	if err != nil {
		t.Fatalf("ParseDescription: %v", err)
	}

	wantDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !fields.Date.Equal(wantDate) {
		t.Fatalf("Date = %s, want %s", fields.Date, wantDate)
	}
	if fields.Time.Hour() != 9 || fields.Time.Minute() != 30 {
		t.Fatalf("Time = %s, want 09:30", fields.Time.Format("15:04"))
	}
	if fields.Teacher != "Иванов" {
		t.Fatalf("Teacher = %q, want %q", fields.Teacher, "Иванов")
	}
	if fields.Title != "Война и мир" {
		t.Fatalf("Title = %q, want %q", fields.Title, "Война и мир")
	}
}

func TestParseDescriptionTrimsWhitespaceAndQuotes(t *testing.T) {
	cases := []struct {
		name        string
		input       string
		wantTeacher string
		wantTitle   string
	}{
		{"unquoted", "2024.03.01,14:00,Петров,Теорема Пифагора", "Петров", "Теорема Пифагора"},
		{"padded", "  2024.03.01 ,  14:00 ,  \"Петров\"  ,  \"Теорема Пифагора\"  ", "Петров", "Теорема Пифагора"},
		{"unbalanced quotes", `2024.03.01, 14:00, "Петров, Теорема Пифагора"`, "Петров", "Теорема Пифагора"},
		{"doubled quotes", `2024.03.01, 14:00, ""Петров"", "Алгебра"`, "Петров", "Алгебра"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields, err := ParseDescription(tc.input)
			if err != nil {
				t.Fatalf("ParseDescription(%q): %v", tc.input, err)
			}
			if fields.Teacher != tc.wantTeacher {
				t.Fatalf("Teacher = %q, want %q", fields.Teacher, tc.wantTeacher)
			}
			if fields.Title != tc.wantTitle {
				t.Fatalf("Title = %q, want %q", fields.Title, tc.wantTitle)
			}
		})
	}
}

func TestParseDescriptionRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"three fields", `2024.01.15, 09:30, "Иванов"`},
		{"one field", "hello"},
		{"five fields", `2024.01.15, 09:30, "Иванов", "Война и мир", "extra"`},
		{"comma in title", `2024.01.15, 09:30, "Иванов", "Мир, труд, май"`},
		{"dashed date", `2024-01-15, 09:30, "Иванов", "Война и мир"`},
		{"impossible date", `2024.02.30, 09:30, "Иванов", "Война и мир"`},
		{"seconds in time", `2024.01.15, 09:30:00, "Иванов", "Война и мир"`},
		{"hour out of range", `2024.01.15, 25:00, "Иванов", "Война и мир"`},
		{"month out of range", `2024.13.01, 09:30, "Иванов", "Война и мир"`},
		{"empty teacher", `2024.01.15, 09:30, "", "Война и мир"`},
		{"blank title", `2024.01.15, 09:30, "Иванов", "   "`},
		{"only commas", ",,,"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDescription(tc.input)
			if err == nil {
				t.Fatalf("ParseDescription(%q) succeeded, want FormatError", tc.input)
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("error = %T (%v), want *FormatError", err, err)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("errors.Is(err, ErrInvalidFormat) = false for %v", err)
			}
			if formatErr.Input != tc.input {
				t.Fatalf("Input = %q, want %q", formatErr.Input, tc.input)
			}
		})
	}
}

func TestParseDescriptionEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := ParseDescription(input)
		if !errors.Is(err, ErrEmptyDescription) {
			t.Fatalf("ParseDescription(%q) error = %v, want ErrEmptyDescription", input, err)
		}
		if errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("empty input reported as format error: %v", err)
		}
	}
}

func TestParseDescriptionFieldCountReason(t *testing.T) {
	_, err := ParseDescription("a, b, c")
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("error = %v, want *FormatError", err)
	}
	if formatErr.Reason != "expected 4 comma-separated fields, got 3" {
		t.Fatalf("Reason = %q", formatErr.Reason)
	}
}

func TestParseDescriptionRequiresZeroPadding(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		reason string
	}{
		{"single-digit hour", `2024.01.15, 9:30, "Иванов", "Война и мир"`, `time "9:30" is not HH:MM`},
		{"single-digit minute", `2024.01.15, 09:5, "Иванов", "Война и мир"`, `time "09:5" is not HH:MM`},
		{"single-digit month", `2024.1.15, 09:30, "Иванов", "Война и мир"`, `date "2024.1.15" is not YYYY.MM.DD`},
		{"single-digit day", `2024.01.5, 09:30, "Иванов", "Война и мир"`, `date "2024.01.5" is not YYYY.MM.DD`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDescription(tc.input)
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("error = %v, want *FormatError", err)
			}
			if formatErr.Reason != tc.reason {
				t.Fatalf("Reason = %q, want %q", formatErr.Reason, tc.reason)
			}
		})
	}

	fields, err := ParseDescription(`2024.01.05, 09:05, "Иванов", "Война и мир"`)
	if err != nil {
		t.Fatalf("zero-padded input rejected: %v", err)
	}
	if fields.Date.Day() != 5 || fields.Time.Hour() != 9 || fields.Time.Minute() != 5 {
		t.Fatalf("fields = %s %s", fields.Date.Format(DateLayout), fields.Time.Format(TimeLayout))
	}
}
