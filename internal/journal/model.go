package journal

import "time"

// Kind selects which entry variant a description describes.
type Kind uint8

const (
	// KindLiterature marks entries about a literary work.
	KindLiterature Kind = iota + 1
	// KindMath marks entries about a math topic.
	KindMath
)

// String returns the flag value used on the command line and in the UI.
func (k Kind) String() string {
	switch k {
	case KindLiterature:
		return "literature"
	case KindMath:
		return "math"
	default:
		return "unknown"
	}
}

// Kinds lists the recognised variants in selector order.
func Kinds() []Kind {
	return []Kind{KindLiterature, KindMath}
}

// ParseKind maps a type flag to its Kind.
func ParseKind(value string) (Kind, error) {
	switch value {
	case "literature":
		return KindLiterature, nil
	case "math":
		return KindMath, nil
	default:
		return 0, &UnknownTypeError{Type: value}
	}
}

// Entry is a single journal record. Title holds the work title for
// literature entries and the topic name for math entries.
type Entry struct {
	Kind    Kind
	Date    time.Time
	Time    time.Time
	Teacher string
	Title   string
}

// Fields carries the parsed pieces of a description before a variant is chosen.
type Fields struct {
	Date    time.Time
	Time    time.Time
	Teacher string
	Title   string
}

// NewEntry builds the variant selected by kind from parsed fields.
func NewEntry(kind Kind, f Fields) (Entry, error) {
	switch kind {
	case KindLiterature, KindMath:
		return Entry{
			Kind:    kind,
			Date:    f.Date,
			Time:    f.Time,
			Teacher: f.Teacher,
			Title:   f.Title,
		}, nil
	default:
		return Entry{}, &UnknownTypeError{Type: kind.String()}
	}
}

// Build runs the whole pipeline for one user submission: empty check,
// parsing, type lookup and construction.
func Build(kind string, description string) (Entry, error) {
	fields, err := ParseDescription(description)
	if err != nil {
		return Entry{}, err
	}
	k, err := ParseKind(kind)
	if err != nil {
		return Entry{}, err
	}
	return NewEntry(k, fields)
}
