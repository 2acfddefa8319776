package journal

import (
	"fmt"
	"strings"
)

// VariantName is the record name shown in the entry list.
func (e Entry) VariantName() string {
	switch e.Kind {
	case KindLiterature:
		return "LiteraryWork"
	case KindMath:
		return "MathTopic"
	default:
		return "AcademicEntry"
	}
}

// TitleField names the variant-specific field.
func (e Entry) TitleField() string {
	switch e.Kind {
	case KindLiterature:
		return "work_title"
	case KindMath:
		return "topic_name"
	default:
		return ""
	}
}

// String renders the display form, e.g.
// LiteraryWork(date=2024-01-15, time=09:30:00, teacher_name='Иванов', work_title='Война и мир').
func (e Entry) String() string {
	var builder strings.Builder
	builder.Grow(64 + len(e.Teacher) + len(e.Title))

	fmt.Fprintf(&builder, "%s(date=%s, time=%s, teacher_name='%s'",
		e.VariantName(), e.Date.Format("2006-01-02"), e.Time.Format("15:04:05"), e.Teacher)
	if field := e.TitleField(); field != "" {
		fmt.Fprintf(&builder, ", %s='%s'", field, e.Title)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Line renders the mirror-file form, which ParseDescription accepts back:
// 2024.01.15, 09:30, "Иванов", "Война и мир".
func (e Entry) Line() string {
	return fmt.Sprintf("%s, %s, \"%s\", \"%s\"",
		e.Date.Format(DateLayout), e.Time.Format(TimeLayout), e.Teacher, e.Title)
}
