package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Академический журнал"))
	b.WriteString("\n\n")

	b.WriteString("Тип записи: ")
	for i, kind := range m.kinds {
		if i > 0 {
			b.WriteString("  ")
		}
		label := kindLabel(kind)
		if i == m.kindIndex {
			b.WriteString(selectedStyle.Render("[" + label + "]"))
		} else {
			b.WriteString(mutedStyle.Render(" " + label + " "))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	m.renderEntries(&b)

	switch m.mode {
	case modeNotice:
		b.WriteString("\n")
		title := titleStyle.Render(m.noticeTitle)
		if m.noticeTitle == "Ошибка" {
			title = errorStyle.Bold(true).Render(m.noticeTitle)
		}
		b.WriteString(noticeStyle.Render(title + "\n" + m.noticeText + "\n\n" + mutedStyle.Render("Нажмите любую клавишу")))
		b.WriteByte('\n')
	case modeConfirmClear:
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(titleStyle.Render("Подтверждение") + "\nВы действительно хотите очистить журнал? (y/n)"))
		b.WriteByte('\n')
	default:
		if m.statusLine != "" {
			b.WriteString("\n")
			b.WriteString(m.statusLine)
			b.WriteByte('\n')
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Enter добавить запись  Tab тип записи  ↑/↓ прокрутка  Ctrl+L очистить журнал  Ctrl+S сохранить в файл  Esc выход"))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) renderEntries(b *strings.Builder) {
	b.WriteString(m.list.View())
	b.WriteByte('\n')

	total := m.store.Len()
	if total > m.list.Height {
		first := m.list.YOffset + 1
		last := min(m.list.YOffset+m.list.Height, total)
		b.WriteString(mutedStyle.Render(fmt.Sprintf("записи %d–%d из %d  ↑/↓ PgUp/PgDn прокрутка", first, last, total)))
		b.WriteByte('\n')
	}
}
