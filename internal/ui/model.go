package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/faizmokh/jurnal/internal/journal"
	"github.com/faizmokh/jurnal/internal/logging"
)

const (
	formatHint  = `YYYY.MM.DD, HH:MM, "Преподаватель", "Название"`
	chromeLines = 13

	defaultWidth  = 120
	defaultHeight = 24
)

// Model owns Bubble Tea state for the journal form.
type Model struct {
	store *journal.Store
	log   zerolog.Logger

	kinds     []journal.Kind
	kindIndex int
	input     textinput.Model
	list      viewport.Model

	mode        mode
	noticeTitle string
	noticeText  string
	statusLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeConfirmClear
	modeNotice
)

// NewModel builds the form around an explicitly owned store.
func NewModel(store *journal.Store, log zerolog.Logger) Model {
	input := textinput.New()
	input.Placeholder = "Введите описание: " + formatHint
	input.Prompt = "> "
	input.Focus()

	m := Model{
		store: store,
		log:   logging.Component(log, "ui"),
		kinds: journal.Kinds(),
		input: input,
		list:  viewport.New(defaultWidth, listHeight(defaultHeight)),
		mode:  modeNormal,
	}
	m.refreshList()
	return m
}

// listHeight is the number of rows left for entries once the form chrome is
// drawn.
func listHeight(windowHeight int) int {
	return max(windowHeight-chromeLines, 1)
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes key presses to the active dialog or to the form.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		m.list.Width = msg.Width
		m.list.Height = listHeight(msg.Height)
		m.list.SetYOffset(m.list.YOffset)
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeConfirmClear:
			return m.handleConfirmKey(msg)
		case modeNotice:
			return m.handleNoticeKey(msg)
		default:
			return m.handleKey(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		return m.addEntry()
	case "tab":
		m.kindIndex = (m.kindIndex + 1) % len(m.kinds)
		return m, nil
	case "shift+tab":
		m.kindIndex = (m.kindIndex + len(m.kinds) - 1) % len(m.kinds)
		return m, nil
	case "ctrl+l":
		return m.beginClear()
	case "ctrl+s":
		return m.save()
	case "up":
		m.list.SetYOffset(m.list.YOffset - 1)
		return m, nil
	case "down":
		m.list.SetYOffset(m.list.YOffset + 1)
		return m, nil
	case "pgup":
		m.list.SetYOffset(m.list.YOffset - m.list.Height)
		return m, nil
	case "pgdown":
		m.list.SetYOffset(m.list.YOffset + m.list.Height)
		return m, nil
	case "ctrl+home":
		m.list.GotoTop()
		return m, nil
	case "ctrl+end":
		m.list.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "д", "Д":
		m.store.Clear()
		m.refreshList()
		m.mode = modeNormal
		m.statusLine = "Журнал очищен."
		return m, nil
	case "n", "N", "н", "Н", "esc", "enter":
		m.mode = modeNormal
		m.statusLine = "Очистка отменена."
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleNoticeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.mode = modeNormal
	m.noticeTitle = ""
	m.noticeText = ""
	return m, nil
}

func (m Model) addEntry() (tea.Model, tea.Cmd) {
	description := strings.TrimSpace(m.input.Value())
	if description == "" {
		return m.showNotice("Ошибка", "Описание не может быть пустым"), nil
	}

	kind := m.selectedKind()
	entry, err := journal.Build(kind.String(), description)
	if err != nil {
		m.log.Debug().Err(err).Str("kind", kind.String()).Msg("rejected description")
		return m.showNotice("Ошибка", describeError(err)), nil
	}

	m.store.Add(entry)
	m.refreshList()
	m.list.GotoBottom()
	m.input.Reset()
	m.statusLine = fmt.Sprintf("Запись добавлена (%d).", m.store.Len())
	return m, nil
}

func (m Model) beginClear() (tea.Model, tea.Cmd) {
	if m.store.Len() == 0 {
		return m, nil
	}
	m.mode = modeConfirmClear
	m.statusLine = ""
	return m, nil
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if err := m.store.Save(); err != nil {
		if errors.Is(err, journal.ErrNoMirror) {
			return m.showNotice("Ошибка", "Сохранение в файл отключено (JURNAL_PERSIST=false)"), nil
		}
		m.log.Error().Err(err).Msg("explicit save failed")
		return m.showNotice("Ошибка", "Ошибка при сохранении: "+err.Error()), nil
	}
	return m.showNotice("Сохранено", "Данные успешно сохранены в файл:\n"+m.store.Location()), nil
}

func (m Model) showNotice(title, text string) Model {
	m.mode = modeNotice
	m.noticeTitle = title
	m.noticeText = text
	m.statusLine = ""
	return m
}

// refreshList re-renders the store into the scrollable list. The viewport
// keeps its offset, clamped to the new content.
func (m *Model) refreshList() {
	entries := m.store.All()
	if len(entries) == 0 {
		m.list.SetContent(mutedStyle.Render("(журнал пуст)"))
		m.list.GotoTop()
		return
	}
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.String()
	}
	m.list.SetContent(strings.Join(lines, "\n"))
}

func (m Model) selectedKind() journal.Kind {
	return m.kinds[m.kindIndex]
}

func describeError(err error) string {
	var (
		formatErr *journal.FormatError
		typeErr   *journal.UnknownTypeError
	)
	switch {
	case errors.As(err, &formatErr):
		return fmt.Sprintf("Ошибка формата: %s\nПравильный формат: %s", formatErr.Reason, formatHint)
	case errors.Is(err, journal.ErrEmptyDescription):
		return "Описание не может быть пустым"
	case errors.As(err, &typeErr):
		return "Неизвестный тип записи: " + typeErr.Type
	default:
		return err.Error()
	}
}

func kindLabel(kind journal.Kind) string {
	switch kind {
	case journal.KindLiterature:
		return "Литературное произведение"
	case journal.KindMath:
		return "Тема по математике"
	default:
		return kind.String()
	}
}
