package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	chartio "github.com/matzehuels/cascade/pkg/io"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// definitionEntry describes one candidate definition file shown in the
// interactive picker. Files that fail to parse stay listed but cannot
// be selected.
type definitionEntry struct {
	Path       string
	Title      string
	Categories int
	Modified   time.Time
	Valid      bool
}

// DefinitionListModel is the bubbletea model for interactive definition
// file selection.
type DefinitionListModel struct {
	Entries  []definitionEntry
	Cursor   int
	Selected *definitionEntry
	Height   int
	Offset   int
}

// NewDefinitionListModel creates a new definition list model.
func NewDefinitionListModel(entries []definitionEntry) DefinitionListModel {
	return DefinitionListModel{
		Entries: entries,
		Height:  15,
	}
}

func (m DefinitionListModel) Init() tea.Cmd {
	return nil
}

func (m DefinitionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			entry := m.Entries[m.Cursor]
			if !entry.Valid {
				return m, nil
			}
			m.Selected = &entry
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DefinitionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart Definition"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		title := e.Title
		if title == "" {
			title = "—"
		}
		categories := "—"
		if e.Valid {
			categories = fmt.Sprintf("%d", e.Categories)
		}

		rows = append(rows, []string{cursor, e.Path, title, categories, formatRelativeTime(e.Modified)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "File", "Title", "Categories", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Entries) {
				return lipgloss.NewStyle()
			}
			e := m.Entries[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 4 {
				base = base.Foreground(colorDim)
			}

			switch {
			case isCurrent && e.Valid:
				return base.Foreground(colorGreen).Bold(true)
			case isCurrent:
				return base.Foreground(colorDim).Bold(true)
			case !e.Valid:
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// pickDefinition scans dir for definition files and runs the
// interactive picker. It returns the chosen path.
func pickDefinition(dir string) (string, error) {
	entries, err := scanDefinitions(dir)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		printWarning("No definition files found in %s", dir)
		return "", fmt.Errorf("no definition files (.json, .toml) in %s", dir)
	}

	model := NewDefinitionListModel(entries)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}

	result, ok := final.(DefinitionListModel)
	if !ok || result.Selected == nil {
		return "", fmt.Errorf("no definition selected")
	}
	return result.Selected.Path, nil
}

// scanDefinitions lists JSON and TOML definition files in dir, probing
// each one so the picker can show titles and flag unparseable files.
// Geometry exports (*.layout.json) are skipped.
func scanDefinitions(dir string) ([]definitionEntry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []definitionEntry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		ext := filepath.Ext(name)
		if ext != ".json" && ext != ".toml" {
			continue
		}
		if strings.HasSuffix(name, ".layout.json") {
			continue
		}

		path := filepath.Join(dir, name)
		entry := definitionEntry{Path: path}
		if info, err := f.Info(); err == nil {
			entry.Modified = info.ModTime()
		}
		if def, err := chartio.ReadDefinition(path); err == nil {
			entry.Title = def.Title
			entry.Categories = len(def.Categories)
			entry.Valid = true
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Valid != entries[j].Valid {
			return entries[i].Valid
		}
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
