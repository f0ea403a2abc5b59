package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// CarrierListModel - Interactive carrier selection
// =============================================================================

// CarrierListModel is the bubbletea model for interactive carrier selection.
// Carriers without an adapter are listed but cannot be selected.
type CarrierListModel struct {
	Carriers []tracking.CarrierInfo
	Cursor   int
	Selected *tracking.CarrierInfo
	Height   int
	Offset   int
}

// NewCarrierListModel creates a new carrier list model with the cursor on
// the first selectable carrier.
func NewCarrierListModel(infos []tracking.CarrierInfo) CarrierListModel {
	m := CarrierListModel{Carriers: infos, Height: 12}
	for i, info := range infos {
		if info.Implemented {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m CarrierListModel) Init() tea.Cmd {
	return nil
}

func (m CarrierListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Carriers)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Carriers) == 0 {
				return m, nil
			}
			info := m.Carriers[m.Cursor]
			if !info.Implemented {
				return m, nil
			}
			m.Selected = &info
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m CarrierListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Carrier"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Carriers))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		info := m.Carriers[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, string(info.ID), string(info.Strategy)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Carrier", "Strategy").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Carriers) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if !m.Carriers[idx].Implemented {
				base = base.Foreground(colorDim)
			} else if col != 2 {
				base = base.Foreground(colorGreen)
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Carriers))))

	return b.String()
}

// pickCarrier runs the picker on the terminal.
func pickCarrier(infos []tracking.CarrierInfo) (tracking.Carrier, error) {
	final, err := tea.NewProgram(NewCarrierListModel(infos)).Run()
	if err != nil {
		return "", err
	}
	fm, ok := final.(CarrierListModel)
	if !ok || fm.Selected == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "no carrier selected")
	}
	return fm.Selected.ID, nil
}
