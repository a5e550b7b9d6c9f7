package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/vitalflow/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.historyList.SetSize(msg.Width-4, msg.Height-8)
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// While a form is active it owns the keyboard, except for quit.
		if m.state == StateCheckin && m.form != nil && m.form.State == huh.StateNormal {
			if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			break
		}

		// The history list consumes keys while filtering.
		if m.state == StateHistory && m.historyList.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Tab):
			cmds = append(cmds, m.nextState(1))

		case key.Matches(msg, m.keys.ShiftTab):
			cmds = append(cmds, m.nextState(-1))

		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			m.statusMsg = "refreshed"

		case key.Matches(msg, m.keys.Insight):
			if m.state == StateHistory {
				m.showInsight = !m.showInsight
			}

		case key.Matches(msg, m.keys.Delete):
			if m.state == StateHistory {
				if item, ok := m.historyList.SelectedItem().(Item); ok {
					if _, err := m.repo.Delete(item.Entry.ID); err != nil {
						m.statusMsg = fmt.Sprintf("delete failed: %v", err)
					} else {
						m.statusMsg = fmt.Sprintf("deleted %s", item.Entry.Date)
						m.reload()
					}
				}
			}
		}
	}

	switch m.state {
	case StateHistory:
		var cmd tea.Cmd
		m.historyList, cmd = m.historyList.Update(msg)
		cmds = append(cmds, cmd)

	case StateCheckin:
		if m.form != nil {
			form, cmd := m.form.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.form = f
			}
			cmds = append(cmds, cmd)

			switch m.form.State {
			case huh.StateCompleted:
				m.saveCheckin()
			case huh.StateAborted:
				m.form = nil
				m.checkinForm = nil
				m.statusMsg = "check-in cancelled"
				m.state = StateDashboard
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) nextState(step int) tea.Cmd {
	m.statusMsg = ""
	m.state = SessionState((int(m.state) + step + 3) % 3)
	if m.state == StateCheckin && m.today == nil && m.form == nil {
		m.newCheckinForm()
		return m.form.Init()
	}
	return nil
}

func (m *Model) saveCheckin() {
	mood, err := strconv.Atoi(m.checkinForm.Mood)
	if err != nil {
		m.statusMsg = "invalid mood"
		m.form = nil
		return
	}
	entry := models.CheckIn{
		Mood:    mood,
		Journal: m.checkinForm.Journal,
	}
	if err := m.repo.Save(entry); err != nil {
		m.statusMsg = fmt.Sprintf("save failed: %v", err)
	} else {
		m.statusMsg = "checked in for today"
		m.reload()
		m.state = StateDashboard
	}
	m.form = nil
	m.checkinForm = nil
}
