package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/vitalflow/internal/analytics"
	"github.com/julianstephens/vitalflow/internal/constants"
	"github.com/julianstephens/vitalflow/internal/journal"
	"github.com/julianstephens/vitalflow/internal/models"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHistory
	StateCheckin
)

var moodEmojis = []string{"😢", "😟", "😕", "😐", "🙂", "😊", "😄", "😃", "😁", "🤩"}

// Item adapts a check-in for the bubbles list.
type Item struct {
	Entry models.CheckIn
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s %d/10", analytics.FullDate(i.Entry.Date), moodEmoji(i.Entry.Mood), i.Entry.Mood)
}

func (i Item) Description() string {
	desc := i.Entry.Journal
	if i.Entry.AIInsight != "" {
		desc += " · 💡 has insight, press i"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Journal }

type CheckinFormModel struct {
	Mood    string
	Journal string
}

type Model struct {
	repo  *journal.Repository
	clock journal.Clock

	state         SessionState
	keys          KeyMap
	help          help.Model
	historyList   list.Model
	form          *huh.Form
	checkinForm   *CheckinFormModel
	entries       []models.CheckIn
	profile       models.UserProfile
	today         *models.CheckIn
	showInsight   bool
	statusMsg     string
	quitting      bool
	width, height int
}

func NewModel(repo *journal.Repository, clock journal.Clock) Model {
	m := Model{
		repo:  repo,
		clock: clock,
		state: StateDashboard,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}

	delegate := list.NewDefaultDelegate()
	m.historyList = list.New([]list.Item{}, delegate, 0, 0)
	m.historyList.Title = "History"
	m.historyList.SetShowHelp(false)

	m.reload()
	return m
}

// reload re-reads everything the views derive from.
func (m *Model) reload() {
	profile, _, err := m.repo.Profile()
	if err == nil {
		m.profile = profile.WithDefaults()
	} else {
		m.profile = models.UserProfile{}.WithDefaults()
	}

	entries, err := m.repo.All()
	if err != nil {
		entries = []models.CheckIn{}
	}
	m.entries = entries

	m.today = nil
	todayDate := journal.DateOf(m.clock.Now())
	for i := range entries {
		if entries[i].Date == todayDate {
			m.today = &entries[i]
			break
		}
	}

	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, Item{Entry: entry})
	}
	m.historyList.SetItems(items)
}

func (m *Model) newCheckinForm() {
	m.checkinForm = &CheckinFormModel{Mood: "5"}

	moodOptions := make([]huh.Option[string], 0, constants.MoodMax)
	for v := constants.MoodMin; v <= constants.MoodMax; v++ {
		moodOptions = append(moodOptions, huh.NewOption(
			fmt.Sprintf("%s %d", moodEmojis[v-1], v), strconv.Itoa(v)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(moodOptions...).
				Value(&m.checkinForm.Mood),
			huh.NewText().
				Title("What's on your mind?").
				CharLimit(constants.MaxJournalLen).
				Value(&m.checkinForm.Journal).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("please write something first")
					}
					return nil
				}),
		),
	)
}

func (m Model) Init() tea.Cmd {
	return nil
}
