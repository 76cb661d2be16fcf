// Package tui is a terminal front end for the projects showcase.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dconn.dev/showcase/internal/models"
	"dconn.dev/showcase/internal/showcase"
)

var (
	accent = lipgloss.Color("#328af2")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	activeTab     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(accent).Padding(0, 1)
	inactiveTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")).Padding(0, 1)
	nameStyle     = lipgloss.NewStyle().Bold(true)
	urlStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	retryKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

// fetchedMsg carries a finished fetch back to the update loop
type fetchedMsg struct {
	result showcase.Result
}

// Model is the Bubble Tea model of the showcase. All controller state
// changes happen in Update; fetches run as commands.
type Model struct {
	ctx     context.Context
	ctrl    *showcase.Controller
	spinner spinner.Model
}

// New creates a model driving ctrl. ctx bounds the fetches it issues.
func New(ctx context.Context, ctrl *showcase.Controller) Model {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(accent)
	return Model{ctx: ctx, ctrl: ctrl, spinner: s}
}

// Init mounts the controller
func (m Model) Init() tea.Cmd {
	return m.start(m.ctrl.Mount())
}

func (m Model) start(req showcase.Request) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	fetch := func() tea.Msg {
		return fetchedMsg{result: ctrl.Fetch(ctx, req)}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

// Update handles keys, spinner ticks and fetch results
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case fetchedMsg:
		m.ctrl.Resolve(msg.result)
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.State().Status != showcase.StatusInProgress {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := models.Categories()
	current := models.IndexOf(m.ctrl.State().ActiveCategory)

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		next := categories[(current+1)%len(categories)]
		return m, m.start(m.ctrl.ChangeCategory(next.ID))
	case "shift+tab", "left", "h":
		prev := categories[(current-1+len(categories))%len(categories)]
		return m, m.start(m.ctrl.ChangeCategory(prev.ID))
	case "r":
		// Retry is only offered on the failure view.
		if m.ctrl.State().Status != showcase.StatusFailure {
			return m, nil
		}
		return m, m.start(m.ctrl.Retry())
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(categories) {
			return m, m.start(m.ctrl.ChangeCategory(categories[key[0]-'1'].ID))
		}
	}
	return m, nil
}

// View renders the category bar and the current status view
func (m Model) View() string {
	st := m.ctrl.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Projects Showcase"))
	b.WriteString("\n\n")
	b.WriteString(categoryBar(st.ActiveCategory))
	b.WriteString("\n\n")

	switch v := showcase.Render(st).(type) {
	case showcase.EmptyView:
	case showcase.LoadingView:
		b.WriteString(m.spinner.View() + " Loading projects...\n")
	case showcase.ListView:
		b.WriteString(projectList(v.Items))
	case showcase.FailureView:
		b.WriteString(headingStyle.Render(v.Heading) + "\n")
		b.WriteString(v.Message + "\n\n")
		b.WriteString(retryKeyStyle.Render("[r] "+v.Retry) + "\n")
	default:
		panic(fmt.Sprintf("tui: unhandled view %T", v))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/→ next • shift+tab/← previous • 1-5 pick • q quit"))
	b.WriteString("\n")
	return b.String()
}

func categoryBar(active models.CategoryID) string {
	tabs := make([]string, 0, len(models.Categories()))
	for i, c := range models.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c.Label)
		if c.ID == active {
			tabs = append(tabs, activeTab.Render(label))
			continue
		}
		tabs = append(tabs, inactiveTab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func projectList(items []models.Project) string {
	if len(items) == 0 {
		return "No projects in this category.\n"
	}
	var b strings.Builder
	for _, p := range items {
		fmt.Fprintf(&b, "• %s  %s\n", nameStyle.Render(p.Name), urlStyle.Render(p.ImageURL))
	}
	return b.String()
}

// Run starts the terminal program and blocks until the user quits
func Run(ctx context.Context, ctrl *showcase.Controller) error {
	p := tea.NewProgram(New(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run showcase tui: %w", err)
	}
	return nil
}
