package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	navigationdomain "sabalabor/internal/modules/navigation/domain"
	sessiondto "sabalabor/internal/modules/session/dto"
	"sabalabor/internal/ui/components"
	"sabalabor/internal/ui/theme"
	"sabalabor/internal/ui/views/createjob"
	"sabalabor/internal/ui/views/home"
	"sabalabor/internal/ui/views/jobdetail"
	jobsview "sabalabor/internal/ui/views/jobs"
	"sabalabor/internal/ui/views/login"
	"sabalabor/internal/ui/views/profile"
	"sabalabor/internal/ui/views/register"
	"sabalabor/internal/ui/views/welcome"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	login.SessionPort
	register.SessionPort
	Restore(ctx context.Context) sessiondto.SessionOutput
	Current(ctx context.Context) sessiondto.SessionOutput
	Logout(ctx context.Context, remote bool)
}

type treePort interface {
	Tree() navigationdomain.Tree
}

type jobsPort interface {
	home.JobsPort
	jobdetail.JobsPort
	createjob.JobsPort
}

// ─── messages ────────────────────────────────────────────────────────────────

// TreeChangedMsg is sent by the navigation selector whenever the session
// flips between present and absent.
type TreeChangedMsg struct{ Tree navigationdomain.Tree }

type restoredMsg struct{ session sessiondto.SessionOutput }

type loggedOutMsg struct{ remote bool }

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Back    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Back},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It renders whichever screen tree the
// navigation selector reports and never switches trees on its own.
type Model struct {
	session sessionPort
	tree    treePort
	jobs    jobsPort
	account profile.AccountPort
	notes   home.NotificationsPort

	restoring bool
	spinner   spinner.Model
	current   navigationdomain.Tree
	screen    navigationdomain.Screen
	stack     []navigationdomain.Screen
	user      sessiondto.UserOutput

	welcomeView  welcome.Model
	loginView    login.Model
	registerView register.Model
	homeView     home.Model
	jobsView     jobsview.Model
	detailView   jobdetail.Model
	createView   createjob.Model
	profileView  profile.Model

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(session sessionPort, tree treePort, jobs jobsPort, account profile.AccountPort, notes home.NotificationsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Model{
		session:   session,
		tree:      tree,
		jobs:      jobs,
		account:   account,
		notes:     notes,
		restoring: true,
		spinner:   sp,
		current:   navigationdomain.AuthTree,
		screen:    navigationdomain.ScreenWelcome,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "restoring session",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.restoreCmd())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case spinner.TickMsg:
		if m.restoring {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case restoredMsg:
		m.restoring = false
		m.status = "ready"
		return m, m.setTree(m.tree.Tree())

	case TreeChangedMsg:
		if m.restoring || msg.Tree == m.current {
			return m, nil
		}
		if msg.Tree == navigationdomain.AuthTree {
			m.status = "signed out"
		} else {
			m.status = "signed in"
		}
		return m, m.setTree(msg.Tree)

	case loggedOutMsg:
		// The tree flip arrives through TreeChangedMsg.
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Command, msg.Args)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case welcome.ChosenMsg:
		if msg.Choice == welcome.ChooseRegister {
			return m, m.push(navigationdomain.ScreenRegister)
		}
		return m, m.push(navigationdomain.ScreenLogin)

	case login.BackMsg, register.BackMsg, jobdetail.BackMsg, createjob.BackMsg:
		m.pop()
		return m, nil

	case login.DoneMsg:
		if msg.Err != nil {
			m.status = "login failed"
		}
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		return m, cmd

	case register.DoneMsg:
		if msg.Err != nil {
			m.status = "registration failed"
		}
		var cmd tea.Cmd
		m.registerView, cmd = m.registerView.Update(msg)
		return m, cmd

	case home.ActionMsg:
		if msg.Variant == navigationdomain.HomeAvailableJobs {
			m.switchTab(navigationdomain.ScreenJobs)
			return m, nil
		}
		return m, m.push(navigationdomain.ScreenCreateJob)

	case jobsview.OpenMsg:
		m.detailView = jobdetail.New(m.jobs, msg.JobID, m.isWorker())
		m.detailView, _ = m.detailView.Update(m.contentSize())
		return m, tea.Batch(m.push(navigationdomain.ScreenJobDetail), m.detailView.Init())

	case jobdetail.ActionDoneMsg:
		if msg.Err != nil {
			m.status = msg.Action + " failed"
		} else {
			m.status = msg.Action + " done"
		}
		if msg.Deleted {
			m.pop()
			return m, m.jobsView.Reload()
		}
		var cmd tea.Cmd
		m.detailView, cmd = m.detailView.Update(msg)
		return m, cmd

	case createjob.CreatedMsg:
		if msg.Err == nil {
			m.status = "posted " + msg.Job.Title
			m.pop()
			return m, tea.Batch(m.jobsView.Reload(), m.homeView.Init())
		}
		var cmd tea.Cmd
		m.createView, cmd = m.createView.Update(msg)
		return m, cmd

	case profile.LogoutMsg:
		return m, m.logoutCmd(false)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturesText() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case ":":
				if m.current == navigationdomain.MainTree {
					return m, m.palette.Open()
				}
			case "tab":
				if m.current == navigationdomain.MainTree {
					m.cycleTab(1)
					return m, nil
				}
			case "shift+tab":
				if m.current == navigationdomain.MainTree {
					m.cycleTab(-1)
					return m, nil
				}
			}
		}
	}

	return m, m.updateActive(msg)
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.screen {
	case navigationdomain.ScreenWelcome:
		m.welcomeView, cmd = m.welcomeView.Update(msg)
	case navigationdomain.ScreenLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case navigationdomain.ScreenRegister:
		m.registerView, cmd = m.registerView.Update(msg)
	case navigationdomain.ScreenHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case navigationdomain.ScreenJobs:
		m.jobsView, cmd = m.jobsView.Update(msg)
	case navigationdomain.ScreenJobDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case navigationdomain.ScreenCreateJob:
		m.createView, cmd = m.createView.Update(msg)
	case navigationdomain.ScreenProfile:
		m.profileView, cmd = m.profileView.Update(msg)
	}

	// Background loads for tabs that are not on screen still need to land.
	switch msg := msg.(type) {
	case home.SummaryMsg:
		if m.screen != navigationdomain.ScreenHome {
			m.homeView, _ = m.homeView.Update(msg)
		}
	case jobsview.LoadedMsg:
		if m.screen != navigationdomain.ScreenJobs {
			m.jobsView, _ = m.jobsView.Update(msg)
		}
	case profile.LoadedMsg:
		if m.screen != navigationdomain.ScreenProfile {
			m.profileView, _ = m.profileView.Update(msg)
		}
	}
	return cmd
}

// ─── navigation ──────────────────────────────────────────────────────────────

// setTree discards every screen of the previous tree and starts the new one
// at its initial screen.
func (m *Model) setTree(tree navigationdomain.Tree) tea.Cmd {
	route := navigationdomain.RouteFor(tree)
	m.current = tree
	m.screen = route.Initial
	m.stack = nil

	if tree == navigationdomain.AuthTree {
		m.user = sessiondto.UserOutput{}
		m.welcomeView = welcome.New()
		m.loginView = login.New(m.session)
		m.registerView = register.New(m.session)
		m.propagateSize()
		return nil
	}

	m.user = m.session.Current(context.Background()).User
	m.palette.SetRole(m.user.UserType)
	m.homeView = home.New(m.jobs, m.notes, m.user)
	m.jobsView = jobsview.New(m.jobs, m.isWorker())
	m.createView = createjob.New(m.jobs)
	m.profileView = profile.New(m.account)
	m.propagateSize()
	return tea.Batch(m.homeView.Init(), m.jobsView.Init(), m.profileView.Init())
}

// push opens screen on top of the current one. Screens outside the current
// tree are refused.
func (m *Model) push(screen navigationdomain.Screen) tea.Cmd {
	if !navigationdomain.RouteFor(m.current).Contains(screen) {
		m.status = string(screen) + " is not available here"
		return nil
	}
	m.stack = append(m.stack, m.screen)
	m.screen = screen
	switch screen {
	case navigationdomain.ScreenLogin:
		m.loginView = login.New(m.session)
		m.loginView, _ = m.loginView.Update(m.contentSize())
		return m.loginView.Init()
	case navigationdomain.ScreenRegister:
		m.registerView = register.New(m.session)
		m.registerView, _ = m.registerView.Update(m.contentSize())
		return m.registerView.Init()
	case navigationdomain.ScreenCreateJob:
		m.createView = createjob.New(m.jobs)
		m.createView, _ = m.createView.Update(m.contentSize())
		return m.createView.Init()
	}
	return nil
}

func (m *Model) pop() {
	if len(m.stack) == 0 {
		return
	}
	m.screen = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
}

func (m *Model) switchTab(screen navigationdomain.Screen) {
	if !navigationdomain.RouteFor(m.current).Contains(screen) {
		return
	}
	m.stack = nil
	m.screen = screen
}

func (m *Model) cycleTab(delta int) {
	tabs := navigationdomain.RouteFor(m.current).Tabs
	if len(tabs) == 0 {
		return
	}
	idx := 0
	for i, t := range tabs {
		if t == m.activeTab() {
			idx = i
		}
	}
	m.switchTab(tabs[(idx+delta+len(tabs))%len(tabs)])
}

// activeTab is the tab that owns the current screen.
func (m Model) activeTab() navigationdomain.Screen {
	for _, t := range navigationdomain.RouteFor(m.current).Tabs {
		if t == m.screen {
			return t
		}
	}
	for i := len(m.stack) - 1; i >= 0; i-- {
		for _, t := range navigationdomain.RouteFor(m.current).Tabs {
			if t == m.stack[i] {
				return t
			}
		}
	}
	return navigationdomain.RouteFor(m.current).Initial
}

// capturesText reports whether the active screen consumes free typing, in
// which case global single-key bindings must yield.
func (m Model) capturesText() bool {
	switch m.screen {
	case navigationdomain.ScreenLogin, navigationdomain.ScreenRegister, navigationdomain.ScreenCreateJob:
		return true
	case navigationdomain.ScreenJobs:
		return m.jobsView.Filtering()
	}
	return false
}

func (m Model) isWorker() bool {
	return m.user.UserType == "worker"
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.restoring {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			components.Logo()+"\n\n"+m.spinner.View()+" Restoring session…")
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.screen {
	case navigationdomain.ScreenWelcome:
		return m.welcomeView.View()
	case navigationdomain.ScreenLogin:
		return m.loginView.View()
	case navigationdomain.ScreenRegister:
		return m.registerView.View()
	case navigationdomain.ScreenHome:
		return m.homeView.View()
	case navigationdomain.ScreenJobs:
		return m.jobsView.View()
	case navigationdomain.ScreenJobDetail:
		return m.detailView.View()
	case navigationdomain.ScreenCreateJob:
		return m.createView.View()
	case navigationdomain.ScreenProfile:
		return m.profileView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	bar := components.Logo()
	tabs := navigationdomain.RouteFor(m.current).Tabs
	if len(tabs) > 0 {
		active := m.activeTab()
		parts := make([]string, len(tabs))
		for i, t := range tabs {
			if t == active {
				parts[i] = theme.Hot.Render(" " + string(t) + " ")
			} else {
				parts[i] = theme.Muted.Render(" " + string(t) + " ")
			}
		}
		bar += "  " + strings.Join(parts, theme.Muted.Render(" │ "))
	}
	return lipgloss.NewStyle().Background(theme.Surface).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  q:quit")
	if m.current == navigationdomain.MainTree {
		left = theme.Hot.Render("● "+m.user.Name) + theme.Muted.Render(" ("+m.user.UserType+")") + "  " + left
		right = theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Surface).Width(m.width).Render(bar)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(command string, args []string) (tea.Model, tea.Cmd) {
	switch command {
	case "home":
		m.switchTab(navigationdomain.ScreenHome)
	case "jobs":
		m.switchTab(navigationdomain.ScreenJobs)
	case "profile":
		m.switchTab(navigationdomain.ScreenProfile)

	case "jobs:refresh":
		m.status = "refreshing jobs"
		return m, m.jobsView.Reload()

	case "job:new":
		if m.isWorker() {
			m.status = "only clients can post jobs"
			return m, nil
		}
		return m, m.push(navigationdomain.ScreenCreateJob)

	case "job:apply", "job:complete", "job:delete", "job:accept":
		open, ok := m.focusJob()
		if !ok {
			m.status = "no job selected"
			return m, nil
		}
		var action tea.Cmd
		switch command {
		case "job:apply":
			action = m.detailView.Apply()
		case "job:complete":
			action = m.detailView.Complete()
		case "job:delete":
			action = m.detailView.Delete()
		case "job:accept":
			if len(args) < 1 {
				m.status = "usage: job:accept <worker-id>"
				return m, nil
			}
			workerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				m.status = "invalid worker id"
				return m, nil
			}
			action = m.detailView.Accept(workerID)
		}
		return m, tea.Batch(open, action)

	case "logout":
		return m, m.logoutCmd(false)
	case "logout:remote":
		return m, m.logoutCmd(true)

	default:
		m.status = "unknown command: " + command
	}
	return m, nil
}

// focusJob makes sure the detail screen shows the job the palette acts on,
// opening the job selected in the list when needed.
func (m *Model) focusJob() (tea.Cmd, bool) {
	if m.screen == navigationdomain.ScreenJobDetail {
		return nil, true
	}
	id, ok := m.jobsView.SelectedJobID()
	if !ok || m.activeTab() != navigationdomain.ScreenJobs {
		return nil, false
	}
	m.detailView = jobdetail.New(m.jobs, id, m.isWorker())
	m.detailView, _ = m.detailView.Update(m.contentSize())
	return tea.Batch(m.push(navigationdomain.ScreenJobDetail), m.detailView.Init()), true
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: max(m.height-3, 1)}
}

func (m *Model) propagateSize() {
	sz := m.contentSize()
	m.welcomeView, _ = m.welcomeView.Update(sz)
	m.loginView, _ = m.loginView.Update(sz)
	m.registerView, _ = m.registerView.Update(sz)
	if m.current == navigationdomain.MainTree {
		m.homeView, _ = m.homeView.Update(sz)
		m.jobsView, _ = m.jobsView.Update(sz)
		m.detailView, _ = m.detailView.Update(sz)
		m.createView, _ = m.createView.Update(sz)
		m.profileView, _ = m.profileView.Update(sz)
	}
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) restoreCmd() tea.Cmd {
	return func() tea.Msg {
		return restoredMsg{session: m.session.Restore(context.Background())}
	}
}

func (m Model) logoutCmd(remote bool) tea.Cmd {
	return func() tea.Msg {
		m.session.Logout(context.Background(), remote)
		return loggedOutMsg{remote: remote}
	}
}
