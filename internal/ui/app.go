package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
)

var errNoFetcher = errors.New("no directory source configured")

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   directory.Fetcher
	PageSize  int
	ThemeName string
	PrefsPath string
	Logger    *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   directory.Fetcher
	browser   *state.Browser
	prefsPath string
	logger    *zap.Logger
	keys      keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	cursor   int

	// Components
	search    textinput.Model
	searching bool
	spinner   spinner.Model
	help      help.Model

	// Overlays. A nil modal means none is open.
	modal    Modal
	showHelp bool

	// Footer flash
	flash     string
	flashWarn bool
	flashSeq  int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	browser := state.NewBrowser(opts.PageSize)
	return Model{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		browser:   browser,
		prefsPath: prefsPath,
		logger:    logger.Named("ui"),
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		snapshot:  browser.Snapshot(),
		search:    newSearchInput(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchUsersCmd(m.ctx, m.fetcher),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case usersLoadedMsg:
		if m.browser.Load(msg.users) {
			m.refresh()
			m.logger.Info("directory loaded", zap.Int("users", m.snapshot.Total))
		}
		return m, nil

	case fetchFailedMsg:
		if m.browser.Fail(msg.err) {
			m.refresh()
			m.logger.Warn("directory fetch failed", zap.Error(msg.err))
		}
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commentSubmittedMsg:
		return m.handleComment(msg)

	case clearFlashMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateModal(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return placeOverlay(m.theme, m.modal.Box(m.theme), m.width, m.height)
	}
	return m.renderMain()
}

// renderMain draws header, search bar, listing, controls and footer. The
// line positions match the constants in layout.go.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderListing())
	b.WriteString("\n\n")
	if controls := m.renderControls(); controls != "" {
		b.WriteString(controls)
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderListing shows cards, or the message for the loading, failed and
// no-results states.
func (m Model) renderListing() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	switch snap.Phase {
	case state.PhaseLoading:
		return m.spinner.View() + " " + styles.MutedText.Render(state.LoadingMessage)
	case state.PhaseFailed:
		return styles.DangerText.Render(state.FetchFailureMessage)
	}
	if snap.Empty() {
		return styles.WarningText.Render(state.NoResultsMessage)
	}
	return m.renderCards(snap.Records)
}

// refresh re-reads the browser snapshot and keeps the cursor on the page.
func (m *Model) refresh() {
	m.snapshot = m.browser.Snapshot()
	if m.cursor >= len(m.snapshot.Records) {
		m.cursor = max(0, len(m.snapshot.Records)-1)
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.modal != nil {
		return m.updateModal(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m.startSearch()

	case key.Matches(msg, m.keys.ClearSearch):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applySearch("")
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.nextPage()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.prevPage()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-gridColumns(m.width))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(gridColumns(m.width))

	case key.Matches(msg, m.keys.Open):
		m.openDetail(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Comment):
		modal, cmd := newCommentModal()
		m.modal = modal
		return m, cmd
	}

	return m, nil
}

// handleMouse maps left clicks to cards, the Prev/Next controls, and
// closing overlays.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.modal != nil {
		box := centeredRect(m.modal.Box(m.theme), m.width, m.height)
		if !box.contains(msg.X, msg.Y) {
			m.modal = nil
			return m, nil
		}
		return m.updateModal(msg)
	}

	records := m.snapshot.Records
	if i := m.cardAt(msg.X, msg.Y, len(records)); i >= 0 {
		m.cursor = i
		m.openDetail(i)
		return m, nil
	}

	if m.snapshot.Controls.Visible && msg.Y == controlsLine(len(records), gridColumns(m.width)) {
		controls := m.controlsLayout(m.snapshot)
		switch {
		case controls.prev.contains(msg.X):
			m.prevPage()
		case controls.next.contains(msg.X):
			m.nextPage()
		}
		return m, nil
	}

	if msg.Y == searchLine && !m.searching {
		return m.startSearch()
	}
	return m, nil
}

// updateModal forwards msg to the open modal, closing it when asked.
func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal == nil {
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	modal, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
	} else {
		m.modal = modal
	}
	return m, cmd
}

// nextPage and prevPage ignore activation at the boundaries.
func (m *Model) nextPage() {
	if !m.snapshot.Controls.NextEnabled || !m.browser.Next() {
		return
	}
	m.cursor = 0
	m.refresh()
	m.logger.Debug("page", zap.Int("page", m.snapshot.Page))
}

func (m *Model) prevPage() {
	if !m.snapshot.Controls.PrevEnabled || !m.browser.Prev() {
		return
	}
	m.cursor = 0
	m.refresh()
	m.logger.Debug("page", zap.Int("page", m.snapshot.Page))
}

// openDetail opens the overlay for the i-th card on the page. Paging state
// is left alone.
func (m *Model) openDetail(i int) {
	if i < 0 || i >= len(m.snapshot.Records) {
		return
	}
	user := m.snapshot.Records[i]
	if m.searching {
		m.searching = false
		m.search.Blur()
	}
	m.modal = newDetailModal(user)
	m.logger.Debug("detail opened", zap.String("user", user.DisplayName()))
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	name := m.theme.Name
	if _, err := prefs.Update(m.prefsPath, func(p *prefs.Prefs) { p.Theme = name }); err != nil {
		m.logger.Warn("save theme failed", zap.Error(err))
	}
}

func (m Model) handleComment(msg commentSubmittedMsg) (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(msg.text)
	if text == "" {
		return m.setFlash(EmptyCommentMessage, true)
	}
	m.logger.Info("comment submitted", zap.String("comment", text))
	return m.setFlash(fmt.Sprintf("Comment submitted: %q", singleLine(text)), false)
}

func (m Model) setFlash(text string, warn bool) (tea.Model, tea.Cmd) {
	m.flashSeq++
	m.flash = text
	m.flashWarn = warn
	return m, clearFlashCmd(m.flashSeq, FlashDuration)
}

// Messages

type usersLoadedMsg struct {
	users []directory.User
}

type fetchFailedMsg struct {
	err error
}

type clearFlashMsg struct {
	seq int
}

// Commands

func fetchUsersCmd(ctx context.Context, fetcher directory.Fetcher) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return fetchFailedMsg{err: errNoFetcher}
		}
		users, err := fetcher.FetchAll(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return usersLoadedMsg{users: users}
	}
}

func clearFlashCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearFlashMsg{seq: seq}
	})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
