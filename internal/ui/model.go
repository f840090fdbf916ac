package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/logger"
	"folio/internal/responsive"
	"folio/internal/storage"
	"folio/internal/theme"
	"folio/internal/ui/input"
	inputtypes "folio/internal/ui/input/types"
	"folio/internal/ui/services/navigation"
	"folio/internal/ui/services/search"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

const (
	toastDuration        = 3 * time.Second
	defaultSearchDelay   = 150 * time.Millisecond
	defaultLoadDelay     = 500 * time.Millisecond
	contactSubmitTimeout = 10 * time.Second
)

// Options wires the model to the rest of the application
type Options struct {
	Config    *config.Config
	Bus       eventbus.EventBus
	Portfolio *content.Portfolio
	Store     storage.Store
	Contact   *contact.Service
	// Scheme is the OS color scheme followed while the preference is System
	Scheme       theme.SchemeSource
	Capabilities responsive.Capabilities
	// Roll feeds the dev-mode failure simulation; nil picks a seeded source
	Roll func() float64
	// OnReady is called once, after the first window size is known
	OnReady func()
}

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	portfolio *content.Portfolio
	store     storage.Store
	caps      responsive.Capabilities
	metrics   responsive.CellMetrics

	theme    *theme.Controller
	session  *state.Session
	input    *input.Handler
	renderer *views.Renderer
	flow     *contact.Flow
	contact  *contact.Service

	width    int
	height   int
	help     help.Model
	viewport viewport.Model
	spinner  spinner.Model

	searchDelay   time.Duration
	loadDelay     time.Duration
	searchSeq     uint64
	searchPending bool
	pendingSearch string

	loadToken   uint64
	spinning    bool
	lastSection string
	filterIdx   int

	toast    string
	toastSeq uint64

	crashed     bool
	showHelp    bool
	inPagerMode bool
	paletteRows []views.PaletteRow
	onReady     func()

	// Commands queued by suggestion callbacks, which cannot return them
	queued []tea.Cmd

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:       opts.Bus,
		config:    cfg,
		portfolio: opts.Portfolio,
		store:     opts.Store,
		caps:      opts.Capabilities,
		metrics: responsive.CellMetrics{
			WidthPx:  cfg.UI.CellWidthPx,
			HeightPx: cfg.UI.CellHeightPx,
		},
		contact:     opts.Contact,
		flow:        contact.NewFlow(),
		input:       input.New(),
		help:        help.New(),
		viewport:    viewport.New(80, 20),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		searchDelay: durationOr(cfg.UI.SearchDebounceMs, defaultSearchDelay),
		loadDelay:   durationOr(cfg.UI.LoadDelayMs, defaultLoadDelay),
		onReady:     opts.OnReady,
	}
	if m.caps.ReducedMotion {
		m.spinner.Spinner = spinner.Line
	}

	m.theme = theme.NewController(opts.Store, opts.Scheme, nil, opts.Bus)
	m.renderer = views.NewRenderer(m.theme.Effective() == theme.Dark)

	m.session = state.NewSession(state.Options{
		Entries: m.portfolio.Navigation,
		Theme:   m.theme,
		Bus:     opts.Bus,
		Loader:  state.NewLoader(cfg.DevMode, opts.Roll),
		Tier:    responsive.Desktop,
	})
	m.session.Bind(m.callbacks())

	m.restoreFilter()
	return m
}

func durationOr(ms int, def time.Duration) time.Duration {
	if ms < 0 {
		return 0
	}
	if ms == 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// callbacks binds suggestion actions to the model. Commands are queued and
// picked up at the end of the update that ran the suggestion.
func (m *Model) callbacks() search.Callbacks {
	return search.Callbacks{
		Navigate: m.session.NavigateRoute,
		Actions: map[domain.ActionKind]func(string){
			domain.ActionToggleTheme: func(string) {
				m.session.ToggleTheme()
			},
			domain.ActionOpenExternal: func(url string) {
				m.queued = append(m.queued, openExternal(url))
			},
			domain.ActionCopyEmail: func(string) {
				m.queued = append(m.queued, copyToClipboard("email", m.portfolio.Profile.Email))
			},
		},
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Session exposes the interaction state, mainly for tests
func (m *Model) Session() *state.Session {
	return m.session
}

// Close releases the theme subscription
func (m *Model) Close() {
	m.theme.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.input.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.onReady != nil {
			m.onReady()
			m.onReady = nil
		}

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
			}
			return m, nil
		}

		ctx := &input.ModelContext{Session: m.session, Failed: m.crashed}
		actions, cmd := m.input.HandleKey(msg, ctx)
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	default:
		if cmd := m.input.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.handleNonKeyboardMsg(msg))
	}

	cmds = append(cmds, m.afterUpdate()...)
	return m, tea.Batch(cmds...)
}

// afterUpdate reconciles the view with the session after any change:
// theme, input mode, load timers and the content panel
func (m *Model) afterUpdate() []tea.Cmd {
	var cmds []tea.Cmd

	cmds = append(cmds, m.queued...)
	m.queued = nil

	m.renderer.SetDark(m.theme.Effective() == theme.Dark)

	ctx := &input.ModelContext{Session: m.session, Failed: m.crashed}
	if _, cmd := m.input.SyncMode(m.desiredMode(), ctx); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.session.SetSearchFocused(m.input.TextInput() != nil)

	if token, ok := m.session.PendingLoad(); ok && token != m.loadToken {
		m.loadToken = token
		cmds = append(cmds, tea.Tick(m.loadDelay, func(time.Time) tea.Msg {
			return loadDoneMsg{token: token}
		}))
		if !m.spinning {
			m.spinning = true
			cmds = append(cmds, m.spinner.Tick)
		}
	}

	section := ""
	if sec, ok := m.session.Navigation().Section(); ok {
		section = string(sec)
	}
	if section != m.lastSection {
		m.lastSection = section
		m.crashed = false
		m.viewport.GotoTop()
	}
	m.refreshContent()
	return cmds
}

// desiredMode maps the view state machine onto an input mode
func (m *Model) desiredMode() inputtypes.Mode {
	nav := m.session.Navigation()
	if nav.Mode() == navigation.ViewContent {
		if sec, _ := nav.Section(); sec == domain.SectionContact {
			return inputtypes.ModeChat
		}
		return inputtypes.ModeContent
	}
	if !nav.Visible() {
		return inputtypes.ModeHidden
	}
	return inputtypes.ModePalette
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	kb := m.session.Resize(m.metrics.Width(width), m.metrics.Height(height))
	pad := 0
	if kb.Visible {
		pad = m.metrics.Rows(kb.BottomPadding)
	}
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = max(height-8-pad, 3)
	m.input.SetWidth(m.paletteWidth() - 8)
}

func (m *Model) contentWidth() int {
	return max(m.width-4, 20)
}

func (m *Model) paletteWidth() int {
	if m.session.Tier() == responsive.Mobile {
		return max(m.width-2, 20)
	}
	return min(72, max(m.width-8, 20))
}

// showToast displays a transient message in the header
func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

// flushSearch applies a debounced query now, so navigation keys act on the
// results the user sees
func (m *Model) flushSearch() {
	if !m.searchPending {
		return
	}
	m.searchPending = false
	m.searchSeq++
	m.session.SetSearch(m.pendingSearch)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case searchTickMsg:
		if msg.seq == m.searchSeq && m.searchPending {
			m.searchPending = false
			m.session.SetSearch(m.pendingSearch)
		}
		return nil

	case loadDoneMsg:
		if !m.session.FinishLoad(msg.token) {
			logger.Debug("UI: ignoring stale load %d", msg.token)
		}
		return nil

	case spinner.TickMsg:
		if !m.session.Loading() || m.inPagerMode {
			m.spinning = false
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return nil

	case contactSentMsg:
		if msg.err != nil {
			logger.Error("UI: contact submit failed: %v", msg.err)
			m.flow.MarkFailed()
			return m.showToast("Message not sent")
		}
		m.flow.MarkSent()
		return m.showToast("Message sent")

	case externalMsg:
		if msg.err != nil {
			logger.Warn("UI: %v", msg.err)
			return m.showToast(msg.err.Error())
		}
		return m.showToast(msg.toast)

	case pagerMsg:
		if msg.err != nil {
			logger.Warn("UI: pager failed: %v", msg.err)
			return m.showToast("Pager unavailable")
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil

	case ContentReloadedMsg:
		m.applyPortfolio(msg.Portfolio)
		return m.showToast("Content reloaded")

	case EventMsg:
		return m.handleEvent(msg.Event)
	}
	return nil
}

// handleEvent reacts to bus events forwarded from other goroutines
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ThemeChangedEvent:
		logger.Debug("UI: theme is now %s (%s)", e.Effective, e.Preference)
	case eventbus.ErrorEvent:
		return m.showToast(e.Message)
	}
	return nil
}

// applyPortfolio swaps in reloaded content and rebinds the palette
func (m *Model) applyPortfolio(p *content.Portfolio) {
	if p == nil {
		return
	}
	m.portfolio = p
	m.session.SetEntries(p.Navigation, m.callbacks())
	m.renderer.Markdown().Flush()
	m.restoreFilter()
}

// restoreFilter reads the persisted project filter, ignoring stale values
func (m *Model) restoreFilter() {
	want := storage.GetOr(m.store, storage.ProjectFilterKey, content.AllFilter)
	m.filterIdx = 0
	for i, f := range m.portfolio.ProjectCategories() {
		if f == want {
			m.filterIdx = i
			return
		}
	}
}

func (m *Model) currentFilter() string {
	filters := m.portfolio.ProjectCategories()
	if m.filterIdx < 0 || m.filterIdx >= len(filters) {
		return content.AllFilter
	}
	return filters[m.filterIdx]
}

func (m *Model) submitContact(d contact.Draft) tea.Cmd {
	svc := m.contact
	return func() tea.Msg {
		if svc == nil {
			return contactSentMsg{err: errors.New("contact service not configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), contactSubmitTimeout)
		defer cancel()
		msg, err := svc.Submit(ctx, d)
		if err != nil {
			return contactSentMsg{err: fmt.Errorf("submit: %w", err)}
		}
		return contactSentMsg{msg: msg}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	st := m.session.State()
	vs := views.ViewState{
		Width:      m.width,
		Height:     m.height,
		Landing:    m.renderLanding(),
		ThemeLabel: "theme: " + st.CurrentTheme.Label(),
		Toast:      m.toast,
		Footer:     m.footerHelp(),
		ShowHelp:   m.showHelp,
	}
	if m.showHelp {
		vs.HelpBody = m.helpOverlay()
	}
	if kb := m.session.Keyboard(); kb.Visible {
		vs.BottomPadding = m.metrics.Rows(kb.BottomPadding)
	}

	switch {
	case st.ViewMode == navigation.ViewContent:
		vs.Screen = views.ScreenContent
		if st.ActiveSection != nil {
			vs.SectionTitle = st.ActiveSection.Title()
		}
		vs.Body = m.viewport.View()
		vs.Loading = m.session.Loading()
		vs.Spinner = m.spinner.View()
		vs.Crashed = m.crashed
		if st.Error != nil {
			vs.Error = *st.Error
		}
		if m.input.CurrentMode() == inputtypes.ModeChat && !m.flowFinished() {
			if ti := m.input.TextInput(); ti != nil {
				vs.ChatInput = ti.View()
			}
		}
	case st.IsVisible:
		vs.Screen = views.ScreenPalette
		vs.Palette = m.paletteState(st)
	default:
		vs.Screen = views.ScreenLanding
	}

	return m.renderer.Render(vs)
}

func (m *Model) paletteState(st state.InteractionState) views.PaletteState {
	input := ""
	if ti := m.input.TextInput(); ti != nil {
		input = ti.View()
	}
	ps := views.PaletteState{
		Input:         input,
		Query:         st.SearchText,
		Groups:        m.session.Groups(),
		SelectedIndex: st.SelectedIndex,
		Width:         m.paletteWidth(),
		MaxRows:       max(m.height-views.PaletteTop(m.height)-4, 5),
	}
	_, m.paletteRows = m.renderer.RenderPalette(ps)
	return ps
}

func (m *Model) flowFinished() bool {
	return m.flow.Step() == contact.StepSent
}

// renderLanding draws the home section for the palette background
func (m *Model) renderLanding() string {
	return m.renderer.RenderSection(domain.SectionHome, m.sectionData())
}

func (m *Model) sectionData() views.SectionData {
	p := m.portfolio
	filter := m.currentFilter()
	return views.SectionData{
		Profile:   p.Profile,
		Projects:  p.ProjectsFor(filter),
		Filters:   p.ProjectCategories(),
		Filter:    filter,
		Skills:    p.Skills,
		Stats:     p.Stats,
		Languages: p.Languages,
		Resume:    p.Resume,
		Chat:      m.flow.Transcript(),
		Width:     m.contentWidth(),
		Tier:      m.session.Tier(),
	}
}
