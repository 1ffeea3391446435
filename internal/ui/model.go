package ui

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"dsaexplorer/internal/catalog"
	"dsaexplorer/internal/config"
	"dsaexplorer/internal/content"
	"dsaexplorer/internal/domain"
	"dsaexplorer/internal/eventbus"
	"dsaexplorer/internal/playground"
	"dsaexplorer/internal/ui/input"
	"dsaexplorer/internal/ui/input/modes"
	inputtypes "dsaexplorer/internal/ui/input/types"
	"dsaexplorer/internal/ui/services/events"
	"dsaexplorer/internal/ui/services/navigation"
	"dsaexplorer/internal/ui/services/results"
	"dsaexplorer/internal/ui/services/routing"
	"dsaexplorer/internal/ui/services/session"
	"dsaexplorer/internal/ui/views"
)

// Contact form fields, in focus order
var contactLabels = []string{"Full Name", "Email Address", "Subject", "Message"}

const (
	contactEmail = 1

	statusTimeout = 3 * time.Second
)

// Options carries the content and services the model is built from
type Options struct {
	Catalog       *catalog.Catalog
	Pages         *content.Pages
	ConfigService config.ConfigService // optional, used to save settings on exit
	StartPath     string
}

// Model represents the application state
type Model struct {
	bus       eventbus.EventBus
	uiBus     *events.Bus
	config    *config.Config
	configSvc config.ConfigService
	catalog   *catalog.Catalog
	pages     *content.Pages

	session *session.Service
	router  *routing.Service
	current string // path the page state was last prepared for

	catalogResults *results.Cache
	overlayResults *results.Cache
	catalogNav     *navigation.Service
	overlayNav     *navigation.Service
	faqNav         *navigation.Service
	roadmapNav     *navigation.Service

	category        string
	difficulty      string
	pickerIndex     int
	queryBeforeEdit string

	width  int
	height int

	mode         inputtypes.Mode
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	showHelp     bool

	topicView viewport.Model
	topicTab  int
	language  string

	editor         textarea.Model
	editorLanguage string
	sample         int
	spinner        spinner.Model
	runner         *playground.Runner
	running        bool
	runCancel      context.CancelFunc
	runSeq         int
	output         string

	contactInputs []textinput.Model
	contactFocus  int
	contactError  string
	contactRef    string

	faqOpen       int
	roadmapPhases []views.RoadmapPhase
	roadmapItems  []content.RoadmapItem

	statusMessage string
	statusIsError bool

	program     *tea.Program
	pager       *PagerOps
	inPagerMode bool
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.MustLoad()
	}
	if opts.Pages == nil {
		opts.Pages = &content.Pages{}
	}

	uiBus := events.NewBus()
	m := &Model{
		bus:            bus,
		uiBus:          uiBus,
		config:         cfg,
		configSvc:      opts.ConfigService,
		catalog:        opts.Catalog,
		pages:          opts.Pages,
		session:        session.NewService(bus),
		router:         routing.NewService(bus, opts.StartPath),
		catalogResults: results.NewCache("catalog", opts.Catalog),
		overlayResults: results.NewCache("overlay", opts.Catalog),
		catalogNav:     navigation.NewService("catalog", uiBus),
		overlayNav:     navigation.NewService("overlay", uiBus),
		faqNav:         navigation.NewService("faq", uiBus),
		roadmapNav:     navigation.NewService("roadmap", uiBus),
		category:       domain.All,
		difficulty:     domain.All,
		inputHandler:   input.New(),
		renderer:       views.NewRenderer(views.ParseTheme(cfg.UISettings.Theme)),
		helpRenderer:   NewHelpRenderer(),
		topicView:      viewport.New(76, 10),
		language:       defaultLanguage(cfg.UISettings.DefaultLanguage),
		editorLanguage: playground.Languages[0],
		sample:         -1,
		runner:         playground.NewRunner(time.Duration(cfg.Playground.DelayMS) * time.Millisecond),
		faqOpen:        -1,
	}
	m.current = m.router.Current().Path

	// Selecting an overlay result navigates through the router
	m.session.SetNavigateFunction(func(path string) {
		m.router.Navigate(path)
	})

	m.catalogNav.SetMaxIndexFunction(m.catalogResults.MaxIndex)
	m.overlayNav.SetMaxIndexFunction(m.overlayResults.MaxIndex)
	m.faqNav.SetMaxIndexFunction(func() int { return len(m.pages.FAQ) - 1 })
	m.roadmapNav.SetMaxIndexFunction(func() int { return len(m.roadmapItems) - 1 })

	// Moving a cursor dismisses the last status message
	uiBus.Subscribe(events.TypeOf(navigation.CursorMovedEvent{}), func(interface{}) {
		if !m.statusIsError {
			m.statusMessage = ""
		}
	})

	for _, phase := range m.pages.Roadmap {
		items := content.ResolvePhase(phase, m.catalog)
		m.roadmapPhases = append(m.roadmapPhases, views.RoadmapPhase{Phase: phase, Items: items})
		m.roadmapItems = append(m.roadmapItems, items...)
	}

	m.editor = textarea.New()
	m.editor.ShowLineNumbers = true
	m.editor.CharLimit = 0
	m.editor.SetValue(m.pages.Playground.Starter)
	m.editor.Blur()

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot

	m.contactInputs = make([]textinput.Model, len(contactLabels))
	for i, label := range contactLabels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 500
		m.contactInputs[i] = ti
	}

	// Editor modes hand the keys they do not claim to their widgets
	m.inputHandler.RegisterSink(inputtypes.ModePlayground, func(msg tea.KeyMsg) tea.Cmd {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return cmd
	})
	m.inputHandler.RegisterSink(inputtypes.ModeContact, func(msg tea.KeyMsg) tea.Cmd {
		var cmd tea.Cmd
		m.contactInputs[m.contactFocus], cmd = m.contactInputs[m.contactFocus].Update(msg)
		m.contactError = ""
		return cmd
	})

	m.layout()
	m.enterRoute(m.router.Current())
	return m
}

// SetProgram sets the tea.Program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("DSA Explorer")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshTopicView(false)
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		// The help popup swallows the next key
		if m.showHelp {
			if msg.Type == tea.KeyCtrlC {
				return m, m.quit(true)
			}
			m.showHelp = false
			if msg.String() == "o" {
				return m, m.openPager(m.helpRenderer.RenderHelpContentPlain())
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncRoute()

		return m, tea.Batch(cmds...)

	case runResultMsg:
		return m, m.handleRunResult(msg)

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.statusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
			m.statusIsError = true
			return m, clearStatusAfter(statusTimeout)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.statusMessage = e.Message
			m.statusIsError = true
			return m, clearStatusAfter(statusTimeout)
		}
		return m, nil

	case quitMsg:
		if m.runCancel != nil {
			m.runCancel()
		}
		if msg.saveConfig {
			m.saveConfig()
		}
		return m, tea.Quit

	default:
		// Cursor blinking for whichever widget has focus
		switch m.mode {
		case inputtypes.ModePlayground:
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		case inputtypes.ModeContact:
			var cmd tea.Cmd
			m.contactInputs[m.contactFocus], cmd = m.contactInputs[m.contactFocus].Update(msg)
			return m, cmd
		}
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

// context snapshots what the input modes need to decide on a key
func (m *Model) context() *input.ModelContext {
	route := m.router.Current()
	ctx := &input.ModelContext{
		Page:       route.Page,
		Query:      m.session.Query(),
		Category:   m.category,
		Difficulty: m.difficulty,
		HasHistory: m.router.Depth() > 0,
	}

	switch route.Page {
	case routing.PageCatalog:
		topics := m.catalogTopics()
		ctx.Index = m.catalogNav.GetCursor()
		ctx.Count = len(topics)
		if ctx.Index < len(topics) {
			ctx.TopicID = topics[ctx.Index].ID
		}
	case routing.PageTopic:
		_, ctx.Found = m.catalog.Get(route.TopicID)
	case routing.PageFAQ:
		ctx.Index = m.faqNav.GetCursor()
		ctx.Count = len(m.pages.FAQ)
	case routing.PageRoadmap:
		ctx.Index = m.roadmapNav.GetCursor()
		ctx.Count = len(m.roadmapItems)
		if ctx.Index < len(m.roadmapItems) && m.roadmapItems[ctx.Index].Available {
			ctx.TopicID = m.roadmapItems[ctx.Index].TopicID
		}
	}

	if m.session.OverlayVisible() {
		ctx.OverlayCount = len(m.overlayTopics())
	}
	return ctx
}

// catalogTopics filters the catalog by the shared query and the page filters
func (m *Model) catalogTopics() []domain.Topic {
	return m.catalogResults.Results(domain.Criteria{
		Query:      m.session.Query(),
		Category:   m.category,
		Difficulty: m.difficulty,
	})
}

// overlayTopics filters by the query alone. Callers only ask while the
// overlay is visible.
func (m *Model) overlayTopics() []domain.Topic {
	return m.overlayResults.Results(domain.QueryOnly(m.session.Query()))
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(navigation.Direction(a.Direction))

	case inputtypes.GoToAction:
		m.router.Navigate(a.Path)

	case inputtypes.BackAction:
		m.router.Back()

	case inputtypes.OpenTopicAction:
		m.router.Navigate(session.TopicPath(a.ID))

	case inputtypes.ChangeModeAction:
		return m.changeMode(a.Mode)

	case inputtypes.UpdateTextAction:
		m.setQuery(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeQueryEdit {
			m.setQuery(a.Text)
		}

	case inputtypes.CancelTextAction:
		if m.mode == inputtypes.ModeQueryEdit {
			m.setQuery(m.queryBeforeEdit)
		}

	case inputtypes.OpenOverlayAction:
		m.session.OpenOverlay()
		m.overlayNav.Reset()

	case inputtypes.CloseOverlayAction:
		m.session.CloseOverlay()

	case inputtypes.SelectResultAction:
		m.overlayTopics()
		if t, ok := m.overlayResults.At(m.overlayNav.GetCursor()); ok {
			m.session.SelectTopic(t.ID)
		}

	case inputtypes.SetFilterAction:
		switch a.Field {
		case modes.FieldCategory:
			m.category = a.Value
		case modes.FieldDifficulty:
			m.difficulty = a.Value
		}
		m.catalogNav.Reset()

	case inputtypes.UpdateOptionIndexAction:
		m.pickerIndex = a.Index

	case inputtypes.ClearFiltersAction:
		m.session.SetQuery("")
		m.category = domain.All
		m.difficulty = domain.All
		m.catalogNav.Reset()

	case inputtypes.SwitchTabAction:
		n := len(views.TopicTabs)
		m.topicTab = (m.topicTab + a.Delta + n) % n
		m.refreshTopicView(true)

	case inputtypes.SelectTabAction:
		if a.Index >= 0 && a.Index < len(views.TopicTabs) {
			m.topicTab = a.Index
			m.refreshTopicView(true)
		}

	case inputtypes.CycleLanguageAction:
		if m.router.Current().Page == routing.PagePlayground {
			m.editorLanguage = playground.NextLanguage(m.editorLanguage)
		} else {
			m.language = views.NextLanguage(m.language)
			m.refreshTopicView(false)
		}

	case inputtypes.OpenPagerAction:
		return m.openTopicInPager()

	case inputtypes.ToggleAnswerAction:
		cursor := m.faqNav.GetCursor()
		if m.faqOpen == cursor {
			m.faqOpen = -1
		} else {
			m.faqOpen = cursor
		}

	case inputtypes.RunCodeAction:
		return m.runCode()

	case inputtypes.ResetCodeAction:
		m.editor.SetValue(m.pages.Playground.Starter)
		m.sample = -1
		m.output = ""

	case inputtypes.NextSampleAction:
		if n := len(m.pages.Playground.Samples); n > 0 {
			m.sample = (m.sample + 1) % n
			m.editor.SetValue(m.pages.Playground.Samples[m.sample].Code)
			m.output = ""
		}

	case inputtypes.FocusFieldAction:
		if a.Submit && m.contactFocus == len(m.contactInputs)-1 {
			return m.submitContact()
		}
		return m.focusContact(a.Delta)

	case inputtypes.SubmitContactAction:
		return m.submitContact()

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.ToggleThemeAction:
		theme := m.renderer.Theme().Toggle()
		m.renderer.SetTheme(theme)
		m.config.UISettings.Theme = string(theme)
		m.refreshTopicView(false)
		if m.bus != nil {
			m.bus.Publish(eventbus.ThemeToggledEvent{Dark: theme.IsDark()})
		}

	case inputtypes.QuitAction:
		return m.quit(a.Force)
	}

	return nil
}

// navigate moves whichever list has focus
func (m *Model) navigate(dir navigation.Direction) {
	if m.session.OverlayVisible() {
		m.overlayTopics()
		m.overlayNav.Navigate(dir)
		return
	}

	switch m.router.Current().Page {
	case routing.PageCatalog:
		m.catalogTopics()
		m.catalogNav.Navigate(dir)
	case routing.PageFAQ:
		m.faqNav.Navigate(dir)
	case routing.PageRoadmap:
		m.roadmapNav.Navigate(dir)
	case routing.PageTopic:
		switch dir {
		case navigation.DirectionUp:
			m.topicView.LineUp(1)
		case navigation.DirectionDown:
			m.topicView.LineDown(1)
		case navigation.DirectionPageUp:
			m.topicView.ViewUp()
		case navigation.DirectionPageDown:
			m.topicView.ViewDown()
		case navigation.DirectionHome:
			m.topicView.GotoTop()
		case navigation.DirectionEnd:
			m.topicView.GotoBottom()
		}
	}
}

func (m *Model) setQuery(text string) {
	m.session.SetQuery(text)
	m.catalogNav.Reset()
	m.overlayNav.Reset()
}

func (m *Model) changeMode(mode inputtypes.Mode) tea.Cmd {
	previous := m.mode
	m.mode = mode

	if previous == inputtypes.ModePlayground {
		m.editor.Blur()
	}
	if previous == inputtypes.ModeContact {
		m.contactInputs[m.contactFocus].Blur()
	}

	switch mode {
	case inputtypes.ModeQueryEdit:
		m.queryBeforeEdit = m.session.Query()
	case inputtypes.ModePlayground:
		return m.editor.Focus()
	}
	return nil
}

// syncRoute prepares page state after the router moved
func (m *Model) syncRoute() {
	route := m.router.Current()
	if route.Path == m.current {
		return
	}
	m.current = route.Path
	m.enterRoute(route)
}

func (m *Model) enterRoute(route routing.Route) {
	switch route.Page {
	case routing.PageTopic:
		m.topicTab = views.TabOverview
		m.language = defaultLanguage(m.config.UISettings.DefaultLanguage)
		m.refreshTopicView(true)
	case routing.PageCatalog:
		m.catalogTopics()
		m.catalogNav.Clamp()
	case routing.PageContact:
		m.contactRef = ""
		m.contactError = ""
	}
}

// refreshTopicView re-renders the topic body into the viewport
func (m *Model) refreshTopicView(toTop bool) {
	route := m.router.Current()
	if route.Page != routing.PageTopic {
		return
	}
	topic, ok := m.catalog.Get(route.TopicID)
	if !ok {
		m.topicView.SetContent("")
		return
	}
	m.topicView.SetContent(m.renderer.TopicBody(topic, m.topicTab, m.language, m.topicView.Width))
	if toTop {
		m.topicView.GotoTop()
	}
}

// layout sizes the lists and widgets for the terminal
func (m *Model) layout() {
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	m.helpRenderer.SetWidth(width - 4)
	m.catalogNav.SetViewportHeight(max(1, (height-14)/3))
	m.overlayNav.SetViewportHeight(max(1, min(8, (height-12)/2)))
	m.faqNav.SetViewportHeight(height)
	m.roadmapNav.SetViewportHeight(height)

	m.topicView.Width = max(20, width-4)
	m.topicView.Height = max(3, height-16)

	m.editor.SetWidth(max(30, (width-10)/2))
	m.editor.SetHeight(max(5, height-20))
	for i := range m.contactInputs {
		m.contactInputs[i].Width = max(20, width-12)
	}
}

func (m *Model) openTopicInPager() tea.Cmd {
	route := m.router.Current()
	topic, ok := m.catalog.Get(route.TopicID)
	if !ok || m.program == nil {
		return nil
	}
	return m.openPager(m.renderer.PlainTopicBody(topic, m.topicTab, m.language))
}

// openPager suspends rendering while ov shows text
func (m *Model) openPager(text string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(text)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

// runCode starts a simulated run, cancelling the one in flight
func (m *Model) runCode() tea.Cmd {
	if m.runCancel != nil {
		m.runCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.runCancel = cancel
	m.runSeq++
	m.running = true

	seq := m.runSeq
	runner := m.runner
	language := m.editorLanguage
	source := m.editor.Value()

	run := func() tea.Msg {
		res, err := runner.Run(ctx, language, source)
		return runResultMsg{seq: seq, result: res, err: err}
	}
	return tea.Batch(run, m.spinner.Tick)
}

func (m *Model) handleRunResult(msg runResultMsg) tea.Cmd {
	// Results of superseded runs are dropped
	if msg.seq != m.runSeq {
		return nil
	}
	m.running = false
	m.runCancel = nil

	if msg.err != nil {
		m.output = fmt.Sprintf("Error: %v", msg.err)
		m.reportError("Playground run failed", msg.err)
		return nil
	}

	m.output = msg.result.Output
	log.Printf("Playground run: language=%s lines=%d elapsed=%s", msg.result.Language, msg.result.Lines, msg.result.Elapsed)
	if m.bus != nil {
		m.bus.Publish(eventbus.PlaygroundRunEvent{Language: msg.result.Language, Lines: msg.result.Lines})
	}
	return nil
}

func (m *Model) focusContact(delta int) tea.Cmd {
	if delta == 0 {
		m.contactRef = ""
	}
	m.contactInputs[m.contactFocus].Blur()
	n := len(m.contactInputs)
	m.contactFocus = (m.contactFocus + delta + n) % n
	return m.contactInputs[m.contactFocus].Focus()
}

// submitContact validates the form. A valid message is only logged and
// acknowledged with a reference, nothing is sent anywhere.
func (m *Model) submitContact() tea.Cmd {
	values := make([]string, len(m.contactInputs))
	for i, in := range m.contactInputs {
		values[i] = strings.TrimSpace(in.Value())
	}

	for i, v := range values {
		if v == "" {
			m.contactError = fmt.Sprintf("%s is required", contactLabels[i])
			return m.focusContact(i - m.contactFocus)
		}
	}
	if !validEmail(values[contactEmail]) {
		m.contactError = "Please enter a valid email address"
		return m.focusContact(contactEmail - m.contactFocus)
	}

	ref := uuid.NewString()
	log.Printf("Contact form submitted: ref=%s name=%q email=%q subject=%q", ref, values[0], values[1], values[2])
	if m.bus != nil {
		m.bus.Publish(eventbus.ContactSubmittedEvent{
			Reference: ref,
			Name:      values[0],
			Email:     values[1],
			Subject:   values[2],
		})
	}

	for i := range m.contactInputs {
		m.contactInputs[i].Reset()
		m.contactInputs[i].Blur()
	}
	m.contactFocus = 0
	m.contactError = ""
	m.contactRef = ref
	m.inputHandler.Reset()
	m.mode = inputtypes.ModeNormal
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return strings.Contains(s[at+1:], ".")
}

func (m *Model) quit(force bool) tea.Cmd {
	save := !force && m.config.UISettings.AutosaveOnExit
	return func() tea.Msg { return quitMsg{saveConfig: save} }
}

func (m *Model) saveConfig() {
	if m.configSvc == nil {
		return
	}
	if err := m.configSvc.Save(m.config); err != nil {
		m.reportError("Failed to save config", err)
		return
	}
	log.Printf("Config saved to %s", m.configSvc.Path())
}

// reportError logs err and sends it to the status line through the bus
func (m *Model) reportError(message string, err error) {
	log.Printf("%s: %v", message, err)
	if m.bus != nil {
		m.bus.Publish(eventbus.ErrorEvent{Message: fmt.Sprintf("%s: %v", message, err), Err: err})
	}
}

func (m *Model) buildViewState() views.ViewState {
	route := m.router.Current()
	snap := m.session.Snapshot()
	styles := m.renderer.Styles()

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Route:         route,
		ModeName:      m.inputHandler.ModeName(),
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		ShowHelp:      m.showHelp,
		HelpContent:   m.helpRenderer.RenderHelpContent(styles),
		HelpLine:      m.helpRenderer.ShortLine(route.Page),
		About:         m.pages.About,
	}

	var textInput string
	if ti := m.inputHandler.TextInput(); ti != nil {
		textInput = ti.View()
	}

	switch route.Page {
	case routing.PageCatalog:
		state.Catalog = views.CatalogState{
			Query:      snap.Query,
			Category:   m.category,
			Difficulty: m.difficulty,
			Topics:     m.catalogTopics(),
			Cursor:     m.catalogNav.GetCursor(),
			Offset:     m.catalogNav.GetViewportOffset(),
			Rows:       m.catalogNav.GetViewportHeight(),
			Total:      m.catalog.Len(),
			Algorithms: m.catalog.AlgorithmCount(),
			Problems:   m.catalog.ProblemCount(),
			ShowStats:  m.config.UISettings.ShowStats,
			Editing:    m.mode == inputtypes.ModeQueryEdit,
			QueryInput: textInput,
		}
		switch m.mode {
		case inputtypes.ModeCategorySelect:
			state.Catalog.Picker = modes.FieldCategory
			state.Catalog.PickerOptions = modes.CategoryOptions
			state.Catalog.PickerIndex = m.pickerIndex
		case inputtypes.ModeDifficultySelect:
			state.Catalog.Picker = modes.FieldDifficulty
			state.Catalog.PickerOptions = modes.DifficultyOptions
			state.Catalog.PickerIndex = m.pickerIndex
		}

	case routing.PageTopic:
		topic, found := m.catalog.Get(route.TopicID)
		state.Topic = views.TopicState{
			Found:    found,
			ID:       route.TopicID,
			Topic:    topic,
			Tab:      m.topicTab,
			Language: m.language,
		}
		if found {
			state.Topic.Body = m.topicView.View()
			state.Topic.Percent = m.topicView.ScrollPercent()
		}

	case routing.PageFAQ:
		state.FAQ = views.FAQState{
			Entries: m.pages.FAQ,
			Cursor:  m.faqNav.GetCursor(),
			Open:    m.faqOpen,
		}

	case routing.PageRoadmap:
		state.Roadmap = views.RoadmapState{
			Phases: m.roadmapPhases,
			Cursor: m.roadmapNav.GetCursor(),
		}

	case routing.PagePlayground:
		state.Playground = views.PlaygroundState{
			Editor:   m.editor.View(),
			Editing:  m.mode == inputtypes.ModePlayground,
			Language: m.editorLanguage,
			Output:   m.output,
			Running:  m.running,
			Spinner:  m.spinner.View(),
			Samples:  m.pages.Playground.Samples,
			Sample:   m.sample,
		}

	case routing.PageContact:
		fields := make([]views.ContactField, len(m.contactInputs))
		for i, in := range m.contactInputs {
			fields[i] = views.ContactField{
				Label:   contactLabels[i],
				Input:   in.View(),
				Focused: i == m.contactFocus,
			}
		}
		state.Contact = views.ContactState{
			Fields:    fields,
			Editing:   m.mode == inputtypes.ModeContact,
			Error:     m.contactError,
			Reference: m.contactRef,
		}
	}

	if snap.OverlayVisible {
		state.Overlay = views.OverlayState{
			Visible: true,
			Query:   snap.Query,
			Input:   textInput,
			Results: m.overlayTopics(),
			Cursor:  m.overlayNav.GetCursor(),
			Offset:  m.overlayNav.GetViewportOffset(),
			Rows:    m.overlayNav.GetViewportHeight(),
		}
	}

	return state
}

// defaultLanguage maps the configured language onto the code tabs
func defaultLanguage(lang string) string {
	for _, l := range views.Languages {
		if l == lang {
			return l
		}
	}
	return views.Languages[0]
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
