package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"startmgr/internal/autostart"
	"startmgr/internal/backup"
	"startmgr/internal/config"
	"startmgr/internal/customapps"
	"startmgr/internal/definitions"
	"startmgr/internal/inventory"
	"startmgr/internal/launcher"
	"startmgr/internal/models"
	"startmgr/internal/scanner"
	"startmgr/internal/suggestions"
	"startmgr/internal/transfer"
	"startmgr/internal/ui"
	"startmgr/internal/ui/components"
	"startmgr/internal/watcher"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	debugMode = false // Enable with --debug flag
)

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Screen represents different screens in the app
type Screen int

const (
	ScreenMain Screen = iota
	ScreenScanning
	ScreenHelp
	ScreenDiff    // Preview of what enabling would write
	ScreenHistory // Snapshot history browser
	ScreenAdd     // Add custom entry form
	ScreenDelay   // Startup delay prompt
)

// Panel represents which panel is focused
type Panel int

const (
	PanelApps Panel = iota
	PanelDetail
)

// Model is the main application model
type Model struct {
	config   *config.Config
	inv      *inventory.Inventory
	mgr      *autostart.Manager
	scan     *scanner.Scanner
	history  *backup.History // nil when snapshots are disabled
	watch    *watcher.Watcher
	analyzer *suggestions.Analyzer

	// UI Components
	appList       *components.AppList
	detail        *components.Detail
	diffPanel     *components.DiffPanel
	historyPanel  *components.HistoryPanel
	confirm       *components.Confirm
	suggestionBar *components.SuggestionBar
	spinner       spinner.Model
	help          help.Model
	helpVP        viewport.Model
	keys          ui.KeyMap
	textInput     textinput.Model // Shared by search and the delay prompt

	// State
	screen       Screen
	focusedPanel Panel
	status       string
	width        int
	height       int
	scanning     bool
	scannedOnce  bool
	quietScan    bool // Keep status and screen when the rescan finishes
	scanResult   autostart.ReconcileResult

	// Search state
	searchMode  bool
	searchQuery string

	// Category filter
	category inventory.Category

	// Add-custom form
	addInputs  [3]textinput.Model // name, command, delay
	addField   int
	addError   string
	pendingAdd customapps.Request // Held while the overwrite dialog is open

	// Delay prompt
	delayError string

	err error
}

// Messages
type scanCompleteMsg struct {
	inv    *inventory.Inventory
	result autostart.ReconcileResult
	err    error
}

type autostartChangedMsg struct{}

type watchErrMsg struct {
	err error
}

func New() *Model {
	cfg, err := config.Load()
	if err != nil {
		debugLog("Config load error: %v", err)
		cfg = config.Default()
	}
	if err := cfg.EnsureDirectories(); err != nil {
		debugLog("Ensure directories error: %v", err)
	}
	if cfg.Debug {
		debugMode = true
		scanner.DebugMode = true
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.ProgressStyle

	ti := textinput.New()
	ti.Placeholder = "Search applications..."
	ti.CharLimit = 128
	ti.Width = 40

	name := textinput.New()
	name.Placeholder = "My Script"
	name.CharLimit = 64
	name.Width = 44

	command := textinput.New()
	command.Placeholder = "/home/user/bin/backup.sh --daily"
	command.CharLimit = 256
	command.Width = 44

	delay := textinput.New()
	delay.Placeholder = "0"
	delay.CharLimit = 4
	delay.Width = 44

	mgr, mgrErr := autostart.NewManager(autostart.DefaultDir())

	var hist *backup.History
	var watch *watcher.Watcher
	if mgr != nil {
		if cfg.BackupEnabled {
			h, herr := backup.Open(cfg.HistoryDir, mgr.Dir())
			if herr != nil {
				debugLog("History open error: %v", herr)
			} else {
				hist = h
			}
		}

		w, werr := watcher.New(mgr.Dir())
		if werr != nil {
			debugLog("Watcher error: %v", werr)
		} else {
			watch = w
		}
	}

	rules, rerr := definitions.NewStore(cfg.DefinitionsPath).Load()
	if rerr != nil {
		debugLog("Icon definitions error: %v", rerr)
		rules = definitions.Defaults()
	}

	appList := components.NewAppList(nil)
	appList.SetRules(rules)

	m := &Model{
		config:        cfg,
		inv:           inventory.New(),
		mgr:           mgr,
		scan:          scanner.New(),
		history:       hist,
		watch:         watch,
		analyzer:      suggestions.NewAnalyzer(),
		appList:       appList,
		detail:        components.NewDetail(),
		diffPanel:     components.NewDiffPanel(),
		historyPanel:  components.NewHistoryPanel(),
		confirm:       components.NewConfirm(),
		suggestionBar: components.NewSuggestionBar(),
		spinner:       s,
		help:          help.New(),
		keys:          ui.DefaultKeyMap(),
		textInput:     ti,
		addInputs:     [3]textinput.Model{name, command, delay},
		screen:        ScreenScanning,
		focusedPanel:  PanelApps,
		status:        "Scanning startup applications...",
		width:         80,
		height:        24,
		category:      inventory.CategoryAll,
		err:           mgrErr,
	}

	if hist != nil {
		m.historyPanel.SetHistory(hist)
	}

	// Persisting the config marks the first run done for the next launch;
	// the in-memory flag keeps the welcome hint for this session.
	if cfg.FirstRun {
		if serr := cfg.Save(); serr != nil {
			debugLog("Config save error: %v", serr)
		}
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}

	m.scanning = true
	cmds = append(cmds, m.scanApps)

	if m.watch != nil {
		cmds = append(cmds, m.waitForChange)
	}

	return tea.Batch(cmds...)
}

func (m *Model) scanApps() tea.Msg {
	startTime := time.Now()
	debugLog("Starting scan...")

	inv, err := m.scan.Scan()
	if err != nil {
		debugLog("Scan error: %v", err)
		return scanCompleteMsg{err: err}
	}
	debugLog("Scan completed in %v, found %d apps", time.Since(startTime), inv.Len())

	result := m.mgr.Reconcile(inv)
	debugLog("Reconcile: %d matched, %d custom, %d skipped", result.Matched, result.Added, result.Skipped)

	return scanCompleteMsg{inv: inv, result: result}
}

// waitForChange blocks on the autostart watcher until something edits the
// directory behind our back. The command re-arms itself from Update.
func (m *Model) waitForChange() tea.Msg {
	select {
	case _, ok := <-m.watch.Events():
		if !ok {
			return nil
		}
		return autostartChangedMsg{}
	case err, ok := <-m.watch.Errors():
		if !ok {
			return nil
		}
		return watchErrMsg{err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updatePanelSizes()
		if m.screen == ScreenHelp {
			m.helpVP.Width = m.width - 4
			m.helpVP.Height = m.height - 4
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		// Forward mouse events to the detail viewport
		if m.screen == ScreenMain && m.focusedPanel == PanelDetail {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case scanCompleteMsg:
		m.scanning = false
		quiet := m.quietScan
		m.quietScan = false
		if m.screen == ScreenScanning {
			m.screen = ScreenMain
		}
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.err = msg.err
		} else {
			m.err = nil
			m.inv = msg.inv
			m.scanResult = msg.result
			m.applyFilters()
			m.refreshDetail()
			m.refreshSuggestion()
			m.updatePanelSizes()
			if !m.scannedOnce {
				m.scannedOnce = true
				m.takeSnapshot("startup")
			}
			if !quiet {
				m.status = fmt.Sprintf("Found %d applications, %d starting at login",
					m.inv.Len(), msg.result.Matched+msg.result.Added)
			}
		}

	case autostartChangedMsg:
		// Something edited ~/.config/autostart behind our back (including
		// our own writes); rescan quietly and re-arm the watcher.
		debugLog("Autostart directory changed, rescanning...")
		cmds = append(cmds, m.waitForChange)
		if !m.scanning {
			m.scanning = true
			m.quietScan = true
			cmds = append(cmds, m.scanApps)
		}

	case watchErrMsg:
		debugLog("Watcher error: %v", msg.err)
		cmds = append(cmds, m.waitForChange)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The confirm dialog swallows everything while it is up
	if m.confirm.IsVisible() {
		return m.handleConfirmKeys(msg)
	}

	switch m.screen {
	case ScreenScanning:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return m, nil
	case ScreenHelp:
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.screen = ScreenMain
			return m, nil
		}
		// Forward to viewport for scrolling
		var cmd tea.Cmd
		m.helpVP, cmd = m.helpVP.Update(msg)
		return m, cmd
	case ScreenDiff:
		return m.handleDiffKeys(msg)
	case ScreenHistory:
		return m.handleHistoryKeys(msg)
	case ScreenAdd:
		return m.handleAddKeys(msg)
	case ScreenDelay:
		return m.handleDelayKeys(msg)
	}

	return m.handleMainKeys(msg)
}

func (m *Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle search mode input
	if m.searchMode {
		return m.handleSearchKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Escape):
		// Esc clears active filters (search or category)
		if m.searchQuery != "" || m.category != inventory.CategoryAll {
			return m.clearAllFilters()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.screen = ScreenHelp
		m.helpVP = viewport.New(m.width-4, m.height-4)
		m.helpVP.SetContent(m.renderHelp())
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.togglePanel()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.handleNavigation(true)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.handleNavigation(false)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.handlePageNavigation(true)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.handlePageNavigation(false)
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.handleHomeEnd(true)
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.handleHomeEnd(false)
		return m, nil

	case key.Matches(msg, m.keys.Space), key.Matches(msg, m.keys.Enter):
		return m.handleToggle()

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchQuery = ""
		m.textInput.SetValue("")
		m.textInput.Placeholder = "Search applications..."
		m.textInput.Focus()
		m.status = "Type to search, Enter to confirm, Esc to cancel"
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Filter):
		return m.cycleFilter()

	case key.Matches(msg, m.keys.Add):
		return m.handleAdd()

	case key.Matches(msg, m.keys.Delay):
		return m.handleDelay()

	case key.Matches(msg, m.keys.Diff):
		return m.handleDiff()

	case key.Matches(msg, m.keys.RunNow):
		return m.handleRunNow()

	case key.Matches(msg, m.keys.Export):
		return m.handleExport()

	case key.Matches(msg, m.keys.Import):
		return m.handleImport()

	case key.Matches(msg, m.keys.OpenFolder):
		return m.handleOpenFolder()

	case key.Matches(msg, m.keys.Refresh):
		return m.handleRefresh()

	case key.Matches(msg, m.keys.History), key.Matches(msg, m.keys.Restore):
		return m.handleHistory()
	}

	return m, nil
}

func (m *Model) handleNavigation(up bool) {
	if m.focusedPanel == PanelApps {
		if up {
			m.appList.MoveUp()
		} else {
			m.appList.MoveDown()
		}
		m.refreshDetail()
	} else {
		if up {
			m.detail.ScrollUp()
		} else {
			m.detail.ScrollDown()
		}
	}
}

func (m *Model) handlePageNavigation(up bool) {
	if m.focusedPanel == PanelApps {
		if up {
			m.appList.PageUp()
		} else {
			m.appList.PageDown()
		}
		m.refreshDetail()
	} else {
		if up {
			m.detail.PageUp()
		} else {
			m.detail.PageDown()
		}
	}
}

func (m *Model) handleHomeEnd(home bool) {
	if m.focusedPanel == PanelApps {
		if home {
			m.appList.GoToFirst()
		} else {
			m.appList.GoToLast()
		}
		m.refreshDetail()
	} else {
		if home {
			m.detail.GoToTop()
		} else {
			m.detail.GoToBottom()
		}
	}
}

// handleToggle flips whether the selected app starts at login.
func (m *Model) handleToggle() (tea.Model, tea.Cmd) {
	app := m.selectedApp()
	if app == nil {
		return m, nil
	}

	if app.Enabled {
		if err := m.mgr.Disable(app); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.takeSnapshot("disable " + app.Name)
		m.status = fmt.Sprintf("✓ %s will no longer start at login", app.Name)
	} else {
		if err := m.mgr.Enable(app); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.takeSnapshot("enable " + app.Name)
		m.status = fmt.Sprintf("✓ %s will start at login", app.Name)
	}

	m.applyFilters()
	m.refreshDetail()
	m.refreshSuggestion()
	return m, nil
}

func (m *Model) handleAdd() (tea.Model, tea.Cmd) {
	m.screen = ScreenAdd
	m.addField = 0
	m.addError = ""
	for i := range m.addInputs {
		m.addInputs[i].SetValue("")
		m.addInputs[i].Blur()
	}
	m.addInputs[0].Focus()
	return m, textinput.Blink
}

func (m *Model) handleDelay() (tea.Model, tea.Cmd) {
	app := m.selectedApp()
	if app == nil {
		return m, nil
	}
	if !app.Enabled {
		m.status = "Enable the application before setting a delay"
		return m, nil
	}

	m.screen = ScreenDelay
	m.delayError = ""
	m.textInput.Placeholder = "0"
	m.textInput.SetValue(strconv.Itoa(app.Delay))
	m.textInput.CursorEnd()
	m.textInput.Focus()
	return m, textinput.Blink
}

func (m *Model) handleDiff() (tea.Model, tea.Cmd) {
	app := m.selectedApp()
	if app == nil {
		return m, nil
	}
	m.diffPanel.SetDiff(m.mgr.PreviewEnable(app), app.Name)
	m.screen = ScreenDiff
	return m, nil
}

func (m *Model) handleRunNow() (tea.Model, tea.Cmd) {
	app := m.selectedApp()
	if app == nil {
		return m, nil
	}
	if err := launcher.RunDetached(app.Exec); err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	m.status = fmt.Sprintf("✓ Launched %s", app.Name)
	return m, nil
}

func (m *Model) handleExport() (tea.Model, tea.Cmd) {
	count, err := transfer.NewExporter(m.inv).Export(m.config.ExportPath)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	m.status = fmt.Sprintf("✓ Exported %d entries to %s", count, m.config.ExportPath)
	return m, nil
}

func (m *Model) handleImport() (tea.Model, tea.Cmd) {
	if _, err := os.Stat(m.config.ExportPath); err != nil {
		m.status = fmt.Sprintf("Nothing to import: %s not found", m.config.ExportPath)
		return m, nil
	}
	m.confirm.Show(
		"Import startup entries",
		fmt.Sprintf("Write autostart entries from %s?\nEntries with the same name are overwritten.", m.config.ExportPath),
		"import",
	)
	return m, nil
}

func (m *Model) handleOpenFolder() (tea.Model, tea.Cmd) {
	if err := launcher.OpenFolder(m.mgr.Dir()); err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	m.status = "✓ Opened " + m.mgr.Dir()
	return m, nil
}

func (m *Model) handleRefresh() (tea.Model, tea.Cmd) {
	if m.scanning {
		return m, nil
	}
	m.scanning = true
	m.quietScan = false
	m.screen = ScreenScanning
	m.status = "Rescanning applications..."
	return m, m.scanApps
}

func (m *Model) handleHistory() (tea.Model, tea.Cmd) {
	if m.history == nil {
		m.status = "Snapshot history is disabled"
		return m, nil
	}
	if err := m.historyPanel.Refresh(); err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	m.screen = ScreenHistory
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Cancel search, restore the unfiltered list
		m.searchMode = false
		m.searchQuery = ""
		m.textInput.Blur()
		m.applyFilters()
		m.refreshDetail()
		m.status = "Search cancelled"
		return m, nil

	case tea.KeyEnter:
		// Confirm search, keep the filter active
		m.searchMode = false
		m.textInput.Blur()
		if m.searchQuery == "" {
			m.status = fmt.Sprintf("Showing all %d applications", m.inv.Len())
		} else {
			m.status = fmt.Sprintf("Showing %d matching applications", len(m.appList.Apps))
		}
		return m, nil

	case tea.KeyUp:
		// Navigate within filtered results
		m.appList.MoveUp()
		m.refreshDetail()
		return m, nil

	case tea.KeyDown:
		m.appList.MoveDown()
		m.refreshDetail()
		return m, nil

	default:
		// Regular typing narrows the list as you go
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		m.searchQuery = m.textInput.Value()
		m.applyFilters()
		m.refreshDetail()
		if m.searchQuery == "" {
			m.status = fmt.Sprintf("Type to search (%d applications)", m.inv.Len())
		} else {
			m.status = fmt.Sprintf("Found %d applications matching '%s'", len(m.appList.Apps), m.searchQuery)
		}
		return m, cmd
	}
}

func (m *Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = ScreenMain
		m.addError = ""
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.focusAddField((m.addField + 1) % len(m.addInputs))
		return m, textinput.Blink

	case tea.KeyShiftTab, tea.KeyUp:
		m.focusAddField((m.addField + len(m.addInputs) - 1) % len(m.addInputs))
		return m, textinput.Blink

	case tea.KeyEnter:
		// Enter walks the fields, then submits from the last one
		if m.addField < len(m.addInputs)-1 {
			m.focusAddField(m.addField + 1)
			return m, textinput.Blink
		}
		return m.submitAdd()

	case tea.KeyCtrlC:
		return m.quit()
	}

	var cmd tea.Cmd
	m.addInputs[m.addField], cmd = m.addInputs[m.addField].Update(msg)
	return m, cmd
}

func (m *Model) focusAddField(idx int) {
	m.addInputs[m.addField].Blur()
	m.addField = idx
	m.addInputs[m.addField].Focus()
}

func (m *Model) submitAdd() (tea.Model, tea.Cmd) {
	req, err := customapps.BuildRequest(customapps.FormInput{
		Name:    m.addInputs[0].Value(),
		Command: m.addInputs[1].Value(),
		Delay:   m.addInputs[2].Value(),
	})
	if err != nil {
		m.addError = err.Error()
		return m, nil
	}

	if _, exists := m.mgr.CustomTarget(req.Name); exists {
		m.pendingAdd = req
		m.confirm.Show(
			"Overwrite entry",
			fmt.Sprintf("%s already has an autostart entry. Replace it?", req.Name),
			"overwrite",
		)
		return m, nil
	}

	return m.createCustom(req)
}

func (m *Model) createCustom(req customapps.Request) (tea.Model, tea.Cmd) {
	app, err := m.mgr.AddCustom(m.inv, req.Name, req.Command, models.OriginCustom, req.Delay)
	if err != nil {
		m.addError = err.Error()
		return m, nil
	}

	m.takeSnapshot("add " + app.Name)
	m.screen = ScreenMain
	m.addError = ""
	m.applyFilters()
	m.appList.Select(app.Name)
	m.refreshDetail()
	m.refreshSuggestion()
	m.status = fmt.Sprintf("✓ Added %s", app.Name)
	return m, nil
}

func (m *Model) handleDelayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = ScreenMain
		m.delayError = ""
		m.textInput.Blur()
		return m, nil

	case tea.KeyEnter:
		delay := 0
		if raw := strings.TrimSpace(m.textInput.Value()); raw != "" {
			d, err := strconv.Atoi(raw)
			if err != nil || d < 0 {
				m.delayError = "Delay must be a whole number of seconds"
				return m, nil
			}
			delay = d
		}

		app := m.selectedApp()
		if app == nil {
			m.screen = ScreenMain
			m.textInput.Blur()
			return m, nil
		}
		if err := m.mgr.SetDelay(app, delay); err != nil {
			m.delayError = err.Error()
			return m, nil
		}

		m.takeSnapshot(fmt.Sprintf("delay %s %ds", app.Name, app.Delay))
		m.screen = ScreenMain
		m.delayError = ""
		m.textInput.Blur()
		m.applyFilters()
		m.refreshDetail()
		if app.Delay == 0 {
			m.status = fmt.Sprintf("✓ %s starts immediately", app.Name)
		} else {
			m.status = fmt.Sprintf("✓ %s starts after %s", app.Name, app.DelayDisplay())
		}
		return m, nil

	case tea.KeyCtrlC:
		return m.quit()
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) handleDiffKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.diffPanel.ScrollUp()
	case "down", "j":
		m.diffPanel.ScrollDown()
	case "h":
		m.diffPanel.ToggleHighlight()
	case "esc", "q", "v":
		m.screen = ScreenMain
	}
	return m, nil
}

func (m *Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.historyPanel.MoveUp()
	case "down", "j":
		m.historyPanel.MoveDown()
	case "r":
		if err := m.historyPanel.Refresh(); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
		}
	case "R", "enter":
		entry := m.historyPanel.Selected()
		if entry == nil {
			return m, nil
		}
		m.confirm.Show(
			"Restore snapshot",
			fmt.Sprintf("Rewrite %s from snapshot %.7s (%s)?", m.mgr.Dir(), entry.Hash, entry.Age()),
			"restore",
		)
	case "esc", "q", "g":
		m.screen = ScreenMain
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		m.confirm.Toggle()
	case "y":
		m.confirm.Yes = true
		return m.acceptConfirm()
	case "n":
		m.confirm.Yes = false
		return m.acceptConfirm()
	case "enter", " ":
		return m.acceptConfirm()
	case "esc", "q":
		m.confirm.Hide()
	}
	return m, nil
}

// acceptConfirm closes the dialog and runs the action behind its tag.
func (m *Model) acceptConfirm() (tea.Model, tea.Cmd) {
	tag, yes := m.confirm.Accept()
	if !yes {
		return m, nil
	}

	switch tag {
	case "overwrite":
		return m.createCustom(m.pendingAdd)

	case "restore":
		entry := m.historyPanel.Selected()
		count, err := m.historyPanel.Restore()
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		if entry != nil {
			m.takeSnapshot(fmt.Sprintf("restore %.7s", entry.Hash))
		}
		m.screen = ScreenMain
		m.status = fmt.Sprintf("✓ Restored %d autostart entries", count)
		return m, m.rescanQuietly()

	case "import":
		results, err := transfer.NewImporter(m.mgr.Dir()).Import(m.config.ExportPath)
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		count := transfer.Imported(results)
		m.takeSnapshot(fmt.Sprintf("import %d entries", count))
		m.status = fmt.Sprintf("✓ Imported %d of %d entries", count, len(results))
		return m, m.rescanQuietly()
	}

	return m, nil
}

// rescanQuietly reloads the inventory without touching status or screen.
func (m *Model) rescanQuietly() tea.Cmd {
	if m.scanning {
		return nil
	}
	m.scanning = true
	m.quietScan = true
	return m.scanApps
}

func (m *Model) togglePanel() {
	if m.focusedPanel == PanelApps {
		m.focusedPanel = PanelDetail
		m.appList.Focused = false
	} else {
		m.focusedPanel = PanelApps
		m.appList.Focused = true
	}
}

// selectedApp resolves the list cursor back to the inventory record. The
// list holds display copies, so mutations must go through this.
func (m *Model) selectedApp() *models.App {
	row := m.appList.Current()
	if row == nil {
		return nil
	}
	app, ok := m.inv.Get(row.Name)
	if !ok {
		return nil
	}
	return app
}

// applyFilters rebuilds the visible list from the inventory, keeping the
// selection where possible.
func (m *Model) applyFilters() {
	filtered := inventory.Filter(m.inv.All(), m.searchQuery, m.category)
	apps := make([]models.App, len(filtered))
	for i, app := range filtered {
		apps[i] = *app
	}

	var current string
	if sel := m.appList.Current(); sel != nil {
		current = sel.Name
	}

	m.appList.SetApps(apps)
	if current != "" {
		m.appList.Select(current)
	}

	if m.category == inventory.CategoryAll {
		m.appList.Title = "Startup Applications"
	} else {
		m.appList.Title = categoryTitle(m.category) + " Applications"
	}
}

func (m *Model) clearAllFilters() (tea.Model, tea.Cmd) {
	m.searchQuery = ""
	m.textInput.SetValue("")
	m.category = inventory.CategoryAll
	m.applyFilters()
	m.refreshDetail()
	m.status = fmt.Sprintf("Showing all %d applications", m.inv.Len())
	return m, nil
}

func (m *Model) cycleFilter() (tea.Model, tea.Cmd) {
	next := 0
	for i, c := range inventory.Categories {
		if c == m.category {
			next = (i + 1) % len(inventory.Categories)
			break
		}
	}
	m.category = inventory.Categories[next]
	m.applyFilters()
	m.refreshDetail()

	if m.category == inventory.CategoryAll {
		m.status = fmt.Sprintf("Showing all %d applications", m.inv.Len())
	} else {
		m.status = fmt.Sprintf("Filter: %s (%d applications)", categoryTitle(m.category), len(m.appList.Apps))
	}
	return m, nil
}

// refreshDetail points the detail panel at the selected app, preferring
// the live autostart entry over the package's own desktop file.
func (m *Model) refreshDetail() {
	app := m.selectedApp()
	if app == nil {
		_ = m.detail.SetApp(nil, "")
		return
	}
	if err := m.detail.SetApp(app, m.previewPath(app)); err != nil {
		debugLog("Preview error for %s: %v", app.Name, err)
	}
}

func (m *Model) previewPath(app *models.App) string {
	if path, ok := m.mgr.CustomTarget(app.Name); ok {
		return path
	}
	return app.SourcePath
}

func (m *Model) refreshSuggestion() {
	apps := make([]models.App, 0, m.inv.Len())
	for _, app := range m.inv.All() {
		apps = append(apps, *app)
	}

	state := &suggestions.State{
		Apps:            apps,
		IsFirstRun:      m.config.FirstRun,
		FlatpakMissing:  !m.scan.FlatpakAvailable(),
		SnapMissing:     !m.scan.SnapAvailable(),
		HistoryDisabled: m.history == nil,
	}
	m.suggestionBar.SetSuggestion(m.analyzer.Analyze(state))
}

func (m *Model) takeSnapshot(message string) {
	if m.history == nil {
		return
	}
	hash, err := m.history.Snapshot(message)
	if err != nil {
		debugLog("Snapshot error (%s): %v", message, err)
		return
	}
	if hash != "" {
		debugLog("Snapshot %.7s: %s", hash, message)
	}
}

func (m *Model) updatePanelSizes() {
	listWidth := (m.width - 4) * 2 / 5
	if listWidth < 34 {
		listWidth = 34
	}
	detailWidth := m.width - 4 - listWidth - 2
	if detailWidth < 30 {
		detailWidth = 30
	}

	panelHeight := m.height - 8
	if m.suggestionBar.IsVisible() && m.suggestionBar.Suggestion != nil {
		panelHeight -= m.suggestionBar.Height()
	}
	if panelHeight < 5 {
		panelHeight = 5
	}

	m.appList.Width = listWidth
	m.appList.Height = panelHeight
	m.detail.SetSize(detailWidth, panelHeight)

	m.diffPanel.Width = m.width - 4
	m.diffPanel.Height = m.height - 8
	m.historyPanel.Width = m.width - 4
	m.historyPanel.Height = m.height - 8
	m.suggestionBar.SetWidth(m.width - 2)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.watch != nil {
		m.watch.Close()
	}
	return m, tea.Quit
}

func (m *Model) View() string {
	if m.confirm.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	switch m.screen {
	case ScreenDiff:
		return m.renderDiff()
	case ScreenHistory:
		return m.renderHistory()
	case ScreenAdd:
		return m.renderAddForm()
	case ScreenDelay:
		return m.renderDelayPrompt()
	default:
		return m.renderMain()
	}
}

func (m *Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.screen {
	case ScreenScanning:
		// Loading screen with scan locations and rotating tips
		var lines []string

		lines = append(lines, m.spinner.View()+" Scanning startup applications...")
		lines = append(lines, "")

		lines = append(lines, "Looking for applications in:")
		lines = append(lines, "  • /usr/share/applications")
		lines = append(lines, "  • ~/.local/share/applications")
		lines = append(lines, "  • Flatpak and Snap exports")
		lines = append(lines, "  • ~/.config/autostart")
		lines = append(lines, "")

		tips := []string{
			"💡 Press space to start an app at login",
			"💡 Press d to delay an app after login",
			"💡 Press / to search by name or command",
			"💡 Press v to preview the exact file change",
			"💡 Press g to browse snapshot history",
			"💡 Press a to add your own script",
		}
		tipIndex := int(time.Now().Unix()/3) % len(tips)
		lines = append(lines, tips[tipIndex])

		scanContent := strings.Join(lines, "\n")

		scanBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.Primary).
			Padding(1, 3).
			Render(scanContent)

		boxHeight := lipgloss.Height(scanBox)
		boxWidth := lipgloss.Width(scanBox)

		availableHeight := m.height - 6 // header + status + help + newlines
		availableWidth := m.width - 2   // AppStyle padding

		topPad := (availableHeight - boxHeight) / 2
		if topPad < 0 {
			topPad = 0
		}
		leftPad := (availableWidth - boxWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}

		var scanOutput strings.Builder
		for i := 0; i < topPad; i++ {
			scanOutput.WriteString("\n")
		}
		for _, line := range strings.Split(scanBox, "\n") {
			scanOutput.WriteString(strings.Repeat(" ", leftPad))
			scanOutput.WriteString(line)
			scanOutput.WriteString("\n")
		}

		b.WriteString(scanOutput.String())

	case ScreenHelp:
		b.WriteString(m.helpVP.View())

	default:
		if m.suggestionBar.IsVisible() && m.suggestionBar.Suggestion != nil {
			b.WriteString(m.suggestionBar.View())
			b.WriteString("\n")
		}

		panels := lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.appList.View(),
			"  ",
			m.detail.View(),
		)
		b.WriteString(panels)
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderHeader() string {
	title := ui.TitleStyle.Render("🚀 Startmgr")
	ver := ui.VersionStyle.Render("v" + version)
	path := ui.MutedStyle.Render("  " + m.mgr.Dir())

	histInfo := ""
	if m.history == nil {
		histInfo = ui.MutedStyle.Render(" [history off]")
	}

	return ui.HeaderStyle.Render(title + "  " + ver + path + histInfo)
}

func (m *Model) renderStatusBar() string {
	stats := inventory.Collect(m.inv.All())

	var parts []string
	parts = append(parts, stats.String())
	if m.category != inventory.CategoryAll {
		parts = append(parts, "Filter: "+categoryTitle(m.category))
	}
	if m.searchQuery != "" {
		parts = append(parts, "Search: \""+m.searchQuery+"\"")
	}

	// Show current panel indicator
	panelIndicator := "📋"
	if m.focusedPanel == PanelDetail {
		panelIndicator = "📄"
	}

	// Style status message based on content
	styledStatus := ui.StatusTextStyle.Render(m.status)
	if strings.HasPrefix(m.status, "✓") {
		styledStatus = ui.RenderNotification("success", strings.TrimPrefix(m.status, "✓ "))
	} else if strings.HasPrefix(m.status, "Error") {
		styledStatus = ui.RenderNotification("error", m.status)
	} else if strings.Contains(m.status, "cancelled") || strings.Contains(m.status, "disabled") {
		styledStatus = ui.RenderNotification("warning", m.status)
	}
	if m.scanning && m.screen != ScreenScanning {
		styledStatus = m.spinner.View() + " " + styledStatus
	}

	return ui.StatusBarStyle.Render(
		panelIndicator + " " + styledStatus + "  •  " + strings.Join(parts, "  •  "),
	)
}

func (m *Model) renderHelpBar() string {
	switch m.screen {
	case ScreenScanning:
		items := []string{
			ui.RenderHelpItem("q", "quit"),
		}
		return ui.HelpBarStyle.Render("⏳ Scanning... " + strings.Join(items, "  "))

	case ScreenHelp:
		scrollPct := fmt.Sprintf("%d%%", int(m.helpVP.ScrollPercent()*100))
		items := []string{
			ui.RenderHelpItem("↑↓/j/k", "scroll"),
			ui.RenderHelpItem("PgUp/PgDn", "page"),
			ui.RenderHelpItem("esc/?", "close"),
			ui.RenderHelpItem(scrollPct, ""),
		}
		return ui.HelpBarStyle.Render(strings.Join(items, "  "))
	}

	// Search mode renders the input inline
	if m.searchMode {
		items := []string{
			ui.RenderHelpItem("↑↓", "navigate"),
			ui.RenderHelpItem("enter", "confirm"),
			ui.RenderHelpItem("esc", "cancel"),
		}
		return ui.HelpBarStyle.Render("🔍 " + m.textInput.View() + "  " + strings.Join(items, "  "))
	}

	// Show filter hint when a filter is active
	if m.searchQuery != "" || m.category != inventory.CategoryAll {
		indicator := ""
		if m.category != inventory.CategoryAll {
			indicator = "📂 " + categoryTitle(m.category)
		}
		if m.searchQuery != "" {
			if indicator != "" {
				indicator += "  "
			}
			indicator += "🔍 \"" + m.searchQuery + "\""
		}
		items := []string{
			ui.RenderHelpItem("esc", "clear"),
			ui.RenderHelpItem("space", "toggle"),
			ui.RenderHelpItem("f", "next filter"),
			ui.RenderHelpItem("?", "help"),
		}
		return ui.HelpBarStyle.Render(indicator + "  " + strings.Join(items, "  "))
	}

	// Context-sensitive help based on the focused panel
	var items []string
	if m.focusedPanel == PanelApps {
		items = []string{
			ui.RenderHelpItem("space", "toggle"),
			ui.RenderHelpItem("d", "delay"),
			ui.RenderHelpItem("a", "add"),
			ui.RenderHelpItem("/", "search"),
			ui.RenderHelpItem("f", "filter"),
			ui.RenderHelpItem("v", "preview"),
			ui.RenderHelpItem("g", "history"),
			ui.RenderHelpItem("?", "help"),
		}
	} else {
		items = []string{
			ui.RenderHelpItem("j/k", "scroll"),
			ui.RenderHelpItem("n", "run now"),
			ui.RenderHelpItem("o", "open folder"),
			ui.RenderHelpItem("tab", "→list"),
			ui.RenderHelpItem("?", "help"),
		}
	}
	return ui.HelpBarStyle.Render(strings.Join(items, "  "))
}

// renderHelp builds the content for the help viewport.
func (m *Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("⌨️  Keyboard Shortcuts Guide"))
	b.WriteString("\n\n")

	// Startup control section (most important - at the top)
	b.WriteString(ui.MutedStyle.Render("  ─── 🚀 Startup Control ───"))
	b.WriteString("\n")
	startupBindings := []struct {
		key  string
		desc string
	}{
		{"Space/Enter", "Toggle: start this app at login or not"},
		{"d", "Set startup delay (wait N seconds after login)"},
		{"v", "Preview the exact autostart file change"},
		{"n", "Run the app right now (detached)"},
	}
	for _, bind := range startupBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	// Finding apps section
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  ─── 🔍 Finding Apps ───"))
	b.WriteString("\n")
	findBindings := []struct {
		key  string
		desc string
	}{
		{"/", "Search by name or command"},
		{"f", "Cycle filter: all, enabled, disabled, origin"},
		{"Esc", "Clear search and filter"},
		{"a", "Add a custom command or script"},
	}
	for _, bind := range findBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	// Navigation section
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  ─── 🧭 Navigation ───"))
	b.WriteString("\n")
	navBindings := []struct {
		key  string
		desc string
	}{
		{"↑/k ↓/j", "Move cursor up/down"},
		{"Tab", "Switch List ↔ Detail panel"},
		{"PgUp/PgDn", "Scroll page"},
		{"Home/End", "Jump to first/last"},
	}
	for _, bind := range navBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	// Transfer section
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  ─── 📦 Transfer & Files ───"))
	b.WriteString("\n")
	transferBindings := []struct {
		key  string
		desc string
	}{
		{"x", "Export startup selection to JSON"},
		{"i", "Import startup selection from JSON"},
		{"o", "Open ~/.config/autostart in the file manager"},
		{"r", "Rescan installed applications"},
	}
	for _, bind := range transferBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	// History section
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  ─── 💾 Snapshots ───"))
	b.WriteString("\n")
	historyBindings := []struct {
		key  string
		desc string
	}{
		{"g", "Browse snapshot history"},
		{"R", "Restore the autostart folder from a snapshot"},
	}
	for _, bind := range historyBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	// General section
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  ─── ⚙️ General ───"))
	b.WriteString("\n")
	generalBindings := []struct {
		key  string
		desc string
	}{
		{"?", "Toggle this help"},
		{"Esc", "Go back / Cancel"},
		{"q", "Quit"},
	}
	for _, bind := range generalBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	// Status icons legend
	b.WriteString("\n")
	b.WriteString(ui.PanelTitleStyle.Render("📊 Status Icons"))
	b.WriteString("\n\n")
	statusIcons := []struct {
		icon string
		desc string
	}{
		{"🟢", "Starts at login"},
		{"⚪", "Does not start at login"},
		{"⏱", "Delayed start"},
		{"🖥️", "Native package"},
		{"📦", "Flatpak or Snap"},
		{"⚙️", "Custom command"},
	}
	for _, icon := range statusIcons {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(4).Render(icon.icon),
			ui.HelpDescStyle.Render(icon.desc),
		))
	}

	// How it works
	b.WriteString("\n")
	b.WriteString(ui.PanelTitleStyle.Render("💡 How it works"))
	b.WriteString("\n\n")
	b.WriteString(ui.MutedStyle.Render("  Enabling an app:"))
	b.WriteString("\n")
	b.WriteString("    • Writes a .desktop entry to ~/.config/autostart/\n")
	b.WriteString("    • Your desktop environment launches it at login\n")
	b.WriteString("    • Disabling removes that entry again\n")
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  Delays:"))
	b.WriteString("\n")
	b.WriteString("    • Wrap the command in sh -c 'sleep N && ...'\n")
	b.WriteString("    • Useful for apps that need the network or tray first\n")
	b.WriteString("    • Setting the delay to 0 removes the wrapper\n")
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  Snapshots:"))
	b.WriteString("\n")
	b.WriteString("    • Every change commits the folder to a local history\n")
	b.WriteString("    • Press g to browse, R to roll back\n")
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  Press esc to close"))

	return b.String()
}

func (m *Model) renderDiff() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.diffPanel.View())

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderHistory() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.historyPanel.View())

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderAddForm() string {
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("➕ Add Custom Startup Application"))
	b.WriteString("\n\n")

	labels := []string{"Name", "Command", "Delay (seconds)"}
	for i := range m.addInputs {
		b.WriteString(ui.HelpKeyStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.addInputs[i].View())
		b.WriteString("\n\n")
	}

	if m.addError != "" {
		b.WriteString(ui.RenderNotification("error", m.addError))
		b.WriteString("\n\n")
	}

	items := []string{
		ui.RenderHelpItem("enter", "next/submit"),
		ui.RenderHelpItem("tab", "next field"),
		ui.RenderHelpItem("esc", "cancel"),
	}
	b.WriteString(ui.MutedStyle.Render(strings.Join(items, "  ")))

	dialog := ui.DialogStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func (m *Model) renderDelayPrompt() string {
	name := ""
	if app := m.selectedApp(); app != nil {
		name = app.Name
	}

	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("⏱  Startup Delay"))
	b.WriteString("\n\n")
	b.WriteString("Wait this many seconds before starting " + ui.AppNameStyle.Render(name) + ":")
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if m.delayError != "" {
		b.WriteString(ui.RenderNotification("error", m.delayError))
		b.WriteString("\n\n")
	}

	items := []string{
		ui.RenderHelpItem("enter", "apply"),
		ui.RenderHelpItem("esc", "cancel"),
	}
	b.WriteString(ui.MutedStyle.Render(strings.Join(items, "  ")))
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("0 starts the app immediately"))

	dialog := ui.DialogStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func categoryTitle(cat inventory.Category) string {
	s := string(cat)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func main() {
	// Check for flags
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("startmgr %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			fmt.Println("startmgr - A TUI for managing Linux startup applications")
			fmt.Println()
			fmt.Println("Usage: startmgr [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -v, --version    Show version")
			fmt.Println("  -h, --help       Show this help")
			fmt.Println("  -d, --debug      Enable debug mode (logs to stderr)")
			fmt.Println()
			fmt.Println("Run without arguments to start the TUI.")
			return
		case "-d", "--debug", "debug":
			debugMode = true
			scanner.DebugMode = true
			fmt.Fprintln(os.Stderr, "[DEBUG] Debug mode enabled")
		}
	}

	m := New()
	if m.err != nil {
		fmt.Fprintf(os.Stderr, "startmgr: %v\n", m.err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
