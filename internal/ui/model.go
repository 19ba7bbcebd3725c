package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"timeplay/internal/config"
	"timeplay/internal/domain"
	"timeplay/internal/eventbus"
	"timeplay/internal/logic"
	"timeplay/internal/playback"
	"timeplay/internal/ui/views"
)

// copyWidth keeps copied captions on as few lines as the caption allows
const copyWidth = 1 << 16

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	ctrl      *playback.Controller
	frames    *FramePresenter
	items     logic.ItemStore
	selection logic.SelectionReader

	width  int
	height int
	keys   keyMap
	help   help.Model
	list   viewport.Model

	renderer   *views.Renderer
	helpRender *HelpRenderer
	pager      *PagerOps

	frame         Frame
	showHelp      bool
	dragging      bool
	inPagerMode   bool
	statusMessage string
	statusIsError bool
}

// NewModel creates a new UI model. bus may be nil, in which case setting
// changes are applied to the controller directly.
func NewModel(bus eventbus.EventBus, cfg *config.Config, ctrl *playback.Controller, frames *FramePresenter,
	items logic.ItemStore, selection logic.SelectionReader) *Model {
	if selection == nil {
		selection = logic.NewSelectionStore(nil)
	}
	m := &Model{
		bus:        bus,
		config:     cfg,
		ctrl:       ctrl,
		frames:     frames,
		items:      items,
		selection:  selection,
		keys:       defaultKeyMap(),
		help:       help.New(),
		list:       viewport.New(0, 0),
		renderer:   views.NewRenderer(cfg.Buttons),
		helpRender: NewHelpRenderer(),
		pager:      NewPagerOps(nil),
		frame:      frames.Latest(),
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init starts listening for playback frames
func (m *Model) Init() tea.Cmd {
	return waitForFrame(m.frames.Updates())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshList(false)
		return m, nil

	case frameMsg:
		m.frame = m.frames.Latest()
		m.refreshList(true)
		return m, waitForFrame(m.frames.Updates())

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case pagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.setStatus(fmt.Sprintf("pager: %v", msg.err), true)
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("Clipboard copy failed: %v", msg.err)
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus("caption copied", false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), msg.String() == "esc", key.Matches(msg, m.keys.Quit):
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.PlayPause):
		m.togglePlay()
	case key.Matches(msg, m.keys.Stop):
		m.ctrl.Stop()
	case key.Matches(msg, m.keys.Previous):
		m.ctrl.Previous()
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Next()
	case key.Matches(msg, m.keys.First):
		m.scrubTo(m.ctrl.Snapshot().ScrubMin)
	case key.Matches(msg, m.keys.Last):
		m.scrubTo(m.ctrl.Snapshot().ScrubMax)
	case key.Matches(msg, m.keys.Loop):
		m.changePlayback(func(c *domain.PlaybackConfig) { c.Loop = !c.Loop })
	case key.Matches(msg, m.keys.BinUp):
		m.changePlayback(func(c *domain.PlaybackConfig) { c.BinSize++ })
	case key.Matches(msg, m.keys.BinDown):
		m.changePlayback(func(c *domain.PlaybackConfig) { c.BinSize-- })
	case key.Matches(msg, m.keys.Faster):
		m.changePlayback(func(c *domain.PlaybackConfig) { c.TickInterval /= 2 })
	case key.Matches(msg, m.keys.Slower):
		m.changePlayback(func(c *domain.PlaybackConfig) {
			c.TickInterval *= 2
			if limit := config.MaxInterval * time.Millisecond; c.TickInterval > limit {
				c.TickInterval = limit
			}
		})
	case key.Matches(msg, m.keys.Pager):
		return m.openPager()
	case key.Matches(msg, m.keys.Copy):
		return copyToClipboard(m.captionText())
	case key.Matches(msg, m.keys.Reload):
		m.requestReload()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp || m.inPagerMode {
		return nil
	}
	row := msg.Y - views.PadTop
	col := msg.X - views.PadLeft

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return cmd
		}
		switch {
		case row == views.ToolbarRow:
			if b, ok := m.renderer.Toolbar().ButtonAt(col, m.frame.Controls); ok {
				m.pressButton(b)
			}
		case row == views.ScrubberRow && m.config.Scrubber.Show:
			m.dragging = true
			m.ctrl.BeginScrub()
			m.ctrl.ScrubTo(m.scrubber().ValueAt(col))
		}

	case tea.MouseActionMotion:
		if m.dragging {
			m.ctrl.ScrubTo(m.scrubber().ValueAt(col))
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.ctrl.ScrubTo(m.scrubber().ValueAt(col))
			m.ctrl.EndScrub()
			m.dragging = false
		}
	}
	return nil
}

func (m *Model) pressButton(b views.Button) {
	if !views.Enabled(b, m.frame.Controls) {
		return
	}
	switch b {
	case views.ButtonPlay:
		m.ctrl.Play()
	case views.ButtonPause:
		m.ctrl.Pause()
	case views.ButtonStop:
		m.ctrl.Stop()
	case views.ButtonPrevious:
		m.ctrl.Previous()
	case views.ButtonNext:
		m.ctrl.Next()
	}
}

func (m *Model) togglePlay() {
	if m.ctrl.Snapshot().Status == domain.Playing {
		m.ctrl.Pause()
		return
	}
	m.ctrl.Play()
}

func (m *Model) scrubTo(v int) {
	m.ctrl.BeginScrub()
	m.ctrl.ScrubTo(v)
	m.ctrl.EndScrub()
}

// changePlayback edits the running playback settings. The change goes
// through the bus so it is persisted; the controller restarts from rest.
func (m *Model) changePlayback(fn func(*domain.PlaybackConfig)) {
	cfg := m.ctrl.Snapshot().Config
	fn(&cfg)
	cfg = cfg.Normalized()

	if m.bus != nil {
		m.bus.Publish(eventbus.ConfigChangedEvent{Playback: cfg})
	} else {
		m.ctrl.Refresh(m.items.Items(), cfg)
	}
	m.setStatus(fmt.Sprintf("bin %d, every %s, loop %t", cfg.BinSize, cfg.TickInterval, cfg.Loop), false)
}

func (m *Model) requestReload() {
	if m.bus == nil || m.items.Source() == "" {
		m.setStatus("nothing to reload", true)
		return
	}
	m.bus.Publish(eventbus.DataRefreshRequestedEvent{Path: m.items.Source()})
	m.setStatus("reloading...", false)
}

func (m *Model) openPager() tea.Cmd {
	content := views.PlainListing(m.items.Display(), m.items.Items())
	m.inPagerMode = true
	return func() tea.Msg {
		return pagerMsg{err: m.pager.ShowInPager(content)}
	}
}

func (m *Model) captionText() string {
	return views.CaptionText(m.frame.Window, m.frame.Stopped, m.items.Display(), copyWidth, m.config.Caption.Separator)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.DataLoadedEvent:
		m.setStatus(fmt.Sprintf("loaded %d items", len(e.Sequence.Items)), false)
		m.refreshList(false)
	case eventbus.ErrorEvent:
		text := e.Message
		if e.Err != nil {
			text = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		m.setStatus(text, true)
	case eventbus.ConfigSavedEvent:
		m.setStatus("settings saved", false)
	}
}

func (m *Model) setStatus(text string, isError bool) {
	m.statusMessage = text
	m.statusIsError = isError
}

func (m *Model) scrubber() views.Scrubber {
	return views.ScrubberFor(m.viewState())
}

// refreshList redraws the linked item list; follow scrolls the first
// highlighted item into view
func (m *Model) refreshList(follow bool) {
	state := m.viewState()
	width := views.ContentWidth(m.width)

	height := m.height - 2*views.PadTop - views.HeaderLines(state) - 1
	if height < 3 {
		height = 3
	}
	m.list.Width = width
	m.list.Height = height

	items := m.items.Items()
	m.list.SetContent(views.RenderItemList(items, m.selection.IsSelected, m.selection.Active(), width, m.renderer.Styles()))

	if !follow {
		return
	}
	idx := views.FirstSelected(items, m.selection.IsSelected)
	if idx < 0 {
		return
	}
	if idx < m.list.YOffset || idx >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(idx)
	}
}

func (m *Model) viewState() views.ViewState {
	snap := m.ctrl.Snapshot()
	return views.ViewState{
		Width:         m.width,
		Height:        m.height,
		HasData:       m.items.Len() > 0 || m.items.Source() != "",
		Source:        m.items.Source(),
		Display:       m.items.Display(),
		Total:         snap.Total,
		Window:        m.frame.Window,
		Stopped:       m.frame.Stopped,
		Cursor:        m.frame.Cursor,
		Controls:      m.frame.Controls,
		Playback:      snap.Config,
		ScrubMin:      snap.ScrubMin,
		ScrubMax:      snap.ScrubMax,
		ScrubStep:     snap.ScrubStep,
		Scrubbing:     snap.Scrubbing,
		Caption:       m.config.Caption,
		ShowScrubber:  m.config.Scrubber.Show,
		ShowHelp:      m.showHelp,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
	}
}

// View renders the UI
func (m *Model) View() string {
	state := m.viewState()
	state.ListView = m.list.View()
	state.HelpView = m.help.View(m.keys)
	if m.showHelp {
		state.FullHelp = m.helpRender.Render(m.keys)
	}
	return m.renderer.Render(state)
}
