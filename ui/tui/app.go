package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"tipstr/internal/config"
	"tipstr/internal/output"
	"tipstr/internal/snapshot"
	"tipstr/internal/tipcalc"
	"tipstr/internal/wheel"
	"tipstr/ui/tui/components"
	"tipstr/ui/tui/state"
	"tipstr/ui/tui/styles"
	"tipstr/ui/tui/views"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	cfg     config.Config
	log     *slog.Logger
	wheel   *wheel.Wheel
	timer   *wheel.Timer
	state   state.AppState
	input   textinput.Model
	spinner spinner.Model
	history *components.HistoryWidget
	help    help.Model
	keys    keyMap
	zones   *zone.Manager

	displayAngle float64
	velocity     float64 // Physics velocity
	spring       harmonica.Spring
	animating    bool

	now          func() time.Time
	clipboard    func(string) error
	saveSnapshot func(dir string, w snapshot.Wheel, now time.Time) (string, error)

	quitting bool
	width    int
	height   int
}

// Messages
type AnimateMsg time.Time

// SpinCompleteMsg is delivered when the spin timer fires.
type SpinCompleteMsg struct {
	SpinID string
}

type ClipboardMsg struct {
	Err error
}

type SnapshotMsg struct {
	Path string
	Err  error
}

// InitialModel builds the model from cfg. A nil rng uses a time-seeded source.
func InitialModel(cfg config.Config, log *slog.Logger, rng wheel.Randomizer) (MainModel, error) {
	w, err := wheel.New(wheel.Options{
		Percentages:  cfg.TipPercentages,
		FullTurns:    cfg.FullTurns,
		SpinDuration: cfg.SpinDuration,
	}, rng)
	if err != nil {
		return MainModel{}, fmt.Errorf("build wheel: %w", err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Prompt = cfg.Currency + " "
	ti.Placeholder = "0.00"
	ti.CharLimit = 16
	ti.Width = 12
	ti.Focus()

	maxPercent := 0
	for _, p := range cfg.TipPercentages {
		maxPercent = max(maxPercent, p)
	}

	// Critically damped; settles within a fraction of a degree in about 3s.
	spring := harmonica.NewSpring(harmonica.FPS(60), 5.0, 1.0)

	return MainModel{
		cfg:          cfg,
		log:          log,
		wheel:        w,
		timer:        &wheel.Timer{},
		input:        ti,
		spinner:      s,
		history:      components.NewHistoryWidget(30, 10, maxPercent),
		help:         help.New(),
		keys:         defaultKeyMap(),
		zones:        zone.New(),
		spring:       spring,
		now:          time.Now,
		clipboard:    clipboard.WriteAll,
		saveSnapshot: snapshot.Save,
		state: state.AppState{
			CurrentPage: state.PageWheel,
		},
	}, nil
}

func (m *MainModel) Init() tea.Cmd {
	return textinput.Blink
}

// settleEpsilon is how close, in degrees, the displayed wheel must be to its
// rotation before the animation tick stops.
const settleEpsilon = 0.01

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

// completeCmd arms the spin timer and waits for it off the event loop. A
// cancelled wait produces no message.
func (m *MainModel) completeCmd(s wheel.State) tea.Cmd {
	wait := m.timer.Arm(s.SpinID(), s.EndsAt())
	return func() tea.Msg {
		id, fired := wait()
		if !fired {
			return nil
		}
		return SpinCompleteMsg{SpinID: id}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case SpinCompleteMsg:
		return m.handleSpinComplete(msg)

	case ClipboardMsg:
		return m.handleClipboardMsg(msg)

	case SnapshotMsg:
		return m.handleSnapshotMsg(msg)

	case spinner.TickMsg:
		if !m.state.Wheel.Spinning() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	// The notice is modal: only dismiss gets through.
	if m.state.Blocked() {
		if key.Matches(msg, m.keys.Dismiss) {
			m.state.Notice = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Page):
		if m.state.CurrentPage == state.PageWheel {
			m.state.CurrentPage = state.PageHistory
		} else {
			m.state.CurrentPage = state.PageWheel
		}
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCmd()
	case key.Matches(msg, m.keys.Snapshot):
		return m, m.snapshotCmd()
	}

	if m.state.CurrentPage != state.PageWheel {
		return m, nil
	}

	if key.Matches(msg, m.keys.Spin) {
		return m.spin()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.Wheel = m.state.Wheel.WithBill(m.input.Value())
	return m, cmd
}

func (m *MainModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.timer.Stop()
	return m, tea.Quit
}

// spin triggers the wheel. An invalid bill raises the notice; a trigger
// while spinning is dropped.
func (m *MainModel) spin() (tea.Model, tea.Cmd) {
	next, err := m.wheel.Trigger(m.state.Wheel, m.now())
	switch {
	case errors.Is(err, wheel.ErrSpinInProgress):
		return m, nil
	case err != nil:
		m.log.Debug("spin rejected", "bill", m.state.Wheel.Bill(), "error", err)
		m.state.Notice = views.InvalidBillNotice
		return m, nil
	}

	m.state.Wheel = next
	m.state.Status = ""
	m.log.Info("spin started",
		"spin_id", next.SpinID(),
		"rotation", next.Rotation(),
		"ends_at", next.EndsAt(),
	)
	return m, tea.Batch(m.completeCmd(next), m.spinner.Tick, m.startAnimation())
}

// startAnimation starts the frame tick unless one is already running.
func (m *MainModel) startAnimation() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return animateCmd()
}

func (m *MainModel) handleSpinComplete(msg SpinCompleteMsg) (tea.Model, tea.Cmd) {
	next, ok := m.wheel.Complete(m.state.Wheel, msg.SpinID)
	if !ok {
		m.log.Debug("stale spin completion ignored", "spin_id", msg.SpinID)
		return m, nil
	}
	m.state.Wheel = next

	percent, _ := next.SelectedTip()
	q := tipcalc.FromState(next)
	m.state.History = append(m.state.History, state.SpinRecord{
		SpinID:  msg.SpinID,
		Percent: percent,
		Bill:    next.Bill(),
		Tip:     q.Tip,
		Total:   q.Total,
		At:      m.now(),
	})
	m.history.Push(float64(percent))

	m.log.Info("spin completed", "spin_id", msg.SpinID, "percent", percent)
	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	target := m.state.Wheel.Rotation()
	m.displayAngle, m.velocity = m.spring.Update(m.displayAngle, m.velocity, target)

	if !m.state.Wheel.Spinning() &&
		math.Abs(target-m.displayAngle) < settleEpsilon &&
		math.Abs(m.velocity) < settleEpsilon {
		m.displayAngle, m.velocity = target, 0
		m.animating = false
		return m, nil
	}
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	newW := msg.Width/2 - 6
	if newW > 10 {
		m.history.Resize(newW, 10)
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if m.state.Blocked() {
		if m.inZone(views.ZoneNoticeOK, msg) {
			m.state.Notice = ""
		}
		return m, nil
	}
	if m.state.CurrentPage == state.PageWheel && m.inZone(views.ZoneSpin, msg) {
		return m.spin()
	}
	return m, nil
}

func (m *MainModel) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// Receipt returns the result panel contents. It reports false until a tip
// has been selected and while the bill is empty.
func (m *MainModel) Receipt() (output.Receipt, bool) {
	if strings.TrimSpace(m.state.Wheel.Bill()) == "" {
		return output.Receipt{}, false
	}
	return output.BuildReceipt(tipcalc.FromState(m.state.Wheel), m.cfg.Currency)
}

func (m *MainModel) copyCmd() tea.Cmd {
	r, ok := m.Receipt()
	if !ok {
		m.state.Status = "Nothing to copy yet"
		return nil
	}
	text, write := r.PlainText(), m.clipboard
	return func() tea.Msg {
		return ClipboardMsg{Err: write(text)}
	}
}

func (m *MainModel) handleClipboardMsg(msg ClipboardMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("copy to clipboard failed", "error", msg.Err)
		m.state.Status = "Copy failed: " + msg.Err.Error()
		return m, nil
	}
	m.state.Status = "Receipt copied to clipboard"
	return m, nil
}

func (m *MainModel) snapshotCmd() tea.Cmd {
	w := snapshot.Wheel{
		Percentages: m.wheel.Percentages(),
		Colors:      styles.SegmentRGB(),
		Rotation:    m.displayAngle,
	}
	if r, ok := m.Receipt(); ok {
		w.Caption = caption(r)
	}
	dir, now, save := m.cfg.SnapshotDir, m.now(), m.saveSnapshot
	return func() tea.Msg {
		path, err := save(dir, w, now)
		return SnapshotMsg{Path: path, Err: err}
	}
}

func caption(r output.Receipt) string {
	var parts []string
	for _, it := range r.Items {
		parts = append(parts, it.Label+" "+it.Value)
	}
	return strings.Join(parts, "  ")
}

func (m *MainModel) handleSnapshotMsg(msg SnapshotMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("snapshot failed", "error", msg.Err)
		m.state.Status = "Snapshot failed: " + msg.Err.Error()
		return m, nil
	}
	m.log.Info("snapshot saved", "path", msg.Path)
	m.state.Status = "Saved " + msg.Path
	return m, nil
}

func (m *MainModel) props() views.ViewProps {
	r, ok := m.Receipt()
	return views.ViewProps{
		Width:        m.width,
		Height:       m.height,
		Zones:        m.zones,
		Percentages:  m.wheel.Percentages(),
		DisplayAngle: m.displayAngle,
		Radius:       views.DefaultRadius,
		Currency:     m.cfg.Currency,
		InputView:    m.input.View(),
		SpinnerView:  m.spinner.View(),
		ChartView:    m.history.View(),
		HelpView:     m.help.View(m.keys),
		Receipt:      r,
		HasReceipt:   ok,
	}
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	switch m.state.CurrentPage {
	case state.PageHistory:
		return views.RenderHistory(m.state, m.props())
	default:
		return views.RenderWheelPage(m.state, m.props())
	}
}

// Start runs the program until the user quits and returns the last receipt
// shown, if any.
func Start(cfg config.Config, log *slog.Logger) (output.Receipt, bool, error) {
	m, err := InitialModel(cfg, log, nil)
	if err != nil {
		return output.Receipt{}, false, err
	}
	defer m.zones.Close()

	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return output.Receipt{}, false, err
	}
	r, ok := m.Receipt()
	return r, ok, nil
}
