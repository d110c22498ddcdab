package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tipstr/internal/config"
	"tipstr/internal/snapshot"
	"tipstr/internal/wheel"
	"tipstr/ui/tui/state"
	"tipstr/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
)

// fixedIndex always picks the same segment.
type fixedIndex int

func (f fixedIndex) Intn(n int) int { return int(f) % n }

func newTestModel(t *testing.T) *MainModel {
	t.Helper()
	m, err := InitialModel(config.Default(), nil, fixedIndex(2))
	if err != nil {
		t.Fatalf("InitialModel: %v", err)
	}
	t.Cleanup(m.zones.Close)
	return &m
}

func typeText(m *MainModel, s string) *MainModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(*MainModel)
}

func press(m *MainModel, k tea.KeyType) (*MainModel, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: k})
	return updated.(*MainModel), cmd
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t)

	if m.state.CurrentPage != state.PageWheel {
		t.Errorf("Expected initial page PageWheel, got %v", m.state.CurrentPage)
	}
	if m.state.Wheel.Phase() != wheel.Idle {
		t.Errorf("Expected idle wheel, got %v", m.state.Wheel.Phase())
	}
	if _, ok := m.Receipt(); ok {
		t.Errorf("Expected no receipt before the first spin")
	}
}

func TestInitialModelRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TipPercentages = nil
	if _, err := InitialModel(cfg, nil, nil); !errors.Is(err, wheel.ErrNoPercentages) {
		t.Errorf("Expected ErrNoPercentages, got %v", err)
	}
}

func TestTypingUpdatesBill(t *testing.T) {
	m := typeText(newTestModel(t), "42.50")

	if got := m.state.Wheel.Bill(); got != "42.50" {
		t.Errorf("Expected bill %q, got %q", "42.50", got)
	}
}

func TestInvalidBillShowsNotice(t *testing.T) {
	for _, bill := range []string{"", "0", "-5", "abc"} {
		m := newTestModel(t)
		if bill != "" {
			m = typeText(m, bill)
		}
		before := m.state.Wheel

		m, cmd := press(m, tea.KeyEnter)

		if cmd != nil {
			t.Errorf("bill %q: expected no command", bill)
		}
		if m.state.Notice != views.InvalidBillNotice {
			t.Errorf("bill %q: expected notice, got %q", bill, m.state.Notice)
		}
		if m.state.Wheel != before {
			t.Errorf("bill %q: expected wheel state unchanged", bill)
		}
		if !strings.Contains(m.View(), views.InvalidBillNotice) {
			t.Errorf("bill %q: expected notice in view", bill)
		}
	}
}

func TestNoticeIsModal(t *testing.T) {
	m := typeText(newTestModel(t), "abc")
	m, _ = press(m, tea.KeyEnter)

	// Typing and page switching are swallowed while the notice is up.
	m = typeText(m, "5")
	m, _ = press(m, tea.KeyTab)
	if m.state.Wheel.Bill() != "abc" || m.state.CurrentPage != state.PageWheel {
		t.Errorf("Expected input ignored while notice shown")
	}

	m, _ = press(m, tea.KeyEsc)
	if m.state.Notice != "" {
		t.Errorf("Expected esc to dismiss the notice")
	}
}

func TestSpinCycle(t *testing.T) {
	m := typeText(newTestModel(t), "50")

	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("Expected spin commands")
	}
	if !m.state.Wheel.Spinning() {
		t.Fatalf("Expected spinning after enter, got %v", m.state.Wheel.Phase())
	}
	if !strings.Contains(m.View(), views.SpinningLabel) {
		t.Errorf("Expected %q on the button", views.SpinningLabel)
	}
	id := m.state.Wheel.SpinID()
	if pending, ok := m.timer.Pending(); !ok || pending != id {
		t.Errorf("Expected timer armed for %q, got %q", id, pending)
	}

	// A second trigger is inert.
	before := m.state.Wheel
	m, cmd = press(m, tea.KeyEnter)
	if cmd != nil || m.state.Wheel != before {
		t.Errorf("Expected second trigger to be ignored")
	}

	// A stale completion is ignored.
	updated, _ := m.Update(SpinCompleteMsg{SpinID: "stale"})
	m = updated.(*MainModel)
	if !m.state.Wheel.Spinning() {
		t.Errorf("Expected stale completion to be ignored")
	}

	updated, _ = m.Update(SpinCompleteMsg{SpinID: id})
	m = updated.(*MainModel)

	tip, ok := m.state.Wheel.SelectedTip()
	if !ok || tip != 20 {
		t.Fatalf("Expected 20%% selected, got %d (%v)", tip, ok)
	}
	if len(m.state.History) != 1 || m.state.History[0].Total != 60 {
		t.Errorf("Expected one history record with total 60, got %+v", m.state.History)
	}
	if len(m.history.History) != 1 {
		t.Errorf("Expected chart point for the spin")
	}

	r, ok := m.Receipt()
	if !ok {
		t.Fatal("Expected receipt after spin")
	}
	if got := r.ItemByKey("total").Value; got != "$60.00" {
		t.Errorf("Expected total $60.00, got %s", got)
	}
	view := m.View()
	if !strings.Contains(view, "$60.00") || !strings.Contains(view, views.SpinLabel) {
		t.Errorf("Expected result panel and idle button in view")
	}

	m.timer.Stop()
}

func TestResultFollowsBillEdits(t *testing.T) {
	m := typeText(newTestModel(t), "50")
	m, _ = press(m, tea.KeyEnter)
	updated, _ := m.Update(SpinCompleteMsg{SpinID: m.state.Wheel.SpinID()})
	m = updated.(*MainModel)

	m = typeText(m, "0")
	r, ok := m.Receipt()
	if !ok || r.ItemByKey("total").Value != "$600.00" {
		t.Errorf("Expected receipt for bill 500, got %+v", r)
	}

	for range 3 {
		m, _ = press(m, tea.KeyBackspace)
	}
	if _, ok := m.Receipt(); ok {
		t.Errorf("Expected result panel hidden for an empty bill")
	}
}

func TestSpinAnimation(t *testing.T) {
	m := typeText(newTestModel(t), "50")
	m, _ = press(m, tea.KeyEnter)
	target := m.state.Wheel.Rotation()

	if m.displayAngle != 0 {
		t.Errorf("Expected initial displayAngle 0, got %f", m.displayAngle)
	}

	// Frame 1
	animateMsg := AnimateMsg(time.Now())
	updated, _ := m.Update(animateMsg)
	m = updated.(*MainModel)

	if m.displayAngle <= 0 {
		t.Errorf("Expected displayAngle to increase after animation frame, got %f", m.displayAngle)
	}
	if m.displayAngle >= target {
		t.Errorf("Expected displayAngle to not reach target immediately, got %f", m.displayAngle)
	}

	// Frame 2
	updated, _ = m.Update(animateMsg)
	m = updated.(*MainModel)
	prev := m.displayAngle

	// Frame 3
	updated, _ = m.Update(animateMsg)
	m = updated.(*MainModel)

	if m.displayAngle <= prev {
		t.Errorf("Expected displayAngle to continue increasing, got %f (prev %f)", m.displayAngle, prev)
	}

	m.timer.Stop()
}

func TestSpinAnimationSettlesOnSelectedSegment(t *testing.T) {
	n := len(config.Default().TipPercentages)
	for index := 0; index < n; index++ {
		model, err := InitialModel(config.Default(), nil, fixedIndex(index))
		if err != nil {
			t.Fatal(err)
		}
		m := typeText(&model, "50")
		m, _ = press(m, tea.KeyEnter)

		// One frame per 60 fps tick for the whole spin delay.
		frames := int(config.Default().SpinDuration.Seconds() * 60)
		for i := 0; i < frames; i++ {
			updated, _ := m.Update(AnimateMsg(time.Now()))
			m = updated.(*MainModel)
		}

		if got := wheel.SegmentAt(m.displayAngle, n); got != index {
			t.Errorf("index %d: pointer over segment %d (display %.1f, target %.1f)",
				index, got, m.displayAngle, m.state.Wheel.Rotation())
		}
		if diff := m.state.Wheel.Rotation() - m.displayAngle; diff < -1e-6 || diff > 1 {
			t.Errorf("index %d: expected to settle within 1 degree without overshoot, off by %.3f", index, diff)
		}

		m.timer.Stop()
		model.zones.Close()
	}
}

func TestAnimationStopsWhenSettled(t *testing.T) {
	m := newTestModel(t)
	if m.animating {
		t.Fatal("Expected no animation before the first spin")
	}

	m = typeText(m, "50")
	m, _ = press(m, tea.KeyEnter)
	if !m.animating {
		t.Fatal("Expected animation to start with the spin")
	}
	updated, _ := m.Update(SpinCompleteMsg{SpinID: m.state.Wheel.SpinID()})
	m = updated.(*MainModel)

	var cmd tea.Cmd
	for i := 0; i < 60*10; i++ {
		updated, cmd = m.Update(AnimateMsg(time.Now()))
		m = updated.(*MainModel)
		if cmd == nil {
			break
		}
	}

	if cmd != nil || m.animating {
		t.Fatalf("Expected animation tick to stop once settled")
	}
	if m.displayAngle != m.state.Wheel.Rotation() || m.velocity != 0 {
		t.Errorf("Expected wheel at rest on its rotation, got %.4f vs %.4f", m.displayAngle, m.state.Wheel.Rotation())
	}
	m.timer.Stop()
}

func TestPageToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, tea.KeyTab)
	if m.state.CurrentPage != state.PageHistory {
		t.Errorf("Expected PageHistory after tab, got %v", m.state.CurrentPage)
	}
	if !strings.Contains(m.View(), "Spin History") {
		t.Errorf("Expected history page view")
	}

	// Enter does nothing on the history page.
	m, cmd := press(m, tea.KeyEnter)
	if cmd != nil || m.state.Notice != "" {
		t.Errorf("Expected enter ignored on history page")
	}

	m, _ = press(m, tea.KeyTab)
	if m.state.CurrentPage != state.PageWheel {
		t.Errorf("Expected PageWheel after second tab, got %v", m.state.CurrentPage)
	}
}

func TestQuitStopsTimer(t *testing.T) {
	m := typeText(newTestModel(t), "50")
	m, _ = press(m, tea.KeyEnter)

	m, cmd := press(m, tea.KeyCtrlC)

	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Expected tea.QuitMsg")
	}
	if _, ok := m.timer.Pending(); ok {
		t.Errorf("Expected timer stopped on quit")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("Expected goodbye view")
	}
}

func TestCopyReceipt(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(m, tea.KeyCtrlY)
	if cmd != nil || m.state.Status != "Nothing to copy yet" {
		t.Errorf("Expected nothing to copy before a spin")
	}

	var copied string
	m.clipboard = func(s string) error {
		copied = s
		return nil
	}
	m = typeText(m, "100")
	m, _ = press(m, tea.KeyEnter)
	updated, _ := m.Update(SpinCompleteMsg{SpinID: m.state.Wheel.SpinID()})
	m = updated.(*MainModel)

	m, cmd = press(m, tea.KeyCtrlY)
	if cmd == nil {
		t.Fatal("Expected copy command")
	}
	updated, _ = m.Update(cmd())
	m = updated.(*MainModel)

	if !strings.Contains(copied, "Total:     $120.00") {
		t.Errorf("Expected receipt text on clipboard, got %q", copied)
	}
	if m.state.Status != "Receipt copied to clipboard" {
		t.Errorf("Unexpected status %q", m.state.Status)
	}

	updated, _ = m.Update(ClipboardMsg{Err: errors.New("no clipboard")})
	m = updated.(*MainModel)
	if !strings.HasPrefix(m.state.Status, "Copy failed") {
		t.Errorf("Expected copy failure status, got %q", m.state.Status)
	}
}

func TestSnapshot(t *testing.T) {
	m := newTestModel(t)
	m.cfg.SnapshotDir = t.TempDir()

	var got snapshot.Wheel
	m.saveSnapshot = func(dir string, w snapshot.Wheel, now time.Time) (string, error) {
		got = w
		return dir + "/wheel.png", nil
	}

	m, cmd := press(m, tea.KeyCtrlS)
	if cmd == nil {
		t.Fatal("Expected snapshot command")
	}
	updated, _ := m.Update(cmd())
	m = updated.(*MainModel)

	if len(got.Percentages) != len(config.Default().TipPercentages) {
		t.Errorf("Expected all segments in snapshot, got %v", got.Percentages)
	}
	if !strings.HasSuffix(m.state.Status, "wheel.png") {
		t.Errorf("Expected saved path in status, got %q", m.state.Status)
	}

	updated, _ = m.Update(SnapshotMsg{Err: errors.New("disk full")})
	m = updated.(*MainModel)
	if !strings.HasPrefix(m.state.Status, "Snapshot failed") {
		t.Errorf("Expected failure status, got %q", m.state.Status)
	}
}

func TestTimerDeliversCompletion(t *testing.T) {
	cfg := config.Default().WithSpinDuration(10 * time.Millisecond)
	model, err := InitialModel(cfg, nil, fixedIndex(0))
	if err != nil {
		t.Fatal(err)
	}
	defer model.zones.Close()
	m := typeText(&model, "50")
	m, _ = press(m, tea.KeyEnter)

	msg := m.completeCmd(m.state.Wheel)()
	done, ok := msg.(SpinCompleteMsg)
	if !ok || done.SpinID != m.state.Wheel.SpinID() {
		t.Fatalf("Expected completion for the spin in flight, got %#v", msg)
	}
}
