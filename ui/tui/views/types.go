package views

import (
	"tipstr/internal/output"
	"tipstr/ui/tui/state"

	zone "github.com/lrstanley/bubblezone"
)

// Clickable zone ids.
const (
	ZoneSpin     = "spin"
	ZoneNoticeOK = "notice_ok"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int
	Zones         *zone.Manager

	// Wheel
	Percentages  []int
	DisplayAngle float64
	Radius       int
	Currency     string

	// Component States
	InputView   string
	SpinnerView string
	ChartView   string
	HelpView    string

	Receipt    output.Receipt
	HasReceipt bool
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
