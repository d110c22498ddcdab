package views

import (
	"tipstr/ui/tui/state"
)

func RenderWheelPage(s state.AppState, props ViewProps) string {
	v := WheelView{}
	return v.Render(s, props)
}

func RenderHistory(s state.AppState, props ViewProps) string {
	v := HistoryView{}
	return v.Render(s, props)
}
