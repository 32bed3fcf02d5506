package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelDebug - 4
)

// Trace logs at LevelTrace through the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// TraceEnabled reports whether the default logger emits LevelTrace records.
func TraceEnabled() bool {
	return slog.Default().Enabled(context.Background(), LevelTrace)
}

// FormatState renders the PC, the step count and registers 1..n as a table.
func FormatState(state *State, n int) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("PC=%d steps=%d", state.PC, state.Steps))

	header := table.Row{}
	row := table.Row{}
	for i, v := range state.Registers.Values(n) {
		header = append(header, fmt.Sprintf("R%d", i+1))
		row = append(row, v)
	}
	t.AppendHeader(header)
	t.AppendRow(row)

	return t.Render()
}

// LogState writes a state checkpoint at debug level.
func LogState(state *State) {
	slog.Debug("StateCheckpoint",
		"PC", state.PC,
		"Steps", state.Steps,
		"Registers", []int(state.Registers),
	)
}
