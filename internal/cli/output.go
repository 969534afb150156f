package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/cardbank/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Session:
		o.printSession(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSession(s response.Session) {
	fmt.Fprintf(o.w, "Session: %s\n", s.ID)
	fmt.Fprintf(o.w, "Phase: %s\n", s.Phase)
	fmt.Fprintf(o.w, "Players: %d\n", s.NumPlayers)
	if s.StartingBalance != 0 {
		fmt.Fprintf(o.w, "Starting balance: %d$\n", s.StartingBalance)
	}
	if s.LastAction != nil {
		fmt.Fprintf(o.w, "Last action: %s (%d total)\n", *s.LastAction, s.ActionCount)
	}

	if len(s.Slots) > 0 {
		fmt.Fprintln(o.w, "Ledger:")
		for _, slot := range s.Slots {
			identity := slot.Identity
			if !slot.Assigned {
				identity = "(not enrolled)"
			}
			fmt.Fprintf(o.w, "  %d. %-29s %d$\n", slot.Index+1, identity, slot.Balance)
		}
		fmt.Fprintf(o.w, "Total: %d$\n", s.TotalMoney)
	}
}
