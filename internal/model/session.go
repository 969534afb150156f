package model

import "time"

// SessionID uniquely identifies one power-on session of the terminal
type SessionID string

// Phase represents the current stage of a session
type Phase string

const (
	PhaseSelectPlayers   Phase = "select_players"   // Choosing how many players
	PhaseEnrolling       Phase = "enrolling"        // Scanning a token for each player
	PhaseStartingBalance Phase = "starting_balance" // Choosing the starting money
	PhaseMenu            Phase = "menu"             // Normal play
)

// Player count bounds for a session
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// Slot is one player's ledger entry
type Slot struct {
	Identity Identity
	Balance  int64
}

// Assigned returns true once a token has been enrolled into the slot
func (s Slot) Assigned() bool {
	return !s.Identity.IsEmpty()
}

// Session is a point-in-time snapshot of the terminal's ledger
type Session struct {
	ID              SessionID
	Phase           Phase
	NumPlayers      int
	StartingBalance int64
	Slots           []Slot

	// Activity
	LastAction  ActionID // Empty until the first action completes
	ActionCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalMoney returns the sum of all slot balances
func (s *Session) TotalMoney() int64 {
	var total int64
	for _, slot := range s.Slots {
		total += slot.Balance
	}
	return total
}

// AssignedCount returns the number of enrolled slots
func (s *Session) AssignedCount() int {
	count := 0
	for _, slot := range s.Slots {
		if slot.Assigned() {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	cp := *s
	cp.Slots = make([]Slot, len(s.Slots))
	for i, slot := range s.Slots {
		cp.Slots[i] = Slot{
			Identity: append(Identity(nil), slot.Identity...),
			Balance:  slot.Balance,
		}
	}
	return &cp
}
