package response

import (
	"time"

	"github.com/mcoot/cardbank/internal/model"
)

// Slot represents one player's ledger entry in API responses
type Slot struct {
	Index    int    `json:"index"`
	Identity string `json:"identity,omitempty"`
	Balance  int64  `json:"balance"`
	Assigned bool   `json:"assigned"`
}

// SlotFromModel converts a model.Slot to a response Slot
func SlotFromModel(idx int, s model.Slot) Slot {
	return Slot{
		Index:    idx,
		Identity: s.Identity.String(),
		Balance:  s.Balance,
		Assigned: s.Assigned(),
	}
}

// Session represents a mirrored terminal session
type Session struct {
	ID              string    `json:"id"`
	Phase           string    `json:"phase"`
	NumPlayers      int       `json:"num_players"`
	StartingBalance int64     `json:"starting_balance"`
	Slots           []Slot    `json:"slots"`
	TotalMoney      int64     `json:"total_money"`
	LastAction      *string   `json:"last_action"`
	ActionCount     int       `json:"action_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SessionFromModel converts model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	slots := make([]Slot, len(s.Slots))
	for i, slot := range s.Slots {
		slots[i] = SlotFromModel(i, slot)
	}

	var lastAction *string
	if s.LastAction != "" {
		a := string(s.LastAction)
		lastAction = &a
	}

	return Session{
		ID:              string(s.ID),
		Phase:           string(s.Phase),
		NumPlayers:      s.NumPlayers,
		StartingBalance: s.StartingBalance,
		Slots:           slots,
		TotalMoney:      s.TotalMoney(),
		LastAction:      lastAction,
		ActionCount:     s.ActionCount,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// Health is the response for the health endpoint
type Health struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
