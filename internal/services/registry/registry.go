// Package registry maps scanned token identities to player slots and holds
// each slot's balance for the lifetime of a session.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/cardbank/internal/model"
)

// Unassigned is returned as the slot index when a card resolves to no player
const Unassigned = -1

// Registry is a fixed-size, append-only table of player slots. Once a slot
// has an identity it keeps it for the rest of the session.
type Registry struct {
	slots    []model.Slot
	assigned int
	logger   *slog.Logger
}

// New creates a registry with numPlayers empty slots. The count must lie
// within [model.MinPlayers, model.MaxPlayers].
func New(numPlayers int, logger *slog.Logger) (*Registry, error) {
	if numPlayers < model.MinPlayers || numPlayers > model.MaxPlayers {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", model.ErrInvalidPlayerCount, numPlayers, model.MinPlayers, model.MaxPlayers)
	}
	return &Registry{
		slots:  make([]model.Slot, numPlayers),
		logger: logger,
	}, nil
}

// Size returns the number of player slots
func (r *Registry) Size() int {
	return len(r.slots)
}

// Assigned returns the number of slots holding an identity
func (r *Registry) Assigned() int {
	return r.assigned
}

// Enrolled returns true once every slot has an identity
func (r *Registry) Enrolled() bool {
	return r.assigned == len(r.slots)
}

// Resolve returns the slot for identity, enrolling it into the first empty
// slot while enrollment is still open. After enrollment an unknown identity
// returns Unassigned with ErrUnassignedCard.
func (r *Registry) Resolve(id model.Identity) (int, error) {
	if err := id.Validate(); err != nil {
		return Unassigned, err
	}
	if idx := r.find(id); idx != Unassigned {
		return idx, nil
	}
	if r.Enrolled() {
		return Unassigned, model.ErrUnassignedCard
	}
	return r.assign(id), nil
}

// Enroll admits a new identity into the next empty slot. A card that is
// already enrolled returns its existing slot with ErrDuplicateEnrollment
// and does not advance enrollment.
func (r *Registry) Enroll(id model.Identity) (int, error) {
	if err := id.Validate(); err != nil {
		return Unassigned, err
	}
	if idx := r.find(id); idx != Unassigned {
		return idx, model.ErrDuplicateEnrollment
	}
	if r.Enrolled() {
		return Unassigned, model.ErrRegistryFull
	}
	return r.assign(id), nil
}

// Lookup returns the slot for an enrolled identity without ever enrolling it
func (r *Registry) Lookup(id model.Identity) (int, error) {
	if err := id.Validate(); err != nil {
		return Unassigned, err
	}
	if idx := r.find(id); idx != Unassigned {
		return idx, nil
	}
	return Unassigned, model.ErrUnassignedCard
}

// Identity returns the identity held by a slot
func (r *Registry) Identity(idx int) (model.Identity, error) {
	if err := r.checkIndex(idx); err != nil {
		return nil, err
	}
	return r.slots[idx].Identity, nil
}

// Slots returns a copy of every slot
func (r *Registry) Slots() []model.Slot {
	out := make([]model.Slot, len(r.slots))
	for i, s := range r.slots {
		out[i] = model.Slot{
			Identity: append(model.Identity(nil), s.Identity...),
			Balance:  s.Balance,
		}
	}
	return out
}

func (r *Registry) find(id model.Identity) int {
	for i, s := range r.slots {
		if s.Assigned() && s.Identity.Equal(id) {
			return i
		}
	}
	return Unassigned
}

func (r *Registry) assign(id model.Identity) int {
	idx := r.assigned
	r.slots[idx].Identity = append(model.Identity(nil), id...)
	r.assigned++

	r.logger.Info("card enrolled",
		slog.Int("slot", idx),
		slog.String("identity", id.String()),
	)
	return idx
}

func (r *Registry) checkIndex(idx int) error {
	if idx < 0 || idx >= len(r.slots) {
		return fmt.Errorf("%w: %d", model.ErrSlotOutOfRange, idx)
	}
	return nil
}
