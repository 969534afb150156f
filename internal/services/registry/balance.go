package registry

import "github.com/mcoot/cardbank/internal/model"

// SetBalances gives every slot the same balance
func (r *Registry) SetBalances(amount int64) {
	for i := range r.slots {
		r.slots[i].Balance = amount
	}
}

// Balance returns a slot's balance
func (r *Registry) Balance(idx int) (int64, error) {
	if err := r.checkIndex(idx); err != nil {
		return 0, err
	}
	return r.slots[idx].Balance, nil
}

// Credit adds amount to a slot and returns the new balance
func (r *Registry) Credit(idx int, amount int64) (int64, error) {
	if err := r.checkIndex(idx); err != nil {
		return 0, err
	}
	r.slots[idx].Balance += amount
	return r.slots[idx].Balance, nil
}

// Debit subtracts amount from a slot and returns the new balance. There is
// no floor; balances may go negative.
func (r *Registry) Debit(idx int, amount int64) (int64, error) {
	if err := r.checkIndex(idx); err != nil {
		return 0, err
	}
	r.slots[idx].Balance -= amount
	return r.slots[idx].Balance, nil
}

// Transfer moves amount from one slot to another. Both slots are validated
// before either balance changes.
func (r *Registry) Transfer(from, to int, amount int64) error {
	if err := r.checkIndex(from); err != nil {
		return err
	}
	if err := r.checkIndex(to); err != nil {
		return err
	}
	if from == to {
		return model.ErrSameRecipientAsSender
	}
	r.slots[from].Balance -= amount
	r.slots[to].Balance += amount
	return nil
}
