package model

import "fmt"

// Ledger is the persisted document root: the id counter plus every
// transaction in insertion order.
type Ledger struct {
	NextID       int64          `json:"next_id"`
	Transactions []*Transaction `json:"transactions"`
}

func NewLedger() *Ledger {
	return &Ledger{NextID: 1, Transactions: []*Transaction{}}
}

// Validate checks the id invariants the store relies on: every id is unique
// and strictly below NextID. A document that breaks them is as unusable as
// one that does not parse.
func (l *Ledger) Validate() error {
	if l.NextID < 1 {
		return fmt.Errorf("%w: next_id %d is not positive", ErrCorruptLedger, l.NextID)
	}
	seen := make(map[int64]struct{}, len(l.Transactions))
	for _, tx := range l.Transactions {
		if tx.ID < 1 || tx.ID >= l.NextID {
			return fmt.Errorf("%w: id %d is outside [1, next_id)", ErrCorruptLedger, tx.ID)
		}
		if _, ok := seen[tx.ID]; ok {
			return fmt.Errorf("%w: id %d appears twice", ErrCorruptLedger, tx.ID)
		}
		seen[tx.ID] = struct{}{}
	}
	return nil
}
