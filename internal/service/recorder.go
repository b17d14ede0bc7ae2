package service

import (
	"context"
	"fmt"

	"budget/internal/model"
	"budget/internal/repository"
)

// Recorder applies the recording conventions before anything reaches the
// store: magnitudes must be positive, and the stored sign always follows the
// kind (expenses negative, incomes positive).
type Recorder struct {
	repo repository.Recorder
}

func NewRecorder(repo repository.Recorder) *Recorder {
	return &Recorder{
		repo: repo,
	}
}

func (r *Recorder) Add(ctx context.Context, kind model.Kind, amount model.Amount, category, date string, notes *string) (*model.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: magnitude must be greater than zero", model.ErrInvalidAmount)
	}
	return r.repo.Create(ctx, kind, amount.Signed(kind), category, date, notes)
}

func (r *Recorder) Get(ctx context.Context, id int64) (*model.Transaction, error) {
	return r.repo.Get(ctx, id)
}

// Change applies a partial update. When the amount is set, its sign is
// re-derived from the final kind. When the kind changes without a new
// amount, the stored amount is re-signed so the two stay consistent.
func (r *Recorder) Change(ctx context.Context, id int64, change model.Update) (*model.Transaction, error) {
	current, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	kind := current.Kind
	if change.Kind != nil {
		kind = *change.Kind
	}

	switch {
	case change.Amount != nil:
		if !change.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: magnitude must be greater than zero", model.ErrInvalidAmount)
		}
		signed := change.Amount.Signed(kind)
		change.Amount = &signed
	case kind != current.Kind:
		resigned := current.Amount.Signed(kind)
		change.Amount = &resigned
	}

	return r.repo.Update(ctx, id, change)
}

func (r *Recorder) Remove(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}

func (r *Recorder) Reset(ctx context.Context, confirm string) error {
	return r.repo.Reset(ctx, confirm)
}
