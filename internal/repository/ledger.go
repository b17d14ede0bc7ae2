package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"budget/internal/model"
)

const (
	// CorruptSuffix is appended to the data file name when an unreadable
	// document is quarantined.
	CorruptSuffix = ".corrupt"

	// ResetToken must be passed to Reset before it wipes the ledger.
	ResetToken = "YES"
)

// Recorder is the write surface of the store.
type Recorder interface {
	Create(ctx context.Context, kind model.Kind, amount model.Amount, category, date string, notes *string) (*model.Transaction, error)
	Get(ctx context.Context, id int64) (*model.Transaction, error)
	Update(ctx context.Context, id int64, change model.Update) (*model.Transaction, error)
	Delete(ctx context.Context, id int64) error
	Reset(ctx context.Context, confirm string) error
}

// Lister is the read-only view the reporter aggregates over.
type Lister interface {
	List(ctx context.Context) []model.Transaction
}

// Ledger owns the persisted document. It is the sole authority for id
// assignment, and it saves the whole document after every mutation using a
// write-temp-then-rename protocol so the file on disk is always a complete
// document.
type Ledger struct {
	path string
	doc  *model.Ledger

	// rename commits the save; swapped in tests to inject failures at the
	// atomic boundary.
	rename func(oldpath, newpath string) error
}

// Open loads the ledger at path. A missing file yields an empty ledger. An
// unparseable one is moved aside to path+CorruptSuffix and replaced with an
// empty ledger, so a corrupt document never blocks startup.
func Open(path string) (*Ledger, error) {
	l := &Ledger{
		path:   path,
		rename: os.Rename,
	}

	doc, err := load(path)
	switch {
	case err == nil:
		l.doc = doc
	case errors.Is(err, os.ErrNotExist):
		l.doc = model.NewLedger()
	case errors.Is(err, model.ErrCorruptLedger):
		quarantine := path + CorruptSuffix
		if renameErr := l.rename(path, quarantine); renameErr != nil {
			return nil, fmt.Errorf("couldn't quarantine corrupt ledger: %v", renameErr)
		}
		logrus.Warnf("ledger file was unreadable and moved to %s, starting with an empty ledger: %v", quarantine, err)
		l.doc = model.NewLedger()
	default:
		return nil, fmt.Errorf("couldn't open ledger %s: %v", path, err)
	}
	return l, nil
}

func load(path string) (*model.Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc model.Ledger
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCorruptLedger, err)
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (l *Ledger) Create(ctx context.Context, kind model.Kind, amount model.Amount, category, date string, notes *string) (*model.Transaction, error) {
	tx := &model.Transaction{
		ID:        l.doc.NextID,
		Kind:      kind,
		Amount:    amount,
		Category:  category,
		Date:      date,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
	l.doc.Transactions = append(l.doc.Transactions, tx)
	l.doc.NextID++

	if err := l.save(); err != nil {
		l.doc.Transactions = l.doc.Transactions[:len(l.doc.Transactions)-1]
		l.doc.NextID--
		return nil, err
	}

	logrus.WithContext(ctx).Infof("created transaction %d: %s %s in %s", tx.ID, tx.Kind, tx.Amount, tx.Category)
	copied := *tx
	return &copied, nil
}

func (l *Ledger) Get(_ context.Context, id int64) (*model.Transaction, error) {
	for _, tx := range l.doc.Transactions {
		if tx.ID == id {
			copied := *tx
			return &copied, nil
		}
	}
	return nil, model.ErrNotFound
}

func (l *Ledger) Update(ctx context.Context, id int64, change model.Update) (*model.Transaction, error) {
	var tx *model.Transaction
	for _, t := range l.doc.Transactions {
		if t.ID == id {
			tx = t
			break
		}
	}
	if tx == nil {
		return nil, model.ErrNotFound
	}

	prev := *tx
	if change.Kind != nil {
		tx.Kind = *change.Kind
	}
	if change.Amount != nil {
		tx.Amount = *change.Amount
	}
	if change.Category != nil {
		tx.Category = *change.Category
	}
	if change.Date != nil {
		tx.Date = *change.Date
	}
	if change.Notes != nil {
		tx.Notes = change.Notes
	}
	now := time.Now()
	tx.UpdatedAt = &now

	if err := l.save(); err != nil {
		*tx = prev
		return nil, err
	}

	logrus.WithContext(ctx).Infof("updated transaction %d", id)
	copied := *tx
	return &copied, nil
}

func (l *Ledger) Delete(ctx context.Context, id int64) error {
	remaining := make([]*model.Transaction, 0, len(l.doc.Transactions))
	found := false
	for _, tx := range l.doc.Transactions {
		if tx.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, tx)
	}
	if !found {
		return model.ErrNotFound
	}

	prev := l.doc.Transactions
	l.doc.Transactions = remaining
	if err := l.save(); err != nil {
		l.doc.Transactions = prev
		return err
	}

	logrus.WithContext(ctx).Infof("deleted transaction %d", id)
	return nil
}

// List returns every transaction sorted by date descending. Ties keep
// insertion order. Pure read, nothing is persisted.
func (l *Ledger) List(_ context.Context) []model.Transaction {
	out := make([]model.Transaction, len(l.doc.Transactions))
	for i, tx := range l.doc.Transactions {
		out[i] = *tx
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Reset wipes every transaction and starts the id counter over. It refuses
// to do anything unless confirm equals ResetToken.
func (l *Ledger) Reset(ctx context.Context, confirm string) error {
	if confirm != ResetToken {
		return model.ErrNotConfirmed
	}

	prev := l.doc
	l.doc = model.NewLedger()
	if err := l.save(); err != nil {
		l.doc = prev
		return err
	}

	logrus.WithContext(ctx).Warn("ledger was reset, all transactions removed")
	return nil
}

// save serializes the document to a temp file in the target directory, syncs
// it, and renames it over the data file. The rename is the only step that has
// to be atomic: an interruption anywhere leaves the previous document intact.
func (l *Ledger) save() error {
	tmp, err := os.CreateTemp(filepath.Dir(l.path), "budget_*.tmp")
	if err != nil {
		return fmt.Errorf("couldn't create temp ledger file: %v", err)
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err = enc.Encode(l.doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("couldn't encode ledger: %v", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("couldn't sync ledger: %v", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("couldn't close temp ledger file: %v", err)
	}

	if err = l.rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("couldn't replace ledger file: %v", err)
	}
	return nil
}
