// Package store persists employee records and a calculation history for
// the CLI. The calculation engine never touches it; callers load plain
// data from here and hand it to the calculators.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nicalabs/planilla/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// EmployeeStore persists employee records.
type EmployeeStore interface {
	Save(ctx context.Context, e *domain.Employee) error
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// HistoryEntry is one archived calculation: the raw input and result as
// the caller serialized them. The log is append-only.
type HistoryEntry struct {
	ID        int64           `json:"id"`
	Kind      string          `json:"kind"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// HistoryStore archives calculation runs for later review.
type HistoryStore interface {
	Append(ctx context.Context, entry *HistoryEntry) error
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
}
