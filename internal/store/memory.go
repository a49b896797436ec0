package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nicalabs/planilla/internal/domain"
)

// Memory is an in-memory implementation of EmployeeStore and HistoryStore
// for tests and throwaway runs.
type Memory struct {
	mu        sync.RWMutex
	nextID    int64
	employees map[int64]domain.Employee
	history   []HistoryEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{nextID: 1, employees: make(map[int64]domain.Employee)}
}

func (m *Memory) Save(_ context.Context, e *domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == 0 {
		e.ID = m.nextID
		m.nextID++
	} else if _, ok := m.employees[e.ID]; !ok {
		return ErrNotFound
	}
	m.employees[e.ID] = *e
	return nil
}

func (m *Memory) Get(_ context.Context, id int64) (*domain.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.employees[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (m *Memory) List(_ context.Context) ([]domain.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	employees := make([]domain.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].Name != employees[j].Name {
			return employees[i].Name < employees[j].Name
		}
		return employees[i].ID < employees[j].ID
	})
	return employees, nil
}

func (m *Memory) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[id]; !ok {
		return ErrNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *Memory) Append(_ context.Context, entry *HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	entry.ID = int64(len(m.history) + 1)
	m.history = append(m.history, *entry)
	return nil
}

func (m *Memory) Recent(_ context.Context, limit int) ([]HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 || limit > len(m.history) {
		limit = len(m.history)
	}
	entries := make([]HistoryEntry, 0, limit)
	for i := len(m.history) - 1; i >= len(m.history)-limit; i-- {
		entries = append(entries, m.history[i])
	}
	return entries, nil
}
