package fraudtypes

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memory struct {
	mu     sync.RWMutex
	types  map[uuid.UUID]FraudType
	logger *slog.Logger
}

// NewMemory creates an in-process fraud type registry. It holds no state
// beyond the process lifetime.
func NewMemory(logger *slog.Logger) System {
	return &memory{
		types:  make(map[uuid.UUID]FraudType),
		logger: logger.With("system", "fraudtypes"),
	}
}

func (m *memory) Handler() *Handler {
	return NewHandler(m, m.logger)
}

func (m *memory) List(_ context.Context) ([]FraudType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	types := make([]FraudType, 0, len(m.types))
	for _, ft := range m.types {
		types = append(types, ft)
	}

	slices.SortFunc(types, func(a, b FraudType) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return types, nil
}

func (m *memory) Names(ctx context.Context) ([]string, error) {
	types, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(types))
	for i, ft := range types {
		names[i] = ft.Name
	}
	return names, nil
}

func (m *memory) Find(_ context.Context, id uuid.UUID) (*FraudType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ft, ok := m.types[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ft, nil
}

func (m *memory) FindByName(_ context.Context, name string) (*FraudType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if ft, ok := m.byName(NormalizeName(name)); ok {
		return &ft, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Register(_ context.Context, cmd RegisterCommand) (*FraudType, error) {
	cmd, err := cmd.normalize()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byName(cmd.Name); exists {
		return nil, ErrDuplicate
	}

	ft := m.insert(cmd)
	m.logger.Info("fraud type registered", "id", ft.ID, "name", ft.Name)
	return &ft, nil
}

func (m *memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.types[id]; !ok {
		return ErrNotFound
	}
	delete(m.types, id)

	m.logger.Info("fraud type deleted", "id", id)
	return nil
}

func (m *memory) Seed(_ context.Context, cmds []RegisterCommand) (int, error) {
	normalized := make([]RegisterCommand, 0, len(cmds))
	for _, cmd := range cmds {
		cmd, err := cmd.normalize()
		if err != nil {
			return 0, ErrInvalidSeed
		}
		normalized = append(normalized, cmd)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var added int
	for _, cmd := range normalized {
		if _, exists := m.byName(cmd.Name); exists {
			continue
		}
		m.insert(cmd)
		added++
	}

	m.logger.Info("fraud types seeded", "added", added, "total", len(cmds))
	return added, nil
}

// byName requires m.mu to be held.
func (m *memory) byName(name string) (FraudType, bool) {
	for _, ft := range m.types {
		if ft.Name == name {
			return ft, true
		}
	}
	return FraudType{}, false
}

// insert requires m.mu to be held for writing.
func (m *memory) insert(cmd RegisterCommand) FraudType {
	ft := FraudType{
		ID:          uuid.New(),
		Name:        cmd.Name,
		Description: cmd.Description,
		CreatedAt:   time.Now().UTC(),
	}
	m.types[ft.ID] = ft
	return ft
}
