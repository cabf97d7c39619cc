package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// When a Fn field is set it is used; otherwise the mock behaves like a small
// in-memory document store.
type MockUserStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]*domain.User, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.User, error)
	CreateFn  func(ctx context.Context, fields domain.UserFields) (*domain.User, error)
	UpdateFn  func(ctx context.Context, id string, fields domain.UserFields) (*domain.User, error)
	DeleteFn  func(ctx context.Context, id string) (*domain.User, error)

	// Data for default implementation
	Users  map[string]*domain.User
	order  []string
	nextID int
	mu     sync.Mutex

	// Calls counts every store call, whichever implementation served it
	Calls int
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]*domain.User, 0, len(m.order))
	for _, id := range m.order {
		users = append(users, copyUser(m.Users[id]))
	}
	return users, nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return copyUser(user), nil
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, fields domain.UserFields) (*domain.User, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, fields)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := fmt.Sprintf("%024x", m.nextID)
	m.Users[id] = fields.WithID(id)
	m.order = append(m.order, id)
	return copyUser(m.Users[id]), nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, id string, fields domain.UserFields) (*domain.User, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, fields)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Users[id]; !ok {
		return nil, store.ErrUserNotFound
	}
	m.Users[id] = fields.WithID(id)
	return copyUser(m.Users[id]), nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	delete(m.Users, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return user, nil
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}
