package service

// In-memory store fakes backing the service unit tests. They mirror the
// repository contract: ErrNotFound for missing rows, ErrDuplicateEmail for
// unique-violations.

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/coursebay/coursebay-backend/internal/repository"
)

type memAdminStore struct {
	byEmail map[string]*model.Admin
	// createErr simulates a constraint violation that slips past the
	// email pre-check, as happens when two signups race.
	createErr error
}

func newMemAdminStore() *memAdminStore {
	return &memAdminStore{byEmail: make(map[string]*model.Admin)}
}

func (m *memAdminStore) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (m *memAdminStore) Create(_ context.Context, a *model.Admin) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[a.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	m.byEmail[a.Email] = a
	return nil
}

type memUserStore struct {
	byEmail   map[string]*model.User
	createErr error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byEmail: make(map[string]*model.User)}
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUserStore) Create(_ context.Context, u *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	m.byEmail[u.Email] = u
	return nil
}

type memCourseStore struct {
	byID map[uuid.UUID]model.Course
}

func newMemCourseStore() *memCourseStore {
	return &memCourseStore{byID: make(map[uuid.UUID]model.Course)}
}

func (m *memCourseStore) Create(_ context.Context, c *model.Course) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.byID[c.ID] = *c
	return nil
}

func (m *memCourseStore) GetByID(_ context.Context, id uuid.UUID) (*model.Course, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (m *memCourseStore) GetAll(_ context.Context) ([]model.Course, error) {
	var courses []model.Course
	for _, c := range m.byID {
		courses = append(courses, c)
	}
	return courses, nil
}

func (m *memCourseStore) Update(_ context.Context, c *model.Course) error {
	stored, ok := m.byID[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Title = c.Title
	stored.Description = c.Description
	stored.ImageURL = c.ImageURL
	stored.Price = c.Price
	stored.UpdatedAt = time.Now()
	m.byID[c.ID] = stored
	return nil
}

func (m *memCourseStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memPurchaseStore struct {
	purchases []model.Purchase
}

func newMemPurchaseStore() *memPurchaseStore {
	return &memPurchaseStore{}
}

func (m *memPurchaseStore) Create(_ context.Context, p *model.Purchase) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.purchases = append(m.purchases, *p)
	return nil
}

func (m *memPurchaseStore) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range m.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
