package listings

import (
	"context"
	"errors"
	"sync"

	"nadlan-backend/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("Property not found")
	ErrDuplicateID = errors.New("Property id already exists")
)

// Store owns the ordered property collection, newest first.
type Store interface {
	List(ctx context.Context) ([]domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Prepend(ctx context.Context, p domain.Property) error
}

// MemoryStore keeps the collection in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	items []domain.Property
}

// NewMemoryStore returns a store holding a copy of initial, in order.
func NewMemoryStore(initial []domain.Property) *MemoryStore {
	items := make([]domain.Property, len(initial))
	copy(items, initial)
	return &MemoryStore{items: items}
}

func (s *MemoryStore) List(ctx context.Context) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Property, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Prepend(ctx context.Context, p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			return ErrDuplicateID
		}
	}
	s.items = append([]domain.Property{p}, s.items...)
	return nil
}

// GormStore keeps the collection in a SQL table; listing order is newest first.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) List(ctx context.Context) ([]domain.Property, error) {
	var out []domain.Property
	if err := s.DB.WithContext(ctx).Order("listed_at DESC").Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*domain.Property, error) {
	var p domain.Property
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) Prepend(ctx context.Context, p domain.Property) error {
	var n int64
	if p.ID != "" {
		if err := s.DB.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", p.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateID
		}
	}
	return s.DB.WithContext(ctx).Create(&p).Error
}

// Seed inserts records missing from the table; existing ids are left alone.
func (s *GormStore) Seed(ctx context.Context, records []domain.Property) error {
	for _, p := range records {
		err := s.Prepend(ctx, p)
		if err != nil && !errors.Is(err, ErrDuplicateID) {
			return err
		}
	}
	return nil
}
