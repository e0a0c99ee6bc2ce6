package repository

import (
	"context"
	"sync"
	"time"

	"eventstudio-backend/models"

	"github.com/google/uuid"
)

// MemoryStore holds all records in process memory. It is the default backend:
// a single-process deployment with no durability requirement. A mutex guards
// every operation because gin serves requests on parallel goroutines.
type MemoryStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*models.User
	inquiries []*models.EventInquiry
	portfolio []*models.PortfolioItem
	assets    map[uuid.UUID]*models.GalleryAsset
}

// NewMemoryStore creates an empty in-memory store. Call Initialize to seed
// the portfolio collection.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[uuid.UUID]*models.User),
		assets: make(map[uuid.UUID]*models.GalleryAsset),
	}
}

// Initialize seeds the portfolio collection with the sample items, in listed
// order, through CreatePortfolioItem so every record gets a fresh id.
func (s *MemoryStore) Initialize(ctx context.Context) error {
	for _, item := range seedPortfolioItems {
		if _, err := s.CreatePortfolioItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// CreateUser stores a new user. It does not check username uniqueness; that
// is the caller's responsibility.
func (s *MemoryStore) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:       uuid.New(),
		Username: input.Username,
		Password: input.Password,
	}
	s.users[user.ID] = user

	out := *user
	return &out, nil
}

// GetUser returns the user with the given id, or nil if unknown.
func (s *MemoryStore) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

// GetUserByUsername scans all users and returns the first match, or nil.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}

// CreateEventInquiry normalizes unsupplied optionals to nil, stamps id and
// createdAt and stores the record. Validation is the API layer's job; none
// happens here.
func (s *MemoryStore) CreateEventInquiry(ctx context.Context, input models.EventInquiryInput) (*models.EventInquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inquiry := &models.EventInquiry{
		ID:          uuid.New(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       normalizeString(input.Phone),
		EventType:   input.EventType,
		EventDate:   normalizeString(input.EventDate),
		GuestCount:  normalizeCount(input.GuestCount),
		BudgetRange: normalizeString(input.BudgetRange),
		Message:     normalizeString(input.Message),
		CreatedAt:   time.Now(),
	}
	s.inquiries = append(s.inquiries, inquiry)

	out := *inquiry
	return &out, nil
}

// GetEventInquiries returns all stored inquiries in insertion order.
func (s *MemoryStore) GetEventInquiries(ctx context.Context) ([]*models.EventInquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.EventInquiry, len(s.inquiries))
	for i, inquiry := range s.inquiries {
		c := *inquiry
		out[i] = &c
	}
	return out, nil
}

// CreatePortfolioItem normalizes unsupplied optionals, stamps id and
// createdAt and stores the item.
func (s *MemoryStore) CreatePortfolioItem(ctx context.Context, input models.PortfolioItemInput) (*models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := &models.PortfolioItem{
		ID:          uuid.New(),
		Title:       input.Title,
		Category:    input.Category,
		Description: normalizeString(input.Description),
		ImageURL:    input.ImageURL,
		GuestCount:  normalizeCount(input.GuestCount),
		CreatedAt:   time.Now(),
	}
	s.portfolio = append(s.portfolio, item)

	out := *item
	return &out, nil
}

// GetPortfolioItems returns all stored portfolio items in insertion order.
func (s *MemoryStore) GetPortfolioItems(ctx context.Context) ([]*models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.PortfolioItem, len(s.portfolio))
	for i, item := range s.portfolio {
		c := *item
		out[i] = &c
	}
	return out, nil
}

// CreateGalleryAsset stores an asset record. The id is assigned by the caller
// because the storage path is derived from it before the record exists.
func (s *MemoryStore) CreateGalleryAsset(ctx context.Context, asset *models.GalleryAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset.CreatedAt = time.Now()
	stored := *asset
	s.assets[asset.ID] = &stored
	return nil
}

// GetGalleryAsset returns the asset record with the given id, or nil.
func (s *MemoryStore) GetGalleryAsset(ctx context.Context, id uuid.UUID) (*models.GalleryAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[id]
	if !ok {
		return nil, nil
	}
	out := *asset
	return &out, nil
}
