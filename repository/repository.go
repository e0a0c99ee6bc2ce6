package repository

import (
	"context"

	"eventstudio-backend/models"

	"github.com/google/uuid"
)

// Store defines the persistence operations for users, event inquiries,
// portfolio items and gallery assets. Lookups that find nothing return
// (nil, nil); absence is not an error.
//
// Note: username uniqueness is not enforced here. GetUserByUsername exists so
// callers can check before creating, but no caller currently does.
type Store interface {
	// Initialize prepares the store for use and seeds the portfolio collection.
	Initialize(ctx context.Context) error

	CreateUser(ctx context.Context, input models.UserInput) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	CreateEventInquiry(ctx context.Context, input models.EventInquiryInput) (*models.EventInquiry, error)
	GetEventInquiries(ctx context.Context) ([]*models.EventInquiry, error)

	CreatePortfolioItem(ctx context.Context, input models.PortfolioItemInput) (*models.PortfolioItem, error)
	GetPortfolioItems(ctx context.Context) ([]*models.PortfolioItem, error)

	CreateGalleryAsset(ctx context.Context, asset *models.GalleryAsset) error
	GetGalleryAsset(ctx context.Context, id uuid.UUID) (*models.GalleryAsset, error)
}

// normalizeString maps unsupplied or empty optional strings to the absent
// marker (nil), distinct from an empty string in the stored record.
func normalizeString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// normalizeCount treats zero the same as unsupplied, matching how the
// contact form omits the guest count.
func normalizeCount(n *int) *int {
	if n == nil || *n == 0 {
		return nil
	}
	return n
}
