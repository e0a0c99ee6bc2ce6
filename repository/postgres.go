package repository

import (
	"context"

	"eventstudio-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a pgx connection pool. Schema is created
// by cmd/create-schema.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Initialize seeds the portfolio table with the sample items when it is
// empty. Unlike the memory store, records survive restarts, so seeding only
// happens once.
func (s *PostgresStore) Initialize(ctx context.Context) error {
	var count int
	err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM portfolio_items").Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, item := range seedPortfolioItems {
		if _, err := s.CreatePortfolioItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// CreateUser creates a new user record.
func (s *PostgresStore) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	user := &models.User{
		Username: input.Username,
		Password: input.Password,
	}
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id`

	err := s.db.QueryRow(ctx, query, user.Username, user.Password).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by id.
func (s *PostgresStore) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password FROM users WHERE id = $1`

	err := s.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.Password)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByUsername retrieves the first user with the given username.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password FROM users WHERE username = $1 LIMIT 1`

	err := s.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.Password)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// CreateEventInquiry creates a new inquiry record. Optional fields are
// normalized to NULL here, mirroring the memory store.
func (s *PostgresStore) CreateEventInquiry(ctx context.Context, input models.EventInquiryInput) (*models.EventInquiry, error) {
	inquiry := &models.EventInquiry{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       normalizeString(input.Phone),
		EventType:   input.EventType,
		EventDate:   normalizeString(input.EventDate),
		GuestCount:  normalizeCount(input.GuestCount),
		BudgetRange: normalizeString(input.BudgetRange),
		Message:     normalizeString(input.Message),
	}
	query := `
		INSERT INTO event_inquiries (
			first_name, last_name, email, phone, event_type,
			event_date, guest_count, budget_range, message
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at`

	err := s.db.QueryRow(
		ctx, query,
		inquiry.FirstName,
		inquiry.LastName,
		inquiry.Email,
		inquiry.Phone,
		inquiry.EventType,
		inquiry.EventDate,
		inquiry.GuestCount,
		inquiry.BudgetRange,
		inquiry.Message,
	).Scan(&inquiry.ID, &inquiry.CreatedAt)
	if err != nil {
		return nil, err
	}

	return inquiry, nil
}

// GetEventInquiries retrieves all inquiries.
func (s *PostgresStore) GetEventInquiries(ctx context.Context) ([]*models.EventInquiry, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, event_type,
			event_date, guest_count, budget_range, message, created_at
		FROM event_inquiries
		ORDER BY created_at`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []*models.EventInquiry{}
	for rows.Next() {
		inquiry := &models.EventInquiry{}
		err := rows.Scan(
			&inquiry.ID,
			&inquiry.FirstName,
			&inquiry.LastName,
			&inquiry.Email,
			&inquiry.Phone,
			&inquiry.EventType,
			&inquiry.EventDate,
			&inquiry.GuestCount,
			&inquiry.BudgetRange,
			&inquiry.Message,
			&inquiry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, rows.Err()
}

// CreatePortfolioItem creates a new portfolio item record.
func (s *PostgresStore) CreatePortfolioItem(ctx context.Context, input models.PortfolioItemInput) (*models.PortfolioItem, error) {
	item := &models.PortfolioItem{
		Title:       input.Title,
		Category:    input.Category,
		Description: normalizeString(input.Description),
		ImageURL:    input.ImageURL,
		GuestCount:  normalizeCount(input.GuestCount),
	}
	query := `
		INSERT INTO portfolio_items (
			title, category, description, image_url, guest_count
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at`

	err := s.db.QueryRow(
		ctx, query,
		item.Title,
		item.Category,
		item.Description,
		item.ImageURL,
		item.GuestCount,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// GetPortfolioItems retrieves all portfolio items.
func (s *PostgresStore) GetPortfolioItems(ctx context.Context) ([]*models.PortfolioItem, error) {
	query := `
		SELECT id, title, category, description, image_url, guest_count, created_at
		FROM portfolio_items
		ORDER BY created_at`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.PortfolioItem{}
	for rows.Next() {
		item := &models.PortfolioItem{}
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Category,
			&item.Description,
			&item.ImageURL,
			&item.GuestCount,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// CreateGalleryAsset creates an asset record. The id comes from the caller
// because the storage path is derived from it before the record exists.
func (s *PostgresStore) CreateGalleryAsset(ctx context.Context, asset *models.GalleryAsset) error {
	query := `
		INSERT INTO gallery_assets (id, filename, mime_type, size, storage_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return s.db.QueryRow(
		ctx, query,
		asset.ID,
		asset.Filename,
		asset.MimeType,
		asset.Size,
		asset.StoragePath,
	).Scan(&asset.CreatedAt)
}

// GetGalleryAsset retrieves an asset record by id.
func (s *PostgresStore) GetGalleryAsset(ctx context.Context, id uuid.UUID) (*models.GalleryAsset, error) {
	asset := &models.GalleryAsset{}
	query := `
		SELECT id, filename, mime_type, size, storage_path, created_at
		FROM gallery_assets
		WHERE id = $1`

	err := s.db.QueryRow(ctx, query, id).Scan(
		&asset.ID,
		&asset.Filename,
		&asset.MimeType,
		&asset.Size,
		&asset.StoragePath,
		&asset.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return asset, nil
}
