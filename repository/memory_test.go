package repository

import (
	"context"
	"testing"
	"time"

	"eventstudio-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeSeedsPortfolio(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Initialize(context.Background()))

	items, err := store.GetPortfolioItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 8)

	seen := make(map[uuid.UUID]bool)
	var weddingTitles []string
	for _, item := range items {
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.Contains(t, []string{"wedding", "corporate", "social"}, item.Category)
		if item.Category == "wedding" {
			weddingTitles = append(weddingTitles, item.Title)
		}
	}
	assert.ElementsMatch(t,
		[]string{"Sarah & James", "Emma & Michael", "Victoria & David"},
		weddingTitles)
}

func TestInitializeGeneratesFreshIDs(t *testing.T) {
	ctx := context.Background()

	first := NewMemoryStore()
	require.NoError(t, first.Initialize(ctx))
	second := NewMemoryStore()
	require.NoError(t, second.Initialize(ctx))

	firstItems, err := first.GetPortfolioItems(ctx)
	require.NoError(t, err)
	secondItems, err := second.GetPortfolioItems(ctx)
	require.NoError(t, err)

	for i := range firstItems {
		assert.NotEqual(t, firstItems[i].ID, secondItems[i].ID)
	}
}

func TestCreateEventInquiryStampsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	before := time.Now()
	input := models.EventInquiryInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		EventType: "wedding",
	}
	first, err := store.CreateEventInquiry(ctx, input)
	require.NoError(t, err)
	second, err := store.CreateEventInquiry(ctx, input)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.Before(before))
	assert.False(t, first.CreatedAt.After(time.Now()))
}

func TestCreateEventInquiryNormalizesOptionals(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	empty := ""
	zero := 0
	inquiry, err := store.CreateEventInquiry(ctx, models.EventInquiryInput{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		EventType:  "wedding",
		Phone:      &empty,
		GuestCount: &zero,
	})
	require.NoError(t, err)

	assert.Nil(t, inquiry.Phone)
	assert.Nil(t, inquiry.EventDate)
	assert.Nil(t, inquiry.GuestCount)
	assert.Nil(t, inquiry.BudgetRange)
	assert.Nil(t, inquiry.Message)
}

func TestCreateEventInquiryKeepsSuppliedOptionals(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	phone := "555-0100"
	guests := 120
	budget := "10k-25k"
	inquiry, err := store.CreateEventInquiry(ctx, models.EventInquiryInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		EventType:   "wedding",
		Phone:       &phone,
		GuestCount:  &guests,
		BudgetRange: &budget,
	})
	require.NoError(t, err)

	require.NotNil(t, inquiry.Phone)
	assert.Equal(t, "555-0100", *inquiry.Phone)
	require.NotNil(t, inquiry.GuestCount)
	assert.Equal(t, 120, *inquiry.GuestCount)
	require.NotNil(t, inquiry.BudgetRange)
	assert.Equal(t, "10k-25k", *inquiry.BudgetRange)
}

func TestGetEventInquiriesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, name := range []string{"Ada", "Grace", "Edsger"} {
		_, err := store.CreateEventInquiry(ctx, models.EventInquiryInput{
			FirstName: name,
			LastName:  "Example",
			Email:     "hello@example.com",
			EventType: "social",
		})
		require.NoError(t, err)
	}

	first, err := store.GetEventInquiries(ctx)
	require.NoError(t, err)
	second, err := store.GetEventInquiries(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestGetEventInquiriesReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.CreateEventInquiry(ctx, models.EventInquiryInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		EventType: "wedding",
	})
	require.NoError(t, err)

	inquiries, err := store.GetEventInquiries(ctx)
	require.NoError(t, err)
	inquiries[0].FirstName = "mutated"

	again, err := store.GetEventInquiries(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", again[0].FirstName)
}

func TestUserLookups(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	missing, err := store.GetUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := store.CreateUser(ctx, models.UserInput{
		Username: "planner",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	byID, err := store.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "planner", byID.Username)

	byName, err := store.GetUserByUsername(ctx, "planner")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	absent, err := store.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestCreateUserDoesNotEnforceUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.CreateUser(ctx, models.UserInput{Username: "planner", Password: "a"})
	require.NoError(t, err)
	second, err := store.CreateUser(ctx, models.UserInput{Username: "planner", Password: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestGalleryAssetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	asset := &models.GalleryAsset{
		ID:          uuid.New(),
		Filename:    "venue.jpg",
		MimeType:    "image/jpeg",
		Size:        2048,
		StoragePath: "assets/ab/venue.jpg",
	}
	require.NoError(t, store.CreateGalleryAsset(ctx, asset))
	assert.False(t, asset.CreatedAt.IsZero())

	got, err := store.GetGalleryAsset(ctx, asset.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, asset.Filename, got.Filename)
	assert.Equal(t, asset.StoragePath, got.StoragePath)

	missing, err := store.GetGalleryAsset(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
