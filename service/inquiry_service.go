package service

import (
	"context"
	"errors"

	"eventstudio-backend/models"
	"eventstudio-backend/repository"
)

// InquiryService handles business logic for event inquiries and the portfolio.
type InquiryService struct {
	store repository.Store
}

// InquiryServiceOption is a functional option for InquiryService
type InquiryServiceOption func(*InquiryService)

// WithStore sets the backing store
func WithStore(store repository.Store) InquiryServiceOption {
	return func(s *InquiryService) {
		s.store = store
	}
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(opts ...InquiryServiceOption) *InquiryService {
	s := &InquiryService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitInquiryRequest represents a request to submit an inquiry
type SubmitInquiryRequest struct {
	Input models.EventInquiryInput
}

// SubmitInquiryResult represents the result of submitting an inquiry
type SubmitInquiryResult struct {
	Inquiry *models.EventInquiry
}

// SubmitInquiry stores a validated inquiry. Input validation happens at the
// API boundary; the store normalizes optionals and stamps id and createdAt.
func (s *InquiryService) SubmitInquiry(ctx context.Context, req SubmitInquiryRequest) (*SubmitInquiryResult, error) {
	if s.store == nil {
		return nil, errors.New("store not set")
	}

	inquiry, err := s.store.CreateEventInquiry(ctx, req.Input)
	if err != nil {
		return nil, err
	}

	return &SubmitInquiryResult{Inquiry: inquiry}, nil
}

// ListInquiriesResult represents the result of listing inquiries
type ListInquiriesResult struct {
	Inquiries []*models.EventInquiry
}

// ListInquiries returns all stored inquiries
func (s *InquiryService) ListInquiries(ctx context.Context) (*ListInquiriesResult, error) {
	if s.store == nil {
		return nil, errors.New("store not set")
	}

	inquiries, err := s.store.GetEventInquiries(ctx)
	if err != nil {
		return nil, err
	}

	return &ListInquiriesResult{Inquiries: inquiries}, nil
}

// ListPortfolioResult represents the result of listing portfolio items
type ListPortfolioResult struct {
	Items []*models.PortfolioItem
}

// ListPortfolio returns all stored portfolio items
func (s *InquiryService) ListPortfolio(ctx context.Context) (*ListPortfolioResult, error) {
	if s.store == nil {
		return nil, errors.New("store not set")
	}

	items, err := s.store.GetPortfolioItems(ctx)
	if err != nil {
		return nil, err
	}

	return &ListPortfolioResult{Items: items}, nil
}
