package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"eventstudio-backend/models"
	"eventstudio-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// InquiryHandler handles HTTP requests for inquiries and the portfolio
type InquiryHandler struct {
	inquiryService *service.InquiryService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryService *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// CreateInquiryRequest represents the request body for submitting an inquiry
type CreateInquiryRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone"`
	EventType   string  `json:"eventType" binding:"required"`
	EventDate   *string `json:"eventDate"`
	GuestCount  *int    `json:"guestCount" binding:"omitempty,gte=0"`
	BudgetRange *string `json:"budgetRange"`
	Message     *string `json:"message"`
}

// fieldViolation describes a single field-level validation failure.
type fieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitInquiry handles POST /api/inquiries
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid input",
			"details": violationsFromError(err),
		})
		return
	}

	result, err := h.inquiryService.SubmitInquiry(c.Request.Context(), service.SubmitInquiryRequest{
		Input: models.EventInquiryInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			Phone:       req.Phone,
			EventType:   req.EventType,
			EventDate:   req.EventDate,
			GuestCount:  req.GuestCount,
			BudgetRange: req.BudgetRange,
			Message:     req.Message,
		},
	})
	if err != nil {
		log.Printf("Failed to create inquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inquiry"})
		return
	}

	c.JSON(http.StatusOK, result.Inquiry)
}

// ListInquiries handles GET /api/inquiries
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	result, err := h.inquiryService.ListInquiries(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch inquiries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	c.JSON(http.StatusOK, result.Inquiries)
}

// GetPortfolio handles GET /api/portfolio
func (h *InquiryHandler) GetPortfolio(c *gin.Context) {
	result, err := h.inquiryService.ListPortfolio(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch portfolio items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolio items"})
		return
	}

	c.JSON(http.StatusOK, result.Items)
}

// violationsFromError turns a binding error into a list of field violations.
// Malformed JSON produces a single entry with no field name.
func violationsFromError(err error) []fieldViolation {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		violations := make([]fieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, fieldViolation{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			})
		}
		return violations
	}
	return []fieldViolation{{Message: err.Error()}}
}
