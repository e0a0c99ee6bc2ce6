package repository

import "eventstudio-backend/models"

// seedPortfolioItems is the fixed sample portfolio loaded at startup.
// Ids are generated at creation time, never taken from this list.
var seedPortfolioItems = []models.PortfolioItemInput{
	{
		Title:       "Sarah & James",
		Category:    "wedding",
		Description: strPtr("Garden Wedding • 150 Guests"),
		ImageURL:    "https://images.unsplash.com/photo-1591604466107-ec97de577aff?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=600",
		GuestCount:  intPtr(150),
	},
	{
		Title:       "Tech Corp Gala",
		Category:    "corporate",
		Description: strPtr("Annual Awards • 500 Guests"),
		ImageURL:    "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=600",
		GuestCount:  intPtr(500),
	},
	{
		Title:       "Emma & Michael",
		Category:    "wedding",
		Description: strPtr("Beach Wedding • 200 Guests"),
		ImageURL:    "https://images.unsplash.com/photo-1519741497674-611481863552?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=600",
		GuestCount:  intPtr(200),
	},
	{
		Title:       "Sophie's 30th",
		Category:    "social",
		Description: strPtr("Birthday Party • 80 Guests"),
		ImageURL:    "https://images.unsplash.com/photo-1464207687429-7505649dae38?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=600",
		GuestCount:  intPtr(80),
	},
	{
		Title:       "Innovation Summit",
		Category:    "corporate",
		Description: strPtr("Conference • 300 Guests"),
		ImageURL:    "https://images.unsplash.com/photo-1505236858219-8359eb29e329?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=600",
		GuestCount:  intPtr(300),
	},
	{
		Title:       "Victoria & David",
		Category:    "wedding",
		Description: strPtr("Ballroom Wedding • 250 Guests"),
		ImageURL:    "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=600",
		GuestCount:  intPtr(250),
	},
	{
		Title:       "Golden Anniversary",
		Category:    "social",
		Description: strPtr("50th Anniversary • 60 Guests"),
		ImageURL:    "https://images.unsplash.com/photo-1478812954026-9c750f0e89fc?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=600",
		GuestCount:  intPtr(60),
	},
	{
		Title:       "Product Launch",
		Category:    "corporate",
		Description: strPtr("Tech Launch • 400 Guests"),
		ImageURL:    "https://images.unsplash.com/photo-1540575467063-178a50c2df87?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=600",
		GuestCount:  intPtr(400),
	},
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
