package store

import (
	"time"

	"krishi/models"
)

// Seed rows shared by every Storage implementation. IDs are assigned at
// insert time so two processes never fight over fixed identifiers.

func seedMarketplaceItems() []models.MarketplaceItem {
	now := time.Now()
	return []models.MarketplaceItem{
		{
			Name:        "Smart Tractor",
			Description: "GPS-enabled farming tractor with precision agriculture capabilities",
			Price:       850000,
			Category:    "machinery",
			ImageURL:    "https://images.unsplash.com/photo-1523348837708-15d4a09cfac2",
			SellerID:    "seller1",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			Name:        "Crop Spraying Drone",
			Description: "Precision agriculture drone for pesticide and fertilizer application",
			Price:       275000,
			Category:    "technology",
			ImageURL:    "https://images.unsplash.com/photo-1473968512647-3e447244af8f",
			SellerID:    "seller2",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			Name:        "Soil Test Kit",
			Description: "Digital pH meter and soil nutrient analyzer",
			Price:       15500,
			Category:    "testing",
			ImageURL:    "https://images.unsplash.com/photo-1416879595882-3373a0480b5b",
			SellerID:    "seller3",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			Name:        "Smart Irrigation System",
			Description: "IoT-enabled water management system with automated scheduling",
			Price:       45000,
			Category:    "irrigation",
			ImageURL:    "https://images.unsplash.com/photo-1586771107445-d3ca888129ff",
			SellerID:    "seller4",
			InStock:     true,
			CreatedAt:   now,
		},
	}
}

func seedGovernmentSchemes() []models.GovernmentScheme {
	deadline := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	return []models.GovernmentScheme{
		{
			Name:                "PM-KISAN Scheme",
			Description:         "Direct income support of ₹6,000 per year to farmers",
			Eligibility:         []string{"Small and marginal farmers", "Land ownership documents required"},
			Benefits:            "₹2,000 per installment, 3 installments per year",
			ApplicationDeadline: &deadline,
			Status:              "active",
			DocumentsRequired:   []string{"Aadhaar Card", "Land Records", "Bank Account Details"},
			ApplicationLink:     "https://pmkisan.gov.in",
		},
		{
			Name:              "Soil Health Card",
			Description:       "Free soil testing and nutrient recommendations",
			Eligibility:       []string{"All farmers with land ownership"},
			Benefits:          "Free soil testing and personalized fertilizer recommendations",
			Status:            "active",
			DocumentsRequired: []string{"Land ownership documents", "Aadhaar Card"},
			ApplicationLink:   "https://soilhealth.dac.gov.in",
		},
		{
			Name:              "Pradhan Mantri Fasal Bima Yojana",
			Description:       "Insurance coverage for crop losses due to natural disasters",
			Eligibility:       []string{"All farmers growing notified crops"},
			Benefits:          "Comprehensive crop insurance coverage",
			Status:            "seasonal",
			DocumentsRequired: []string{"Aadhaar Card", "Land Records", "Bank Account", "Sowing Certificate"},
			ApplicationLink:   "https://pmfby.gov.in",
		},
	}
}

func seedMarketPrices() []models.MarketPrice {
	now := time.Now()
	return []models.MarketPrice{
		{CropName: "Wheat", PricePerQuintal: 2150, ChangePercent: 5.2, Market: "Pune Mandi", UpdatedAt: now},
		{CropName: "Tomato", PricePerQuintal: 3800, ChangePercent: -2.1, Market: "Kolar Mandi", UpdatedAt: now},
		{CropName: "Onion", PricePerQuintal: 1650, ChangePercent: 8.3, Market: "Nashik Mandi", UpdatedAt: now},
	}
}

func seedBusinessConnections() []models.BusinessConnection {
	return []models.BusinessConnection{
		{
			CompanyName:    "Fresh Foods Ltd.",
			CompanyType:    "Food Processing Company",
			BuyingCrop:     "Tomatoes",
			PriceOffered:   3200,
			QuantityNeeded: 500,
			Location:       "Kolar, Karnataka",
			Rating:         4.8,
			PaymentTerms:   "Payment within 24 hours",
			ContactInfo:    models.ContactInfo{Phone: "+91-9876543210", Email: "procurement@freshfoods.com"},
		},
		{
			CompanyName:    "Organic Exports Co.",
			CompanyType:    "Export Company",
			BuyingCrop:     "Wheat",
			PriceOffered:   2300,
			QuantityNeeded: 1000,
			Location:       "Pune, Maharashtra",
			Rating:         4.6,
			PaymentTerms:   "Payment within 48 hours",
			ContactInfo:    models.ContactInfo{Phone: "+91-9876543211", Email: "buyers@organicexports.com"},
		},
	}
}
