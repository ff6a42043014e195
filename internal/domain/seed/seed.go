// Package seed provides the baseline demo records every read path unions
// with the persisted store. The functions return fresh copies on each
// call; seed records are immutable templates and are never written back
// to the store.
package seed

import (
	"time"

	"voltmart/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Products returns the baseline catalog.
func Products() []entity.Product {
	return []entity.Product{
		{
			ID:          "1",
			Name:        "Premium Copper Wire",
			Description: "High-quality copper wire for electrical installations",
			Price:       money("24.99"),
			Stock:       150,
			Category:    entity.CategoryWires,
			ImageURL:    "https://placehold.co/100x100?text=Wire",
		},
		{
			ID:          "2",
			Name:        "LED Panel Light",
			Description: "Energy-efficient LED panel for office lighting",
			Price:       money("34.50"),
			Stock:       75,
			Category:    entity.CategoryLighting,
			ImageURL:    "https://placehold.co/100x100?text=Light",
		},
		{
			ID:          "3",
			Name:        "Circuit Breaker",
			Description: "Standard circuit breaker for residential use",
			Price:       money("12.99"),
			Stock:       200,
			Category:    entity.CategorySwitches,
			ImageURL:    "https://placehold.co/100x100?text=Breaker",
		},
		{
			ID:          "4",
			Name:        "Safety Helmet",
			Description: "Hard hat for construction safety",
			Price:       money("19.95"),
			Stock:       50,
			Category:    entity.CategorySafety,
			ImageURL:    "https://placehold.co/100x100?text=Helmet",
		},
		{
			ID:          "5",
			Name:        "Insulated Screwdriver Set",
			Description: "Set of 8 insulated screwdrivers for electrical work",
			Price:       money("45.00"),
			Stock:       30,
			Category:    entity.CategoryTools,
			ImageURL:    "https://placehold.co/100x100?text=Tools",
		},
	}
}

// Customers returns the baseline customer records.
func Customers() []entity.Customer {
	return []entity.Customer{
		{
			ID:           "c1",
			FirstName:    "John",
			LastName:     "Doe",
			Email:        "john.doe@example.com",
			Phone:        "555-123-4567",
			Address:      "123 Main St, Cityville, USA",
			RegisteredAt: date(2023, time.November, 15),
			Tags:         []string{"frequent", "corporate"},
		},
		{
			ID:           "c2",
			FirstName:    "Jane",
			LastName:     "Smith",
			Email:        "jane.smith@example.com",
			Phone:        "555-987-6543",
			Address:      "456 Oak Ave, Townsville, USA",
			RegisteredAt: date(2024, time.January, 22),
			Tags:         []string{"new"},
		},
		{
			ID:           "c3",
			FirstName:    "Robert",
			LastName:     "Johnson",
			Email:        "robert.j@example.com",
			Phone:        "555-456-7890",
			Address:      "789 Pine Rd, Villagetown, USA",
			RegisteredAt: date(2023, time.August, 5),
			Tags:         []string{"frequent", "wholesale"},
		},
	}
}

// Suppliers returns the baseline supplier records.
func Suppliers() []entity.Supplier {
	return []entity.Supplier{
		{
			ID:          "1",
			CompanyName: "ElectroSupply Co.",
			ContactName: "Alan Reed",
			Email:       "contact@electrosupply.com",
			Phone:       "555-123-4567",
			Address:     "123 Main St, Anytown, USA",
			Categories:  []entity.Category{entity.CategoryWires, entity.CategorySwitches},
			Notes:       "Reliable supplier for copper wiring and switches",
			JoinedAt:    date(2023, time.March, 10),
		},
		{
			ID:          "2",
			CompanyName: "LightingMasters Inc.",
			ContactName: "Maria Chen",
			Email:       "sales@lightingmasters.com",
			Phone:       "555-987-6543",
			Address:     "456 Oak Ave, Somewhere, USA",
			Categories:  []entity.Category{entity.CategoryLighting},
			Notes:       "Specializes in LED and energy-efficient lighting solutions",
			JoinedAt:    date(2023, time.June, 2),
		},
		{
			ID:          "3",
			CompanyName: "Construction Tools LLC",
			ContactName: "Victor Hall",
			Email:       "info@constructiontools.com",
			Phone:       "555-456-7890",
			Address:     "789 Pine Rd, Elsewhere, USA",
			Categories:  []entity.Category{entity.CategoryTools, entity.CategorySafety},
			Notes:       "Full range of professional-grade tools and safety equipment",
			JoinedAt:    date(2024, time.February, 18),
		},
	}
}

// Orders returns the baseline demo orders shown before any real checkout
// has happened.
func Orders() []entity.Order {
	return []entity.Order{
		{
			ID:           "ORD-1234",
			CustomerName: "John Smith",
			Email:        "john.smith@example.com",
			Date:         date(2025, time.May, 1),
			Total:        money("249.99"),
			Status:       entity.OrderStatusCompleted,
			Items: []entity.OrderLineItem{
				{ProductID: "1", Name: "Premium Copper Wire", Quantity: 2, Price: money("24.99")},
				{ProductID: "2", Name: "LED Panel Light", Quantity: 3, Price: money("34.50")},
				{ProductID: "5", Name: "Insulated Screwdriver Set", Quantity: 1, Price: money("45.00")},
			},
		},
		{
			ID:           "ORD-1235",
			CustomerName: "Sarah Johnson",
			Email:        "sarah.johnson@example.com",
			Date:         date(2025, time.May, 2),
			Total:        money("412.94"),
			Status:       entity.OrderStatusProcessing,
			Items: []entity.OrderLineItem{
				{ProductID: "3", Name: "Circuit Breaker", Quantity: 5, Price: money("12.99")},
				{ProductID: "4", Name: "Safety Helmet", Quantity: 2, Price: money("19.95")},
				{ProductID: "5", Name: "Insulated Screwdriver Set", Quantity: 3, Price: money("45.00")},
				{ProductID: "2", Name: "LED Panel Light", Quantity: 4, Price: money("34.50")},
			},
		},
		{
			ID:           "ORD-1236",
			CustomerName: "Michael Brown",
			Email:        "michael.brown@example.com",
			Date:         date(2025, time.May, 2),
			Total:        money("104.85"),
			Status:       entity.OrderStatusShipped,
			Items: []entity.OrderLineItem{
				{ProductID: "1", Name: "Premium Copper Wire", Quantity: 3, Price: money("24.99")},
				{ProductID: "4", Name: "Safety Helmet", Quantity: 1, Price: money("19.95")},
			},
		},
		{
			ID:           "ORD-1237",
			CustomerName: "Emma Wilson",
			Email:        "emma.wilson@example.com",
			Date:         date(2025, time.May, 3),
			Total:        money("138.00"),
			Status:       entity.OrderStatusPending,
			Items: []entity.OrderLineItem{
				{ProductID: "2", Name: "LED Panel Light", Quantity: 4, Price: money("34.50")},
			},
		},
		{
			ID:           "ORD-1238",
			CustomerName: "David Clark",
			Email:        "david.clark@example.com",
			Date:         date(2025, time.May, 3),
			Total:        money("349.75"),
			Status:       entity.OrderStatusCancelled,
			Items: []entity.OrderLineItem{
				{ProductID: "1", Name: "Premium Copper Wire", Quantity: 5, Price: money("24.99")},
				{ProductID: "3", Name: "Circuit Breaker", Quantity: 8, Price: money("12.99")},
				{ProductID: "5", Name: "Insulated Screwdriver Set", Quantity: 2, Price: money("45.00")},
			},
		},
	}
}
