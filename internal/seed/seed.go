// Package seed bundles the default data set used to establish a non-empty
// baseline on the first run against a fresh remote store.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AsanTolepov/softwash/internal/model"
)

// Tenants returns the bundled default tenants. One is disabled on purpose
// so a fresh install exercises the disabled-tenant login path.
func Tenants() []model.Tenant {
	return []model.Tenant{
		{
			ID:        "tenant-1",
			Name:      "CleanWave Kirxona",
			Login:     "cleanwave",
			Password:  "clean123",
			IsEnabled: true,
			ValidFrom: "2024-01-01",
			ValidTo:   "2025-12-31",
		},
		{
			ID:        "tenant-2",
			Name:      "Fresh & Clean Express",
			Login:     "freshclean",
			Password:  "fresh123",
			IsEnabled: true,
			ValidFrom: "2024-03-15",
			ValidTo:   "2025-03-14",
		},
		{
			ID:        "tenant-3",
			Name:      "Premium Dry Cleaners",
			Login:     "premium",
			Password:  "premium123",
			IsEnabled: false,
			ValidFrom: "2023-06-01",
			ValidTo:   "2024-05-31",
		},
	}
}

// ServiceTypes lists the offered services, in the base language.
func ServiceTypes() []string {
	return []string{
		"Yuvish va dazmollash",
		"Kiyim yuvish",
		"Kimyoviy tozalash",
		"Tezkor yuvish",
		"Nozik kiyimlar",
		"Ko‘rpa-yostiq va choyshablar",
	}
}

// Orders returns a small deterministic order set for the enabled tenants.
func Orders() []model.Order {
	return []model.Order{
		{
			ID:       "PC-1001",
			TenantID: "tenant-1",
			Customer: model.Customer{FirstName: "John", LastName: "Smith", Phone: "+998901234567"},
			Details: model.OrderDetails{
				ItemCount:   4,
				ServiceType: "Yuvish va dazmollash",
				DateIn:      "2024-11-02",
				PickupDate:  "2024-11-05",
			},
			Payment: model.OrderPayment{
				Total:     decimal.NewFromInt(120000),
				Advance:   decimal.NewFromInt(50000),
				Remaining: decimal.NewFromInt(70000),
			},
			Status:    model.StatusWashing,
			CreatedAt: time.Date(2024, 11, 2, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:       "PC-1002",
			TenantID: "tenant-1",
			Customer: model.Customer{FirstName: "Maria", LastName: "Garcia", Phone: "+998907654321"},
			Details: model.OrderDetails{
				ItemCount:   2,
				ServiceType: "Kimyoviy tozalash",
				Notes:       "Ehtiyotkorlik bilan ishlang",
				DateIn:      "2024-11-03",
			},
			Payment: model.OrderPayment{
				Total:     decimal.NewFromInt(80000),
				Advance:   decimal.Zero,
				Remaining: decimal.NewFromInt(80000),
			},
			Status:    model.StatusNew,
			CreatedAt: time.Date(2024, 11, 3, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:       "PC-1003",
			TenantID: "tenant-2",
			Customer: model.Customer{FirstName: "Alex", LastName: "Wilson", Phone: "+998935550101"},
			Details: model.OrderDetails{
				ItemCount:   7,
				ServiceType: "Tezkor yuvish",
				DateIn:      "2024-11-04",
			},
			Payment: model.OrderPayment{
				Total:     decimal.NewFromInt(150000),
				Advance:   decimal.NewFromInt(150000),
				Remaining: decimal.Zero,
			},
			Status:    model.StatusDelivered,
			CreatedAt: time.Date(2024, 11, 4, 11, 0, 0, 0, time.UTC),
		},
	}
}

// Staff returns the bundled default employees.
func Staff() []model.Staff {
	return []model.Staff{
		{
			ID:        "emp-1",
			TenantID:  "tenant-1",
			FirstName: "Aziz",
			LastName:  "Karimov",
			Role:      model.LocalizedText{Base: "Yuvuvchi", Alt1: "Мойщик", Alt2: "Washer"},
			Phone:     "+998901112233",
			Shift:     "09:00-18:00",
			IsActive:  true,
			HiredAt:   "2024-02-01",
			DailyRate: decimal.NewFromInt(150000),
			Attendance: []string{
				"2024-11-01", "2024-11-02",
			},
			Login:    "aziz",
			Password: "aziz123",
			Capabilities: model.CapabilitySet{
				CanViewDashboard: true,
				CanViewOrders:    true,
			},
		},
		{
			ID:         "emp-2",
			TenantID:   "tenant-2",
			FirstName:  "Dilnoza",
			LastName:   "Rahimova",
			Role:       model.LocalizedText{Base: "Administrator"},
			Phone:      "+998909998877",
			Shift:      "10:00-19:00",
			IsActive:   true,
			HiredAt:    "2024-05-20",
			DailyRate:  decimal.NewFromInt(200000),
			Attendance: []string{},
			Login:      "dilnoza",
			Password:   "dilnoza123",
			Capabilities: model.CapabilitySet{
				CanViewDashboard: true,
				CanViewOrders:    true,
				CanViewExpenses:  true,
				CanViewReports:   true,
			},
		},
	}
}

// Expenses returns the bundled default expenses.
func Expenses() []model.Expense {
	return []model.Expense{
		{
			ID:       "exp-1",
			TenantID: "tenant-1",
			Date:     "2024-11-01",
			Product:  model.LocalizedText{Base: "Kir yuvish kukuni", Alt1: "Стиральный порошок"},
			Quantity: 10,
			Unit:     "kg",
			Amount:   decimal.NewFromInt(250000),
		},
		{
			ID:       "exp-2",
			TenantID: "tenant-2",
			Date:     "2024-11-03",
			Product:  model.LocalizedText{Base: "Suv"},
			Quantity: 1,
			Unit:     "oy",
			Amount:   decimal.NewFromInt(180000),
			Notes:    &model.LocalizedText{Base: "Oylik to‘lov"},
		},
	}
}
