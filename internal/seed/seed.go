// Package seed holds the fixed sample catalog loaded at startup.
package seed

import "renewkart/internal/models"

// Products returns the sample refurbished catalog: three phones, two laptops
// and one accessory. Prices are integer rupees.
func Products() []models.Product {
	return []models.Product{
		{
			Name:           "iPhone 13 Pro (Refurbished)",
			Description:    "128GB, Sierra Blue. Fully tested and certified. Minimal signs of wear.",
			Price:          45999,
			OriginalPrice:  119900,
			Category:       "Phones",
			Brand:          "Apple",
			Condition:      "Excellent",
			ConditionScore: 95,
			WarrantyMonths: 12,
			Images:         []string{"https://images.unsplash.com/photo-1632661674596-df8be070a5c5?auto=format&fit=crop&q=80&w=800"},
			Specs:          map[string]string{"ram": "6GB", "storage": "128GB", "processor": "A15 Bionic"},
			Stock:          5,
			IsFeatured:     true,
		},
		{
			Name:           "Samsung Galaxy S22 Ultra",
			Description:    "Phantom Black, 256GB. Excellent camera performance. S-Pen included.",
			Price:          52999,
			OriginalPrice:  109999,
			Category:       "Phones",
			Brand:          "Samsung",
			Condition:      "Good",
			ConditionScore: 88,
			WarrantyMonths: 6,
			Images:         []string{"https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?auto=format&fit=crop&q=80&w=800"},
			Specs:          map[string]string{"ram": "12GB", "storage": "256GB", "processor": "Snapdragon 8 Gen 1"},
			Stock:          3,
			IsFeatured:     true,
		},
		{
			Name:           "MacBook Air M1",
			Description:    "Space Grey, 8GB RAM, 256GB SSD. Best value laptop. Battery cycle count: 45.",
			Price:          55000,
			OriginalPrice:  99900,
			Category:       "Laptops",
			Brand:          "Apple",
			Condition:      "Excellent",
			ConditionScore: 98,
			WarrantyMonths: 12,
			Images:         []string{"https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?auto=format&fit=crop&q=80&w=800"},
			Specs:          map[string]string{"ram": "8GB", "storage": "256GB", "processor": "M1"},
			Stock:          8,
			IsFeatured:     true,
		},
		{
			Name:           "Dell XPS 13",
			Description:    "InfinityEdge display, lightweight and powerful. Ideal for professionals.",
			Price:          48000,
			OriginalPrice:  110000,
			Category:       "Laptops",
			Brand:          "Dell",
			Condition:      "Fair",
			ConditionScore: 75,
			WarrantyMonths: 3,
			Images:         []string{"https://images.unsplash.com/photo-1593642632823-8f78536788c6?auto=format&fit=crop&q=80&w=800"},
			Specs:          map[string]string{"ram": "16GB", "storage": "512GB", "processor": "Intel i7"},
			Stock:          2,
			IsFeatured:     false,
		},
		{
			Name:           "OnePlus 9 Pro",
			Description:    "Hasselblad Camera for Mobile. Fast charging. 120Hz Fluid Display.",
			Price:          28999,
			OriginalPrice:  64999,
			Category:       "Phones",
			Brand:          "OnePlus",
			Condition:      "Good",
			ConditionScore: 85,
			WarrantyMonths: 6,
			Images:         []string{"https://images.unsplash.com/photo-1619948834614-4b53ef9173d1?auto=format&fit=crop&q=80&w=800"},
			Specs:          map[string]string{"ram": "8GB", "storage": "128GB", "processor": "Snapdragon 888"},
			Stock:          4,
			IsFeatured:     false,
		},
		{
			Name:           "Sony WH-1000XM4",
			Description:    "Industry-leading noise canceling. 30 hours battery life.",
			Price:          14999,
			OriginalPrice:  29990,
			Category:       "Accessories",
			Brand:          "Sony",
			Condition:      "Excellent",
			ConditionScore: 92,
			WarrantyMonths: 6,
			Images:         []string{"https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?auto=format&fit=crop&q=80&w=800"},
			Specs:          map[string]string{"type": "Over-ear", "battery": "30h", "connectivity": "Bluetooth"},
			Stock:          10,
			IsFeatured:     true,
		},
	}
}
