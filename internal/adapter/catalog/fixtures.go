package catalog

import "github.com/niksmo/storefront/internal/core/domain"

// Demo catalog fixtures. OriginalPrice 0 means the product is not
// discounted.
var fixtureProducts = []domain.Product{
	{
		ID:              "1",
		Name:            "Smartphone Pro X",
		Description:     "Latest model with AI camera and long battery life.",
		LongDescription: "Experience the future with Smartphone Pro X. Featuring a stunning 6.7-inch OLED display, the new A17 Bionic chip, and an advanced triple-camera system with LiDAR. Enjoy all-day battery life and 5G connectivity. Perfect for professionals and tech enthusiasts.",
		Price:           799.99,
		OriginalPrice:   899.99,
		ImageURL:        "https://placehold.co/300x300.png",
		Images: []string{
			"https://placehold.co/600x600.png",
			"https://placehold.co/600x600.png",
			"https://placehold.co/600x600.png",
		},
		Category:     "Electronics",
		Brand:        "TechCorp",
		Rating:       4.5,
		ReviewsCount: 120,
		Stock:        50,
		Tags:         []string{"smartphone", "mobile", "tech"},
		Specifications: map[string]string{
			"Screen":    `6.7" OLED`,
			"Processor": "A17 Bionic",
			"RAM":       "8GB",
			"Storage":   "256GB",
			"Camera":    "48MP Triple-Lens",
		},
	},
	{
		ID:              "2",
		Name:            "Wireless Noise-Cancelling Headphones",
		Description:     "Immersive sound quality with active noise cancellation.",
		LongDescription: "Dive into pure sound with these premium wireless headphones. Featuring industry-leading noise cancellation, crystal-clear audio, and up to 30 hours of battery life. Comfortable over-ear design for extended listening sessions.",
		Price:           249.99,
		ImageURL:        "https://placehold.co/300x300.png",
		Images: []string{
			"https://placehold.co/600x600.png",
			"https://placehold.co/600x600.png",
		},
		Category:     "Electronics",
		Brand:        "AudioPhonic",
		Rating:       4.8,
		ReviewsCount: 250,
		Stock:        100,
		Tags:         []string{"audio", "headphones", "music"},
		Specifications: map[string]string{
			"Type":              "Over-ear",
			"Connectivity":      "Bluetooth 5.2",
			"BatteryLife":       "30 hours",
			"NoiseCancellation": "Active",
		},
	},
	{
		ID:              "3",
		Name:            `Ultra HD Smart TV 55"`,
		Description:     "Stunning 4K resolution with smart features.",
		LongDescription: "Transform your viewing experience with this 55-inch 4K Ultra HD Smart TV. Enjoy vibrant colors, sharp details, and access to all your favorite streaming apps. Slim design that complements any living space.",
		Price:           499.00,
		ImageURL:        "https://placehold.co/300x300.png",
		Images: []string{
			"https://placehold.co/600x600.png",
			"https://placehold.co/600x600.png",
		},
		Category:     "Electronics",
		Brand:        "VisionMax",
		Rating:       4.6,
		ReviewsCount: 95,
		Stock:        30,
		Tags:         []string{"tv", "home entertainment", "smart tv"},
		Specifications: map[string]string{
			"ScreenSize":    "55 inch",
			"Resolution":    "4K Ultra HD",
			"SmartFeatures": "Yes, WebOS",
			"HDR":           "HDR10, Dolby Vision",
		},
	},
	{
		ID:              "4",
		Name:            "Espresso Coffee Machine",
		Description:     "Barista-quality espresso at home.",
		LongDescription: "Start your day right with the perfect espresso. This machine features a 15-bar pressure pump, milk frother, and easy-to-use controls. Durable stainless steel construction.",
		Price:           199.50,
		ImageURL:        "https://placehold.co/300x300.png",
		Images: []string{
			"https://placehold.co/600x600.png",
			"https://placehold.co/600x600.png",
		},
		Category:     "Home Appliances",
		Brand:        "CafeHome",
		Rating:       4.3,
		ReviewsCount: 75,
		Stock:        60,
		Tags:         []string{"coffee", "kitchen", "appliances"},
		Specifications: map[string]string{
			"PumpPressure": "15 Bar",
			"Material":     "Stainless Steel",
			"MilkFrother":  "Yes",
			"WaterTank":    "1.5L",
		},
	},
	{
		ID:              "5",
		Name:            "Men's Classic Leather Wallet",
		Description:     "Genuine leather wallet with multiple compartments.",
		LongDescription: "A timeless accessory, this classic wallet is crafted from genuine leather. It features multiple card slots, a bill compartment, and an ID window. Slim and durable design.",
		Price:           45.00,
		OriginalPrice:   55.00,
		ImageURL:        "https://placehold.co/300x300.png",
		Images: []string{
			"https://placehold.co/600x600.png",
			"https://placehold.co/600x600.png",
		},
		Category:     "Fashion",
		Brand:        "GentStyle",
		Rating:       4.7,
		ReviewsCount: 150,
		Stock:        200,
		Tags:         []string{"wallet", "mens fashion", "accessories"},
		Specifications: map[string]string{
			"Material":  "Genuine Leather",
			"Color":     "Black",
			"CardSlots": "8",
			"IDWindow":  "Yes",
		},
	},
	{
		ID:              "6",
		Name:            "Yoga Mat Premium",
		Description:     "Eco-friendly, non-slip yoga mat for all practices.",
		LongDescription: "Enhance your yoga practice with this premium, eco-friendly mat. Made from natural tree rubber, it offers excellent grip and cushioning. Lightweight and easy to carry.",
		Price:           39.99,
		ImageURL:        "https://placehold.co/300x300.png",
		Images: []string{
			"https://placehold.co/600x600.png",
		},
		Category:     "Sports & Outdoors",
		Brand:        "ZenFlow",
		Rating:       4.9,
		ReviewsCount: 300,
		Stock:        120,
		Tags:         []string{"yoga", "fitness", "sports"},
		Specifications: map[string]string{
			"Material":    "Natural Tree Rubber",
			"Thickness":   "5mm",
			"Dimensions":  `72" x 24"`,
			"EcoFriendly": "Yes",
		},
	},
}

var fixtureReviews = []domain.Review{
	{ID: "r1", ProductID: "1", Author: "John D.", Rating: 5, Comment: "Amazing phone, super fast and great camera!", Date: "2023-10-01"},
	{ID: "r2", ProductID: "1", Author: "Jane S.", Rating: 4, Comment: "Good phone, battery could be slightly better.", Date: "2023-10-05"},
	{ID: "r3", ProductID: "2", Author: "Mike B.", Rating: 5, Comment: "Best headphones I have ever owned. Noise cancellation is superb.", Date: "2023-09-15"},
	{ID: "r4", ProductID: "2", Author: "Lisa K.", Rating: 4, Comment: "Very comfortable and great sound, a bit pricey though.", Date: "2023-09-20"},
}
