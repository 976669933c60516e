package domain

// DefaultProducts seeds the paint catalog on every boot. Products are not
// part of the persisted whitelist, so this list is the source of truth
// until the admin edits it within a session.
var DefaultProducts = []Product{
	{
		ID:           "1",
		Name:         "Premium Interior Paint",
		Description:  "High-quality interior paint with excellent coverage and a smooth, durable finish. Perfect for living rooms and bedrooms.",
		Price:        49.99,
		Category:     "Interior",
		Image:        "https://img.freepik.com/free-photo/paint-can-with-paintbrush_23-2148188272.jpg",
		Stock:        100,
		IsBestSeller: true,
	},
	{
		ID:                   "2",
		Name:                 "Exterior Weather Shield",
		Description:          "Weather-resistant exterior paint designed to protect your home from harsh elements while maintaining its beauty.",
		Price:                59.99,
		Category:             "Exterior",
		Image:                "https://img.freepik.com/free-photo/house-with-blue-wall-background_1150-18021.jpg",
		Stock:                75,
		IsSpecialOffer:       true,
		SpecialOfferDiscount: 10,
	},
	{
		ID:           "3",
		Name:         "Wood Finish Classic",
		Description:  "Premium wood finish that enhances natural grain patterns while providing lasting protection.",
		Price:        44.99,
		Category:     "Wood Finish",
		Image:        "https://img.freepik.com/free-photo/wooden-surface-with-paint-brush_23-2148188259.jpg",
		Stock:        50,
		IsBestSeller: true,
	},
	{
		ID:                   "4",
		Name:                 "Metal Paint Pro",
		Description:          "Professional-grade metal paint with anti-rust properties and superior adhesion.",
		Price:                64.99,
		Category:             "Metal Paint",
		Image:                "https://img.freepik.com/free-photo/metal-surface-with-paint-brush_23-2148188270.jpg",
		Stock:                60,
		IsSpecialOffer:       true,
		SpecialOfferDiscount: 15,
	},
	{
		ID:           "5",
		Name:         "Eco-Friendly Wall Paint",
		Description:  "Low-VOC, environmentally conscious paint that's safe for your family and the planet.",
		Price:        54.99,
		Category:     "Interior",
		Image:        "https://img.freepik.com/free-photo/green-paint-wall-background_53876-88454.jpg",
		Stock:        85,
		IsBestSeller: true,
	},
	{
		ID:                   "6",
		Name:                 "Designer Color Collection",
		Description:          "Curated collection of trendy colors perfect for modern homes and creative spaces.",
		Price:                69.99,
		Category:             "Interior",
		Image:                "https://img.freepik.com/free-photo/color-palette-guide-close-up_23-2148188273.jpg",
		Stock:                40,
		IsSpecialOffer:       true,
		SpecialOfferDiscount: 20,
	},
	{
		ID:          "7",
		Name:        "Masonry & Concrete Paint",
		Description: "Specialized paint for concrete surfaces with excellent durability and weather resistance.",
		Price:       57.99,
		Category:    "Exterior",
		Image:       "https://img.freepik.com/free-photo/concrete-wall-with-paint-brush_23-2148188267.jpg",
		Stock:       30,
	},
	{
		ID:                   "8",
		Name:                 "Quick-Dry Primer",
		Description:          "Fast-drying primer that provides excellent adhesion for top coats.",
		Price:                39.99,
		Category:             "Primer",
		Image:                "https://img.freepik.com/free-photo/white-paint-can-with-brush_23-2148188271.jpg",
		Stock:                90,
		IsSpecialOffer:       true,
		SpecialOfferDiscount: 15,
	},
}

var DefaultCategories = []string{"Interior", "Exterior", "Wood Finish", "Metal Paint", "Primer"}

// DefaultProjects seeds the real-estate showcase when no persisted snapshot
// exists. IDs stay slug strings even when numeric-looking.
var DefaultProjects = []Project{
	{
		ID:          "sobha-windsor",
		Title:       "Sobha Windsor",
		Subtitle:    "Luxury Living Redefined",
		Description: "Luxury 3 & 4 BHK apartments with world-class amenities in a prime location.",
		Location:    "Whitefield",
		City:        "bangalore",
		Price:       "₹2.5 Cr*",
		Specs:       "3 & 4 BHK",
		Badges:      []string{"Luxury", "Ready to Move"},
		Image:       "/images/projects/windsor-main.jpg",
		Gallery: []string{
			"/images/projects/windsor-1.jpg",
			"/images/projects/windsor-2.jpg",
			"/images/projects/windsor-3.jpg",
			"/images/projects/windsor-4.jpg",
		},
		Amenities: []string{
			"Swimming Pool", "Clubhouse", "Gym", "Children's Play Area",
			"Indoor Games", "Landscaped Gardens", "Jogging Track", "Tennis Court",
		},
		Features: []string{
			"Premium Flooring", "Modular Kitchen", "High-end Fixtures",
			"Smart Home Features", "Spacious Balconies", "Ample Parking",
		},
		Featured: true,
		Status:   "Ready to Move",
		Details: ProjectDetails{
			Bhk:        "3 & 4 BHK",
			LandParcel: "5 Acres",
			Units:      "250",
			Floors:     "G + 25",
			Theme:      "Modern Luxury Living",
			FullDescription: []string{
				"Experience luxury living at its finest with Sobha Windsor.",
				"Nestled in the heart of Whitefield, these premium apartments offer unmatched comfort and elegance.",
				"With world-class amenities and thoughtfully designed spaces, each home is a masterpiece of luxury.",
			},
		},
	},
	{
		ID:          "sobha-lake-gardens",
		Title:       "Sobha Lake Gardens",
		Subtitle:    "Lakeside Living Perfected",
		Description: "Premium lakeside living with spacious 2 & 3 BHK apartments.",
		Location:    "Hebbal",
		City:        "bangalore",
		Price:       "₹1.8 Cr*",
		Specs:       "2 & 3 BHK",
		Badges:      []string{"Premium", "Lake View"},
		Image:       "/images/projects/lake-gardens-main.jpg",
		Gallery: []string{
			"/images/projects/lake-gardens-1.jpg",
			"/images/projects/lake-gardens-2.jpg",
			"/images/projects/lake-gardens-3.jpg",
			"/images/projects/lake-gardens-4.jpg",
		},
		Amenities: []string{
			"Lake View", "Infinity Pool", "Modern Clubhouse", "Fitness Center",
			"Yoga Deck", "Party Hall", "Kids Play Zone", "Walking Trail",
		},
		Features: []string{
			"Italian Marble Flooring", "Designer Kitchen", "VRV Air Conditioning",
			"Home Automation", "Private Gardens", "Multi-level Security",
		},
		Featured: true,
		Status:   "Under Construction",
		Details: ProjectDetails{
			Bhk:        "2 & 3 BHK",
			LandParcel: "8 Acres",
			Units:      "320",
			Floors:     "G + 20",
			Theme:      "Lakeside Luxury",
			FullDescription: []string{
				"Sobha Lake Gardens offers a perfect blend of nature and luxury.",
				"With stunning views of the lake and premium amenities, it's more than just a home.",
				"Experience the serenity of lakeside living with the convenience of urban connectivity.",
			},
		},
	},
	{
		ID:          "sobha-silicon-oasis",
		Title:       "Sobha Silicon Oasis",
		Subtitle:    "Smart Living for Modern Professionals",
		Description: "Tech-integrated smart homes with 2, 3 & 4 BHK options near IT hub.",
		Location:    "Electronic City",
		City:        "bangalore",
		Price:       "₹1.2 Cr*",
		Specs:       "2, 3 & 4 BHK",
		Badges:      []string{"Smart Homes", "Under Construction"},
		Image:       "/images/projects/silicon-oasis-main.jpg",
		Gallery: []string{
			"/images/projects/silicon-oasis-1.jpg",
			"/images/projects/silicon-oasis-2.jpg",
			"/images/projects/silicon-oasis-3.jpg",
			"/images/projects/silicon-oasis-4.jpg",
		},
		Amenities: []string{
			"Smart Security", "Co-working Space", "Rooftop Pool", "Sky Lounge",
			"Gaming Zone", "Theatre", "Sports Complex", "EV Charging",
		},
		Features: []string{
			"Smart Home System", "Energy Efficient Design", "Premium Finishes",
			"High-speed Internet", "Acoustic Insulation", "Sustainable Features",
		},
		Featured: true,
		Status:   "Under Construction",
		Details: ProjectDetails{
			Bhk:        "2, 3 & 4 BHK",
			LandParcel: "12 Acres",
			Units:      "450",
			Floors:     "G + 30",
			Theme:      "Smart Living",
			FullDescription: []string{
				"Welcome to the future of living at Sobha Silicon Oasis.",
				"Located in the heart of Electronic City, these smart homes are designed for tech-savvy professionals.",
				"Experience seamless integration of technology with luxury living.",
			},
		},
	},
	{
		ID:          "sobha-royal-pavilion",
		Title:       "Sobha Royal Pavilion",
		Subtitle:    "Ultra-Luxury Redefined",
		Description: "Ultra-luxury 4 & 5 BHK residences with royal amenities.",
		Location:    "Sarjapur Road",
		City:        "bangalore",
		Price:       "₹4.5 Cr*",
		Specs:       "4 & 5 BHK",
		Badges:      []string{"Ultra Luxury", "Limited Edition"},
		Image:       "/images/projects/royal-pavilion-main.jpg",
		Gallery: []string{
			"/images/projects/royal-pavilion-1.jpg",
			"/images/projects/royal-pavilion-2.jpg",
			"/images/projects/royal-pavilion-3.jpg",
			"/images/projects/royal-pavilion-4.jpg",
		},
		Amenities: []string{
			"Temperature Controlled Pool", "Helipad", "Private Theatre", "Wine Cellar",
			"Spa & Salon", "Concierge Service", "Business Center", "Banquet Hall",
		},
		Features: []string{
			"Double Height Living", "Private Elevator", "Italian Kitchen",
			"Smart Automation", "Private Pool Option", "Premium Security",
		},
		Featured: true,
		Status:   "Ready to Move",
		Details: ProjectDetails{
			Bhk:        "4 & 5 BHK",
			LandParcel: "15 Acres",
			Units:      "180",
			Floors:     "G + 35",
			Theme:      "Royal Living",
			FullDescription: []string{
				"Sobha Royal Pavilion represents the pinnacle of luxury living.",
				"These ultra-luxury residences offer unparalleled amenities and exclusivity.",
				"Every detail is crafted to provide a truly royal living experience.",
			},
		},
	},
}
