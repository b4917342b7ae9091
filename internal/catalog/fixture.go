package catalog

// Builtin returns the catalog shipped with the binary. The storefront
// has no backend, so this fixture is the sole data source unless a
// catalog file is configured.
func Builtin() *Catalog {
	return New(builtinProducts)
}

var builtinProducts = []Product{
	// Audio
	{
		ID:            "1",
		Name:          "Quantum Headphones Pro",
		Price:         299,
		OriginalPrice: 399,
		Image:         "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
		Category:      "Audio",
		Rating:        4.8,
		Reviews:       124,
		Description:   "Premium wireless headphones with quantum audio technology",
		IsFeatured:    true,
		IsNew:         true,
	},
	{
		ID:            "2",
		Name:          "Wireless Earbuds Elite",
		Price:         199,
		OriginalPrice: 249,
		Image:         "https://images.pexels.com/photos/8534088/pexels-photo-8534088.jpeg",
		Category:      "Audio",
		Rating:        4.9,
		Reviews:       203,
		Description:   "True wireless earbuds with active noise cancellation",
		IsFeatured:    true,
	},
	{
		ID:          "3",
		Name:        "Studio Monitor Speakers",
		Price:       599,
		Image:       "https://images.pexels.com/photos/164938/pexels-photo-164938.jpeg",
		Category:    "Audio",
		Rating:      4.7,
		Reviews:     89,
		Description: "Professional studio monitors for audiophiles",
	},
	{
		ID:          "4",
		Name:        "Bluetooth Speaker Max",
		Price:       149,
		Image:       "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg",
		Category:    "Audio",
		Rating:      4.6,
		Reviews:     156,
		Description: "Portable speaker with 360-degree sound",
	},
	{
		ID:          "5",
		Name:        "Gaming Headset Pro",
		Price:       179,
		Image:       "https://images.pexels.com/photos/3753525/pexels-photo-3753525.jpeg",
		Category:    "Audio",
		Rating:      4.8,
		Reviews:     234,
		Description: "Professional gaming headset with surround sound",
	},

	// Gaming
	{
		ID:            "6",
		Name:          "Gaming Controller Pro",
		Price:         129,
		OriginalPrice: 159,
		Image:         "https://images.pexels.com/photos/442576/pexels-photo-442576.jpeg",
		Category:      "Gaming",
		Rating:        4.9,
		Reviews:       89,
		Description:   "Wireless gaming controller with haptic feedback",
		IsFeatured:    true,
	},
	{
		ID:            "7",
		Name:          "VR Headset Elite",
		Price:         699,
		OriginalPrice: 899,
		Image:         "https://images.pexels.com/photos/8728382/pexels-photo-8728382.jpeg",
		Category:      "Gaming",
		Rating:        4.9,
		Reviews:       145,
		Description:   "Next-gen VR headset with 4K displays",
		IsNew:         true,
	},
	{
		ID:          "8",
		Name:        "Gaming Keyboard RGB",
		Price:       199,
		Image:       "https://images.pexels.com/photos/1194713/pexels-photo-1194713.jpeg",
		Category:    "Gaming",
		Rating:      4.7,
		Reviews:     312,
		Description: "Mechanical gaming keyboard with RGB lighting",
	},
	{
		ID:          "9",
		Name:        "Gaming Mouse Ultra",
		Price:       89,
		Image:       "https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg",
		Category:    "Gaming",
		Rating:      4.8,
		Reviews:     278,
		Description: "High-precision gaming mouse with customizable buttons",
	},
	{
		ID:          "10",
		Name:        "Gaming Chair Deluxe",
		Price:       399,
		Image:       "https://images.pexels.com/photos/4009402/pexels-photo-4009402.jpeg",
		Category:    "Gaming",
		Rating:      4.6,
		Reviews:     167,
		Description: "Ergonomic gaming chair with lumbar support",
	},

	// Mobile
	{
		ID:            "11",
		Name:          "Smart Phone Ultra",
		Price:         999,
		OriginalPrice: 1199,
		Image:         "https://images.pexels.com/photos/699122/pexels-photo-699122.jpeg",
		Category:      "Mobile",
		Rating:        4.7,
		Reviews:       256,
		Description:   "Flagship smartphone with AI camera system",
		IsFeatured:    true,
	},
	{
		ID:          "12",
		Name:        "Tablet Pro Max",
		Price:       799,
		Image:       "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg",
		Category:    "Mobile",
		Rating:      4.8,
		Reviews:     189,
		Description: "Professional tablet with stylus support",
	},
	{
		ID:          "13",
		Name:        "Phone Case Premium",
		Price:       49,
		Image:       "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg",
		Category:    "Mobile",
		Rating:      4.5,
		Reviews:     423,
		Description: "Premium leather phone case with card slots",
	},
	{
		ID:          "14",
		Name:        "Wireless Charger Fast",
		Price:       79,
		Image:       "https://images.pexels.com/photos/4526414/pexels-photo-4526414.jpeg",
		Category:    "Mobile",
		Rating:      4.6,
		Reviews:     298,
		Description: "Fast wireless charging pad with cooling fan",
	},
	{
		ID:          "15",
		Name:        "Power Bank Ultra",
		Price:       99,
		Image:       "https://images.pexels.com/photos/4526414/pexels-photo-4526414.jpeg",
		Category:    "Mobile",
		Rating:      4.7,
		Reviews:     345,
		Description: "20000mAh power bank with fast charging",
	},

	// Wearable
	{
		ID:            "16",
		Name:          "Cyber Smartwatch",
		Price:         399,
		OriginalPrice: 499,
		Image:         "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
		Category:      "Wearable",
		Rating:        4.6,
		Reviews:       178,
		Description:   "Advanced smartwatch with health monitoring",
		IsNew:         true,
	},
	{
		ID:          "17",
		Name:        "Fitness Tracker Pro",
		Price:       199,
		Image:       "https://images.pexels.com/photos/6975474/pexels-photo-6975474.jpeg",
		Category:    "Wearable",
		Rating:      4.5,
		Reviews:     267,
		Description: "Comprehensive fitness tracker with GPS",
	},
	{
		ID:          "18",
		Name:        "Smart Ring Health",
		Price:       299,
		Image:       "https://images.pexels.com/photos/8534088/pexels-photo-8534088.jpeg",
		Category:    "Wearable",
		Rating:      4.4,
		Reviews:     134,
		Description: "Smart ring for health and sleep tracking",
	},
	{
		ID:          "19",
		Name:        "AR Glasses Beta",
		Price:       1299,
		Image:       "https://images.pexels.com/photos/8728382/pexels-photo-8728382.jpeg",
		Category:    "Wearable",
		Rating:      4.3,
		Reviews:     67,
		Description: "Augmented reality glasses for developers",
		IsNew:       true,
	},

	// Computer
	{
		ID:          "20",
		Name:        "Laptop Gaming Beast",
		Price:       1899,
		Image:       "https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg",
		Category:    "Computer",
		Rating:      4.8,
		Reviews:     156,
		Description: "High-performance gaming laptop with RTX graphics",
	},
	{
		ID:          "21",
		Name:        "Desktop Workstation",
		Price:       2499,
		Image:       "https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg",
		Category:    "Computer",
		Rating:      4.9,
		Reviews:     89,
		Description: "Professional workstation for content creators",
	},
	{
		ID:          "22",
		Name:        "Monitor 4K Ultra",
		Price:       599,
		Image:       "https://images.pexels.com/photos/1029757/pexels-photo-1029757.jpeg",
		Category:    "Computer",
		Rating:      4.7,
		Reviews:     234,
		Description: "32-inch 4K monitor with HDR support",
	},
	{
		ID:          "23",
		Name:        "Webcam Pro 4K",
		Price:       199,
		Image:       "https://images.pexels.com/photos/4009402/pexels-photo-4009402.jpeg",
		Category:    "Computer",
		Rating:      4.6,
		Reviews:     178,
		Description: "4K webcam with auto-focus and noise reduction",
	},
	{
		ID:          "24",
		Name:        "External SSD Fast",
		Price:       299,
		Image:       "https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg",
		Category:    "Computer",
		Rating:      4.8,
		Reviews:     312,
		Description: "2TB external SSD with USB-C connectivity",
	},

	// Smart Home
	{
		ID:          "25",
		Name:        "Smart Speaker Hub",
		Price:       149,
		Image:       "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg",
		Category:    "Smart Home",
		Rating:      4.5,
		Reviews:     289,
		Description: "Smart speaker with voice assistant and hub features",
	},
	{
		ID:          "26",
		Name:        "Security Camera 4K",
		Price:       199,
		Image:       "https://images.pexels.com/photos/430208/pexels-photo-430208.jpeg",
		Category:    "Smart Home",
		Rating:      4.6,
		Reviews:     234,
		Description: "4K security camera with night vision",
	},
	{
		ID:          "27",
		Name:        "Smart Thermostat",
		Price:       249,
		Image:       "https://images.pexels.com/photos/1194713/pexels-photo-1194713.jpeg",
		Category:    "Smart Home",
		Rating:      4.7,
		Reviews:     167,
		Description: "AI-powered smart thermostat with learning capabilities",
	},
	{
		ID:          "28",
		Name:        "Smart Light Bulbs",
		Price:       79,
		Image:       "https://images.pexels.com/photos/164938/pexels-photo-164938.jpeg",
		Category:    "Smart Home",
		Rating:      4.4,
		Reviews:     456,
		Description: "RGB smart bulbs with app control (4-pack)",
	},
	{
		ID:          "29",
		Name:        "Robot Vacuum Pro",
		Price:       599,
		Image:       "https://images.pexels.com/photos/4526414/pexels-photo-4526414.jpeg",
		Category:    "Smart Home",
		Rating:      4.8,
		Reviews:     198,
		Description: "AI-powered robot vacuum with mapping technology",
	},
	{
		ID:          "30",
		Name:        "Smart Doorbell",
		Price:       199,
		Image:       "https://images.pexels.com/photos/430208/pexels-photo-430208.jpeg",
		Category:    "Smart Home",
		Rating:      4.5,
		Reviews:     278,
		Description: "Video doorbell with two-way audio and motion detection",
	},
}
