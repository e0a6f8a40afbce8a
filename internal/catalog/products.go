package catalog

var products = []Product{
	{
		ID:          "fo-001",
		Name:        "Blush Inferno Fragrance Oil (100ml)",
		Price:       30,
		Category:    "Diffuser & Home Scent",
		Description: "Intense, seductive fragrance oil with warm notes perfect for creating an alluring atmosphere.",
		ImageURL:    "/images/products/blush-inferno.png",
		Tags:        []string{"bestseller"},
		Badge:       "Bestseller",
	},
	{
		ID:          "fo-002",
		Name:        "Étreinte Fragrance Oil (100ml)",
		Price:       30,
		Category:    "Diffuser & Home Scent",
		Description: "Elegant and sophisticated scent that embraces you with its luxurious fragrance.",
		ImageURL:    "/images/products/Etreinte.png",
	},
	{
		ID:          "fo-003",
		Name:        "Lune d'Or Fragrance Oil (100ml)",
		Price:       30,
		Category:    "Diffuser & Home Scent",
		Description: "Golden moonlight captured in a bottle with enchanting and dreamy aromas.",
		ImageURL:    "/images/products/lune-dor.png",
	},
	{
		ID:          "fo-009",
		Name:        "Noir Seduction Fragrance Oil (100ml)",
		Price:       30,
		Category:    "Diffuser & Home Scent",
		Description: "Alluring dark fragrance with seductive notes that captivate the senses.",
		ImageURL:    "/images/products/noir.png",
		Tags:        []string{"bestseller"},
		Badge:       "Bestseller",
	},
	{
		ID:          "diff-001",
		Name:        "Crismyla Tabletop Wireless Aroma Diffuser (Gold)",
		Price:       230,
		Category:    "Diffuser & Home Scent",
		Description: "Elegant gold wireless diffuser that seamlessly blends technology with luxury design.",
		ImageURL:    "/images/products/diffuser-gold.jpg",
		Badge:       "New",
	},
	{
		ID:          "diff-002",
		Name:        "Crismyla Tabletop Wireless Bluetooth Aroma Diffuser (Silver)",
		Price:       230,
		Category:    "Diffuser & Home Scent",
		Description: "Premium silver diffuser with Bluetooth connectivity for smart home integration.",
		ImageURL:    "/images/products/diffuser-silver.jpg",
		Badge:       "New",
	},
	{
		ID:          "diff-003",
		Name:        "Crismyla Tabletop Wireless Aroma Diffuser (Black)",
		Price:       230,
		Category:    "Diffuser & Home Scent",
		Description: "Sleek black wireless diffuser with modern minimalist design and powerful diffusion.",
		ImageURL:    "/images/products/diffuser-black.jpg",
		Badge:       "Bestseller",
	},
	{
		ID:          "frag-10-001",
		Name:        "Heavenly (10ml)",
		Price:       20,
		Category:    "Fragrance",
		Description: "Divine and ethereal fragrance that captivates with its heavenly essence.",
		ImageURL:    "/images/products/heavenly-10ml.jpg",
	},
	{
		ID:          "frag-10-004",
		Name:        "Ocean Spritz (10ml)",
		Price:       25,
		Category:    "Fragrance",
		Description: "Fresh oceanic breeze captured in a bottle, refreshing and invigorating.",
		ImageURL:    "/images/products/ocean-spritz-10ml.jpg",
		Badge:       "Bestseller",
	},
	{
		ID:          "frag-100-001",
		Name:        "Heavenly (100ml)",
		Price:       145,
		Category:    "Fragrance",
		Description: "Divine and ethereal fragrance in a generous 100ml size for lasting elegance.",
		ImageURL:    "/images/products/heavenly-100ml.jpg",
		Badge:       "Bestseller",
	},
	{
		ID:          "frag-100-002",
		Name:        "Stick With Me (100ml)",
		Price:       165,
		Category:    "Fragrance",
		Description: "Memorable and captivating scent in a luxurious 100ml size that lasts.",
		ImageURL:    "/images/products/stick-with-me-100ml.jpg",
	},
	{
		ID:          "hair-001",
		Name:        "Nourishing Leave-In Hair Conditioner (300ml)",
		Price:       30,
		Category:    "Haircare & Wig",
		Description: "Deeply nourishing leave-in conditioner that restores and protects your hair's natural shine and strength.",
		ImageURL:    "/images/products/leave-in-conditioner.png",
		Badge:       "Bestseller",
	},
	{
		ID:          "hair-002",
		Name:        "Ayurvedic Revive Hair Growth Oil (60ml)",
		Price:       35,
		Category:    "Haircare & Wig",
		Description: "Traditional ayurvedic blend that revives and strengthens hair from root to tip.",
		ImageURL:    "/images/products/ayurvedic.png",
	},
	{
		ID:          "skincare-001",
		Name:        "Lemon Cleansing Body Wash – Enriched with Vitamin C",
		Price:       60,
		Category:    "Skincare",
		Description: "Brightening citrus body wash enriched with vitamin C for a fresh, radiant glow.",
		ImageURL:    "/images/products/lemon_cleansing.png",
		Badge:       "Bestseller",
	},
	{
		ID:          "skincare-002",
		Name:        "Body Highlighter Oil (100ml)",
		Price:       40,
		Category:    "Skincare",
		Description: "Shimmering body oil that hydrates while leaving a luminous finish.",
		ImageURL:    "/images/products/body_highlighter.png",
	},
	{
		ID:          "skincare-003",
		Name:        "Moroccan Black Soap (500g)",
		Price:       45,
		Category:    "Skincare",
		Description: "Traditional Moroccan black soap that gently exfoliates and purifies the skin.",
		ImageURL:    "/images/products/moroccan_black_soap.png",
	},
}
