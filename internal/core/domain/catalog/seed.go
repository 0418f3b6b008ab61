package catalog

// DefaultCategories is the clothing taxonomy seeded into a fresh catalog.
// Seeding is idempotent: slugs are stable identifiers.
var DefaultCategories = []UpsertCategoryInput{
	{Name: "Activewear", Slug: "activewear", Description: "Sportswear, gym clothes, and athletic apparel", IsActive: true},
	{Name: "Accessories", Slug: "accessories", Description: "Bags, jewelry, scarves, hats, and other accessories", IsActive: true},
	{Name: "Bottoms", Slug: "bottoms", Description: "Pants, jeans, skirts, and other lower body clothing", IsActive: true},
	{Name: "Pants", Slug: "pants", Description: "Standalone pants and trousers for every occasion", IsActive: true},
	{Name: "Hats", Slug: "hats", Description: "Caps, beanies, and headwear accessories", IsActive: true},
	{Name: "Dresses", Slug: "dresses", Description: "One-piece garments including casual and formal dresses", IsActive: true},
	{Name: "Jackets", Slug: "jackets", Description: "Jackets, coats, blazers, and other outer garments", IsActive: true},
	{Name: "Shoes", Slug: "shoes", Description: "Footwear including sneakers, heels, boots, and sandals", IsActive: true},
	{Name: "Tops", Slug: "tops", Description: "Shirts, blouses, t-shirts, and other upper body clothing", IsActive: true},
	{Name: "Polos", Slug: "polos", Description: "Classic polo shirts for casual to smart-casual outfits", IsActive: true},
	{Name: "Underwear", Slug: "underwear", Description: "Intimates, lingerie, and foundational garments", IsActive: true},
	{Name: "Vintage", Slug: "vintage", Description: "Vintage and retro clothing items", IsActive: true},
}
