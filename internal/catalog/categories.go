package catalog

import "github.com/iyhunko/storefront-search/internal/model"

const imageQuery = "?auto=format&fit=crop&w=800&q=80"

// CategorySpec requests Count generated products for Category.
type CategorySpec struct {
	Category model.Category
	Count    int
}

// DefaultSpecs is the catalog layout the storefront ships with.
func DefaultSpecs() []CategorySpec {
	return []CategorySpec{
		{Category: model.CategoryElectronics, Count: 50},
		{Category: model.CategoryClothing, Count: 40},
		{Category: model.CategoryAccessories, Count: 35},
		{Category: model.CategoryHomeDecor, Count: 30},
		{Category: model.CategorySports, Count: 25},
		{Category: model.CategoryBeauty, Count: 20},
	}
}

var categoryKeywords = map[model.Category][]string{
	model.CategoryElectronics: {"gadget", "tech", "digital", "smart", "wireless", "electronic", "device", "power", "battery", "charger", "screen", "display"},
	model.CategoryClothing:    {"wear", "fashion", "apparel", "dress", "outfit", "style", "garment", "cloth", "textile", "fabric", "seasonal"},
	model.CategoryAccessories: {"add-on", "complement", "enhancement", "addition", "extra", "supplementary", "decorative", "ornamental"},
	model.CategoryHomeDecor:   {"interior", "decoration", "furnishing", "ornament", "household", "domestic", "living space", "home improvement"},
	model.CategorySports:      {"athletic", "fitness", "exercise", "game", "training", "workout", "sports gear", "equipment", "outdoor"},
	model.CategoryBeauty:      {"cosmetic", "makeup", "skincare", "grooming", "personal care", "beauty product", "treatment", "aesthetic"},
}

var categoryImages = map[model.Category][]string{
	model.CategoryElectronics: {
		"https://images.unsplash.com/photo-1498049794561-7780e7231661",
		"https://images.unsplash.com/photo-1526738549149-8e07eca6c147",
		"https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
		"https://images.unsplash.com/photo-1546868871-7041f2a55e12",
	},
	model.CategoryClothing: {
		"https://images.unsplash.com/photo-1445205170230-053b83016050",
		"https://images.unsplash.com/photo-1434389677669-e08b4cac3105",
		"https://images.unsplash.com/photo-1562157873-818bc0726f68",
		"https://images.unsplash.com/photo-1489987707025-afc232f7ea0f",
	},
	model.CategoryAccessories: {
		"https://images.unsplash.com/photo-1523170335258-f5ed11844a49",
		"https://images.unsplash.com/photo-1608042314453-ae338d80c427",
		"https://images.unsplash.com/photo-1626497764746-6dc36546b388",
		"https://images.unsplash.com/photo-1611923134239-b9be5816e23c",
	},
	model.CategoryHomeDecor: {
		"https://images.unsplash.com/photo-1538688525198-9b88f6f53126",
		"https://images.unsplash.com/photo-1513161455079-7dc1de15ef3e",
		"https://images.unsplash.com/photo-1524758631624-e2822e304c36",
		"https://images.unsplash.com/photo-1505693416388-ac5ce068fe85",
	},
	model.CategorySports: {
		"https://images.unsplash.com/photo-1517649763962-0c623066013b",
		"https://images.unsplash.com/photo-1461896836934-ffe607ba8211",
		"https://images.unsplash.com/photo-1535131749006-b7f58c99034b",
		"https://images.unsplash.com/photo-1526676338756-d708c015c91f",
	},
	model.CategoryBeauty: {
		"https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9",
		"https://images.unsplash.com/photo-1487412720507-e7ab37603c6f",
		"https://images.unsplash.com/photo-1512496015851-a90fb38ba796",
		"https://images.unsplash.com/photo-1596462502278-27bfdc403348",
	},
}

// KeywordsFor returns the domain terms of a category; unknown categories have none.
func KeywordsFor(c model.Category) []string {
	return categoryKeywords[c]
}

// imagesFor falls back to the electronics set for unknown categories.
func imagesFor(c model.Category) []string {
	if images, ok := categoryImages[c]; ok {
		return images
	}
	return categoryImages[model.CategoryElectronics]
}
