package models

// FoodItem adalah entri katalog statis. Katalog bersifat tetap (3 item)
// dan didefinisikan di kode, tidak dipersist ke database.
type FoodItem struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// DefaultCatalog returns the fixed menu the vendor sells.
func DefaultCatalog() []FoodItem {
	return []FoodItem{
		{ID: "regular-pack", Label: "Regular Pack", Price: 20.00},
		{ID: "family-pack", Label: "Family Pack", Price: 25.00},
		{ID: "party-tray", Label: "Party Tray", Price: 40.00},
	}
}

// FindFoodItem mencari item berdasarkan ID. Return kedua false jika tidak ketemu.
func FindFoodItem(catalog []FoodItem, id string) (FoodItem, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return FoodItem{}, false
}
