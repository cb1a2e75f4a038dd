package models

// Seed returns the menu written when no stored menu exists yet.
func Seed() []MenuItem {
	seed := func(id int64, name string, price float64, category string) MenuItem {
		return MenuItem{
			ID:        id,
			Name:      String(name),
			Price:     Number(price),
			Category:  String(category),
			Available: Bool(true),
		}
	}
	return []MenuItem{
		seed(1, "Cappuccino", 109, "coffee"),
		seed(2, "Latte", 119, "coffee"),
		seed(3, "Espresso", 60, "coffee"),
		seed(4, "Tea", 40, "tea"),
		seed(5, "Dessert", 70, "dessert"),
	}
}

// IndexOf returns the position of the item with id, or -1.
func IndexOf(items []MenuItem, id int64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// MaxID returns the largest id in items, or 0 for an empty menu.
func MaxID(items []MenuItem) int64 {
	var highest int64
	for _, it := range items {
		highest = max(highest, it.ID)
	}
	return highest
}

// Without returns items minus every entry whose id matches, preserving order.
func Without(items []MenuItem, id int64) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
