package constant

// Category tags a reminder or transaction for display purposes.
// The scheduler ignores it; only the icon selection uses it.
type Category string

const (
	CategoryBills         Category = "bills"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

var categoryIcons = map[Category]string{
	CategoryBills:         "🧾",
	CategoryFood:          "🍜",
	CategoryTransport:     "🚌",
	CategoryShopping:      "🛍️",
	CategoryEntertainment: "🎬",
	CategoryHealth:        "💊",
	CategoryEducation:     "📚",
	CategoryOther:         "📌",
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryIcons[c]
	return ok
}

// Icon returns the display emoji for the category.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return categoryIcons[CategoryOther]
}

func (c Category) String() string {
	return string(c)
}
