package model

// Category is the fixed classification tag of a transaction. It is
// independent of the transaction's type.
type Category string

const (
	CategorySalary  Category = "salary"
	CategoryTip     Category = "tip"
	CategoryProject Category = "project"
	CategoryFood    Category = "food"
	CategoryMovie   Category = "movie"
	CategoryBills   Category = "bills"
	CategoryMedical Category = "medical"
	CategoryFee     Category = "fee"
	CategoryTax     Category = "tax"
	CategoryOther   Category = "other"
)

// AllCategories lists every Category in display order.
var AllCategories = []Category{
	CategorySalary,
	CategoryTip,
	CategoryProject,
	CategoryFood,
	CategoryMovie,
	CategoryBills,
	CategoryMedical,
	CategoryFee,
	CategoryTax,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts raw input into a Category.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.Valid() {
		return "", &ValidationError{Field: "category", Message: "unknown category " + raw}
	}
	return c, nil
}
