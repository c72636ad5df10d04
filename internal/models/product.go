package models

// Product is a refurbished listing in the catalog. Prices are integer rupees.
type Product struct {
	ID             int               `json:"id" gorm:"primaryKey"`
	Name           string            `json:"name" validate:"required"`
	Description    string            `json:"description"`
	Price          int               `json:"price" validate:"gte=0"`
	OriginalPrice  int               `json:"originalPrice" validate:"gte=0"`
	Category       string            `json:"category"` // "Phones", "Laptops", "Accessories"
	Brand          string            `json:"brand"`
	Condition      string            `json:"condition"` // "Excellent", "Good", "Fair"
	ConditionScore int               `json:"conditionScore" validate:"gte=0,lte=100"`
	WarrantyMonths int               `json:"warrantyMonths"`
	Images         []string          `json:"images" gorm:"serializer:json"`
	Specs          map[string]string `json:"specs" gorm:"serializer:json"`
	Stock          int               `json:"stock" validate:"gte=0"`
	IsFeatured     bool              `json:"isFeatured"`
}
