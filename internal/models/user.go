package models

// User is a registered customer. Password holds a bcrypt hash and is never
// serialized.
type User struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Phone    string `json:"phone" gorm:"uniqueIndex;type:varchar(20)" validate:"required"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Name     string `json:"name"`
}
