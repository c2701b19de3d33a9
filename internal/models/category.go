package models

// Category is only listed, to fill the product form select
type Category struct {
	Base
	Name string `gorm:"uniqueIndex;not null"`
}
