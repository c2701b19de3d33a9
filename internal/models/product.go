package models

// Product is a row of products
type Product struct {
	Base
	Name        string `gorm:"not null"`
	Price       int    `gorm:"not null;default:0"`
	Quantity    int    `gorm:"not null;default:0"`
	Description string `gorm:"type:text"`
	CategoryID  uint   `gorm:"index"`
	Image       string // absolute URL, e.g. "http://localhost:3000/images/abc.png"
}
