package domain

import "time"

// Tag is a business-scoped label attachable to products and categories.
type Tag struct {
	ID         int64     `gorm:"column:BUSINESS_PRODUCT_TAG_ID;primaryKey;autoIncrement" json:"BUSINESS_PRODUCT_TAG_ID"`
	BusinessID int64     `gorm:"column:BUSINESS_ID;index" json:"BUSINESS_ID"`
	Title      string    `gorm:"column:TITLE;size:45" json:"TITLE"`
	CreatedAt  time.Time `gorm:"column:CREATION_DATETIME" json:"CREATION_DATETIME"`
}

func (Tag) TableName() string {
	return "business_product_tag"
}
