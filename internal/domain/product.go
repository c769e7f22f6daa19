package domain

import "time"

// Product represents a catalog item owned by a single business.
// Column names follow the legacy dashboard schema; they double as the JSON
// field names the dashboard client expects.
type Product struct {
	ID          int64     `gorm:"column:BUSINESS_PRODUCT_ID;primaryKey;autoIncrement" json:"BUSINESS_PRODUCT_ID"`
	BusinessID  int64     `gorm:"column:BUSINESS_ID;index" json:"BUSINESS_ID"`
	Title       string    `gorm:"column:TITLE;size:100" json:"TITLE"`
	Description string    `gorm:"column:DESCRIPTION;size:1000" json:"DESCRIPTION"`
	Price       float64   `gorm:"column:PRODUCT_PRICE" json:"PRODUCT_PRICE"`
	Pic         string    `gorm:"column:PIC;size:255" json:"PIC"`
	CategoryID  *int64    `gorm:"column:BUSINESS_PRODUCT_CATEGORY_ID" json:"BUSINESS_PRODUCT_CATEGORY_ID"`
	Status      int       `gorm:"column:STATUS" json:"STATUS"`
	CreatedAt   time.Time `gorm:"column:CREATION_DATETIME" json:"CREATION_DATETIME"`
}

func (Product) TableName() string {
	return "business_product"
}

// ProductTag is a pure join row linking a product to a tag.
type ProductTag struct {
	ProductID int64     `gorm:"column:BUSINESS_PRODUCT_ID;primaryKey;autoIncrement:false" json:"BUSINESS_PRODUCT_ID"`
	TagID     int64     `gorm:"column:BUSINESS_PRODUCT_TAG_ID;primaryKey;autoIncrement:false" json:"BUSINESS_PRODUCT_TAG_ID"`
	CreatedAt time.Time `gorm:"column:CREATION_DATETIME" json:"CREATION_DATETIME"`
}

func (ProductTag) TableName() string {
	return "business_product_2_tag"
}

// ProductWithTags is the read shape returned by list/create/update: the
// product row plus its resolved tag set.
type ProductWithTags struct {
	Product
	Tags []Tag `gorm:"-" json:"tags"`
}
