package domain

import "time"

// Category groups products within one business. STATUS is binary, 1 means
// active; new categories default to active.
type Category struct {
	ID          int64     `gorm:"column:BUSINESS_PRODUCT_CATEGORY_ID;primaryKey;autoIncrement" json:"BUSINESS_PRODUCT_CATEGORY_ID"`
	BusinessID  int64     `gorm:"column:BUSINESS_ID;index" json:"BUSINESS_ID"`
	Title       string    `gorm:"column:TITLE;size:45" json:"TITLE"`
	Description string    `gorm:"column:DESCRIPTION;size:255" json:"DESCRIPTION"`
	Pic         string    `gorm:"column:PIC;size:255" json:"PIC"`
	Status      int       `gorm:"column:STATUS" json:"STATUS"`
	CreatedAt   time.Time `gorm:"column:CREATION_DATETIME" json:"CREATION_DATETIME"`
}

func (Category) TableName() string {
	return "business_product_category"
}

// CategoryTag is a pure join row linking a category to a tag.
type CategoryTag struct {
	CategoryID int64     `gorm:"column:BUSINESS_PRODUCT_CATEGORY_ID;primaryKey;autoIncrement:false" json:"BUSINESS_PRODUCT_CATEGORY_ID"`
	TagID      int64     `gorm:"column:BUSINESS_PRODUCT_TAG_ID;primaryKey;autoIncrement:false" json:"BUSINESS_PRODUCT_TAG_ID"`
	CreatedAt  time.Time `gorm:"column:CREATION_DATETIME" json:"CREATION_DATETIME"`
}

func (CategoryTag) TableName() string {
	return "business_product_category_2_tag"
}

// CategoryWithTags is the read shape returned by list/create/update.
type CategoryWithTags struct {
	Category
	Tags []Tag `gorm:"-" json:"tags"`
}
