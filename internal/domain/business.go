package domain

import "time"

// Business is a directory listing that owns a catalog. The catalog service
// reads businesses but never mutates them; ownership data is maintained by
// the directory platform.
type Business struct {
	ID        int64     `gorm:"column:BUSINESS_ID;primaryKey;autoIncrement" json:"BUSINESS_ID"`
	OwnerID   int64     `gorm:"column:BUSINESS_OWNER_ID;index" json:"BUSINESS_OWNER_ID"`
	Title     string    `gorm:"column:TITLE;size:100" json:"TITLE"`
	Address   string    `gorm:"column:ADDRESS;size:255" json:"ADDRESS"`
	Pic       string    `gorm:"column:PIC;size:255" json:"PIC"`
	Status    int       `gorm:"column:STATUS" json:"STATUS"`
	CreatedAt time.Time `gorm:"column:CREATION_DATETIME" json:"CREATION_DATETIME"`
}

func (Business) TableName() string {
	return "business"
}

// Owner is an authenticated merchant account. Only the login handler touches
// credentials; everything else treats the owner as an opaque identity.
type Owner struct {
	ID        int64     `gorm:"column:BUSINESS_OWNER_ID;primaryKey" json:"BUSINESS_OWNER_ID"`
	Username  string    `gorm:"column:USERNAME;size:100;uniqueIndex" json:"USERNAME"`
	Password  string    `gorm:"column:PASSWORD;size:255" json:"-"`
	Realname  string    `gorm:"column:REALNAME;size:100" json:"REALNAME"`
	Email     string    `gorm:"column:EMAIL;size:100" json:"EMAIL"`
	Status    string    `gorm:"column:STATUS;size:16" json:"STATUS"`
	LastLogin time.Time `gorm:"column:LAST_LOGIN" json:"LAST_LOGIN"`
	CreatedAt time.Time `gorm:"column:CREATION_DATETIME" json:"CREATION_DATETIME"`
}

func (Owner) TableName() string {
	return "business_owner"
}
