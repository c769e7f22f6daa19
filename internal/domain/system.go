package domain

import "time"

// SysConfig stores runtime settings editable without a restart.
type SysConfig struct {
	ID        int64     `gorm:"primaryKey" json:"id,string"`
	Sort      int       `gorm:"column:sort" json:"sort"`
	Type      string    `gorm:"column:type;size:64" json:"type"`
	Name      string    `gorm:"column:name;size:128" json:"name"`
	Value     string    `gorm:"column:value;size:255" json:"value"`
	Remark    string    `gorm:"column:remark;size:255" json:"remark"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SysConfig) TableName() string {
	return "sys_config"
}

// AuditLog records catalog mutations for the admin activity view.
type AuditLog struct {
	ID         int64     `gorm:"primaryKey" json:"id,string"`
	BusinessID int64     `gorm:"index" json:"business_id"`
	Entity     string    `gorm:"size:32" json:"entity"`
	Action     string    `gorm:"size:32" json:"action"`
	EntityID   int64     `json:"entity_id"`
	Remark     string    `gorm:"size:255" json:"remark"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "sys_audit_log"
}
