package models

import "time"

// Grup satuan yang didukung. Satuan dalam satu grup saling bisa dikonversi.
const (
	UnitGroupMass   = "mass"
	UnitGroupVolume = "volume"
	UnitGroupCount  = "count"
)

type Unit struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Symbol         string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"symbol"`
	Label          string    `gorm:"type:varchar(100);not null" json:"label"`
	Group          string    `gorm:"column:unit_group;type:varchar(20);not null;index" json:"group"`
	BaseValue      float64   `gorm:"type:decimal(15,6);not null;default:1" json:"base_value"`
	IsBaseUnit     bool      `gorm:"default:false" json:"is_base_unit"`
	IsPurchaseUnit bool      `gorm:"default:false" json:"is_purchase_unit"`
	IsUsageUnit    bool      `gorm:"default:false" json:"is_usage_unit"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
