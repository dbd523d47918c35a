package models

import "time"

// Ingredient menyimpan data pembelian bahan baku beserta hasil turunan
// harga per satuan pemakaian. PricePerUsageUnit dihitung ulang setiap kali
// harga beli, rate konversi, atau yield berubah.
type Ingredient struct {
	ID                uint               `gorm:"primaryKey" json:"id"`
	Name              string             `gorm:"type:varchar(255);not null" json:"name"`
	CategoryID        uint               `gorm:"not null" json:"category_id"`
	Category          IngredientCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	PurchaseUnit      string             `gorm:"type:varchar(20);not null" json:"purchase_unit"`
	PurchasePrice     float64            `gorm:"type:decimal(12,2);not null" json:"purchase_price"`
	PackageSize       float64            `gorm:"type:decimal(12,4);default:0" json:"package_size"`
	YieldPercentage   float64            `gorm:"type:decimal(5,2);not null;default:100" json:"yield_percentage"`
	UsageUnit         string             `gorm:"type:varchar(20);not null" json:"usage_unit"`
	ConversionRate    float64            `gorm:"type:decimal(12,4);not null" json:"conversion_rate"`
	PricePerUsageUnit float64            `gorm:"type:decimal(12,4);not null;default:0" json:"price_per_usage_unit"`
	CreatedAt         time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time          `gorm:"not null" json:"updated_at"`
}
