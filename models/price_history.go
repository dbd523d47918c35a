package models

import "time"

// PriceHistory merekam perubahan harga beli bahan untuk laporan tren.
// Tidak pernah dipakai dalam perhitungan HPP berjalan.
type PriceHistory struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	IngredientID  uint       `gorm:"not null;index" json:"ingredient_id"`
	Ingredient    Ingredient `gorm:"foreignKey:IngredientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	PurchasePrice float64    `gorm:"type:decimal(12,2);not null" json:"purchase_price"`
	PurchaseUnit  string     `gorm:"type:varchar(20);not null" json:"purchase_unit"`
	RecordedAt    time.Time  `gorm:"not null;index" json:"recorded_at"`
}
