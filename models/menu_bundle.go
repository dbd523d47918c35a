package models

import "time"

// PromotionType adalah jenis promo yang didukung bundle.
type PromotionType string

const (
	PromoBuyOneGetOne PromotionType = "BUY1GET1"
	PromoBuyTwoGetOne PromotionType = "BUY2GET1"
	PromoPercentage   PromotionType = "PERCENTAGE"
	PromoDiscount     PromotionType = "DISCOUNT"
	PromoFixedPrice   PromotionType = "FIXED_PRICE"
)

// Valid melaporkan apakah t termasuk jenis promo yang dikenal.
func (t PromotionType) Valid() bool {
	switch t {
	case PromoBuyOneGetOne, PromoBuyTwoGetOne, PromoPercentage, PromoDiscount, PromoFixedPrice:
		return true
	}
	return false
}

type MenuBundle struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Name          string           `gorm:"type:varchar(255);not null" json:"name"`
	Description   string           `gorm:"type:text" json:"description"`
	PromotionType PromotionType    `gorm:"type:varchar(20);not null" json:"promotion_type"`
	DiscountValue float64          `gorm:"type:decimal(12,2);default:0" json:"discount_value"`
	BundlePrice   float64          `gorm:"type:decimal(12,2);default:0" json:"bundle_price"`
	ValidFrom     *time.Time       `json:"valid_from,omitempty"`
	ValidUntil    *time.Time       `json:"valid_until,omitempty"`
	Items         []MenuBundleItem `gorm:"foreignKey:BundleID" json:"items"`
	CreatedAt     time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"not null" json:"updated_at"`
}

type MenuBundleItem struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	BundleID  uint       `gorm:"not null;index" json:"bundle_id"`
	Bundle    MenuBundle `gorm:"foreignKey:BundleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuID    uint       `gorm:"not null" json:"menu_id"`
	Menu      Menu       `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu"`
	Quantity  int        `gorm:"not null;default:1" json:"quantity"`
	IsFree    bool       `gorm:"default:false" json:"is_free"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
