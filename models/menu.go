package models

import "time"

type Menu struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	Description  string       `gorm:"type:text" json:"description"`
	SellingPrice float64      `gorm:"type:decimal(12,2);not null" json:"selling_price"`
	Recipes      []MenuRecipe `gorm:"foreignKey:MenuID" json:"recipes"`
	CreatedAt    time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null" json:"updated_at"`
}

// MenuRecipe menghubungkan menu dengan resep penyusunnya.
// Quantity adalah kelipatan cost-per-serving resep dalam satu porsi menu.
type MenuRecipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MenuID    uint      `gorm:"not null;index" json:"menu_id"`
	Menu      Menu      `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RecipeID  uint      `gorm:"not null" json:"recipe_id"`
	Recipe    Recipe    `gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"recipe"`
	Quantity  float64   `gorm:"type:decimal(12,4);not null;default:1" json:"quantity"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
