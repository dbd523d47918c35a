package models

import "time"

type Recipe struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	Name        string             `gorm:"type:varchar(255);not null" json:"name"`
	Description string             `gorm:"type:text" json:"description"`
	Servings    int                `gorm:"not null;default:1" json:"servings"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	Components  []RecipeComponent  `gorm:"foreignKey:RecipeID" json:"components"`
	CreatedAt   time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"not null" json:"updated_at"`
}

type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RecipeID     uint       `gorm:"not null;index" json:"recipe_id"`
	Recipe       Recipe     `gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	IngredientID uint       `gorm:"not null" json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"ingredient"`
	// Quantity dalam satuan pemakaian bahan (usage unit).
	Quantity  float64   `gorm:"type:decimal(12,4);not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// RecipeComponent menjadikan resep lain sebagai sub-komponen.
// Quantity dinyatakan dalam jumlah porsi sub-resep yang dipakai.
type RecipeComponent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipeID    uint      `gorm:"not null;index" json:"recipe_id"`
	Recipe      Recipe    `gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ComponentID uint      `gorm:"not null" json:"component_id"`
	Component   Recipe    `gorm:"foreignKey:ComponentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"component"`
	Quantity    float64   `gorm:"type:decimal(12,4);not null" json:"quantity"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
