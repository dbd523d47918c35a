package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ardiansyahpr/warungku-app/models"
	"github.com/ardiansyahpr/warungku-app/services"
	"github.com/ardiansyahpr/warungku-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IngredientController struct {
	DB *gorm.DB
}

func NewIngredientController(db *gorm.DB) *IngredientController {
	return &IngredientController{DB: db}
}

// GetAllIngredients
func (ic *IngredientController) GetAllIngredients(c *gin.Context) {
	var ingredients []models.Ingredient
	if err := ic.DB.Preload("Category").Find(&ingredients).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of ingredients", ingredients)
}

type ingredientReq struct {
	Name            string  `json:"name" binding:"required"`
	CategoryID      uint    `json:"category_id" binding:"required"`
	PurchaseUnit    string  `json:"purchase_unit" binding:"required"`
	PurchasePrice   float64 `json:"purchase_price" binding:"required"`
	PackageSize     float64 `json:"package_size"`
	YieldPercentage float64 `json:"yield_percentage"`
	UsageUnit       string  `json:"usage_unit" binding:"required"`
	ConversionRate  float64 `json:"conversion_rate"`
}

func (r *ingredientReq) validate() error {
	if r.PurchasePrice < 0 {
		return services.NewValidationError("purchase_price tidak boleh negatif")
	}
	if r.YieldPercentage < 0 || r.YieldPercentage > 100 {
		return services.NewValidationError("yield_percentage maksimal 100 dan tidak boleh negatif")
	}
	if r.ConversionRate < 0 {
		return services.NewValidationError("conversion_rate tidak boleh negatif")
	}
	return nil
}

// CreateIngredient menyimpan bahan baru. Bila conversion_rate tidak diisi,
// rate diisi dari tabel konversi default satuan. Harga per satuan pemakaian
// diturunkan dan ikut disimpan.
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var body ingredientReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := body.validate(); err != nil {
		respondServiceError(c, err)
		return
	}

	if body.YieldPercentage == 0 {
		body.YieldPercentage = 100
	}

	if body.ConversionRate == 0 {
		var units []models.Unit
		if err := ic.DB.Find(&units).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		catalog := services.NewUnitCatalog(units, services.DefaultContainerRules())
		body.ConversionRate = catalog.DefaultConversionRate(body.PurchaseUnit, body.UsageUnit, body.PackageSize)
	}

	ingredient := models.Ingredient{
		Name:            body.Name,
		CategoryID:      body.CategoryID,
		PurchaseUnit:    body.PurchaseUnit,
		PurchasePrice:   body.PurchasePrice,
		PackageSize:     body.PackageSize,
		YieldPercentage: body.YieldPercentage,
		UsageUnit:       body.UsageUnit,
		ConversionRate:  body.ConversionRate,
	}
	ingredient.PricePerUsageUnit = services.IngredientPrice(ingredient)

	tx := ic.DB.Begin()
	if err := tx.Create(&ingredient).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	history := models.PriceHistory{
		IngredientID:  ingredient.ID,
		PurchasePrice: ingredient.PurchasePrice,
		PurchaseUnit:  ingredient.PurchaseUnit,
		RecordedAt:    time.Now(),
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	tx.Commit()

	utils.RespondJSON(c, http.StatusCreated, "Ingredient created", ingredient)
}

// GetIngredientByID
func (ic *IngredientController) GetIngredientByID(c *gin.Context) {
	idStr := c.Param("ingredient_id")
	id, _ := strconv.Atoi(idStr)

	var ingredient models.Ingredient
	if err := ic.DB.Preload("Category").First(&ingredient, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Ingredient detail", ingredient)
}

// UpdateIngredient menghitung ulang harga turunan dan merekam riwayat
// harga bila harga beli berubah.
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	idStr := c.Param("ingredient_id")
	id, _ := strconv.Atoi(idStr)

	var ingredient models.Ingredient
	if err := ic.DB.First(&ingredient, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		Name            *string  `json:"name"`
		CategoryID      *uint    `json:"category_id"`
		PurchaseUnit    *string  `json:"purchase_unit"`
		PurchasePrice   *float64 `json:"purchase_price"`
		PackageSize     *float64 `json:"package_size"`
		YieldPercentage *float64 `json:"yield_percentage"`
		UsageUnit       *string  `json:"usage_unit"`
		ConversionRate  *float64 `json:"conversion_rate"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	priceChanged := false

	if body.Name != nil {
		ingredient.Name = *body.Name
	}
	if body.CategoryID != nil {
		ingredient.CategoryID = *body.CategoryID
	}
	if body.PurchaseUnit != nil {
		ingredient.PurchaseUnit = *body.PurchaseUnit
	}
	if body.PurchasePrice != nil {
		if *body.PurchasePrice < 0 {
			respondServiceError(c, services.NewValidationError("purchase_price tidak boleh negatif"))
			return
		}
		if *body.PurchasePrice != ingredient.PurchasePrice {
			priceChanged = true
		}
		ingredient.PurchasePrice = *body.PurchasePrice
	}
	if body.PackageSize != nil {
		ingredient.PackageSize = *body.PackageSize
	}
	if body.YieldPercentage != nil {
		if *body.YieldPercentage <= 0 || *body.YieldPercentage > 100 {
			respondServiceError(c, services.NewValidationError("yield_percentage harus di rentang (0, 100]"))
			return
		}
		ingredient.YieldPercentage = *body.YieldPercentage
	}
	if body.UsageUnit != nil {
		ingredient.UsageUnit = *body.UsageUnit
	}
	if body.ConversionRate != nil {
		if *body.ConversionRate < 0 {
			respondServiceError(c, services.NewValidationError("conversion_rate tidak boleh negatif"))
			return
		}
		ingredient.ConversionRate = *body.ConversionRate
	}

	ingredient.PricePerUsageUnit = services.IngredientPrice(ingredient)

	tx := ic.DB.Begin()
	if err := tx.Save(&ingredient).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if priceChanged {
		history := models.PriceHistory{
			IngredientID:  ingredient.ID,
			PurchasePrice: ingredient.PurchasePrice,
			PurchaseUnit:  ingredient.PurchaseUnit,
			RecordedAt:    time.Now(),
		}
		if err := tx.Create(&history).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	tx.Commit()

	utils.RespondJSON(c, http.StatusOK, "Ingredient updated", ingredient)
}

// DeleteIngredient menolak penghapusan bahan yang masih dipakai resep.
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	idStr := c.Param("ingredient_id")
	id, _ := strconv.Atoi(idStr)

	var ingredient models.Ingredient
	if err := ic.DB.First(&ingredient, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var refs int64
	if err := ic.DB.Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&refs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if refs > 0 {
		respondServiceError(c, services.NewConflictError("bahan %q masih dipakai %d baris resep", ingredient.Name, refs))
		return
	}

	if err := ic.DB.Delete(&ingredient).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Ingredient deleted", gin.H{"ingredient_id": id})
}

// GetPriceHistory mengembalikan riwayat harga beli untuk laporan tren.
// Endpoint: GET /ingredients/:ingredient_id/price-history
func (ic *IngredientController) GetPriceHistory(c *gin.Context) {
	idStr := c.Param("ingredient_id")
	id, _ := strconv.Atoi(idStr)

	var ingredient models.Ingredient
	if err := ic.DB.First(&ingredient, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var history []models.PriceHistory
	if err := ic.DB.Where("ingredient_id = ?", id).Order("recorded_at asc, id asc").Find(&history).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if len(history) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("belum ada riwayat harga untuk bahan ini"))
		return
	}

	first := history[0].PurchasePrice
	last := history[len(history)-1].PurchasePrice
	change := last - first
	direction := "stabil"
	if change > 0 {
		direction = "naik"
	} else if change < 0 {
		direction = "turun"
	}

	utils.RespondJSON(c, http.StatusOK, "Price history", gin.H{
		"ingredient_id":   ingredient.ID,
		"ingredient_name": ingredient.Name,
		"records":         history,
		"summary": gin.H{
			"direction":       direction,
			"change":          change,
			"latest_price":    last,
			"latest_display":  utils.FormatCurrencyIDR(last),
			"records_counted": len(history),
		},
	})
}
