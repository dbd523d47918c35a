package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ardiansyahpr/warungku-app/models"
	"github.com/ardiansyahpr/warungku-app/services"
	"github.com/ardiansyahpr/warungku-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UnitController struct {
	DB *gorm.DB
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db}
}

// GetAllUnits
func (uc *UnitController) GetAllUnits(c *gin.Context) {
	var units []models.Unit
	if err := uc.DB.Find(&units).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of units", units)
}

// CreateUnit
func (uc *UnitController) CreateUnit(c *gin.Context) {
	type ReqBody struct {
		Symbol         string  `json:"symbol" binding:"required"`
		Label          string  `json:"label" binding:"required"`
		Group          string  `json:"group" binding:"required"`
		BaseValue      float64 `json:"base_value"`
		IsBaseUnit     bool    `json:"is_base_unit"`
		IsPurchaseUnit bool    `json:"is_purchase_unit"`
		IsUsageUnit    bool    `json:"is_usage_unit"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.BaseValue <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("base_value harus lebih dari 0"))
		return
	}

	unit := models.Unit{
		Symbol:         body.Symbol,
		Label:          body.Label,
		Group:          body.Group,
		BaseValue:      body.BaseValue,
		IsBaseUnit:     body.IsBaseUnit,
		IsPurchaseUnit: body.IsPurchaseUnit,
		IsUsageUnit:    body.IsUsageUnit,
	}

	if err := uc.DB.Create(&unit).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Unit created", unit)
}

// GetUnitByID
func (uc *UnitController) GetUnitByID(c *gin.Context) {
	idStr := c.Param("unit_id")
	id, _ := strconv.Atoi(idStr)

	var unit models.Unit
	if err := uc.DB.First(&unit, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Unit detail", unit)
}

// UpdateUnit
func (uc *UnitController) UpdateUnit(c *gin.Context) {
	idStr := c.Param("unit_id")
	id, _ := strconv.Atoi(idStr)

	var unit models.Unit
	if err := uc.DB.First(&unit, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		Symbol         *string  `json:"symbol"`
		Label          *string  `json:"label"`
		Group          *string  `json:"group"`
		BaseValue      *float64 `json:"base_value"`
		IsBaseUnit     *bool    `json:"is_base_unit"`
		IsPurchaseUnit *bool    `json:"is_purchase_unit"`
		IsUsageUnit    *bool    `json:"is_usage_unit"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Symbol != nil {
		unit.Symbol = *body.Symbol
	}
	if body.Label != nil {
		unit.Label = *body.Label
	}
	if body.Group != nil {
		unit.Group = *body.Group
	}
	if body.BaseValue != nil {
		if *body.BaseValue <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("base_value harus lebih dari 0"))
			return
		}
		unit.BaseValue = *body.BaseValue
	}
	if body.IsBaseUnit != nil {
		unit.IsBaseUnit = *body.IsBaseUnit
	}
	if body.IsPurchaseUnit != nil {
		unit.IsPurchaseUnit = *body.IsPurchaseUnit
	}
	if body.IsUsageUnit != nil {
		unit.IsUsageUnit = *body.IsUsageUnit
	}

	if err := uc.DB.Save(&unit).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Unit updated", unit)
}

// DeleteUnit menolak penghapusan satuan yang masih dipakai bahan.
func (uc *UnitController) DeleteUnit(c *gin.Context) {
	idStr := c.Param("unit_id")
	id, _ := strconv.Atoi(idStr)

	var unit models.Unit
	if err := uc.DB.First(&unit, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var refs int64
	if err := uc.DB.Model(&models.Ingredient{}).
		Where("purchase_unit = ? OR usage_unit = ?", unit.Symbol, unit.Symbol).
		Count(&refs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if refs > 0 {
		respondServiceError(c, services.NewConflictError("satuan %q masih dipakai %d bahan", unit.Symbol, refs))
		return
	}

	if err := uc.DB.Delete(&unit).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unit deleted", gin.H{"unit_id": id})
}

// GetCompatibleUnits mengembalikan satuan pemakaian yang segrup dengan
// satuan beli. Endpoint: GET /units/compatible-units?purchase_unit=kg
func (uc *UnitController) GetCompatibleUnits(c *gin.Context) {
	purchaseUnit := c.Query("purchase_unit")
	if purchaseUnit == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'purchase_unit' is required"))
		return
	}

	var units []models.Unit
	if err := uc.DB.Find(&units).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	catalog := services.NewUnitCatalog(units, services.DefaultContainerRules())
	compatible := catalog.CompatibleUsageUnits(purchaseUnit)

	utils.RespondJSON(c, http.StatusOK, "Compatible usage units", compatible)
}

// PreviewConversionRate menghitung rate konversi default antar dua satuan.
// Endpoint: GET /units/convert?from_unit=kg&to_unit=gram&package_size=0
func (uc *UnitController) PreviewConversionRate(c *gin.Context) {
	fromUnit := c.Query("from_unit")
	toUnit := c.Query("to_unit")
	if fromUnit == "" || toUnit == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'from_unit' dan 'to_unit' wajib diisi"))
		return
	}

	packageSize := 0.0
	if sizeStr := c.Query("package_size"); sizeStr != "" {
		parsed, err := strconv.ParseFloat(sizeStr, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("package_size tidak valid"))
			return
		}
		packageSize = parsed
	}

	var units []models.Unit
	if err := uc.DB.Find(&units).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	catalog := services.NewUnitCatalog(units, services.DefaultContainerRules())
	rate := catalog.DefaultConversionRate(fromUnit, toUnit, packageSize)

	utils.RespondJSON(c, http.StatusOK, "Conversion rate", gin.H{"rate": rate})
}
