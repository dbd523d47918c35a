package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ardiansyahpr/warungku-app/models"
	"github.com/ardiansyahpr/warungku-app/services"
	"github.com/ardiansyahpr/warungku-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BundleController struct {
	DB *gorm.DB
}

func NewBundleController(db *gorm.DB) *BundleController {
	return &BundleController{DB: db}
}

type bundleItemReq struct {
	MenuID   uint `json:"menu_id" binding:"required"`
	Quantity int  `json:"quantity"`
	IsFree   bool `json:"is_free"`
}

// GetAllBundles
func (bc *BundleController) GetAllBundles(c *gin.Context) {
	var bundles []models.MenuBundle
	if err := bc.DB.Preload("Items.Menu").Find(&bundles).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bundles", bundles)
}

// CreateBundle menyimpan bundle promo baru. Kombinasi jenis promo dan
// parameternya divalidasi sebelum apa pun tersimpan.
func (bc *BundleController) CreateBundle(c *gin.Context) {
	type ReqBody struct {
		Name          string               `json:"name" binding:"required"`
		Description   string               `json:"description"`
		PromotionType models.PromotionType `json:"promotion_type" binding:"required"`
		DiscountValue float64              `json:"discount_value"`
		BundlePrice   float64              `json:"bundle_price"`
		ValidFrom     *time.Time           `json:"valid_from"`
		ValidUntil    *time.Time           `json:"valid_until"`
		Items         []bundleItemReq      `json:"items" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := services.ValidatePromotion(body.PromotionType, body.DiscountValue, body.BundlePrice); err != nil {
		respondServiceError(c, err)
		return
	}
	if len(body.Items) == 0 {
		respondServiceError(c, services.NewValidationError("bundle minimal berisi satu item menu"))
		return
	}

	tx := bc.DB.Begin()

	bundle := models.MenuBundle{
		Name:          body.Name,
		Description:   body.Description,
		PromotionType: body.PromotionType,
		DiscountValue: body.DiscountValue,
		BundlePrice:   body.BundlePrice,
		ValidFrom:     body.ValidFrom,
		ValidUntil:    body.ValidUntil,
	}
	if err := tx.Create(&bundle).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for _, line := range body.Items {
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		var menu models.Menu
		if err := tx.First(&menu, line.MenuID).Error; err != nil {
			tx.Rollback()
			respondServiceError(c, &services.ReferentialIntegrityError{Entity: "menu", ID: line.MenuID})
			return
		}
		item := models.MenuBundleItem{
			BundleID: bundle.ID,
			MenuID:   line.MenuID,
			Quantity: qty,
			IsFree:   line.IsFree,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	tx.Commit()

	bc.DB.Preload("Items.Menu").First(&bundle, bundle.ID)
	utils.RespondJSON(c, http.StatusCreated, "Bundle created", bundle)
}

// GetBundleByID
func (bc *BundleController) GetBundleByID(c *gin.Context) {
	idStr := c.Param("bundle_id")
	id, _ := strconv.Atoi(idStr)

	var bundle models.MenuBundle
	if err := bc.DB.Preload("Items.Menu").First(&bundle, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Bundle detail", bundle)
}

// UpdateBundle
func (bc *BundleController) UpdateBundle(c *gin.Context) {
	idStr := c.Param("bundle_id")
	id, _ := strconv.Atoi(idStr)

	var bundle models.MenuBundle
	if err := bc.DB.First(&bundle, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		Name          *string               `json:"name"`
		Description   *string               `json:"description"`
		PromotionType *models.PromotionType `json:"promotion_type"`
		DiscountValue *float64              `json:"discount_value"`
		BundlePrice   *float64              `json:"bundle_price"`
		ValidFrom     *time.Time            `json:"valid_from"`
		ValidUntil    *time.Time            `json:"valid_until"`
		Items         *[]bundleItemReq      `json:"items"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		bundle.Name = *body.Name
	}
	if body.Description != nil {
		bundle.Description = *body.Description
	}
	if body.PromotionType != nil {
		bundle.PromotionType = *body.PromotionType
	}
	if body.DiscountValue != nil {
		bundle.DiscountValue = *body.DiscountValue
	}
	if body.BundlePrice != nil {
		bundle.BundlePrice = *body.BundlePrice
	}
	if body.ValidFrom != nil {
		bundle.ValidFrom = body.ValidFrom
	}
	if body.ValidUntil != nil {
		bundle.ValidUntil = body.ValidUntil
	}

	if err := services.ValidatePromotion(bundle.PromotionType, bundle.DiscountValue, bundle.BundlePrice); err != nil {
		respondServiceError(c, err)
		return
	}

	tx := bc.DB.Begin()
	if err := tx.Save(&bundle).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if body.Items != nil {
		if err := tx.Where("bundle_id = ?", bundle.ID).Delete(&models.MenuBundleItem{}).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		for _, line := range *body.Items {
			qty := line.Quantity
			if qty == 0 {
				qty = 1
			}
			var menu models.Menu
			if err := tx.First(&menu, line.MenuID).Error; err != nil {
				tx.Rollback()
				respondServiceError(c, &services.ReferentialIntegrityError{Entity: "menu", ID: line.MenuID})
				return
			}
			item := models.MenuBundleItem{
				BundleID: bundle.ID,
				MenuID:   line.MenuID,
				Quantity: qty,
				IsFree:   line.IsFree,
			}
			if err := tx.Create(&item).Error; err != nil {
				tx.Rollback()
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
		}
	}

	tx.Commit()

	bc.DB.Preload("Items.Menu").First(&bundle, bundle.ID)
	utils.RespondJSON(c, http.StatusOK, "Bundle updated", bundle)
}

// DeleteBundle
func (bc *BundleController) DeleteBundle(c *gin.Context) {
	idStr := c.Param("bundle_id")
	id, _ := strconv.Atoi(idStr)

	var bundle models.MenuBundle
	if err := bc.DB.First(&bundle, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	tx := bc.DB.Begin()
	if err := tx.Where("bundle_id = ?", id).Delete(&models.MenuBundleItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Delete(&bundle).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	tx.Commit()

	utils.RespondJSON(c, http.StatusOK, "Bundle deleted", gin.H{"bundle_id": id})
}

// EvaluateBundleByID mengevaluasi bundle tersimpan terhadap katalog saat ini.
// Endpoint: GET /bundles/:bundle_id/evaluate
func (bc *BundleController) EvaluateBundleByID(c *gin.Context) {
	idStr := c.Param("bundle_id")
	id, _ := strconv.Atoi(idStr)

	var bundle models.MenuBundle
	if err := bc.DB.Preload("Items").First(&bundle, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	snapshot, err := services.LoadCostSnapshot(bc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	engine := services.NewBundlePricingEngine(
		services.NewMenuCostAggregator(services.NewRecipeCostGraph(snapshot)))
	eval, err := engine.EvaluateBundle(snapshot, bundle, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Bundle evaluation", eval)
}

// EvaluateBundle mengevaluasi komposisi bundle ad-hoc tanpa menyimpannya.
// Endpoint: POST /bundles/evaluate
func (bc *BundleController) EvaluateBundle(c *gin.Context) {
	type ReqBody struct {
		Items         []bundleItemReq      `json:"items" binding:"required"`
		PromotionType models.PromotionType `json:"promotion_type" binding:"required"`
		DiscountValue float64              `json:"discount_value"`
		BundlePrice   float64              `json:"bundle_price"`
		ValidUntil    *time.Time           `json:"valid_until"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	snapshot, err := services.LoadCostSnapshot(bc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	items := make([]services.BundleItemInput, 0, len(body.Items))
	for _, line := range body.Items {
		menu, ok := snapshot.Menus[line.MenuID]
		if !ok {
			respondServiceError(c, &services.ReferentialIntegrityError{Entity: "menu", ID: line.MenuID})
			return
		}
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, services.BundleItemInput{
			Menu:     menu,
			Quantity: qty,
			IsFree:   line.IsFree,
		})
	}

	engine := services.NewBundlePricingEngine(
		services.NewMenuCostAggregator(services.NewRecipeCostGraph(snapshot)))
	eval, err := engine.Evaluate(items, body.PromotionType, body.DiscountValue, body.BundlePrice, body.ValidUntil, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Bundle evaluation", eval)
}
