package controllers

import (
	"net/http"
	"strconv"

	"github.com/ardiansyahpr/warungku-app/models"
	"github.com/ardiansyahpr/warungku-app/services"
	"github.com/ardiansyahpr/warungku-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type menuRecipeReq struct {
	RecipeID uint    `json:"recipe_id" binding:"required"`
	Quantity float64 `json:"quantity"`
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Preload("Recipes.Recipe").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	type ReqBody struct {
		Name         string          `json:"name" binding:"required"`
		Description  string          `json:"description"`
		SellingPrice float64         `json:"selling_price" binding:"required"`
		Recipes      []menuRecipeReq `json:"recipes"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.SellingPrice < 0 {
		respondServiceError(c, services.NewValidationError("selling_price tidak boleh negatif"))
		return
	}

	tx := mc.DB.Begin()

	menu := models.Menu{
		Name:         body.Name,
		Description:  body.Description,
		SellingPrice: body.SellingPrice,
	}
	if err := tx.Create(&menu).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for _, line := range body.Recipes {
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		var recipe models.Recipe
		if err := tx.First(&recipe, line.RecipeID).Error; err != nil {
			tx.Rollback()
			respondServiceError(c, &services.ReferentialIntegrityError{Entity: "resep", ID: line.RecipeID})
			return
		}
		item := models.MenuRecipe{
			MenuID:   menu.ID,
			RecipeID: line.RecipeID,
			Quantity: qty,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	tx.Commit()

	mc.DB.Preload("Recipes.Recipe").First(&menu, menu.ID)
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// GetMenuByID mengembalikan detail menu beserta HPP, profit, dan margin.
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, _ := strconv.Atoi(idStr)

	var menu models.Menu
	if err := mc.DB.Preload("Recipes.Recipe").First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	snapshot, err := services.LoadCostSnapshot(mc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	aggregator := services.NewMenuCostAggregator(services.NewRecipeCostGraph(snapshot))
	cost, err := aggregator.CostOf(menu)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", gin.H{
		"menu":        menu,
		"hpp":         cost.HPP,
		"profit":      cost.Profit,
		"margin":      cost.Margin,
		"hpp_display": utils.FormatCurrencyIDR(cost.HPP),
	})
}

// UpdateMenu mengganti data menu; baris resep diganti utuh bila dikirim.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, _ := strconv.Atoi(idStr)

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		Name         *string          `json:"name"`
		Description  *string          `json:"description"`
		SellingPrice *float64         `json:"selling_price"`
		Recipes      *[]menuRecipeReq `json:"recipes"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.SellingPrice != nil && *body.SellingPrice < 0 {
		respondServiceError(c, services.NewValidationError("selling_price tidak boleh negatif"))
		return
	}

	tx := mc.DB.Begin()

	if body.Name != nil {
		menu.Name = *body.Name
	}
	if body.Description != nil {
		menu.Description = *body.Description
	}
	if body.SellingPrice != nil {
		menu.SellingPrice = *body.SellingPrice
	}
	if err := tx.Save(&menu).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if body.Recipes != nil {
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.MenuRecipe{}).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		for _, line := range *body.Recipes {
			qty := line.Quantity
			if qty == 0 {
				qty = 1
			}
			var recipe models.Recipe
			if err := tx.First(&recipe, line.RecipeID).Error; err != nil {
				tx.Rollback()
				respondServiceError(c, &services.ReferentialIntegrityError{Entity: "resep", ID: line.RecipeID})
				return
			}
			item := models.MenuRecipe{
				MenuID:   menu.ID,
				RecipeID: line.RecipeID,
				Quantity: qty,
			}
			if err := tx.Create(&item).Error; err != nil {
				tx.Rollback()
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
		}
	}

	tx.Commit()

	mc.DB.Preload("Recipes.Recipe").First(&menu, menu.ID)
	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// DeleteMenu menolak penghapusan menu yang masih dipakai bundle.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, _ := strconv.Atoi(idStr)

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var refs int64
	if err := mc.DB.Model(&models.MenuBundleItem{}).Where("menu_id = ?", id).Count(&refs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if refs > 0 {
		respondServiceError(c, services.NewConflictError("menu %q masih dipakai %d item bundle", menu.Name, refs))
		return
	}

	tx := mc.DB.Begin()
	if err := tx.Where("menu_id = ?", id).Delete(&models.MenuRecipe{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Delete(&menu).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	tx.Commit()

	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": id})
}
