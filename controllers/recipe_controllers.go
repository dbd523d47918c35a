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

type RecipeController struct {
	DB *gorm.DB
}

func NewRecipeController(db *gorm.DB) *RecipeController {
	return &RecipeController{DB: db}
}

type recipeLineReq struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity"`
}

type recipeComponentReq struct {
	ComponentID uint    `json:"component_id" binding:"required"`
	Quantity    float64 `json:"quantity"`
}

// GetAllRecipes
func (rc *RecipeController) GetAllRecipes(c *gin.Context) {
	var recipes []models.Recipe
	if err := rc.DB.Preload("Ingredients.Ingredient").Preload("Components.Component").Find(&recipes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of recipes", recipes)
}

// CreateRecipe menyimpan resep baru beserta baris bahan dan sub-resepnya.
// Graf komposisi diverifikasi dulu: resep yang membuat siklus ditolak.
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	type ReqBody struct {
		Name        string               `json:"name" binding:"required"`
		Description string               `json:"description"`
		Servings    int                  `json:"servings" binding:"required"`
		Ingredients []recipeLineReq      `json:"ingredients"`
		Components  []recipeComponentReq `json:"components"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Servings < 1 {
		respondServiceError(c, services.NewValidationError("servings minimal 1"))
		return
	}

	tx := rc.DB.Begin()

	recipe := models.Recipe{
		Name:        body.Name,
		Description: body.Description,
		Servings:    body.Servings,
	}
	if err := tx.Create(&recipe).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for _, line := range body.Ingredients {
		item := models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	for _, line := range body.Components {
		item := models.RecipeComponent{
			RecipeID:    recipe.ID,
			ComponentID: line.ComponentID,
			Quantity:    line.Quantity,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	// Validasi graf sebelum commit: siklus atau referensi putus membatalkan
	// seluruh penyimpanan.
	snapshot, err := services.LoadCostSnapshot(tx)
	if err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	graph := services.NewRecipeCostGraph(snapshot)
	if _, err := graph.CostOf(recipe.ID); err != nil {
		tx.Rollback()
		respondServiceError(c, err)
		return
	}

	tx.Commit()

	rc.DB.Preload("Ingredients.Ingredient").Preload("Components.Component").First(&recipe, recipe.ID)
	utils.RespondJSON(c, http.StatusCreated, "Recipe created", recipe)
}

// GetRecipeByID mengembalikan detail resep beserta rincian biayanya.
func (rc *RecipeController) GetRecipeByID(c *gin.Context) {
	idStr := c.Param("recipe_id")
	id, _ := strconv.Atoi(idStr)

	var recipe models.Recipe
	if err := rc.DB.Preload("Ingredients.Ingredient").Preload("Components.Component").First(&recipe, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	snapshot, err := services.LoadCostSnapshot(rc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	graph := services.NewRecipeCostGraph(snapshot)
	cost, err := graph.CostOf(recipe.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Recipe detail", gin.H{
		"recipe": recipe,
		"cost":   cost,
	})
}

// UpdateRecipe mengganti data resep; baris bahan dan komponen diganti utuh
// bila dikirim. Hasil akhirnya tetap harus bebas siklus.
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	idStr := c.Param("recipe_id")
	id, _ := strconv.Atoi(idStr)

	var recipe models.Recipe
	if err := rc.DB.First(&recipe, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		Name        *string               `json:"name"`
		Description *string               `json:"description"`
		Servings    *int                  `json:"servings"`
		Ingredients *[]recipeLineReq      `json:"ingredients"`
		Components  *[]recipeComponentReq `json:"components"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Servings != nil && *body.Servings < 1 {
		respondServiceError(c, services.NewValidationError("servings minimal 1"))
		return
	}

	tx := rc.DB.Begin()

	if body.Name != nil {
		recipe.Name = *body.Name
	}
	if body.Description != nil {
		recipe.Description = *body.Description
	}
	if body.Servings != nil {
		recipe.Servings = *body.Servings
	}
	if err := tx.Save(&recipe).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if body.Ingredients != nil {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		for _, line := range *body.Ingredients {
			item := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: line.IngredientID,
				Quantity:     line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				tx.Rollback()
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
		}
	}

	if body.Components != nil {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeComponent{}).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		for _, line := range *body.Components {
			item := models.RecipeComponent{
				RecipeID:    recipe.ID,
				ComponentID: line.ComponentID,
				Quantity:    line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				tx.Rollback()
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
		}
	}

	snapshot, err := services.LoadCostSnapshot(tx)
	if err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	graph := services.NewRecipeCostGraph(snapshot)
	if _, err := graph.CostOf(recipe.ID); err != nil {
		tx.Rollback()
		respondServiceError(c, err)
		return
	}

	tx.Commit()

	rc.DB.Preload("Ingredients.Ingredient").Preload("Components.Component").First(&recipe, recipe.ID)
	utils.RespondJSON(c, http.StatusOK, "Recipe updated", recipe)
}

// DeleteRecipe menolak penghapusan resep yang masih dipakai resep lain
// sebagai komponen atau dirujuk menu.
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	idStr := c.Param("recipe_id")
	id, _ := strconv.Atoi(idStr)

	var recipe models.Recipe
	if err := rc.DB.First(&recipe, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var componentRefs int64
	if err := rc.DB.Model(&models.RecipeComponent{}).Where("component_id = ?", id).Count(&componentRefs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if componentRefs > 0 {
		respondServiceError(c, services.NewConflictError("resep %q masih dipakai %d resep lain sebagai komponen", recipe.Name, componentRefs))
		return
	}

	var menuRefs int64
	if err := rc.DB.Model(&models.MenuRecipe{}).Where("recipe_id = ?", id).Count(&menuRefs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if menuRefs > 0 {
		respondServiceError(c, services.NewConflictError("resep %q masih dirujuk %d menu", recipe.Name, menuRefs))
		return
	}

	tx := rc.DB.Begin()
	if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeComponent{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Delete(&recipe).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	tx.Commit()

	utils.RespondJSON(c, http.StatusOK, "Recipe deleted", gin.H{"recipe_id": id})
}
