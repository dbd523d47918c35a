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

type IngredientCategoryController struct {
	DB *gorm.DB
}

func NewIngredientCategoryController(db *gorm.DB) *IngredientCategoryController {
	return &IngredientCategoryController{DB: db}
}

// GetAllCategories
func (cc *IngredientCategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.IngredientCategory
	if err := cc.DB.Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of ingredient categories", categories)
}

// CreateCategory
func (cc *IngredientCategoryController) CreateCategory(c *gin.Context) {
	type ReqBody struct {
		Name string `json:"name" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.IngredientCategory{Name: body.Name}
	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory
func (cc *IngredientCategoryController) UpdateCategory(c *gin.Context) {
	idStr := c.Param("cat_id")
	id, _ := strconv.Atoi(idStr)

	var category models.IngredientCategory
	if err := cc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		Name string `json:"name" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category.Name = body.Name
	if err := cc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory menolak penghapusan kategori yang masih punya bahan.
func (cc *IngredientCategoryController) DeleteCategory(c *gin.Context) {
	idStr := c.Param("cat_id")
	id, _ := strconv.Atoi(idStr)

	var category models.IngredientCategory
	if err := cc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var refs int64
	if err := cc.DB.Model(&models.Ingredient{}).Where("category_id = ?", id).Count(&refs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if refs > 0 {
		respondServiceError(c, services.NewConflictError("kategori %q masih dipakai %d bahan", category.Name, refs))
		return
	}

	if err := cc.DB.Delete(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": id})
}
