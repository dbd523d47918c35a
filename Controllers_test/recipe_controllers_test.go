package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ardiansyahpr/warungku-app/controllers"
	"github.com/ardiansyahpr/warungku-app/models"
	"github.com/ardiansyahpr/warungku-app/utils"
)

func setupTestDBForRecipes() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:recipectl?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Unit{}, &models.IngredientCategory{}, &models.Ingredient{},
		&models.Recipe{}, &models.RecipeIngredient{}, &models.RecipeComponent{},
		&models.Menu{}, &models.MenuRecipe{}, &models.PriceHistory{},
	)
	if err != nil {
		panic(err)
	}

	// Seed: kategori + satu bahan cabai merah
	category := models.IngredientCategory{Name: "Bumbu"}
	db.Create(&category)
	ingredient := models.Ingredient{
		Name:            "Cabai Merah",
		CategoryID:      category.ID,
		PurchaseUnit:    "kg",
		PurchasePrice:   45000,
		YieldPercentage: 95,
		UsageUnit:       "gram",
		ConversionRate:  1000,
	}
	db.Create(&ingredient)
	return db
}

func setupRecipeRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	recipeCtrl := controllers.NewRecipeController(db)
	router.GET("/recipes", recipeCtrl.GetAllRecipes)
	router.POST("/recipes", recipeCtrl.CreateRecipe)
	router.GET("/recipes/:recipe_id", recipeCtrl.GetRecipeByID)
	router.PATCH("/recipes/:recipe_id", recipeCtrl.UpdateRecipe)
	router.DELETE("/recipes/:recipe_id", recipeCtrl.DeleteRecipe)
	return router
}

func createRecipe(t *testing.T, router *gin.Engine, payload map[string]interface{}) int {
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/recipes", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	return int(data["id"].(float64))
}

func TestRecipeCostDetail(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRecipes()
	router := setupRecipeRouter(db)

	recipeID := createRecipe(t, router, map[string]interface{}{
		"name":     "Sambal Bawang",
		"servings": 10,
		"ingredients": []map[string]interface{}{
			{"ingredient_id": 1, "quantity": 100},
		},
	})

	req, err := http.NewRequest("GET", "/recipes/"+strconv.Itoa(recipeID), nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	cost := data["cost"].(map[string]interface{})

	// 100 gram x 45000/(1000*0.95) ~ 4.736,84
	assert.InDelta(t, 4736.84, cost["total_cost"].(float64), 0.01)
	assert.InDelta(t, 473.68, cost["cost_per_serving"].(float64), 0.01)

	lines := cost["ingredient_costs"].([]interface{})
	assert.Len(t, lines, 1)
	line := lines[0].(map[string]interface{})
	assert.Equal(t, "Cabai Merah", line["name"])
	assert.Equal(t, "gram", line["unit"])
}

func TestRecipeCycleRejectedOnWrite(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRecipes()
	router := setupRecipeRouter(db)

	recipeA := createRecipe(t, router, map[string]interface{}{
		"name": "Resep A", "servings": 1,
	})
	recipeB := createRecipe(t, router, map[string]interface{}{
		"name": "Resep B", "servings": 1,
		"components": []map[string]interface{}{
			{"component_id": recipeA, "quantity": 2},
		},
	})

	// Menjadikan B komponen A akan membentuk siklus A -> B -> A
	payload := map[string]interface{}{
		"components": []map[string]interface{}{
			{"component_id": recipeB, "quantity": 1},
		},
	}
	payloadBytes, _ := json.Marshal(payload)
	req, err := http.NewRequest("PATCH", "/recipes/"+strconv.Itoa(recipeA), bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	// Penolakan tidak boleh menyisakan baris komponen setengah tersimpan
	var refs int64
	db.Model(&models.RecipeComponent{}).Where("recipe_id = ?", recipeA).Count(&refs)
	assert.Equal(t, int64(0), refs)
}

func TestRecipeDeleteConflict(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRecipes()
	router := setupRecipeRouter(db)

	base := createRecipe(t, router, map[string]interface{}{
		"name": "Sambal Dasar", "servings": 10,
		"ingredients": []map[string]interface{}{
			{"ingredient_id": 1, "quantity": 50},
		},
	})
	createRecipe(t, router, map[string]interface{}{
		"name": "Ayam Geprek", "servings": 1,
		"components": []map[string]interface{}{
			{"component_id": base, "quantity": 2},
		},
	})

	// Resep dasar masih dipakai sebagai komponen
	req, err := http.NewRequest("DELETE", "/recipes/"+strconv.Itoa(base), nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRecipeUnknownIngredientRejected(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRecipes()
	router := setupRecipeRouter(db)
	_ = db

	payload := map[string]interface{}{
		"name": "Resep Putus", "servings": 1,
		"ingredients": []map[string]interface{}{
			{"ingredient_id": 999, "quantity": 10},
		},
	}
	payloadBytes, _ := json.Marshal(payload)
	req, err := http.NewRequest("POST", "/recipes", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}
