package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ardiansyahpr/warungku-app/database"
	"github.com/ardiansyahpr/warungku-app/models"
	"github.com/ardiansyahpr/warungku-app/router"
	"github.com/ardiansyahpr/warungku-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Unit{},
		&models.IngredientCategory{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeComponent{},
		&models.Menu{},
		&models.MenuRecipe{},
		&models.MenuBundle{},
		&models.MenuBundleItem{},
		&models.PriceHistory{},
	)
	if err != nil {
		panic(err)
	}
	if err := database.SeedDefaultUnits(db); err != nil {
		panic(err)
	}
	return db
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// TestEndToEndCosting menguji alur utama:
// 1. Buat kategori + bahan (harga turunan ikut tersimpan)
// 2. Susun resep dasar, lalu resep lain yang memakainya sebagai komponen
// 3. Buat menu dari resep dan cek HPP/profit/margin
// 4. Buat bundle promo dan evaluasi harganya
// 5. Cek riwayat harga setelah harga bahan diubah
func TestEndToEndCosting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB()
	r := router.SetupRouter(db)

	// 1. Kategori + bahan
	w, resp := doJSON(t, r, "POST", "/admin/categories", map[string]interface{}{"name": "Bumbu"})
	assert.Equal(t, http.StatusCreated, w.Code)
	categoryID := int(resp["data"].(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, "POST", "/admin/ingredients", map[string]interface{}{
		"name":             "Cabai Merah",
		"category_id":      categoryID,
		"purchase_unit":    "kg",
		"purchase_price":   45000,
		"yield_percentage": 95,
		"usage_unit":       "gram",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ingredientData := resp["data"].(map[string]interface{})
	ingredientID := int(ingredientData["id"].(float64))

	// conversion_rate kosong terisi dari katalog satuan: kg -> gram = 1000
	assert.InDelta(t, 1000.0, ingredientData["conversion_rate"].(float64), 1e-9)
	assert.InDelta(t, 47.37, ingredientData["price_per_usage_unit"].(float64), 0.01)

	// 2. Resep dasar + resep komposit
	w, resp = doJSON(t, r, "POST", "/admin/recipes", map[string]interface{}{
		"name":     "Sambal Dasar",
		"servings": 10,
		"ingredients": []map[string]interface{}{
			{"ingredient_id": ingredientID, "quantity": 100},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	baseRecipeID := int(resp["data"].(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, "POST", "/admin/recipes", map[string]interface{}{
		"name":     "Ayam Geprek",
		"servings": 1,
		"components": []map[string]interface{}{
			{"component_id": baseRecipeID, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	geprekID := int(resp["data"].(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, "GET", "/recipes/"+strconv.Itoa(geprekID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cost := resp["data"].(map[string]interface{})["cost"].(map[string]interface{})
	// 2 porsi sambal: 2 x (4.736,84 / 10) ~ 947,37
	assert.InDelta(t, 947.37, cost["total_cost"].(float64), 0.01)

	// 3. Menu + HPP
	w, resp = doJSON(t, r, "POST", "/admin/menus", map[string]interface{}{
		"name":          "Geprek Komplit",
		"selling_price": 12000,
		"recipes": []map[string]interface{}{
			{"recipe_id": geprekID, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	menuID := int(resp["data"].(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, "GET", "/menus/"+strconv.Itoa(menuID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	menuData := resp["data"].(map[string]interface{})
	assert.InDelta(t, 947.37, menuData["hpp"].(float64), 0.01)
	assert.InDelta(t, 12000-947.37, menuData["profit"].(float64), 0.01)

	// 4. Bundle promo
	w, resp = doJSON(t, r, "POST", "/admin/bundles", map[string]interface{}{
		"name":           "Promo Geprek 20%",
		"promotion_type": "PERCENTAGE",
		"discount_value": 20,
		"items": []map[string]interface{}{
			{"menu_id": menuID, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bundleID := int(resp["data"].(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, "GET", "/bundles/"+strconv.Itoa(bundleID)+"/evaluate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	eval := resp["data"].(map[string]interface{})
	assert.InDelta(t, 24000.0, eval["original_price"].(float64), 1e-9)
	assert.InDelta(t, 4800.0, eval["discount"].(float64), 1e-9)
	assert.InDelta(t, 19200.0, eval["final_price"].(float64), 1e-9)
	assert.Len(t, eval["suggested_prices"].([]interface{}), 5)

	// 5. Riwayat harga setelah update harga bahan
	w, _ = doJSON(t, r, "PATCH", "/admin/ingredients/"+strconv.Itoa(ingredientID), map[string]interface{}{
		"purchase_price": 50000,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, "GET", "/ingredients/"+strconv.Itoa(ingredientID)+"/price-history", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	historyData := resp["data"].(map[string]interface{})
	records := historyData["records"].([]interface{})
	assert.Len(t, records, 2)
	summary := historyData["summary"].(map[string]interface{})
	assert.Equal(t, "naik", summary["direction"])
	assert.InDelta(t, 5000.0, summary["change"].(float64), 1e-9)
}
