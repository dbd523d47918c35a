package router

import (
	"github.com/ardiansyahpr/warungku-app/controllers"
	"github.com/ardiansyahpr/warungku-app/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	unitCtrl := controllers.NewUnitController(db)
	categoryCtrl := controllers.NewIngredientCategoryController(db)
	ingredientCtrl := controllers.NewIngredientController(db)
	recipeCtrl := controllers.NewRecipeController(db)
	menuCtrl := controllers.NewMenuController(db)
	bundleCtrl := controllers.NewBundleController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES (read only)
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Katalog satuan
	r.GET("/units", unitCtrl.GetAllUnits)
	r.GET("/units/compatible-units", unitCtrl.GetCompatibleUnits)
	r.GET("/units/convert", unitCtrl.PreviewConversionRate)
	r.GET("/units/:unit_id", unitCtrl.GetUnitByID)

	// Kategori dan bahan
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/ingredients", ingredientCtrl.GetAllIngredients)
	r.GET("/ingredients/:ingredient_id", ingredientCtrl.GetIngredientByID)
	r.GET("/ingredients/:ingredient_id/price-history", ingredientCtrl.GetPriceHistory)

	// Resep beserta rincian biayanya
	r.GET("/recipes", recipeCtrl.GetAllRecipes)
	r.GET("/recipes/:recipe_id", recipeCtrl.GetRecipeByID)

	// Menu beserta HPP-nya
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

	// Bundle promo dan evaluasinya
	r.GET("/bundles", bundleCtrl.GetAllBundles)
	r.GET("/bundles/:bundle_id", bundleCtrl.GetBundleByID)
	r.GET("/bundles/:bundle_id/evaluate", bundleCtrl.EvaluateBundleByID)
	r.POST("/bundles/evaluate", bundleCtrl.EvaluateBundle)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES (mutasi katalog)
	// ----------------------------------------------------------------
	// Autentikasi ditangani kolaborator eksternal; grup ini tempat
	// middleware-nya dipasang.
	admin := r.Group("/admin")
	admin.Use(middlewares.NewStrictRateLimiter())

	admin.POST("/units", unitCtrl.CreateUnit)
	admin.PATCH("/units/:unit_id", unitCtrl.UpdateUnit)
	admin.DELETE("/units/:unit_id", unitCtrl.DeleteUnit)

	admin.POST("/categories", categoryCtrl.CreateCategory)
	admin.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
	admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

	admin.POST("/ingredients", ingredientCtrl.CreateIngredient)
	admin.PATCH("/ingredients/:ingredient_id", ingredientCtrl.UpdateIngredient)
	admin.DELETE("/ingredients/:ingredient_id", ingredientCtrl.DeleteIngredient)

	admin.POST("/recipes", recipeCtrl.CreateRecipe)
	admin.PATCH("/recipes/:recipe_id", recipeCtrl.UpdateRecipe)
	admin.DELETE("/recipes/:recipe_id", recipeCtrl.DeleteRecipe)

	admin.POST("/menus", menuCtrl.CreateMenu)
	admin.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

	admin.POST("/bundles", bundleCtrl.CreateBundle)
	admin.PATCH("/bundles/:bundle_id", bundleCtrl.UpdateBundle)
	admin.DELETE("/bundles/:bundle_id", bundleCtrl.DeleteBundle)

	return r
}
