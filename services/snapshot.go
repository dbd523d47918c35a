package services

import (
	"github.com/ardiansyahpr/warungku-app/models"
	"gorm.io/gorm"
)

// CostSnapshot adalah potret katalog yang dipakai satu evaluasi biaya.
// Semua lookup dilakukan lewat index map agar graf resep bisa dirangkai
// dari record datar tanpa referensi objek melingkar.
type CostSnapshot struct {
	Units       []models.Unit
	Ingredients map[uint]models.Ingredient
	Recipes     map[uint]models.Recipe
	Menus       map[uint]models.Menu
}

// LoadCostSnapshot membaca seluruh katalog sekali di awal evaluasi supaya
// perhitungan tidak pernah melihat data setengah ter-update di tengah jalan.
func LoadCostSnapshot(db *gorm.DB) (*CostSnapshot, error) {
	snapshot := &CostSnapshot{
		Ingredients: make(map[uint]models.Ingredient),
		Recipes:     make(map[uint]models.Recipe),
		Menus:       make(map[uint]models.Menu),
	}

	if err := db.Find(&snapshot.Units).Error; err != nil {
		return nil, err
	}

	var ingredients []models.Ingredient
	if err := db.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	for _, ing := range ingredients {
		snapshot.Ingredients[ing.ID] = ing
	}

	var recipes []models.Recipe
	if err := db.Preload("Ingredients").Preload("Components").Find(&recipes).Error; err != nil {
		return nil, err
	}
	for _, r := range recipes {
		snapshot.Recipes[r.ID] = r
	}

	var menus []models.Menu
	if err := db.Preload("Recipes").Find(&menus).Error; err != nil {
		return nil, err
	}
	for _, m := range menus {
		snapshot.Menus[m.ID] = m
	}

	return snapshot, nil
}
