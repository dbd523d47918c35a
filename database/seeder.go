package database

import (
	"github.com/ardiansyahpr/warungku-app/models"
	"github.com/ardiansyahpr/warungku-app/utils"
	"gorm.io/gorm"
)

// SeedDefaultUnits mengisi katalog satuan bawaan saat startup.
// Satuan yang sudah ada (berdasarkan symbol) tidak ditimpa supaya
// penyesuaian pengguna tidak hilang saat aplikasi restart.
func SeedDefaultUnits(db *gorm.DB) error {
	defaults := []models.Unit{
		{Symbol: "gram", Label: "Gram", Group: models.UnitGroupMass, BaseValue: 1, IsBaseUnit: true, IsUsageUnit: true},
		{Symbol: "kg", Label: "Kilogram", Group: models.UnitGroupMass, BaseValue: 1000, IsPurchaseUnit: true},
		{Symbol: "ons", Label: "Ons", Group: models.UnitGroupMass, BaseValue: 100, IsPurchaseUnit: true, IsUsageUnit: true},
		{Symbol: "karung", Label: "Karung", Group: models.UnitGroupMass, BaseValue: 25000, IsPurchaseUnit: true},
		{Symbol: "ml", Label: "Mililiter", Group: models.UnitGroupVolume, BaseValue: 1, IsBaseUnit: true, IsUsageUnit: true},
		{Symbol: "liter", Label: "Liter", Group: models.UnitGroupVolume, BaseValue: 1000, IsPurchaseUnit: true},
		{Symbol: "botol", Label: "Botol", Group: models.UnitGroupVolume, BaseValue: 600, IsPurchaseUnit: true},
		{Symbol: "pcs", Label: "Pcs", Group: models.UnitGroupCount, BaseValue: 1, IsBaseUnit: true, IsPurchaseUnit: true, IsUsageUnit: true},
		{Symbol: "lusin", Label: "Lusin", Group: models.UnitGroupCount, BaseValue: 12, IsPurchaseUnit: true},
		{Symbol: "pack", Label: "Pack", Group: models.UnitGroupCount, BaseValue: 1, IsPurchaseUnit: true},
		{Symbol: "ikat", Label: "Ikat", Group: models.UnitGroupCount, BaseValue: 1, IsPurchaseUnit: true},
	}

	for _, unit := range defaults {
		var existing models.Unit
		err := db.Where("symbol = ?", unit.Symbol).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := db.Create(&unit).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded unit %s (%s)", unit.Symbol, unit.Group)
	}

	return nil
}
