package services

import (
	"testing"

	"github.com/ardiansyahpr/warungku-app/models"
	"github.com/stretchr/testify/assert"
)

func testUnits() []models.Unit {
	return []models.Unit{
		{Symbol: "gram", Group: models.UnitGroupMass, BaseValue: 1, IsBaseUnit: true, IsUsageUnit: true},
		{Symbol: "kg", Group: models.UnitGroupMass, BaseValue: 1000, IsPurchaseUnit: true},
		{Symbol: "ons", Group: models.UnitGroupMass, BaseValue: 100, IsPurchaseUnit: true, IsUsageUnit: true},
		{Symbol: "karung", Group: models.UnitGroupMass, BaseValue: 25000, IsPurchaseUnit: true},
		{Symbol: "ml", Group: models.UnitGroupVolume, BaseValue: 1, IsBaseUnit: true, IsUsageUnit: true},
		{Symbol: "liter", Group: models.UnitGroupVolume, BaseValue: 1000, IsPurchaseUnit: true},
		{Symbol: "botol", Group: models.UnitGroupVolume, BaseValue: 600, IsPurchaseUnit: true},
		{Symbol: "pcs", Group: models.UnitGroupCount, BaseValue: 1, IsBaseUnit: true, IsPurchaseUnit: true, IsUsageUnit: true},
	}
}

func TestCompatibleUsageUnits(t *testing.T) {
	catalog := NewUnitCatalog(testUnits(), DefaultContainerRules())

	// Satuan beli massa hanya boleh dipasangkan dengan satuan pemakaian massa
	compatible := catalog.CompatibleUsageUnits("kg")
	symbols := make([]string, 0, len(compatible))
	for _, u := range compatible {
		symbols = append(symbols, u.Symbol)
	}
	assert.ElementsMatch(t, []string{"gram", "ons"}, symbols)

	// Satuan custom yang tidak dikenal: fallback ke seluruh satuan pemakaian
	all := catalog.CompatibleUsageUnits("renteng")
	assert.Len(t, all, 4)
}

func TestDefaultConversionRateBaseline(t *testing.T) {
	catalog := NewUnitCatalog(testUnits(), DefaultContainerRules())

	assert.Equal(t, 1000.0, catalog.DefaultConversionRate("kg", "gram", 0))
	assert.Equal(t, 100.0, catalog.DefaultConversionRate("ons", "gram", 0))
	assert.Equal(t, 1000.0, catalog.DefaultConversionRate("liter", "ml", 0))
	assert.Equal(t, 10.0, catalog.DefaultConversionRate("kg", "ons", 0))
}

func TestDefaultConversionRateContainerOverride(t *testing.T) {
	catalog := NewUnitCatalog(testUnits(), DefaultContainerRules())

	// Botol: isi bersih datang dari package size, bukan base value
	assert.Equal(t, 600.0, catalog.DefaultConversionRate("botol", "ml", 600))
	assert.Equal(t, 1500.0, catalog.DefaultConversionRate("botol", "ml", 1500))

	// Karung dideklarasikan dalam kilogram, dikonversi ke skala gram
	assert.Equal(t, 25000.0, catalog.DefaultConversionRate("karung", "gram", 25))

	// Tanpa package size, wadah jatuh ke rasio base value
	assert.Equal(t, 600.0, catalog.DefaultConversionRate("botol", "ml", 0))
}

func TestDefaultConversionRateFallback(t *testing.T) {
	catalog := NewUnitCatalog(testUnits(), DefaultContainerRules())

	// Lintas grup: pakai package size yang dideklarasikan pemanggil
	assert.Equal(t, 250.0, catalog.DefaultConversionRate("pcs", "gram", 250))

	// Satuan tidak dikenal: idem
	assert.Equal(t, 50.0, catalog.DefaultConversionRate("renteng", "gram", 50))
	assert.Equal(t, 50.0, catalog.DefaultConversionRate("kg", "keping", 50))
}
