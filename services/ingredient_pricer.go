package services

import "github.com/ardiansyahpr/warungku-app/models"

// PricePerUsageUnit menurunkan harga efektif per satuan pemakaian.
// Yield di bawah 100% berarti tidak seluruh pembelian menjadi output yang
// bisa dipakai, sehingga kuantitas terpakai lebih kecil dari konversi
// nominal dan harga efektif per satuan naik.
func PricePerUsageUnit(purchasePrice, conversionRate, yieldPercentage float64) float64 {
	if conversionRate <= 0 {
		return 0
	}

	yieldFactor := clampYield(yieldPercentage) / 100
	effectiveConversion := conversionRate * yieldFactor

	return purchasePrice / effectiveConversion
}

// IngredientPrice adalah PricePerUsageUnit untuk satu record bahan.
func IngredientPrice(ing models.Ingredient) float64 {
	return PricePerUsageUnit(ing.PurchasePrice, ing.ConversionRate, ing.YieldPercentage)
}

func clampYield(pct float64) float64 {
	if pct < 1 {
		return 1
	}
	if pct > 100 {
		return 100
	}
	return pct
}
