package services

import (
	"github.com/ardiansyahpr/warungku-app/models"
)

// ContainerRule mendeskripsikan satuan beli "wadah" (botol, karung, dst.)
// yang isi bersihnya dinyatakan lewat package size, bukan dari base value.
// Scale dipakai saat ukuran wadah dideklarasikan dalam sub-unit yang lebih
// besar, mis. karung dalam kilogram dikonversi ke satuan skala gram.
type ContainerRule struct {
	Symbol string
	Scale  float64
}

// DefaultContainerRules mengembalikan tabel override bawaan.
// Menambah jenis wadah baru cukup menambah baris di sini (atau lewat
// konfigurasi pemanggil), bukan menambah cabang kondisi.
func DefaultContainerRules() []ContainerRule {
	return []ContainerRule{
		{Symbol: "botol", Scale: 1},
		{Symbol: "karung", Scale: 1000},
	}
}

// UnitCatalog menjawab kompatibilitas antar satuan dan rasio konversinya.
// Dibangun dari snapshot []models.Unit, tanpa I/O.
type UnitCatalog struct {
	units     []models.Unit
	bySymbol  map[string]models.Unit
	overrides map[string]float64
}

func NewUnitCatalog(units []models.Unit, rules []ContainerRule) *UnitCatalog {
	catalog := &UnitCatalog{
		units:     units,
		bySymbol:  make(map[string]models.Unit, len(units)),
		overrides: make(map[string]float64, len(rules)),
	}
	for _, u := range units {
		catalog.bySymbol[u.Symbol] = u
	}
	for _, r := range rules {
		catalog.overrides[r.Symbol] = r.Scale
	}
	return catalog
}

// CompatibleUsageUnits mengembalikan semua satuan pemakaian yang segrup
// dengan satuan beli. Satuan beli yang tidak dikenal (satuan custom bebas)
// mengembalikan seluruh satuan pemakaian, bukan error.
func (uc *UnitCatalog) CompatibleUsageUnits(purchaseSymbol string) []models.Unit {
	purchase, known := uc.bySymbol[purchaseSymbol]

	var result []models.Unit
	for _, u := range uc.units {
		if !u.IsUsageUnit {
			continue
		}
		if !known || u.Group == purchase.Group {
			result = append(result, u)
		}
	}
	return result
}

// DefaultConversionRate menurunkan rate konversi default dari satuan beli
// ke satuan pemakaian. packageSize adalah isi bersih yang dideklarasikan
// pemanggil dan menjadi jawaban terbaik saat konversi lintas grup tidak
// bisa dihitung dari base value.
func (uc *UnitCatalog) DefaultConversionRate(fromSymbol, toSymbol string, packageSize float64) float64 {
	from, fromKnown := uc.bySymbol[fromSymbol]
	to, toKnown := uc.bySymbol[toSymbol]

	if !fromKnown || !toKnown || from.Group != to.Group {
		return packageSize
	}
	if to.BaseValue <= 0 {
		return packageSize
	}

	rate := from.BaseValue / to.BaseValue

	// Satuan wadah: isi sebenarnya datang dari package size.
	if scale, ok := uc.overrides[from.Symbol]; ok && packageSize > 0 {
		rate = packageSize * scale / to.BaseValue
	}
	return rate
}
