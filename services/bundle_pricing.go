package services

import (
	"time"

	"github.com/ardiansyahpr/warungku-app/models"
)

// Target margin untuk tangga harga saran.
var suggestedMargins = []float64{30, 40, 50, 60, 70}

// BundleItemInput adalah satu baris menu dalam evaluasi bundle.
// IsFree ditentukan pemanggil, engine tidak menebak item mana yang gratis.
type BundleItemInput struct {
	Menu     models.Menu
	Quantity int
	IsFree   bool
}

// SuggestedPrice adalah satu anak tangga harga saran pada margin target.
type SuggestedPrice struct {
	Margin float64 `json:"margin"`
	Price  float64 `json:"price"`
	Profit float64 `json:"profit"`
}

// BundleEvaluation adalah hasil lengkap evaluasi satu bundle promo.
type BundleEvaluation struct {
	OriginalPrice   float64          `json:"original_price"`
	Discount        float64          `json:"discount"`
	FinalPrice      float64          `json:"final_price"`
	TotalHPP        float64          `json:"total_hpp"`
	Profit          float64          `json:"profit"`
	ProfitMargin    float64          `json:"profit_margin"`
	SuggestedPrices []SuggestedPrice `json:"suggested_prices"`
	IsExpired       bool             `json:"is_expired"`
}

// BundlePricingEngine mengevaluasi lima jenis promo bundle di atas
// agregator HPP menu.
type BundlePricingEngine struct {
	aggregator *MenuCostAggregator
}

func NewBundlePricingEngine(aggregator *MenuCostAggregator) *BundlePricingEngine {
	return &BundlePricingEngine{aggregator: aggregator}
}

// ValidatePromotion memastikan kombinasi jenis promo dan parameternya sah.
// Parameter nyasar di jenis promo yang tidak memakainya ditolak, bukan
// diabaikan diam-diam.
func ValidatePromotion(promo models.PromotionType, discountValue, bundlePrice float64) error {
	if !promo.Valid() {
		return NewValidationError("jenis promo %q tidak dikenal", string(promo))
	}

	switch promo {
	case models.PromoPercentage:
		if discountValue <= 0 || discountValue > 100 {
			return NewValidationError("promo PERCENTAGE butuh discount_value di rentang (0, 100]")
		}
		if bundlePrice != 0 {
			return NewValidationError("bundle_price tidak berlaku untuk promo PERCENTAGE")
		}
	case models.PromoDiscount:
		if discountValue <= 0 {
			return NewValidationError("promo DISCOUNT butuh discount_value lebih dari 0")
		}
		if bundlePrice != 0 {
			return NewValidationError("bundle_price tidak berlaku untuk promo DISCOUNT")
		}
	case models.PromoFixedPrice:
		if bundlePrice <= 0 {
			return NewValidationError("promo FIXED_PRICE butuh bundle_price lebih dari 0")
		}
		if discountValue != 0 {
			return NewValidationError("discount_value tidak berlaku untuk promo FIXED_PRICE")
		}
	default:
		// BUY1GET1 / BUY2GET1 hanya bergantung pada flag is_free per item.
		if discountValue != 0 || bundlePrice != 0 {
			return NewValidationError("promo %s tidak memakai discount_value maupun bundle_price", string(promo))
		}
	}
	return nil
}

// Evaluate menghitung harga asli, diskon, harga akhir, total HPP, profit,
// margin, dan tangga harga saran sebuah bundle. Bundle kedaluwarsa tetap
// dihitung normal (flag informasi saja) agar evaluasi historis tetap bisa.
func (e *BundlePricingEngine) Evaluate(
	items []BundleItemInput,
	promo models.PromotionType,
	discountValue, bundlePrice float64,
	validUntil *time.Time,
	now time.Time,
) (*BundleEvaluation, error) {
	if err := ValidatePromotion(promo, discountValue, bundlePrice); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, NewValidationError("bundle minimal berisi satu item menu")
	}

	var originalPrice, freeValue, totalHPP float64
	for _, item := range items {
		if item.Quantity < 0 {
			return nil, NewValidationError("quantity item bundle tidak boleh negatif")
		}

		qty := float64(item.Quantity)
		// Item gratis tetap masuk harga referensi sebelum diskon dan tetap
		// menanggung HPP: biayanya terjadi walau dijual nol rupiah.
		originalPrice += item.Menu.SellingPrice * qty
		if item.IsFree {
			freeValue += item.Menu.SellingPrice * qty
		}

		hpp, err := e.aggregator.MenuHPP(item.Menu)
		if err != nil {
			return nil, err
		}
		totalHPP += hpp * qty
	}

	eval := &BundleEvaluation{
		OriginalPrice: originalPrice,
		TotalHPP:      totalHPP,
	}

	switch promo {
	case models.PromoBuyOneGetOne, models.PromoBuyTwoGetOne:
		eval.Discount = freeValue
		eval.FinalPrice = originalPrice - freeValue
	case models.PromoPercentage:
		eval.Discount = originalPrice * discountValue / 100
		eval.FinalPrice = originalPrice - eval.Discount
	case models.PromoDiscount:
		eval.Discount = discountValue
		if eval.Discount > originalPrice {
			eval.Discount = originalPrice
		}
		eval.FinalPrice = originalPrice - eval.Discount
	case models.PromoFixedPrice:
		eval.FinalPrice = bundlePrice
		if originalPrice > bundlePrice {
			eval.Discount = originalPrice - bundlePrice
		}
	}

	eval.Profit = eval.FinalPrice - totalHPP
	if eval.FinalPrice > 0 {
		eval.ProfitMargin = eval.Profit / eval.FinalPrice * 100
	}

	for _, margin := range suggestedMargins {
		price := totalHPP / (1 - margin/100)
		eval.SuggestedPrices = append(eval.SuggestedPrices, SuggestedPrice{
			Margin: margin,
			Price:  price,
			Profit: price - totalHPP,
		})
	}

	eval.IsExpired = validUntil != nil && validUntil.Before(now)

	return eval, nil
}

// EvaluateBundle mengevaluasi record MenuBundle tersimpan terhadap snapshot.
func (e *BundlePricingEngine) EvaluateBundle(snapshot *CostSnapshot, bundle models.MenuBundle, now time.Time) (*BundleEvaluation, error) {
	items := make([]BundleItemInput, 0, len(bundle.Items))
	for _, item := range bundle.Items {
		menu, ok := snapshot.Menus[item.MenuID]
		if !ok {
			return nil, &ReferentialIntegrityError{Entity: "menu", ID: item.MenuID}
		}
		items = append(items, BundleItemInput{
			Menu:     menu,
			Quantity: item.Quantity,
			IsFree:   item.IsFree,
		})
	}
	return e.Evaluate(items, bundle.PromotionType, bundle.DiscountValue, bundle.BundlePrice, bundle.ValidUntil, now)
}
