package services

// IngredientCostLine adalah rincian biaya satu baris bahan dalam resep.
type IngredientCostLine struct {
	IngredientID uint    `json:"ingredient_id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	Subtotal     float64 `json:"subtotal"`
}

// ComponentCostLine adalah rincian biaya satu sub-resep dalam resep.
type ComponentCostLine struct {
	ComponentID    uint    `json:"component_id"`
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	CostPerServing float64 `json:"cost_per_serving"`
	Subtotal       float64 `json:"subtotal"`
}

// RecipeCost adalah hasil agregasi biaya satu resep lengkap dengan rincian
// per baris. Angka agregat saja tidak cukup untuk kebutuhan audit.
type RecipeCost struct {
	RecipeID        uint                 `json:"recipe_id"`
	Name            string               `json:"name"`
	Servings        int                  `json:"servings"`
	TotalCost       float64              `json:"total_cost"`
	CostPerServing  float64              `json:"cost_per_serving"`
	IngredientCosts []IngredientCostLine `json:"ingredient_costs"`
	ComponentCosts  []ComponentCostLine  `json:"component_costs"`
}

// RecipeCostGraph menghitung biaya resep secara rekursif di atas satu
// CostSnapshot. Set visiting bersifat lokal per jalur panggilan: resep yang
// sama boleh muncul di cabang-cabang berbeda dalam satu evaluasi, yang
// ditolak hanya pemakaian ulang di sepanjang jalur aktif.
type RecipeCostGraph struct {
	snapshot *CostSnapshot
	visiting map[uint]bool
	path     []string
}

func NewRecipeCostGraph(snapshot *CostSnapshot) *RecipeCostGraph {
	return &RecipeCostGraph{
		snapshot: snapshot,
		visiting: make(map[uint]bool),
	}
}

// CostOf menghitung total biaya dan biaya per porsi sebuah resep.
// Mengembalikan CyclicCompositionError bila komposisi membentuk siklus dan
// ReferentialIntegrityError bila ada baris yang menunjuk record hilang.
// Evaluasi yang gagal tidak pernah mengembalikan hasil parsial.
func (g *RecipeCostGraph) CostOf(recipeID uint) (*RecipeCost, error) {
	recipe, ok := g.snapshot.Recipes[recipeID]
	if !ok {
		return nil, &ReferentialIntegrityError{Entity: "resep", ID: recipeID}
	}

	if g.visiting[recipeID] {
		cycle := append(append([]string{}, g.path...), recipe.Name)
		return nil, &CyclicCompositionError{Path: cycle}
	}

	if recipe.Servings < 1 {
		return nil, NewValidationError("resep %q punya servings %d, minimal 1", recipe.Name, recipe.Servings)
	}

	g.visiting[recipeID] = true
	g.path = append(g.path, recipe.Name)
	defer func() {
		delete(g.visiting, recipeID)
		g.path = g.path[:len(g.path)-1]
	}()

	cost := &RecipeCost{
		RecipeID: recipe.ID,
		Name:     recipe.Name,
		Servings: recipe.Servings,
	}

	for _, line := range recipe.Ingredients {
		if line.Quantity < 0 {
			return nil, NewValidationError("quantity bahan negatif pada resep %q", recipe.Name)
		}

		ing, ok := g.snapshot.Ingredients[line.IngredientID]
		if !ok {
			return nil, &ReferentialIntegrityError{Entity: "bahan", ID: line.IngredientID}
		}

		pricePerUnit := IngredientPrice(ing)
		subtotal := line.Quantity * pricePerUnit

		cost.IngredientCosts = append(cost.IngredientCosts, IngredientCostLine{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Quantity:     line.Quantity,
			Unit:         ing.UsageUnit,
			PricePerUnit: pricePerUnit,
			Subtotal:     subtotal,
		})
		cost.TotalCost += subtotal
	}

	for _, line := range recipe.Components {
		if line.Quantity < 0 {
			return nil, NewValidationError("quantity komponen negatif pada resep %q", recipe.Name)
		}

		sub, err := g.CostOf(line.ComponentID)
		if err != nil {
			return nil, err
		}

		subtotal := line.Quantity * sub.CostPerServing
		cost.ComponentCosts = append(cost.ComponentCosts, ComponentCostLine{
			ComponentID:    sub.RecipeID,
			Name:           sub.Name,
			Quantity:       line.Quantity,
			Unit:           "porsi",
			CostPerServing: sub.CostPerServing,
			Subtotal:       subtotal,
		})
		cost.TotalCost += subtotal
	}

	// Pembulatan untuk tampilan dilakukan di lapisan penyajian, bukan di sini.
	cost.CostPerServing = cost.TotalCost / float64(recipe.Servings)

	return cost, nil
}
