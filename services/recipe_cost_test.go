package services

import (
	"testing"

	"github.com/ardiansyahpr/warungku-app/models"
	"github.com/stretchr/testify/assert"
)

func testSnapshot() *CostSnapshot {
	snapshot := &CostSnapshot{
		Ingredients: make(map[uint]models.Ingredient),
		Recipes:     make(map[uint]models.Recipe),
		Menus:       make(map[uint]models.Menu),
	}

	// Cabai merah: 47.37 per gram setelah yield
	snapshot.Ingredients[1] = models.Ingredient{
		ID: 1, Name: "Cabai Merah", PurchasePrice: 45000,
		ConversionRate: 1000, YieldPercentage: 95, UsageUnit: "gram",
	}
	// Minyak goreng: 20.000 per liter -> 20 per ml
	snapshot.Ingredients[2] = models.Ingredient{
		ID: 2, Name: "Minyak Goreng", PurchasePrice: 20000,
		ConversionRate: 1000, YieldPercentage: 100, UsageUnit: "ml",
	}

	// Sambal dasar: 100 gram cabai + 50 ml minyak, 10 porsi
	snapshot.Recipes[10] = models.Recipe{
		ID: 10, Name: "Sambal Dasar", Servings: 10,
		Ingredients: []models.RecipeIngredient{
			{IngredientID: 1, Quantity: 100},
			{IngredientID: 2, Quantity: 50},
		},
	}
	// Ayam geprek: 2 porsi sambal sebagai komponen
	snapshot.Recipes[11] = models.Recipe{
		ID: 11, Name: "Ayam Geprek", Servings: 1,
		Components: []models.RecipeComponent{
			{ComponentID: 10, Quantity: 2},
		},
	}
	return snapshot
}

func TestCostOfSimpleRecipe(t *testing.T) {
	graph := NewRecipeCostGraph(testSnapshot())

	cost, err := graph.CostOf(10)
	assert.NoError(t, err)

	// 100 gram cabai ~ 4.737 + 50 ml minyak = 1.000
	expectedTotal := 100*(45000.0/(1000*0.95)) + 50*20
	assert.InDelta(t, expectedTotal, cost.TotalCost, 0.01)
	assert.InDelta(t, expectedTotal/10, cost.CostPerServing, 0.01)
	assert.InDelta(t, cost.CostPerServing*float64(cost.Servings), cost.TotalCost, 1e-9)

	assert.Len(t, cost.IngredientCosts, 2)
	assert.Equal(t, "Cabai Merah", cost.IngredientCosts[0].Name)
	assert.Equal(t, "gram", cost.IngredientCosts[0].Unit)
	assert.InDelta(t, 4736.84, cost.IngredientCosts[0].Subtotal, 0.01)
}

func TestCostOfNestedRecipe(t *testing.T) {
	snapshot := testSnapshot()
	graph := NewRecipeCostGraph(snapshot)

	base, err := graph.CostOf(10)
	assert.NoError(t, err)

	nested, err := graph.CostOf(11)
	assert.NoError(t, err)

	assert.InDelta(t, 2*base.CostPerServing, nested.TotalCost, 1e-9)
	assert.Len(t, nested.ComponentCosts, 1)
	assert.Equal(t, "Sambal Dasar", nested.ComponentCosts[0].Name)
	assert.Equal(t, "porsi", nested.ComponentCosts[0].Unit)
	assert.InDelta(t, base.CostPerServing, nested.ComponentCosts[0].CostPerServing, 1e-9)
}

func TestCostOfSharedComponentInParallelBranches(t *testing.T) {
	snapshot := testSnapshot()
	// Paket nasi: dua cabang berbeda sama-sama memakai sambal dasar.
	// Sah karena pemakaian ulang tidak berada di satu jalur aktif.
	snapshot.Recipes[12] = models.Recipe{
		ID: 12, Name: "Lauk A", Servings: 1,
		Components: []models.RecipeComponent{{ComponentID: 10, Quantity: 1}},
	}
	snapshot.Recipes[13] = models.Recipe{
		ID: 13, Name: "Paket", Servings: 1,
		Components: []models.RecipeComponent{
			{ComponentID: 11, Quantity: 1},
			{ComponentID: 12, Quantity: 1},
		},
	}

	graph := NewRecipeCostGraph(snapshot)
	cost, err := graph.CostOf(13)
	assert.NoError(t, err)
	assert.Greater(t, cost.TotalCost, 0.0)
}

func TestCostOfCycleRejected(t *testing.T) {
	snapshot := testSnapshot()
	// A memakai B, B memakai A
	snapshot.Recipes[20] = models.Recipe{
		ID: 20, Name: "Resep A", Servings: 1,
		Components: []models.RecipeComponent{{ComponentID: 21, Quantity: 2}},
	}
	snapshot.Recipes[21] = models.Recipe{
		ID: 21, Name: "Resep B", Servings: 1,
		Components: []models.RecipeComponent{{ComponentID: 20, Quantity: 1}},
	}

	for _, id := range []uint{20, 21} {
		graph := NewRecipeCostGraph(snapshot)
		cost, err := graph.CostOf(id)
		assert.Nil(t, cost)

		var cycleErr *CyclicCompositionError
		assert.ErrorAs(t, err, &cycleErr)
		assert.NotEmpty(t, cycleErr.Path)
	}
}

func TestCostOfSelfReferenceRejected(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Recipes[30] = models.Recipe{
		ID: 30, Name: "Resep Rakus", Servings: 1,
		Components: []models.RecipeComponent{{ComponentID: 30, Quantity: 1}},
	}

	graph := NewRecipeCostGraph(snapshot)
	_, err := graph.CostOf(30)

	var cycleErr *CyclicCompositionError
	assert.ErrorAs(t, err, &cycleErr)
}

func TestCostOfDanglingReferences(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Recipes[40] = models.Recipe{
		ID: 40, Name: "Resep Putus", Servings: 1,
		Ingredients: []models.RecipeIngredient{{IngredientID: 999, Quantity: 10}},
	}

	graph := NewRecipeCostGraph(snapshot)
	_, err := graph.CostOf(40)

	var refErr *ReferentialIntegrityError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, uint(999), refErr.ID)

	// Resep yang tidak ada di snapshot juga referensi putus
	_, err = graph.CostOf(777)
	assert.ErrorAs(t, err, &refErr)
}

func TestCostOfZeroQuantityContributesZero(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Recipes[50] = models.Recipe{
		ID: 50, Name: "Resep Kosong", Servings: 2,
		Ingredients: []models.RecipeIngredient{{IngredientID: 1, Quantity: 0}},
	}

	graph := NewRecipeCostGraph(snapshot)
	cost, err := graph.CostOf(50)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, cost.TotalCost)
	assert.Equal(t, 0.0, cost.CostPerServing)
}

func TestCostOfInvalidServings(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Recipes[60] = models.Recipe{ID: 60, Name: "Tanpa Porsi", Servings: 0}

	graph := NewRecipeCostGraph(snapshot)
	_, err := graph.CostOf(60)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestMenuCostAggregator(t *testing.T) {
	snapshot := testSnapshot()
	graph := NewRecipeCostGraph(snapshot)
	aggregator := NewMenuCostAggregator(graph)

	base, err := graph.CostOf(10)
	assert.NoError(t, err)

	menu := models.Menu{
		ID: 1, Name: "Geprek Komplit", SellingPrice: 15000,
		Recipes: []models.MenuRecipe{
			{RecipeID: 11, Quantity: 1},
			{RecipeID: 10, Quantity: 0.5},
		},
	}

	cost, err := aggregator.CostOf(menu)
	assert.NoError(t, err)

	expectedHPP := 2*base.CostPerServing + 0.5*base.CostPerServing
	assert.InDelta(t, expectedHPP, cost.HPP, 1e-9)
	assert.InDelta(t, 15000-expectedHPP, cost.Profit, 1e-9)
	assert.InDelta(t, (15000-expectedHPP)/15000*100, cost.Margin, 1e-9)
}

func TestMenuCostZeroSellingPrice(t *testing.T) {
	aggregator := NewMenuCostAggregator(NewRecipeCostGraph(testSnapshot()))

	menu := models.Menu{ID: 2, Name: "Gratis", SellingPrice: 0,
		Recipes: []models.MenuRecipe{{RecipeID: 10, Quantity: 1}}}

	cost, err := aggregator.CostOf(menu)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, cost.Margin)
	assert.Less(t, cost.Profit, 0.0)
}
