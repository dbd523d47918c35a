package services

import "github.com/ardiansyahpr/warungku-app/models"

// MenuCost adalah HPP menu beserta perbandingannya dengan harga jual.
type MenuCost struct {
	MenuID       uint    `json:"menu_id"`
	Name         string  `json:"name"`
	SellingPrice float64 `json:"selling_price"`
	HPP          float64 `json:"hpp"`
	Profit       float64 `json:"profit"`
	Margin       float64 `json:"margin"`
}

// MenuCostAggregator menjumlahkan cost-per-serving resep penyusun menu.
type MenuCostAggregator struct {
	graph *RecipeCostGraph
}

func NewMenuCostAggregator(graph *RecipeCostGraph) *MenuCostAggregator {
	return &MenuCostAggregator{graph: graph}
}

// MenuHPP menghitung HPP satu porsi menu.
func (a *MenuCostAggregator) MenuHPP(menu models.Menu) (float64, error) {
	var hpp float64
	for _, line := range menu.Recipes {
		if line.Quantity < 0 {
			return 0, NewValidationError("quantity resep negatif pada menu %q", menu.Name)
		}

		cost, err := a.graph.CostOf(line.RecipeID)
		if err != nil {
			return 0, err
		}
		hpp += line.Quantity * cost.CostPerServing
	}
	return hpp, nil
}

// CostOf menghasilkan HPP, profit, dan margin menu terhadap harga jualnya.
func (a *MenuCostAggregator) CostOf(menu models.Menu) (*MenuCost, error) {
	hpp, err := a.MenuHPP(menu)
	if err != nil {
		return nil, err
	}

	profit := menu.SellingPrice - hpp
	margin := 0.0
	if menu.SellingPrice > 0 {
		margin = profit / menu.SellingPrice * 100
	}

	return &MenuCost{
		MenuID:       menu.ID,
		Name:         menu.Name,
		SellingPrice: menu.SellingPrice,
		HPP:          hpp,
		Profit:       profit,
		Margin:       margin,
	}, nil
}
