package service

import (
	"context"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/menu/models"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

// IngredientService manages the ingredient catalog.
type IngredientService struct {
	*basesvc.BaseServiceMongoImpl[models.Ingredient]
}

// NewIngredientService creates the service over the ingredients collection.
func NewIngredientService(store *database.Store) *IngredientService {
	return &IngredientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Ingredient](store.Collection(global.ColNames.Ingredients)),
	}
}

// CostIndex returns ingredient costs keyed by name, for menu costing.
func (s *IngredientService) CostIndex(ctx context.Context) (map[string]float64, error) {
	ingredients, err := s.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	costs := make(map[string]float64, len(ingredients))
	for _, ing := range ingredients {
		costs[ing.Name] = ing.Cost
	}
	return costs, nil
}

// ComputeBurgerCost sums the cost of a burger's ingredients. Ingredients
// missing from the catalog count as zero so a partially costed menu still
// reports something useful.
func ComputeBurgerCost(burger models.Burger, costs map[string]float64) float64 {
	var total float64
	for _, name := range burger.Ingredients {
		total += costs[name]
	}
	return total
}

// ComputeMargin returns the gross margin fraction of a burger given its
// ingredient cost. A zero price yields a zero margin.
func ComputeMargin(price, cost float64) float64 {
	if price <= 0 {
		return 0
	}
	return (price - cost) / price
}
