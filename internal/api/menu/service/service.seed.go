package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/GreenD94/ladingburger-sub002/internal/api/menu/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// SeedResult reports what a seed run inserted.
type SeedResult struct {
	BurgersInserted     int  `json:"burgersInserted"`
	IngredientsInserted int  `json:"ingredientsInserted"`
	Skipped             bool `json:"skipped"`
}

// SeedService loads the demo menu into an empty database.
type SeedService struct {
	burgers     *BurgerService
	ingredients *IngredientService
}

// NewSeedService wires the seeder over the menu services.
func NewSeedService(burgers *BurgerService, ingredients *IngredientService) *SeedService {
	return &SeedService{
		burgers:     burgers,
		ingredients: ingredients,
	}
}

func defaultIngredients() []models.Ingredient {
	return []models.Ingredient{
		{Name: "Pan artesanal", Cost: 0.5, Unit: "unidad", Category: "panadería"},
		{Name: "Carne de res 150g", Cost: 1.8, Unit: "unidad", Category: "proteína"},
		{Name: "Queso amarillo", Cost: 0.4, Unit: "lámina", Category: "lácteos"},
		{Name: "Tocineta", Cost: 0.6, Unit: "tira", Category: "proteína"},
		{Name: "Lechuga", Cost: 0.1, Unit: "porción", Category: "vegetales"},
		{Name: "Tomate", Cost: 0.15, Unit: "porción", Category: "vegetales"},
		{Name: "Cebolla caramelizada", Cost: 0.2, Unit: "porción", Category: "vegetales"},
		{Name: "Salsa de la casa", Cost: 0.25, Unit: "porción", Category: "salsas"},
	}
}

func defaultBurgers() []models.Burger {
	return []models.Burger{
		{
			Name:              "Classic",
			Description:       "Carne de res, queso amarillo, lechuga, tomate y salsa de la casa",
			Price:             5,
			Ingredients:       []string{"Pan artesanal", "Carne de res 150g", "Queso amarillo", "Lechuga", "Tomate", "Salsa de la casa"},
			Category:          "clásicas",
			IsAvailable:       true,
			EstimatedPrepTime: 20,
		},
		{
			Name:              "Bacon Lovers",
			Description:       "Doble tocineta, queso amarillo y cebolla caramelizada",
			Price:             7.5,
			Ingredients:       []string{"Pan artesanal", "Carne de res 150g", "Queso amarillo", "Tocineta", "Cebolla caramelizada"},
			Category:          "especiales",
			IsAvailable:       true,
			EstimatedPrepTime: 25,
		},
		{
			Name:              "Doble Saborea",
			Description:       "Doble carne, doble queso y salsa de la casa",
			Price:             9,
			Ingredients:       []string{"Pan artesanal", "Carne de res 150g", "Carne de res 150g", "Queso amarillo", "Queso amarillo", "Salsa de la casa"},
			Category:          "especiales",
			IsAvailable:       true,
			EstimatedPrepTime: 30,
		},
		{
			Name:              "Veggie",
			Description:       "Medallón de garbanzos, lechuga, tomate y cebolla caramelizada",
			Price:             6,
			Ingredients:       []string{"Pan artesanal", "Lechuga", "Tomate", "Cebolla caramelizada", "Salsa de la casa"},
			Category:          "vegetarianas",
			IsAvailable:       false,
			EstimatedPrepTime: 20,
		},
	}
}

// SeedMenu inserts the demo burgers and ingredients. It is guarded for
// idempotence: if any burger already exists the run is skipped so repeated
// calls never duplicate the menu.
func (s *SeedService) SeedMenu(ctx context.Context) (SeedResult, error) {
	count, err := s.burgers.CountDocuments(ctx, bson.M{})
	if err != nil {
		return SeedResult{}, err
	}
	if count > 0 {
		return SeedResult{Skipped: true}, nil
	}

	result := SeedResult{}
	log := logger.GetAppLogger()

	for _, ing := range defaultIngredients() {
		if _, err := s.ingredients.InsertOne(ctx, ing); err != nil {
			// A duplicate name means a partial earlier run; keep going.
			if common.IsDuplicateError(err) {
				continue
			}
			return result, err
		}
		result.IngredientsInserted++
	}

	for _, b := range defaultBurgers() {
		if _, err := s.burgers.InsertOne(ctx, b); err != nil {
			if common.IsDuplicateError(err) {
				continue
			}
			return result, err
		}
		result.BurgersInserted++
	}

	log.WithField("burgers", result.BurgersInserted).
		WithField("ingredients", result.IngredientsInserted).
		Info("menú inicial cargado")

	return result, nil
}
