package service

import (
	"testing"

	"github.com/GreenD94/ladingburger-sub002/internal/api/menu/models"
)

func TestComputeBurgerCost(t *testing.T) {
	costs := map[string]float64{
		"Pan artesanal":     0.5,
		"Carne de res 150g": 1.8,
		"Queso amarillo":    0.4,
	}

	burger := models.Burger{
		Name:        "Classic",
		Ingredients: []string{"Pan artesanal", "Carne de res 150g", "Queso amarillo"},
	}
	if cost := ComputeBurgerCost(burger, costs); cost != 2.7 {
		t.Errorf("costo = %v, esperaba 2.7", cost)
	}
}

func TestComputeBurgerCostMissingIngredientCountsZero(t *testing.T) {
	costs := map[string]float64{"Pan artesanal": 0.5}
	burger := models.Burger{
		Ingredients: []string{"Pan artesanal", "Salsa secreta"},
	}
	if cost := ComputeBurgerCost(burger, costs); cost != 0.5 {
		t.Errorf("un ingrediente sin costo cuenta como cero: %v", cost)
	}
}

func TestComputeBurgerCostDuplicatesCountTwice(t *testing.T) {
	costs := map[string]float64{"Carne de res 150g": 1.8}
	burger := models.Burger{
		Ingredients: []string{"Carne de res 150g", "Carne de res 150g"},
	}
	if cost := ComputeBurgerCost(burger, costs); cost != 3.6 {
		t.Errorf("la doble carne cuesta doble: %v", cost)
	}
}

func TestComputeMargin(t *testing.T) {
	if margin := ComputeMargin(5, 2.5); margin != 0.5 {
		t.Errorf("margen = %v, esperaba 0.5", margin)
	}
	if margin := ComputeMargin(0, 2.5); margin != 0 {
		t.Errorf("precio cero no tiene margen: %v", margin)
	}
	if margin := ComputeMargin(-1, 2.5); margin != 0 {
		t.Errorf("precio negativo no tiene margen: %v", margin)
	}
}
