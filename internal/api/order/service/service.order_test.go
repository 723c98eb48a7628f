package service

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	menumodels "github.com/GreenD94/ladingburger-sub002/internal/api/menu/models"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

func testMenu() (map[primitive.ObjectID]menumodels.Burger, primitive.ObjectID, primitive.ObjectID) {
	classicID := primitive.NewObjectID()
	baconID := primitive.NewObjectID()
	menu := map[primitive.ObjectID]menumodels.Burger{
		classicID: {ID: classicID, Name: "Classic", Price: 5, EstimatedPrepTime: 20},
		baconID:   {ID: baconID, Name: "Bacon Lovers", Price: 7.5, EstimatedPrepTime: 25},
	}
	return menu, classicID, baconID
}

func TestBuildOrderItemsUsesMenuPrices(t *testing.T) {
	menu, classicID, _ := testMenu()

	items, err := BuildOrderItems([]dto.OrderItemInput{
		{BurgerID: classicID.Hex(), Quantity: 2, Note: "sin cebolla"},
	}, menu)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("esperaba 1 línea, recibí %d", len(items))
	}
	if items[0].Price != 5 {
		t.Errorf("el precio debe venir del menú: %v", items[0].Price)
	}
	if items[0].Name != "Classic" {
		t.Errorf("el nombre debe venir del menú: %q", items[0].Name)
	}
	if items[0].Note != "sin cebolla" {
		t.Errorf("la nota del cliente debe conservarse: %q", items[0].Note)
	}
}

func TestBuildOrderItemsRejectsUnknownBurger(t *testing.T) {
	menu, _, _ := testMenu()

	_, err := BuildOrderItems([]dto.OrderItemInput{
		{BurgerID: primitive.NewObjectID().Hex(), Quantity: 1},
	}, menu)
	if err == nil {
		t.Fatal("una hamburguesa fuera del menú debe fallar la orden")
	}

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("esperaba *common.Error, recibí %T", err)
	}
	if appErr.StatusCode != common.StatusConflict {
		t.Errorf("status inesperado: %d", appErr.StatusCode)
	}
}

func TestBuildOrderItemsRejectsMalformedID(t *testing.T) {
	menu, _, _ := testMenu()

	_, err := BuildOrderItems([]dto.OrderItemInput{
		{BurgerID: "no-es-un-objectid", Quantity: 1},
	}, menu)
	if err == nil {
		t.Fatal("un id malformado debe fallar la orden")
	}
}

func TestComputeTotalPrice(t *testing.T) {
	items := []models.OrderItem{
		{Price: 5, Quantity: 2},
		{Price: 7.5, Quantity: 1},
	}
	if total := ComputeTotalPrice(items); total != 17.5 {
		t.Errorf("total = %v, esperaba 17.5", total)
	}
}

func TestComputeTotalPriceClassicTimesTwo(t *testing.T) {
	// El caso de referencia del checkout: Classic a 5, cantidad 2.
	items := []models.OrderItem{{Price: 5, Quantity: 2}}
	if total := ComputeTotalPrice(items); total != 10 {
		t.Errorf("total = %v, esperaba 10", total)
	}
}

func TestMaxPrepTime(t *testing.T) {
	menu, classicID, baconID := testMenu()
	items := []models.OrderItem{
		{BurgerID: classicID, Quantity: 1},
		{BurgerID: baconID, Quantity: 1},
	}

	if got := MaxPrepTime(items, menu, 30); got != 25 {
		t.Errorf("MaxPrepTime = %d, esperaba 25", got)
	}

	// Sin tiempos declarados cae al valor por defecto.
	noTimes := map[primitive.ObjectID]menumodels.Burger{
		classicID: {ID: classicID, Name: "Classic", Price: 5},
	}
	if got := MaxPrepTime(items[:1], noTimes, 30); got != 30 {
		t.Errorf("MaxPrepTime sin datos = %d, esperaba 30", got)
	}
}
