// Package service implements the order business logic: creation with
// server-side pricing, the status machine, payment tracking and the
// operational alerts.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	customersvc "github.com/GreenD94/ladingburger-sub002/internal/api/customer/service"
	menumodels "github.com/GreenD94/ladingburger-sub002/internal/api/menu/models"
	menusvc "github.com/GreenD94/ladingburger-sub002/internal/api/menu/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
	"github.com/GreenD94/ladingburger-sub002/config"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
	"github.com/GreenD94/ladingburger-sub002/internal/utility"
)

// OrderService manages orders. Menu and customer services are injected so
// creation can resolve prices and attach the customer record.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	burgers *menusvc.BurgerService
	users   *customersvc.UserService
	cfg     *config.Configuration
}

// NewOrderService creates the service over the orders collection.
func NewOrderService(store *database.Store, burgers *menusvc.BurgerService, users *customersvc.UserService, cfg *config.Configuration) *OrderService {
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](store.Collection(global.ColNames.Orders)),
		burgers:              burgers,
		users:                users,
		cfg:                  cfg,
	}
}

// BuildOrderItems resolves the requested lines against the available menu.
// Prices always come from the menu documents; a line referencing a burger
// that is missing or unavailable fails the whole order.
func BuildOrderItems(inputs []dto.OrderItemInput, menu map[primitive.ObjectID]menumodels.Burger) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		id, err := primitive.ObjectIDFromHex(in.BurgerID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Identificador de hamburguesa inválido", common.StatusBadRequest, in.BurgerID)
		}

		burger, ok := menu[id]
		if !ok {
			return nil, common.NewError(common.ErrCodeBusinessOperation, "La hamburguesa no está disponible", common.StatusConflict, in.BurgerID)
		}

		items = append(items, models.OrderItem{
			BurgerID: burger.ID,
			Name:     burger.Name,
			Quantity: in.Quantity,
			Price:    burger.Price,
			Note:     in.Note,
		})
	}
	return items, nil
}

// ComputeTotalPrice sums price times quantity over the resolved lines.
func ComputeTotalPrice(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// MaxPrepTime returns the longest prep time (minutes) among the ordered
// burgers, falling back to fallback when no burger declares one.
func MaxPrepTime(items []models.OrderItem, menu map[primitive.ObjectID]menumodels.Burger, fallback int64) int64 {
	var max int64
	for _, item := range items {
		if burger, ok := menu[item.BurgerID]; ok && burger.EstimatedPrepTime > max {
			max = burger.EstimatedPrepTime
		}
	}
	if max == 0 {
		return fallback
	}
	return max
}

// Create places a new order. The menu must have at least one available
// burger; prices and the total are recomputed server-side; the customer
// record is created on first order with the new-customer tag.
func (s *OrderService) Create(ctx context.Context, input dto.OrderCreateInput) (models.Order, error) {
	menu, err := s.burgers.FindAvailableByID(ctx)
	if err != nil {
		return models.Order{}, err
	}
	if len(menu) == 0 {
		return models.Order{}, common.ErrMenuUnavailable
	}

	items, err := BuildOrderItems(input.Items, menu)
	if err != nil {
		return models.Order{}, err
	}

	user, err := s.users.GetOrCreateByPhone(ctx, input.CustomerPhone, input.CustomerName)
	if err != nil {
		return models.Order{}, err
	}

	now := utility.CurrentTimeInMilli()
	order := models.Order{
		CustomerPhone: customersvc.NormalizePhone(input.CustomerPhone),
		CustomerName:  input.CustomerName,
		UserID:        user.ID,
		Items:         items,
		TotalPrice:    ComputeTotalPrice(items),
		Status:        models.StatusWaitingPayment,
		PaymentInfo: models.PaymentInfo{
			PaymentStatus: models.PaymentPending,
			PaymentLogs: []models.PaymentLog{{
				Status:     models.PaymentPending,
				StatusName: models.PaymentPending.Name(),
				CreatedAt:  now,
			}},
		},
		EstimatedPrepTime: MaxPrepTime(items, menu, int64(s.cfg.AlertCookingDelayMinutes)),
		Logs: []models.OrderLog{{
			Status:    models.StatusWaitingPayment,
			CreatedAt: now,
		}},
	}

	created, err := s.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	logger.GetAppLogger().
		WithField("order_id", created.ID.Hex()).
		WithField("total", created.TotalPrice).
		Info("orden creada")

	return created, nil
}

// FindByPhone returns a customer's orders, newest first.
func (s *OrderService) FindByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	filter := bson.M{"customerPhone": customersvc.NormalizePhone(phone)}
	return s.Find(ctx, filter, nil)
}

// FindActive returns every order in a non-terminal status.
func (s *OrderService) FindActive(ctx context.Context) ([]models.Order, error) {
	return s.Find(ctx, bson.M{"status": bson.M{"$nin": models.TerminalStatuses()}}, nil)
}

// HasActiveOrder reports whether a phone has any order still in a
// non-terminal status. The storefront uses this to block double orders.
func (s *OrderService) HasActiveOrder(ctx context.Context, phone string) (bool, error) {
	count, err := s.CountDocuments(ctx, bson.M{
		"customerPhone": customersvc.NormalizePhone(phone),
		"status":        bson.M{"$nin": models.TerminalStatuses()},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
