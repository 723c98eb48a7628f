package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
	"github.com/GreenD94/ladingburger-sub002/internal/utility"
)

// ValidateTransition checks that next is a defined status and that the move
// from current is legal. Illegal moves return typed errors with the
// attempted transition in the details.
func ValidateTransition(current, next models.OrderStatus) error {
	if !next.IsValid() {
		return common.NewError(common.ErrCodeValidationInput, "Estado de orden desconocido", common.StatusBadRequest, string(next))
	}
	if !current.CanTransitionTo(next) {
		return common.NewError(common.ErrCodeBusinessState, "Transición de estado no permitida", common.StatusBadRequest, map[string]string{
			"from": string(current),
			"to":   string(next),
		})
	}
	return nil
}

// UpdateStatus moves an order to a new status, enforcing the transition
// table and appending the move to the order log.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, next models.OrderStatus, comment string) (models.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}

	if err := ValidateTransition(order.Status, next); err != nil {
		return models.Order{}, err
	}

	entry := models.OrderLog{
		Status:    next,
		Comment:   comment,
		CreatedAt: utility.CurrentTimeInMilli(),
	}

	updated, err := s.UpdateById(ctx, orderID, basesvc.UpdateData{
		Set:  bson.M{"status": next},
		Push: bson.M{"logs": entry},
	})
	if err != nil {
		return models.Order{}, err
	}

	logger.GetAppLogger().
		WithField("order_id", orderID.Hex()).
		WithField("from", string(order.Status)).
		WithField("to", string(next)).
		Info("estado de orden actualizado")

	return updated, nil
}
