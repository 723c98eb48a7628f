package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
	"github.com/GreenD94/ladingburger-sub002/internal/utility"
)

// ShouldLogPaid reports whether confirming a payment should append a PAID
// log entry. Re-confirming an already paid order must not: the payment
// history stays idempotent no matter how many times the button is pressed.
func ShouldLogPaid(current models.PaymentStatus) bool {
	return current != models.PaymentPaid
}

// UpdatePayment records a verified transfer on an order. The bank account
// and transfer reference are always overwritten with the latest values; the
// PAID log entry is appended only on the first confirmation.
func (s *OrderService) UpdatePayment(ctx context.Context, input dto.OrderPaymentUpdateInput) (models.Order, error) {
	orderID, err := basesvc.EnsureObjectID(input.OrderID)
	if err != nil {
		return models.Order{}, err
	}

	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}

	update := basesvc.UpdateData{
		Set: bson.M{
			"paymentInfo.bankAccount":       input.BankAccount,
			"paymentInfo.transferReference": input.TransferReference,
			"paymentInfo.paymentStatus":     models.PaymentPaid,
		},
	}

	if ShouldLogPaid(order.PaymentInfo.PaymentStatus) {
		update.Push = bson.M{"paymentInfo.paymentLogs": models.PaymentLog{
			Status:     models.PaymentPaid,
			StatusName: models.PaymentPaid.Name(),
			Comment:    input.Comment,
			CreatedAt:  utility.CurrentTimeInMilli(),
		}}
	}

	return s.UpdateById(ctx, orderID, update)
}

// MarkPaymentFailed flags an order whose transfer could not be verified and
// moves it to PAYMENT_FAILED when the lifecycle allows it.
func (s *OrderService) MarkPaymentFailed(ctx context.Context, orderID primitive.ObjectID, comment string) (models.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}

	update := basesvc.UpdateData{
		Set: bson.M{"paymentInfo.paymentStatus": models.PaymentFailed},
		Push: bson.M{"paymentInfo.paymentLogs": models.PaymentLog{
			Status:     models.PaymentFailed,
			StatusName: models.PaymentFailed.Name(),
			Comment:    comment,
			CreatedAt:  utility.CurrentTimeInMilli(),
		}},
	}
	if _, err := s.UpdateById(ctx, orderID, update); err != nil {
		return models.Order{}, err
	}

	if order.Status == models.StatusWaitingPayment {
		return s.UpdateStatus(ctx, orderID, models.StatusPaymentFailed, comment)
	}
	return s.FindOneById(ctx, orderID)
}
