package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

func validCreateInput() OrderCreateInput {
	return OrderCreateInput{
		CustomerPhone: "04141234567",
		CustomerName:  "María",
		Items: []OrderItemInput{
			{BurgerID: "66f0000000000000000000aa", Quantity: 2},
		},
	}
}

func TestOrderCreateInputValidation(t *testing.T) {
	global.InitValidator()

	require.NoError(t, global.Validate.Struct(validCreateInput()))

	noPhone := validCreateInput()
	noPhone.CustomerPhone = ""
	assert.Error(t, global.Validate.Struct(noPhone), "el teléfono es obligatorio")

	badPhone := validCreateInput()
	badPhone.CustomerPhone = "no-es-telefono"
	assert.Error(t, global.Validate.Struct(badPhone), "el teléfono debe validar formato")

	noItems := validCreateInput()
	noItems.Items = nil
	assert.Error(t, global.Validate.Struct(noItems), "una orden sin líneas no es válida")

	zeroQty := validCreateInput()
	zeroQty.Items[0].Quantity = 0
	assert.Error(t, global.Validate.Struct(zeroQty), "la cantidad debe ser mayor a cero")

	negativeQty := validCreateInput()
	negativeQty.Items[0].Quantity = -1
	assert.Error(t, global.Validate.Struct(negativeQty))
}

func TestOrderUpdateInputPriorityValidation(t *testing.T) {
	global.InitValidator()

	for _, priority := range []string{"", "normal", "high", "urgent"} {
		input := OrderUpdateInput{Priority: priority}
		assert.NoError(t, global.Validate.Struct(input), "priority=%q debería aceptarse", priority)
	}

	for _, priority := range []string{"low", "URGENT", "alta"} {
		input := OrderUpdateInput{Priority: priority}
		assert.Error(t, global.Validate.Struct(input), "priority=%q no existe y debe rechazarse", priority)
	}
}

func TestOrderPaymentFailedInputValidation(t *testing.T) {
	global.InitValidator()

	valid := OrderPaymentFailedInput{OrderID: "66f0000000000000000000aa", Comment: "referencia no encontrada"}
	require.NoError(t, global.Validate.Struct(valid))

	assert.Error(t, global.Validate.Struct(OrderPaymentFailedInput{Comment: "sin orden"}), "falta el id de la orden")
	assert.Error(t, global.Validate.Struct(OrderPaymentFailedInput{OrderID: "66f0000000000000000000aa", Comment: "<script>x</script>"}))
}

func TestOrderStatusUpdateInputValidation(t *testing.T) {
	global.InitValidator()

	valid := OrderStatusUpdateInput{OrderID: "66f0000000000000000000aa", Status: "COOKING"}
	require.NoError(t, global.Validate.Struct(valid))

	assert.Error(t, global.Validate.Struct(OrderStatusUpdateInput{Status: "COOKING"}), "falta el id de la orden")
	assert.Error(t, global.Validate.Struct(OrderStatusUpdateInput{OrderID: "66f0000000000000000000aa"}), "falta el estado")
}

func TestOrderPaymentUpdateInputValidation(t *testing.T) {
	global.InitValidator()

	valid := OrderPaymentUpdateInput{
		OrderID:           "66f0000000000000000000aa",
		BankAccount:       "0102-1234",
		TransferReference: "REF-778899",
	}
	require.NoError(t, global.Validate.Struct(valid))

	missingRef := valid
	missingRef.TransferReference = ""
	assert.Error(t, global.Validate.Struct(missingRef), "la referencia es obligatoria")
}
