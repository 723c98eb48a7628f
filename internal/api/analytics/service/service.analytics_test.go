package service

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	ordermodels "github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
)

func orderAtHour(t *testing.T, hour int) ordermodels.Order {
	t.Helper()
	created := time.Date(2026, 8, 20, hour, 30, 0, 0, time.UTC)
	return ordermodels.Order{CreatedAt: created.UnixMilli()}
}

func TestBucketOrdersByHour(t *testing.T) {
	orders := []ordermodels.Order{
		orderAtHour(t, 12),
		orderAtHour(t, 12),
		orderAtHour(t, 12),
		orderAtHour(t, 20),
		orderAtHour(t, 20),
		orderAtHour(t, 9),
	}

	buckets := BucketOrdersByHour(orders, time.UTC)
	if len(buckets) != 3 {
		t.Fatalf("esperaba 3 horas con pedidos, recibí %d", len(buckets))
	}
	if buckets[0].Hour != 12 || buckets[0].Orders != 3 {
		t.Errorf("la hora pico va primero: %+v", buckets[0])
	}
	if buckets[1].Hour != 20 || buckets[1].Orders != 2 {
		t.Errorf("segunda hora inesperada: %+v", buckets[1])
	}
	if buckets[2].Hour != 9 || buckets[2].Orders != 1 {
		t.Errorf("tercera hora inesperada: %+v", buckets[2])
	}
}

func TestBucketOrdersByHourTiesBreakByHour(t *testing.T) {
	orders := []ordermodels.Order{
		orderAtHour(t, 21),
		orderAtHour(t, 13),
	}

	buckets := BucketOrdersByHour(orders, time.UTC)
	if buckets[0].Hour != 13 {
		t.Errorf("en empate gana la hora menor: %+v", buckets)
	}
}

func TestClassifyCustomers(t *testing.T) {
	counts := map[string]int64{
		"+584141111111": 1,
		"+584142222222": 3,
		"+584143333333": 1,
		"+584144444444": 2,
	}

	breakdown := ClassifyCustomers(counts)
	if breakdown.TotalCustomers != 4 {
		t.Errorf("total = %d", breakdown.TotalCustomers)
	}
	if breakdown.NewCustomers != 2 {
		t.Errorf("nuevos = %d, esperaba 2", breakdown.NewCustomers)
	}
	if breakdown.ReturningCustomers != 2 {
		t.Errorf("recurrentes = %d, esperaba 2", breakdown.ReturningCustomers)
	}
}

func TestClassifyCustomersSingleOrderIsNew(t *testing.T) {
	breakdown := ClassifyCustomers(map[string]int64{"+584141111111": 1})
	if breakdown.NewCustomers != 1 || breakdown.ReturningCustomers != 0 {
		t.Errorf("un solo pedido es cliente nuevo: %+v", breakdown)
	}

	breakdown = ClassifyCustomers(map[string]int64{"+584141111111": 2})
	if breakdown.NewCustomers != 0 || breakdown.ReturningCustomers != 1 {
		t.Errorf("más de un pedido es cliente recurrente: %+v", breakdown)
	}
}

func TestClassifyCustomersIgnoresZeroCounts(t *testing.T) {
	breakdown := ClassifyCustomers(map[string]int64{"+584141111111": 0})
	if breakdown.TotalCustomers != 0 {
		t.Errorf("conteos en cero no son clientes: %+v", breakdown)
	}
}

func TestAverageTicket(t *testing.T) {
	if got := AverageTicket(100, 4); got != 25 {
		t.Errorf("AverageTicket(100, 4) = %v, esperaba 25", got)
	}
	if got := AverageTicket(17.5, 1); got != 17.5 {
		t.Errorf("AverageTicket(17.5, 1) = %v, esperaba 17.5", got)
	}
	if got := AverageTicket(0, 0); got != 0 {
		t.Errorf("sin órdenes pagadas el ticket promedio es cero, obtuve %v", got)
	}
	if got := AverageTicket(50, -1); got != 0 {
		t.Errorf("un conteo negativo no debe dividir, obtuve %v", got)
	}
}

func TestPeriodFilter(t *testing.T) {
	empty := Period{}
	if f := empty.filter(); len(f) != 0 {
		t.Errorf("un periodo sin límites no filtra: %v", f)
	}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	bounded := Period{From: from}
	f := bounded.filter()
	createdAt, ok := f["createdAt"].(bson.M)
	if !ok {
		t.Fatalf("filtro inesperado: %#v", f)
	}
	if createdAt["$gte"] != from.UnixMilli() {
		t.Errorf("límite inferior inesperado: %v", createdAt["$gte"])
	}
}
