// Package service implements the sales analytics over the orders
// collection. Heavy lifting runs as aggregation pipelines; the bucketing
// rules themselves are plain functions.
package service

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	ordermodels "github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

// Summary is the headline sales numbers for a period.
type Summary struct {
	TotalOrders     int64            `json:"totalOrders"`
	CompletedOrders int64            `json:"completedOrders"`
	Revenue         float64          `json:"revenue"`
	AverageTicket   float64          `json:"averageTicket"`
	OrdersByStatus  map[string]int64 `json:"ordersByStatus"`
}

// AverageTicket is the revenue per paid order, zero when nothing was paid.
func AverageTicket(revenue float64, paidOrders int64) float64 {
	if paidOrders <= 0 {
		return 0
	}
	return revenue / float64(paidOrders)
}

// HourBucket is one hour of the day with its order count.
type HourBucket struct {
	Hour   int   `json:"hour"`
	Orders int64 `json:"orders"`
}

// TopItem is one burger ranked by quantity sold.
type TopItem struct {
	BurgerID string  `json:"burgerId"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// CustomerBreakdown splits customers into first-time and returning buyers.
type CustomerBreakdown struct {
	TotalCustomers     int64 `json:"totalCustomers"`
	NewCustomers       int64 `json:"newCustomers"`
	ReturningCustomers int64 `json:"returningCustomers"`
}

// AnalyticsService runs the sales reports.
type AnalyticsService struct {
	orders *mongo.Collection
}

// NewAnalyticsService creates the service over the orders collection.
func NewAnalyticsService(store *database.Store) *AnalyticsService {
	return &AnalyticsService{
		orders: store.Collection(global.ColNames.Orders),
	}
}

// Period bounds a report. Zero values leave that side unbounded.
type Period struct {
	From time.Time
	To   time.Time
}

func (p Period) filter() bson.M {
	createdAt := bson.M{}
	if !p.From.IsZero() {
		createdAt["$gte"] = p.From.UnixMilli()
	}
	if !p.To.IsZero() {
		createdAt["$lte"] = p.To.UnixMilli()
	}
	if len(createdAt) == 0 {
		return bson.M{}
	}
	return bson.M{"createdAt": createdAt}
}

// BucketOrdersByHour counts orders per hour of day (local time of loc).
// Exposed as a plain function so the bucketing rule is testable without a
// database.
func BucketOrdersByHour(orders []ordermodels.Order, loc *time.Location) []HourBucket {
	counts := make(map[int]int64)
	for _, order := range orders {
		hour := time.UnixMilli(order.CreatedAt).In(loc).Hour()
		counts[hour]++
	}

	buckets := make([]HourBucket, 0, len(counts))
	for hour, n := range counts {
		buckets = append(buckets, HourBucket{Hour: hour, Orders: n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Orders != buckets[j].Orders {
			return buckets[i].Orders > buckets[j].Orders
		}
		return buckets[i].Hour < buckets[j].Hour
	})
	return buckets
}

// ClassifyCustomers splits per-phone order counts into new (exactly one
// order) and returning (more than one).
func ClassifyCustomers(ordersPerPhone map[string]int64) CustomerBreakdown {
	breakdown := CustomerBreakdown{}
	for _, count := range ordersPerPhone {
		if count <= 0 {
			continue
		}
		breakdown.TotalCustomers++
		if count > 1 {
			breakdown.ReturningCustomers++
		} else {
			breakdown.NewCustomers++
		}
	}
	return breakdown
}

// GetSummary returns the headline numbers for a period. Revenue counts only
// paid orders.
func (s *AnalyticsService) GetSummary(ctx context.Context, period Period) (Summary, error) {
	pipeline := []bson.M{
		{"$match": period.filter()},
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$paymentInfo.paymentStatus", string(ordermodels.PaymentPaid)}},
				"$totalPrice",
				0,
			}}},
			"paid": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$paymentInfo.paymentStatus", string(ordermodels.PaymentPaid)}},
				1,
				0,
			}}},
		}},
	}

	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return Summary{}, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	summary := Summary{OrdersByStatus: make(map[string]int64)}
	var paidOrders int64
	for cursor.Next(ctx) {
		var row struct {
			Status  string  `bson:"_id"`
			Count   int64   `bson:"count"`
			Revenue float64 `bson:"revenue"`
			Paid    int64   `bson:"paid"`
		}
		if err := cursor.Decode(&row); err != nil {
			return Summary{}, common.ConvertMongoError(err)
		}

		summary.TotalOrders += row.Count
		summary.Revenue += row.Revenue
		paidOrders += row.Paid
		summary.OrdersByStatus[row.Status] = row.Count
		if row.Status == string(ordermodels.StatusCompleted) {
			summary.CompletedOrders = row.Count
		}
	}
	if err := cursor.Err(); err != nil {
		return Summary{}, common.ConvertMongoError(err)
	}

	summary.AverageTicket = AverageTicket(summary.Revenue, paidOrders)
	return summary, nil
}

// GetPeakHours returns the busiest hours of the day for a period.
func (s *AnalyticsService) GetPeakHours(ctx context.Context, period Period) ([]HourBucket, error) {
	pipeline := []bson.M{
		{"$match": period.filter()},
		{"$group": bson.M{
			"_id":   bson.M{"$hour": bson.M{"$toDate": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1, "_id": 1}},
	}

	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	buckets := make([]HourBucket, 0, 24)
	for cursor.Next(ctx) {
		var row struct {
			Hour  int   `bson:"_id"`
			Count int64 `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		buckets = append(buckets, HourBucket{Hour: row.Hour, Orders: row.Count})
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return buckets, nil
}

// GetTopItems ranks burgers by quantity sold in a period.
func (s *AnalyticsService) GetTopItems(ctx context.Context, period Period, limit int64) ([]TopItem, error) {
	if limit <= 0 {
		limit = 10
	}

	pipeline := []bson.M{
		{"$match": period.filter()},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":      "$items.burgerId",
			"name":     bson.M{"$last": "$items.name"},
			"quantity": bson.M{"$sum": "$items.quantity"},
			"revenue":  bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}}},
		}},
		{"$sort": bson.M{"quantity": -1}},
		{"$limit": limit},
	}

	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	items := make([]TopItem, 0, limit)
	for cursor.Next(ctx) {
		var row struct {
			BurgerID interface{} `bson:"_id"`
			Name     string      `bson:"name"`
			Quantity int64       `bson:"quantity"`
			Revenue  float64     `bson:"revenue"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}

		item := TopItem{Name: row.Name, Quantity: row.Quantity, Revenue: row.Revenue}
		if id, ok := row.BurgerID.(interface{ Hex() string }); ok {
			item.BurgerID = id.Hex()
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return items, nil
}

// GetCustomerBreakdown splits the customers of a period into new and
// returning buyers by their order counts.
func (s *AnalyticsService) GetCustomerBreakdown(ctx context.Context, period Period) (CustomerBreakdown, error) {
	pipeline := []bson.M{
		{"$match": period.filter()},
		{"$group": bson.M{
			"_id":   "$customerPhone",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return CustomerBreakdown{}, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Phone string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return CustomerBreakdown{}, common.ConvertMongoError(err)
		}
		counts[row.Phone] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return CustomerBreakdown{}, common.ConvertMongoError(err)
	}

	return ClassifyCustomers(counts), nil
}
