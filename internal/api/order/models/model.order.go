// Package models defines the order documents and the status machine.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line of an order. Price is the unit price captured from
// the menu at creation time; client-supplied prices are never stored.
type OrderItem struct {
	BurgerID primitive.ObjectID `json:"burgerId" bson:"burgerId"`
	Name     string             `json:"name" bson:"name"`
	Quantity int64              `json:"quantity" bson:"quantity"`
	Price    float64            `json:"price" bson:"price"`
	Note     string             `json:"note,omitempty" bson:"note,omitempty"`
}

// PaymentLog is one entry in the payment history of an order.
type PaymentLog struct {
	Status     PaymentStatus `json:"status" bson:"status"`
	StatusName string        `json:"statusName" bson:"statusName"`
	Comment    string        `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt  int64         `json:"createdAt" bson:"createdAt"`
}

// PaymentInfo tracks the transfer details and payment history of an order.
type PaymentInfo struct {
	BankAccount       string        `json:"bankAccount,omitempty" bson:"bankAccount,omitempty"`
	TransferReference string        `json:"transferReference,omitempty" bson:"transferReference,omitempty"`
	PaymentStatus     PaymentStatus `json:"paymentStatus" bson:"paymentStatus"`
	PaymentLogs       []PaymentLog  `json:"paymentLogs" bson:"paymentLogs"`
}

// OrderLog is one entry in the status history of an order.
type OrderLog struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Comment   string      `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt int64       `json:"createdAt" bson:"createdAt"`
}

// Order is a customer order. Items and totalPrice are computed server-side
// from the menu; Status moves only through the legal transition table.
type Order struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerPhone     string             `json:"customerPhone" bson:"customerPhone" index:"single"`
	CustomerName      string             `json:"customerName,omitempty" bson:"customerName,omitempty"`
	UserID            primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"`
	Items             []OrderItem        `json:"items" bson:"items"`
	TotalPrice        float64            `json:"totalPrice" bson:"totalPrice"`
	Status            OrderStatus        `json:"status" bson:"status" index:"single"`
	PaymentInfo       PaymentInfo        `json:"paymentInfo" bson:"paymentInfo"`
	EstimatedPrepTime int64              `json:"estimatedPrepTime,omitempty" bson:"estimatedPrepTime,omitempty"`
	Priority          string             `json:"priority" bson:"priority" default:"normal"`
	InternalNotes     string             `json:"internalNotes,omitempty" bson:"internalNotes,omitempty"`
	Logs              []OrderLog         `json:"logs" bson:"logs"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}
