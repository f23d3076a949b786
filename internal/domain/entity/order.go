package entity

import (
	"time"
)

type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
	Image     string  `json:"img" firestore:"img"`
}

type ShippingAddress struct {
	FullName   string `json:"full_name" firestore:"fullName"`
	Address    string `json:"address" firestore:"address"`
	City       string `json:"city" firestore:"city"`
	PostalCode string `json:"postal_code" firestore:"postalCode"`
	Country    string `json:"country" firestore:"country"`
}

type PaymentResult struct {
	ID           string `json:"id" firestore:"id"`
	Status       string `json:"status" firestore:"status"`
	UpdateTime   string `json:"update_time" firestore:"updateTime"`
	EmailAddress string `json:"email_address" firestore:"emailAddress"`
}

// Order moves through created -> paid -> delivered. The paid and delivered
// flags flip exactly once; repeated requests are no-ops.
type Order struct {
	ID       string `json:"id" firestore:"id"`
	UserID   string `json:"user_id" firestore:"userId"`
	UserName string `json:"user_name" firestore:"userName"`

	OrderItems      []OrderItem     `json:"order_items" firestore:"orderItems"`
	ShippingAddress ShippingAddress `json:"shipping_address" firestore:"shippingAddress"`
	PaymentMethod   string          `json:"payment_method" firestore:"paymentMethod"`

	ItemsPrice    float64 `json:"items_price" firestore:"itemsPrice"`
	ShippingPrice float64 `json:"shipping_price" firestore:"shippingPrice"`
	TaxPrice      float64 `json:"tax_price" firestore:"taxPrice"`
	TotalPrice    float64 `json:"total_price" firestore:"totalPrice"`

	IsPaid        bool           `json:"is_paid" firestore:"isPaid"`
	PaidAt        *time.Time     `json:"paid_at,omitempty" firestore:"paidAt,omitempty"`
	PaymentResult *PaymentResult `json:"payment_result,omitempty" firestore:"paymentResult,omitempty"`

	IsDelivered bool       `json:"is_delivered" firestore:"isDelivered"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type DailySales struct {
	Date   string  `json:"date" firestore:"date"`
	Orders int64   `json:"orders" firestore:"orders"`
	Sales  float64 `json:"sales" firestore:"sales"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ProductSold struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"img"`
	Sold      int    `json:"sold"`
}

// OrderSummary backs the admin dashboard charts.
type OrderSummary struct {
	NumOrders  int64        `json:"num_orders"`
	TotalSales float64      `json:"total_sales"`
	NumUsers   int64        `json:"num_users"`
	Daily      []DailySales `json:"daily_orders"`

	ProductCategories []CategoryCount `json:"product_categories"`
	ProductsSold      []ProductSold   `json:"products_sold"`
}
