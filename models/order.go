package models

import (
	"time"
)

// Order status flow: pending -> preparing -> ready -> delivered.
// Cancelled hanya bisa dicapai dari pending atau preparing.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment status flow: awaiting_confirmation -> paid (atau failed).
const (
	PaymentAwaitingConfirmation = "awaiting_confirmation"
	PaymentPaid                 = "paid"
	PaymentFailed               = "failed"
)

const (
	OrderTypeSameDay  = "same-day"
	OrderTypePreOrder = "pre-order"
)

const (
	DeliveryMethodPickup   = "pickup"
	DeliveryMethodDelivery = "delivery"
)

type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TrackingToken   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"tracking_token"`
	CustomerName    string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string    `gorm:"type:varchar(255)" json:"customer_email"`
	CustomerPhone   string    `gorm:"type:varchar(50)" json:"customer_phone"`
	FoodType        string    `gorm:"type:varchar(50);not null" json:"food_type"`
	PackCount       int       `gorm:"not null" json:"pack_count"`
	OrderType       string    `gorm:"type:varchar(20);not null" json:"order_type"`
	DeliveryMethod  string    `gorm:"type:varchar(20);not null;default:'pickup'" json:"delivery_method"`
	DeliveryAddress *string   `gorm:"type:text" json:"delivery_address,omitempty"`
	TargetDate      time.Time `gorm:"not null;index" json:"target_date"`
	Subtotal        float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"subtotal"`
	RushFee         float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"rush_fee"`
	DeliveryFee     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"delivery_fee"`
	TotalAmount     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentStatus   string    `gorm:"type:varchar(30);not null;default:'awaiting_confirmation'" json:"payment_status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// Vendor actions yang ditawarkan dashboard.
const (
	ActionConfirmPayment = "confirm_payment"
	ActionFailPayment    = "fail_payment"
	ActionStartPreparing = "start_preparing"
	ActionMarkReady      = "mark_ready"
	ActionMarkDelivered  = "mark_delivered"
	ActionCancel         = "cancel"
)

// CanTransition memeriksa apakah perpindahan status order diizinkan.
// Transisi bersifat satu arah, tidak ada revert.
func CanTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusPreparing || to == OrderStatusCancelled
	case OrderStatusPreparing:
		return to == OrderStatusReady || to == OrderStatusCancelled
	case OrderStatusReady:
		return to == OrderStatusDelivered
	}
	return false
}

// AllowedActions mengembalikan aksi vendor yang boleh ditawarkan untuk
// kombinasi status saat ini. Pembayaran hanya bisa dikonfirmasi selama
// masih awaiting_confirmation; delivered hanya setelah ready.
func AllowedActions(status, paymentStatus string) []string {
	actions := []string{}

	if paymentStatus == PaymentAwaitingConfirmation && status != OrderStatusCancelled {
		actions = append(actions, ActionConfirmPayment, ActionFailPayment)
	}

	switch status {
	case OrderStatusPending:
		if paymentStatus == PaymentPaid {
			actions = append(actions, ActionStartPreparing)
		}
		actions = append(actions, ActionCancel)
	case OrderStatusPreparing:
		actions = append(actions, ActionMarkReady, ActionCancel)
	case OrderStatusReady:
		actions = append(actions, ActionMarkDelivered)
	}

	return actions
}
