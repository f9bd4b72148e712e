package model

import (
	"time"
	"wbrent/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID             = "id"
	FieldProductID      = "product_id"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldStatus         = "status"
	FieldEmail          = "email"
	FieldReminderSentAt = "reminder_sent_at"
)

type DistanceStatus string

const (
	DistanceNotRequired DistanceStatus = "not_required"
	DistanceOK          DistanceStatus = "ok"
	DistanceUnverified  DistanceStatus = "unverified"
)

// Reservation is one booking of one product. Dates are calendar days; the
// return date is exclusive. Clock times are "HH:MM" when the customer gave them.
type Reservation struct {
	ID               string         `db:"id"`
	ProductID        string         `db:"product_id"`
	ProductName      string         `db:"product_name" table:"products" column:"name"`
	CategoryID       string         `db:"category_id"`
	StartDate        time.Time      `db:"start_date"`
	EndDate          time.Time      `db:"end_date"`
	StartTime        *string        `db:"start_time"`
	EndTime          *string        `db:"end_time"`
	Delivery         bool           `db:"delivery"`
	City             string         `db:"city"`
	Address          string         `db:"address"`
	DistanceKm       *float64       `db:"distance_km"`
	DistanceStatus   DistanceStatus `db:"distance_status"`
	FirstName        string         `db:"first_name"`
	LastName         string         `db:"last_name"`
	Email            string         `db:"email"`
	Phone            string         `db:"phone"`
	Company          string         `db:"company"`
	Notes            string         `db:"notes"`
	Days             int            `db:"days"`
	BasePrice        int64          `db:"base_price"`
	DeliveryFee      int64          `db:"delivery_fee"`
	WeekendPickupFee int64          `db:"weekend_pickup_fee"`
	TotalPrice       int64          `db:"total_price"`
	Status           Status         `db:"status"`
	ReminderSentAt   *time.Time     `db:"reminder_sent_at"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN products ON products.id = reservations.product_id"
}

func (r Reservation) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Conflict is an existing reservation that blocks a requested period.
type Conflict struct {
	ID        string    `db:"id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Status    Status    `db:"status"`
}

// ReleasedEvent is published when a reservation stops occupying its product.
type ReleasedEvent struct {
	ReservationID string    `json:"reservationId"`
	ProductID     string    `json:"productId"`
	From          Status    `json:"from"`
	To            Status    `json:"to"`
	OccurredAt    time.Time `json:"occurredAt"`
}
