package model

import (
	"time"
	"wbrent/shared/model"
)

const (
	TableName  = "stock_notifications"
	EntityName = "stock notification"

	FieldID         = "id"
	FieldProductID  = "product_id"
	FieldEmail      = "email"
	FieldNotifiedAt = "notified_at"
)

// Subscription asks to be told once when a product frees up. It is pending
// while NotifiedAt is nil.
type Subscription struct {
	ID          string     `db:"id"`
	ProductID   string     `db:"product_id"`
	ProductName string     `db:"product_name" table:"products" column:"name"`
	Email       string     `db:"email"`
	Name        string     `db:"name"`
	NotifiedAt  *time.Time `db:"notified_at"`
	model.Metadata
}

func (Subscription) GetJoinQuery() string {
	return "LEFT JOIN products ON products.id = stock_notifications.product_id"
}
