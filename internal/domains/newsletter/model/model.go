package model

import "wbrent/shared/model"

const (
	TableName  = "newsletter_subscribers"
	EntityName = "newsletter subscriber"

	FieldID     = "id"
	FieldEmail  = "email"
	FieldToken  = "token"
	FieldActive = "active"
)

type Subscriber struct {
	ID     string `db:"id"`
	Email  string `db:"email"`
	Token  string `db:"token"`
	Active bool   `db:"active"`
	model.Metadata
}
