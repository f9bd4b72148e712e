package model

import "wbrent/shared/model"

const (
	TableName  = "contact_messages"
	EntityName = "contact message"

	FieldID     = "id"
	FieldEmail  = "email"
	FieldStatus = "status"
)

type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

func IsValidStatus(status string) bool {
	switch Status(status) {
	case StatusNew, StatusRead, StatusReplied:
		return true
	}

	return false
}

type Message struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Subject string `db:"subject"`
	Message string `db:"message"`
	Status  Status `db:"status"`
	model.Metadata
}
