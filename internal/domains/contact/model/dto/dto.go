package dto

import (
	"wbrent/internal/domains/contact/model"
	"wbrent/shared"
	gDto "wbrent/shared/dto"
	gModel "wbrent/shared/model"
	"wbrent/shared/timezone"
	"wbrent/shared/validator"

	"github.com/google/uuid"
)

const MessageReceived = "Message received"

func init() {
	validator.RegisterValidation("contact_status", model.IsValidStatus)
}

type CreateMessageRequest struct {
	Name    string `json:"name"    validate:"required,max=120"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Phone   string `json:"phone"   validate:"omitempty,max=32"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (c *CreateMessageRequest) ToModel(user string) model.Message {
	now := timezone.Now()

	return model.Message{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Subject:  c.Subject,
		Message:  c.Message,
		Status:   model.StatusNew,
		Metadata: gModel.NewMetadata(user, now),
	}
}

type UpdateMessageRequest struct {
	Status string `db:"status" json:"status" validate:"required,contact_status"`
}

type MessageResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	Status  string `json:"status"`
	gDto.Metadata
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Subject = model.Subject
	r.Message = model.Message
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetMessagesResponse struct {
	Messages  []MessageResponse `json:"messages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMessagesResponse) FromModels(models []model.Message, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}
