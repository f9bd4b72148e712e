package dto

import (
	"strings"
	"wbrent/internal/domains/newsletter/model"
	"wbrent/shared"
	gDto "wbrent/shared/dto"
	gModel "wbrent/shared/model"
	"wbrent/shared/timezone"

	"github.com/google/uuid"
)

const (
	MessageSubscribed   = "Subscribed to the newsletter"
	MessageUnsubscribed = "Unsubscribed from the newsletter"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// NormalizedEmail is the form addresses are stored and matched in.
func (r *SubscribeRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *SubscribeRequest) ToModel(user string) model.Subscriber {
	now := timezone.Now()

	return model.Subscriber{
		ID:       uuid.NewString(),
		Email:    r.NormalizedEmail(),
		Token:    uuid.NewString(),
		Active:   true,
		Metadata: gModel.NewMetadata(user, now),
	}
}

type SubscriberResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
	gDto.Metadata
}

func (r *SubscriberResponse) FromModel(m model.Subscriber) {
	r.ID = m.ID
	r.Email = m.Email
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type GetSubscribersResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetSubscribersResponse) FromModels(models []model.Subscriber, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Subscribers = make([]SubscriberResponse, len(models))
	for i, m := range models {
		r.Subscribers[i].FromModel(m)
	}
}
