package dto

import (
	"time"
	"wbrent/internal/domains/stocknotify/model"
	"wbrent/shared"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	gModel "wbrent/shared/model"
	"wbrent/shared/timezone"

	"github.com/google/uuid"
)

const (
	MessageSubscribed        = "You will be notified when the product is available"
	MessageAlreadySubscribed = "You are already on the waiting list for this product"
)

type SubscribeRequest struct {
	ProductID string `json:"productId" validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email,max=255"`
	Name      string `json:"name"      validate:"omitempty,max=120"`
}

func (r *SubscribeRequest) ToModel(user string) model.Subscription {
	now := timezone.Now()

	return model.Subscription{
		ID:        uuid.NewString(),
		ProductID: r.ProductID,
		Email:     r.Email,
		Name:      r.Name,
		Metadata:  gModel.NewMetadata(user, now),
	}
}

// PendingFilter selects the open subscriptions of a product, optionally for one address.
func PendingFilter(productID, email string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldProductID, Value: productID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldNotifiedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
	}

	if email != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

type SubscriptionResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Email       string  `json:"email"`
	Name        string  `json:"name,omitempty"`
	NotifiedAt  *string `json:"notifiedAt"`
	gDto.Metadata
}

func (r *SubscriptionResponse) FromModel(m model.Subscription) {
	r.ID = m.ID
	r.ProductID = m.ProductID
	r.ProductName = m.ProductName
	r.Email = m.Email
	r.Name = m.Name
	r.NotifiedAt = formatOptional(m.NotifiedAt)
	r.Metadata.FromModel(m.Metadata)
}

type GetSubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetSubscriptionsResponse) FromModels(models []model.Subscription, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Subscriptions = make([]SubscriptionResponse, len(models))
	for i, m := range models {
		r.Subscriptions[i].FromModel(m)
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
