package dto_test

import (
	"testing"
	"wbrent/internal/domains/contact/model"
	"wbrent/internal/domains/contact/model/dto"
	gModel "wbrent/shared/model"
	"wbrent/shared/timezone"
	"wbrent/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestCreateMessageRequest_ToModel(t *testing.T) {
	req := dto.CreateMessageRequest{
		Name:    "Anna Nowak",
		Email:   "anna@example.com",
		Subject: "Wynajem koparki",
		Message: "Czy koparka jest dostępna w sobotę?",
	}

	userID := "guest"
	model := req.ToModel(userID)

	assert.NotEmpty(t, model.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, model.Name)
	assert.Equal(t, req.Email, model.Email)
	assert.Equal(t, req.Message, model.Message)
	assert.Equal(t, "new", string(model.Status))
	assert.Equal(t, userID, model.CreatedBy)
	assert.False(t, model.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestGetMessagesResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	models := []model.Message{
		{ID: "1", Name: "A", Status: model.StatusNew, Metadata: gModel.Metadata{CreatedAt: now}},
		{ID: "2", Name: "B", Status: model.StatusReplied, Metadata: gModel.Metadata{CreatedAt: now}},
	}

	var response dto.GetMessagesResponse
	response.FromModels(models, 12, 10)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Messages, 2)
	assert.Equal(t, "replied", response.Messages[1].Status)
}

func TestUpdateMessageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "read", status: "read"},
		{name: "replied", status: "replied"},
		{name: "unknown status", status: "archived", wantErr: true},
		{name: "empty", status: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.UpdateMessageRequest{Status: tt.status}
			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
