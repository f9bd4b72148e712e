package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"wbrent/config"
	"wbrent/infras/otel/mocks"
	notificationMocks "wbrent/internal/domains/notification/mocks"
	productMocks "wbrent/internal/domains/product/mocks"
	stockMocks "wbrent/internal/domains/stocknotify/mocks"
	"wbrent/internal/domains/stocknotify/model"
	"wbrent/internal/domains/stocknotify/model/dto"
	"wbrent/internal/domains/stocknotify/repository"
	"wbrent/internal/domains/stocknotify/service"
	gDto "wbrent/shared/dto"
	"wbrent/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.StockNotification, *stockMocks.MockSubscription, *productMocks.MockProduct, *notificationMocks.MockNotifier) {
	ctrl := gomock.NewController(t)

	repo := stockMocks.NewMockSubscription(ctrl)
	products := productMocks.NewMockProduct(ctrl)
	notifier := notificationMocks.NewMockNotifier(ctrl)

	return service.New(repo, products, notifier, &config.Config{}, mocks.NewOtel()), repo, products, notifier
}

func TestStockNotificationService_Subscribe(t *testing.T) {
	req := dto.SubscribeRequest{ProductID: "zageszczarka", Email: "ola@example.com", Name: "Ola"}

	tests := []struct {
		name        string
		setupMock   func(repo *stockMocks.MockSubscription, products *productMocks.MockProduct)
		wantCreated bool
		wantCode    int
	}{
		{
			name: "new subscription",
			setupMock: func(repo *stockMocks.MockSubscription, products *productMocks.MockProduct) {
				products.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), dto.PendingFilter(req.ProductID, req.Email)).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.Subscription) error {
					assert.Equal(t, req.ProductID, m.ProductID)
					assert.Nil(t, m.NotifiedAt)

					return nil
				})
			},
			wantCreated: true,
		},
		{
			name: "already waiting",
			setupMock: func(repo *stockMocks.MockSubscription, products *productMocks.MockProduct) {
				products.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "lost the race to a duplicate insert",
			setupMock: func(repo *stockMocks.MockSubscription, products *productMocks.MockProduct) {
				products.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(repository.ErrAlreadySubscribed)
			},
		},
		{
			name: "unknown product",
			setupMock: func(_ *stockMocks.MockSubscription, products *productMocks.MockProduct) {
				products.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "database error",
			setupMock: func(repo *stockMocks.MockSubscription, products *productMocks.MockProduct) {
				products.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, products, _ := newService(t)
			tt.setupMock(repo, products)

			created, err := svc.Subscribe(context.Background(), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
		})
	}
}

func TestStockNotificationService_NotifyReleased(t *testing.T) {
	svc, repo, _, notifier := newService(t)

	waiting := []model.Subscription{
		{ID: "s-1", ProductID: "zageszczarka", Email: "a@example.com"},
		{ID: "s-2", ProductID: "zageszczarka", Email: "b@example.com"},
		{ID: "s-3", ProductID: "zageszczarka", Email: "c@example.com"},
	}

	repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, dto.PendingFilter("zageszczarka", "")).Return(waiting, nil)
	repo.EXPECT().MarkNotified(gomock.Any(), "s-1", gomock.Any()).Return(true, nil)
	repo.EXPECT().MarkNotified(gomock.Any(), "s-2", gomock.Any()).Return(false, nil)
	repo.EXPECT().MarkNotified(gomock.Any(), "s-3", gomock.Any()).Return(true, nil)
	notifier.EXPECT().StockAvailable(gomock.Any(), waiting[0])
	notifier.EXPECT().StockAvailable(gomock.Any(), waiting[2])

	notified, err := svc.NotifyReleased(context.Background(), "zageszczarka")

	require.NoError(t, err)
	assert.Equal(t, 2, notified)
}

func TestStockNotificationService_GetAll(t *testing.T) {
	svc, repo, _, _ := newService(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Subscription{{ID: "s-1", ProductName: "Zagęszczarka"}}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "Zagęszczarka", res.Subscriptions[0].ProductName)
	assert.Nil(t, res.Subscriptions[0].NotifiedAt)
}
