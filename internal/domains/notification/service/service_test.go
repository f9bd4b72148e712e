package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"wbrent/config"
	"wbrent/infras/otel/mocks"
	"wbrent/infras/sendgrid"
	sendgridMocks "wbrent/infras/sendgrid/mocks"
	contactModel "wbrent/internal/domains/contact/model"
	"wbrent/internal/domains/notification/service"
	resModel "wbrent/internal/domains/reservation/model"
	stockModel "wbrent/internal/domains/stocknotify/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func reservation() resModel.Reservation {
	startTime := "09:00"

	return resModel.Reservation{
		ID:          "c1f0e3a2-0000-4000-8000-000000000001",
		ProductName: "Minikoparka 1,8 t",
		FirstName:   "Jan",
		LastName:    "Kowalski",
		Email:       "jan@example.com",
		Phone:       "600100200",
		StartDate:   time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC),
		StartTime:   &startTime,
		Days:        3,
		TotalPrice:  22500,
		Status:      resModel.StatusConfirmed,
	}
}

func newNotifier(ctrl *gomock.Controller, adminEmail string) (service.Notifier, *sendgridMocks.MockMailer) {
	mailer := sendgridMocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	cfg.Mail.AdminEmail = adminEmail
	cfg.Mail.FromName = "WB-Rent"

	return service.New(mailer, cfg, mocks.NewOtel()), mailer
}

func TestReservationCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier, mailer := newNotifier(ctrl, "biuro@wbrent.pl")

	var (
		mu   sync.Mutex
		sent []sendgrid.Message
	)

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(func(_ context.Context, message sendgrid.Message) error {
		mu.Lock()
		defer mu.Unlock()

		sent = append(sent, message)

		return nil
	})

	notifier.ReservationCreated(context.Background(), reservation())
	notifier.Wait()

	recipients := []string{sent[0].To, sent[1].To}
	assert.ElementsMatch(t, []string{"jan@example.com", "biuro@wbrent.pl"}, recipients)

	for _, message := range sent {
		if message.To != "jan@example.com" {
			continue
		}

		assert.Equal(t, "Jan Kowalski", message.ToName)
		assert.Equal(t, "Rezerwacja Minikoparka 1,8 t przyjęta", message.Subject)
		assert.Contains(t, message.PlainText, "od 2026-05-08 do 2026-05-11 (3 dni)")
		assert.Contains(t, message.PlainText, "225,00 zł")
		assert.Contains(t, message.HTML, "<strong>225,00 zł</strong>")
	}
}

func TestReservationCreatedWithoutAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier, mailer := newNotifier(ctrl, "")

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	notifier.ReservationCreated(context.Background(), reservation())
	notifier.Wait()
}

func TestStatusChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier, mailer := newNotifier(ctrl, "")

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, message sendgrid.Message) error {
		assert.Equal(t, "Rezerwacja Minikoparka 1,8 t: potwierdzona", message.Subject)
		assert.Contains(t, message.PlainText, `z "oczekuje na potwierdzenie" na "potwierdzona"`)

		return nil
	})

	notifier.StatusChanged(context.Background(), reservation(), resModel.StatusPending)
	notifier.Wait()
}

func TestPickupReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier, mailer := newNotifier(ctrl, "")

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, message sendgrid.Message) error {
		assert.Contains(t, message.PlainText, "w dniu 2026-05-08 o godzinie 09:00")

		return errors.New("sendgrid down")
	})

	notifier.PickupReminder(context.Background(), reservation())
	notifier.Wait()
}

func TestStockAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier, mailer := newNotifier(ctrl, "")

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, message sendgrid.Message) error {
		assert.Equal(t, "ola@example.com", message.To)
		assert.Equal(t, "Zagęszczarka jest znów dostępny", message.Subject)
		assert.Contains(t, message.PlainText, "Dzień dobry Ola,")

		return nil
	})

	notifier.StockAvailable(context.Background(), stockModel.Subscription{
		ProductName: "Zagęszczarka",
		Email:       "ola@example.com",
		Name:        "Ola",
	})
	notifier.Wait()
}

func TestContactReceived(t *testing.T) {
	message := contactModel.Message{
		ID:      "m-1",
		Name:    "Anna",
		Email:   "anna@example.com",
		Message: "<script>alert(1)</script>",
	}

	t.Run("forwarded to admin with escaped html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier, mailer := newNotifier(ctrl, "biuro@wbrent.pl")

		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sent sendgrid.Message) error {
			assert.Equal(t, "biuro@wbrent.pl", sent.To)
			assert.Equal(t, "Wiadomość od Anna", sent.Subject)
			assert.NotContains(t, sent.HTML, "<script>")

			return nil
		})

		notifier.ContactReceived(context.Background(), message)
		notifier.Wait()
	})

	t.Run("skipped without admin address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier, _ := newNotifier(ctrl, "")

		notifier.ContactReceived(context.Background(), message)
		notifier.Wait()
	})
}
