package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"sync"
	"wbrent/config"
	"wbrent/infras/otel"
	"wbrent/infras/sendgrid"
	contactModel "wbrent/internal/domains/contact/model"
	resModel "wbrent/internal/domains/reservation/model"
	stockModel "wbrent/internal/domains/stocknotify/model"
	"wbrent/shared/constant"

	"github.com/rs/zerolog/log"
)

// Notifier sends transactional email. Every method returns immediately; the
// send happens in the background and failures are only logged.
type Notifier interface {
	ReservationCreated(ctx context.Context, reservation resModel.Reservation)
	StatusChanged(ctx context.Context, reservation resModel.Reservation, from resModel.Status)
	PickupReminder(ctx context.Context, reservation resModel.Reservation)
	StockAvailable(ctx context.Context, subscription stockModel.Subscription)
	ContactReceived(ctx context.Context, message contactModel.Message)
	// Wait blocks until every queued send has finished.
	Wait()
}

type serviceImpl struct {
	mailer  sendgrid.Mailer
	cfg     *config.Config
	otel    otel.Otel
	pending sync.WaitGroup
}

func New(mailer sendgrid.Mailer, cfg *config.Config, otel otel.Otel) Notifier {
	return &serviceImpl{
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

type reservationData struct {
	Reservation resModel.Reservation
	From        resModel.Status
}

func (s *serviceImpl) ReservationCreated(ctx context.Context, reservation resModel.Reservation) {
	data := reservationData{Reservation: reservation}

	s.send(ctx, reservationCreatedLetter, reservation.Email, reservation.FullName(), data)

	if s.cfg.Mail.AdminEmail != constant.Empty {
		s.send(ctx, adminReservationLetter, s.cfg.Mail.AdminEmail, s.cfg.Mail.FromName, data)
	}
}

func (s *serviceImpl) StatusChanged(ctx context.Context, reservation resModel.Reservation, from resModel.Status) {
	s.send(ctx, statusChangedLetter, reservation.Email, reservation.FullName(), reservationData{Reservation: reservation, From: from})
}

func (s *serviceImpl) PickupReminder(ctx context.Context, reservation resModel.Reservation) {
	s.send(ctx, pickupReminderLetter, reservation.Email, reservation.FullName(), reservationData{Reservation: reservation})
}

func (s *serviceImpl) StockAvailable(ctx context.Context, subscription stockModel.Subscription) {
	data := struct{ Subscription stockModel.Subscription }{subscription}

	s.send(ctx, stockAvailableLetter, subscription.Email, subscription.Name, data)
}

func (s *serviceImpl) ContactReceived(ctx context.Context, message contactModel.Message) {
	if s.cfg.Mail.AdminEmail == constant.Empty {
		log.Warn().Str("messageId", message.ID).Msg("no admin email configured, contact message not forwarded")

		return
	}

	data := struct{ Message contactModel.Message }{message}

	s.send(ctx, contactReceivedLetter, s.cfg.Mail.AdminEmail, s.cfg.Mail.FromName, data)
}

func (s *serviceImpl) Wait() {
	s.pending.Wait()
}

func (s *serviceImpl) send(ctx context.Context, l letter, to, toName string, data any) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.End()

	scope.SetAttribute("mail.letter", l.plain.Name())

	message, err := l.render(to, toName, data)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("letter", l.plain.Name()).Msg("failed to render email")

		return
	}

	s.pending.Add(1)

	go func() {
		defer s.pending.Done()

		c := context.WithoutCancel(ctx)

		if err := s.mailer.Send(c, message); err != nil {
			log.Error().Err(err).Str("letter", l.plain.Name()).Str("to", to).Msg("failed to send email")
		}
	}()
}
