package sendgrid_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"wbrent/config"
	"wbrent/infras/otel/mocks"
	"wbrent/infras/sendgrid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMailer(host string, enable bool) sendgrid.Mailer {
	cfg := &config.Config{}
	cfg.Mail.Enable = enable
	cfg.Mail.SendGridAPIKey = "SG.test"
	cfg.Mail.SendGridHost = host
	cfg.Mail.FromEmail = "biuro@wbrent.pl"
	cfg.Mail.FromName = "WB-Rent"

	return sendgrid.New(cfg, mocks.NewOtel())
}

var message = sendgrid.Message{
	To:        "jan@example.com",
	ToName:    "Jan Kowalski",
	Subject:   "Rezerwacja przyjęta",
	PlainText: "Dziękujemy",
	HTML:      "<p>Dziękujemy</p>",
}

func TestSend(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "accepted", status: http.StatusAccepted},
		{name: "rejected", status: http.StatusBadRequest, wantErr: true},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v3/mail/send", r.URL.Path)
				assert.Equal(t, "Bearer SG.test", r.Header.Get("Authorization"))

				var body struct {
					From struct {
						Email string `json:"email"`
					} `json:"from"`
					Subject string `json:"subject"`
				}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "biuro@wbrent.pl", body.From.Email)
				assert.Equal(t, message.Subject, body.Subject)

				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := newMailer(server.URL, true).Send(context.Background(), message)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestSendDisabled(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	err := newMailer(server.URL, false).Send(context.Background(), message)

	assert.NoError(t, err)
	assert.Zero(t, calls.Load())
}
