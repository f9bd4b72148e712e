package service

import (
	"bytes"
	"fmt"
	htmlTemplate "html/template"
	textTemplate "text/template"
	"wbrent/infras/sendgrid"
	resModel "wbrent/internal/domains/reservation/model"
	"wbrent/shared/constant"
)

type letter struct {
	subject string
	plain   *textTemplate.Template
	html    *htmlTemplate.Template
}

func newLetter(name, subject, plain, html string) letter {
	return letter{
		subject: subject,
		plain:   textTemplate.Must(textTemplate.New(name).Funcs(textTemplate.FuncMap(funcs)).Parse(plain)),
		html:    htmlTemplate.Must(htmlTemplate.New(name).Funcs(funcs).Parse(html)),
	}
}

func (l letter) render(to, toName string, data any) (sendgrid.Message, error) {
	var plain, html bytes.Buffer

	if err := l.plain.Execute(&plain, data); err != nil {
		return sendgrid.Message{}, fmt.Errorf("failed to render %s plain text: %w", l.plain.Name(), err)
	}

	if err := l.html.Execute(&html, data); err != nil {
		return sendgrid.Message{}, fmt.Errorf("failed to render %s html: %w", l.html.Name(), err)
	}

	subject, err := renderSubject(l.subject, data)
	if err != nil {
		return sendgrid.Message{}, err
	}

	return sendgrid.Message{
		To:        to,
		ToName:    toName,
		Subject:   subject,
		PlainText: plain.String(),
		HTML:      html.String(),
	}, nil
}

func renderSubject(subject string, data any) (string, error) {
	var buf bytes.Buffer

	tmpl, err := textTemplate.New("subject").Funcs(textTemplate.FuncMap(funcs)).Parse(subject)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to parse subject: %w", err)
	}

	if err = tmpl.Execute(&buf, data); err != nil {
		return constant.Empty, fmt.Errorf("failed to render subject: %w", err)
	}

	return buf.String(), nil
}

var statusLabels = map[resModel.Status]string{
	resModel.StatusPending:   "oczekuje na potwierdzenie",
	resModel.StatusConfirmed: "potwierdzona",
	resModel.StatusPickedUp:  "sprzęt wydany",
	resModel.StatusReturned:  "sprzęt zwrócony",
	resModel.StatusCompleted: "zakończona",
	resModel.StatusRejected:  "odrzucona",
	resModel.StatusCancelled: "anulowana",
}

var funcs = htmlTemplate.FuncMap{
	"pln": formatPLN,
	"date": func(r resModel.Reservation) string {
		return r.StartDate.Format(constant.DateOnlyFormat)
	},
	"returnDate": func(r resModel.Reservation) string {
		return r.EndDate.Format(constant.DateOnlyFormat)
	},
	"status": func(status resModel.Status) string {
		if label, ok := statusLabels[status]; ok {
			return label
		}

		return string(status)
	},
}

// formatPLN renders an amount in grosze, e.g. 22500 as "225,00 zł".
func formatPLN(amount int64) string {
	sign := constant.Empty
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return fmt.Sprintf("%s%d,%02d zł", sign, amount/100, amount%100)
}

var (
	reservationCreatedLetter = newLetter("reservation_created",
		"Rezerwacja {{.Reservation.ProductName}} przyjęta",
		`Dzień dobry {{.Reservation.FirstName}},

otrzymaliśmy rezerwację {{.Reservation.ProductName}} od {{date .Reservation}} do {{returnDate .Reservation}} ({{.Reservation.Days}} dni).
Do zapłaty: {{pln .Reservation.TotalPrice}}.
Potwierdzimy ją wkrótce.

Numer rezerwacji: {{.Reservation.ID}}
`,
		`<p>Dzień dobry {{.Reservation.FirstName}},</p>
<p>otrzymaliśmy rezerwację <strong>{{.Reservation.ProductName}}</strong> od {{date .Reservation}} do {{returnDate .Reservation}} ({{.Reservation.Days}} dni).</p>
<p>Do zapłaty: <strong>{{pln .Reservation.TotalPrice}}</strong>. Potwierdzimy ją wkrótce.</p>
<p>Numer rezerwacji: {{.Reservation.ID}}</p>`)

	adminReservationLetter = newLetter("admin_reservation",
		"Nowa rezerwacja: {{.Reservation.ProductName}} {{date .Reservation}}",
		`{{.Reservation.FirstName}} {{.Reservation.LastName}} <{{.Reservation.Email}}>, tel. {{.Reservation.Phone}}
{{.Reservation.ProductName}}: {{date .Reservation}} - {{returnDate .Reservation}}, {{.Reservation.Days}} dni, {{pln .Reservation.TotalPrice}}
{{if .Reservation.Delivery}}Dostawa: {{.Reservation.Address}} {{.Reservation.City}} ({{.Reservation.DistanceStatus}}){{end}}
{{.Reservation.Notes}}
`,
		`<p>{{.Reservation.FirstName}} {{.Reservation.LastName}} &lt;{{.Reservation.Email}}&gt;, tel. {{.Reservation.Phone}}</p>
<p>{{.Reservation.ProductName}}: {{date .Reservation}} - {{returnDate .Reservation}}, {{.Reservation.Days}} dni, {{pln .Reservation.TotalPrice}}</p>
{{if .Reservation.Delivery}}<p>Dostawa: {{.Reservation.Address}} {{.Reservation.City}} ({{.Reservation.DistanceStatus}})</p>{{end}}
<p>{{.Reservation.Notes}}</p>`)

	statusChangedLetter = newLetter("status_changed",
		"Rezerwacja {{.Reservation.ProductName}}: {{status .Reservation.Status}}",
		`Dzień dobry {{.Reservation.FirstName}},

status rezerwacji {{.Reservation.ProductName}} ({{date .Reservation}} - {{returnDate .Reservation}}) zmienił się z "{{status .From}}" na "{{status .Reservation.Status}}".
`,
		`<p>Dzień dobry {{.Reservation.FirstName}},</p>
<p>status rezerwacji <strong>{{.Reservation.ProductName}}</strong> ({{date .Reservation}} - {{returnDate .Reservation}}) zmienił się z „{{status .From}}” na „<strong>{{status .Reservation.Status}}</strong>”.</p>`)

	pickupReminderLetter = newLetter("pickup_reminder",
		"Przypomnienie: odbiór {{.Reservation.ProductName}} {{date .Reservation}}",
		`Dzień dobry {{.Reservation.FirstName}},

przypominamy o odbiorze {{.Reservation.ProductName}} w dniu {{date .Reservation}}{{with .Reservation.StartTime}} o godzinie {{.}}{{end}}.
`,
		`<p>Dzień dobry {{.Reservation.FirstName}},</p>
<p>przypominamy o odbiorze <strong>{{.Reservation.ProductName}}</strong> w dniu {{date .Reservation}}{{with .Reservation.StartTime}} o godzinie {{.}}{{end}}.</p>`)

	stockAvailableLetter = newLetter("stock_available",
		"{{.Subscription.ProductName}} jest znów dostępny",
		`Dzień dobry{{with .Subscription.Name}} {{.}}{{end}},

{{.Subscription.ProductName}} zwolnił się i można go ponownie zarezerwować.
`,
		`<p>Dzień dobry{{with .Subscription.Name}} {{.}}{{end}},</p>
<p><strong>{{.Subscription.ProductName}}</strong> zwolnił się i można go ponownie zarezerwować.</p>`)

	contactReceivedLetter = newLetter("contact_received",
		"Wiadomość od {{.Message.Name}}{{with .Message.Subject}}: {{.}}{{end}}",
		`{{.Message.Name}} <{{.Message.Email}}>{{with .Message.Phone}}, tel. {{.}}{{end}}

{{.Message.Message}}
`,
		`<p>{{.Message.Name}} &lt;{{.Message.Email}}&gt;{{with .Message.Phone}}, tel. {{.}}{{end}}</p>
<p>{{.Message.Message}}</p>`)
)
