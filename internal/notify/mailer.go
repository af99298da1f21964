package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/ankitmav/venue-booking/internal/model"
)

// eventDateLayout is how event dates are rendered in mail bodies.
const eventDateLayout = "January 2, 2006"

var resetTmpl = template.Must(template.New("reset").Parse(`<h1>Password Reset</h1>
<p>Please click the link below to reset your password:</p>
<a href="{{.URL}}">{{.URL}}</a>
<p>This link will expire in 1 hour.</p>`))

var ownerTmpl = template.Must(template.New("owner").Parse(`<h1>New Booking Received</h1>
<p>A new booking has been made:</p>
<ul>
  <li>Event Type: {{.EventType}}</li>
  <li>Date: {{.Date}}</li>
  <li>Time: {{.Time}}</li>
  <li>Guests: {{.Guests}}</li>
  <li>Additional Info: {{.Info}}</li>
</ul>`))

var confirmTmpl = template.Must(template.New("confirm").Parse(`<h1>Your Booking is Confirmed</h1>
<p>Thank you for choosing us for your event!</p>
<p>Event Type: {{.EventType}}</p>
<p>Date: {{.Date}}</p>
<p>Time: {{.Time}}</p>
<p>Guests: {{.Guests}}</p>
<p>We look forward to serving you!</p>`))

// bookingData is the template input shared by the two booking mails.
type bookingData struct {
	EventType string
	Date      string
	Time      string
	Guests    int
	Info      string
}

func newBookingData(b model.Booking) bookingData {
	info := b.AdditionalInfo
	if info == "" {
		info = "None"
	}
	return bookingData{
		EventType: b.EventType,
		Date:      b.EventDate.Format(eventDateLayout),
		Time:      b.EventTime,
		Guests:    b.Guests,
		Info:      info,
	}
}

// SMTPMailer implements Mailer over a plain SMTP relay. Auth is skipped when
// no username is configured, which is how local relays like mailhog run.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, Username: username, Password: password, From: from}
}

// SendPasswordReset mails the reset link to the user.
func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, resetURL string) error {
	return m.send(to, "Reset Your Password", resetTmpl, struct{ URL string }{resetURL})
}

// SendOwnerNewBooking notifies the venue owner that a booking came in.
func (m *SMTPMailer) SendOwnerNewBooking(_ context.Context, to string, b model.Booking) error {
	return m.send(to, "New Booking Notification", ownerTmpl, newBookingData(b))
}

// SendBookingConfirmed tells the booking's owner their event is confirmed.
func (m *SMTPMailer) SendBookingConfirmed(_ context.Context, to string, b model.Booking) error {
	return m.send(to, "Booking Confirmation", confirmTmpl, newBookingData(b))
}

func (m *SMTPMailer) send(to, subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("mailer: render %s: %w", tmpl.Name(), err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	var a smtp.Auth
	if m.Username != "" {
		a = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	if err := smtp.SendMail(m.Host+":"+m.Port, a, m.From, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}
