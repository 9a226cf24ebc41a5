package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

var scheduleTemplate = template.Must(template.ParseFS(templatesFS, "templates/payment_schedule.html"))

type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// SendPaymentSchedule manda ao cliente a lista de parcelas geradas.
func (s *EmailSender) SendPaymentSchedule(to, clientName string, payments []entity.Payment) error {
	body, err := RenderSchedule(clientName, payments)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s, seu cronograma de pagamentos 📅", clientName))
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}

func RenderSchedule(clientName string, payments []entity.Payment) (string, error) {
	data := ScheduleEmailData{ClientName: clientName}
	var total int64
	for i, p := range payments {
		total += p.Amount
		data.Rows = append(data.Rows, ScheduleRow{
			Number:  i + 1,
			DueDate: p.DueDate.Format("02/01/2006"),
			Amount:  FormatBRL(p.Amount),
		})
	}
	data.Total = FormatBRL(total)

	var body bytes.Buffer
	if err := scheduleTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

// FormatBRL formata centavos como "R$ 1.234,56".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	reais := fmt.Sprintf("%d", cents/100)

	var b strings.Builder
	for i, r := range reais {
		if i > 0 && (len(reais)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), cents%100)
}
