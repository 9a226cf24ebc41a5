package mail

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func schedule() []entity.Payment {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	ps, _ := entity.GeneratePayments(start, 150000, 3)
	return ps
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 1,05", FormatBRL(105))
	assert.Equal(t, "R$ 1.500,00", FormatBRL(150000))
	assert.Equal(t, "R$ 1.234.567,89", FormatBRL(123456789))
	assert.Equal(t, "-R$ 10,00", FormatBRL(-1000))
}

func TestRenderSchedule(t *testing.T) {
	body, err := RenderSchedule("Clínica <Sorriso>", schedule())

	require.NoError(t, err)
	assert.Contains(t, body, "Clínica &lt;Sorriso&gt;")
	assert.Contains(t, body, "10/03/2024")
	assert.Contains(t, body, "R$ 4.500,00")
}

func TestSendPaymentSchedule(t *testing.T) {
	d := &fakeDialer{}
	s := NewEmailSender("smtp.local", 587, "u", "p", "crm@local")
	s.dialer = d

	err := s.SendPaymentSchedule("cliente@x.com", "Ana", schedule())

	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"cliente@x.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"crm@local"}, d.sent[0].GetHeader("From"))
}

func TestSendPaymentScheduleSMTPError(t *testing.T) {
	s := NewEmailSender("smtp.local", 587, "u", "p", "crm@local")
	s.dialer = &fakeDialer{err: errors.New("auth failed")}

	err := s.SendPaymentSchedule("cliente@x.com", "Ana", schedule())

	assert.ErrorContains(t, err, "auth failed")
}
