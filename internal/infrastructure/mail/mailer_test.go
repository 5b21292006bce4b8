package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/stonecrusher-api/pkg/config"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSMTPMailer_Send(t *testing.T) {
	d := &fakeDialer{}
	m := &SMTPMailer{dialer: d, from: "no-reply@plant.test", log: logger.Nop()}

	err := m.Send(context.Background(), []string{"partner1@example.com", "partner2@example.com"}, "Daily Business Summary", "Sales: ₹10,000")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"partner1@example.com", "partner2@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Daily Business Summary"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no-reply@plant.test")
}

func TestSMTPMailer_SinDestinatarios(t *testing.T) {
	d := &fakeDialer{err: errors.New("no debería llamarse")}
	m := &SMTPMailer{dialer: d, from: "x@y.z", log: logger.Nop()}
	assert.NoError(t, m.Send(context.Background(), nil, "s", "b"))
}

func TestSMTPMailer_ErrorDeEnvio(t *testing.T) {
	d := &fakeDialer{err: errors.New("connection refused")}
	m := &SMTPMailer{dialer: d, from: "x@y.z", log: logger.Nop()}
	err := m.Send(context.Background(), []string{"a@b.c"}, "Password Reset", "link")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNew_EligeAdaptador(t *testing.T) {
	_, isLog := New(config.MailConfig{}, logger.Nop()).(*LogMailer)
	assert.True(t, isLog)
	_, isSMTP := New(config.MailConfig{Host: "smtp.test", Port: 587}, logger.Nop()).(*SMTPMailer)
	assert.True(t, isSMTP)
}
