package mail

import (
	"bytes"
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Credito-api/internal/domain/entity"
	"github.com/jhoicas/Credito-api/pkg/config"
	"github.com/jhoicas/Credito-api/pkg/logger"
)

func testSender(buf *bytes.Buffer, send sendFunc) *Sender {
	s := NewSender(config.SMTPConfig{
		Host: "smtp.local", Port: 587, Username: "u", Password: "p", From: "no-reply@credito.local",
	}, "Credito API", logger.NewWithWriter(buf, "debug"))
	s.send = send
	s.async = false
	return s
}

func TestSendWelcome_ArmaElCorreo(t *testing.T) {
	var got *email.Email
	var gotAddr string
	var buf bytes.Buffer
	s := testSender(&buf, func(e *email.Email, addr string, auth smtp.Auth) error {
		got, gotAddr = e, addr
		assert.NotNil(t, auth)
		return nil
	})

	err := s.SendWelcome(context.Background(), &entity.Customer{ID: 7, FirstName: "Gabriel", Email: "gabriel@email.com"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "smtp.local:587", gotAddr)
	assert.Equal(t, []string{"gabriel@email.com"}, got.To)
	assert.Equal(t, "no-reply@credito.local", got.From)
	assert.Equal(t, "Bienvenido a Credito API", got.Subject)
	assert.Contains(t, string(got.Text), "Hola Gabriel")
	assert.Contains(t, string(got.Text), "7.")
	assert.Contains(t, buf.String(), "correo enviado")
}

func TestSendWelcome_ErrorSMTP(t *testing.T) {
	var buf bytes.Buffer
	s := testSender(&buf, func(*email.Email, string, smtp.Auth) error {
		return errors.New("connection refused")
	})

	err := s.SendWelcome(context.Background(), &entity.Customer{ID: 1, Email: "a@b.com"})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "connection refused")
}

func TestSendWelcome_SinEmail(t *testing.T) {
	var buf bytes.Buffer
	s := testSender(&buf, func(*email.Email, string, smtp.Auth) error {
		t.Fatal("no debe enviar")
		return nil
	})
	assert.Error(t, s.SendWelcome(context.Background(), &entity.Customer{ID: 1}))
}

func TestSendWelcome_AsincronoNoBloquea(t *testing.T) {
	var buf bytes.Buffer
	sent := make(chan string, 1)
	s := testSender(&buf, func(e *email.Email, _ string, _ smtp.Auth) error {
		sent <- e.To[0]
		return nil
	})
	s.async = true

	require.NoError(t, s.SendWelcome(context.Background(), &entity.Customer{ID: 3, Email: "x@y.com"}))
	select {
	case to := <-sent:
		assert.Equal(t, "x@y.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("el correo no se despachó")
	}
}
