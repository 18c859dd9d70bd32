// Package mail envía correos transaccionales por SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"

	"github.com/jhoicas/Credito-api/internal/application/customer"
	"github.com/jhoicas/Credito-api/internal/domain/entity"
	"github.com/jhoicas/Credito-api/pkg/config"
	"github.com/jhoicas/Credito-api/pkg/logger"
)

var _ customer.WelcomeNotifier = (*Sender)(nil)

// sendTimeout tope para un envío en segundo plano.
const sendTimeout = 30 * time.Second

type sendFunc func(e *email.Email, addr string, auth smtp.Auth) error

// Sender envía el correo de bienvenida. El envío corre en una goroutine:
// el alta del cliente no espera al servidor SMTP.
type Sender struct {
	cfg   config.SMTPConfig
	app   string
	log   *logger.Logger
	send  sendFunc
	async bool
}

// NewSender construye el sender. app es el nombre que firma los correos.
func NewSender(cfg config.SMTPConfig, app string, log *logger.Logger) *Sender {
	if log == nil {
		log = logger.Nop()
	}
	return &Sender{
		cfg:   cfg,
		app:   app,
		log:   log.Named("mail"),
		send:  func(e *email.Email, addr string, auth smtp.Auth) error { return e.Send(addr, auth) },
		async: true,
	}
}

// SendWelcome arma el correo y lo despacha. En modo asíncrono siempre devuelve nil;
// los fallos quedan en el log.
func (s *Sender) SendWelcome(ctx context.Context, c *entity.Customer) error {
	if c == nil || c.Email == "" {
		return fmt.Errorf("mail: cliente sin email")
	}
	e := s.welcomeEmail(c)
	if !s.async {
		return s.deliver(ctx, e, c.ID)
	}
	go func() {
		bg, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		_ = s.deliver(bg, e, c.ID)
	}()
	return nil
}

func (s *Sender) welcomeEmail(c *entity.Customer) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.From
	e.To = []string{c.Email}
	e.Subject = fmt.Sprintf("Bienvenido a %s", s.app)

	body := fmt.Sprintf("Hola %s,\n\n", c.FirstName)
	body += "Tu registro fue completado. Ya puedes solicitar créditos con tu número de cliente: "
	body += fmt.Sprintf("%d.\n", c.ID)
	body += "\nSaludos,\n" + s.app
	e.Text = []byte(body)
	return e
}

func (s *Sender) deliver(ctx context.Context, e *email.Email, customerID int64) error {
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	done := make(chan error, 1)
	go func() { done <- s.send(e, s.cfg.Addr(), auth) }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		s.log.Error().Err(err).Int64("customer_id", customerID).Strs("to", e.To).Msg("error enviando correo")
		return fmt.Errorf("mail: enviar correo: %w", err)
	}
	s.log.Info().Int64("customer_id", customerID).Str("subject", e.Subject).Msg("correo enviado")
	return nil
}
