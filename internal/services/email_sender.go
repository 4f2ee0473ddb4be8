package services

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
	"github.com/sirupsen/logrus"
)

// logSender is the default EmailSender: no message leaves the process.
// The confirmation service already logs the diagnostic lines, so this
// only records that the document was discarded.
type logSender struct {
	logger *logrus.Logger
}

// NewLogEmailSender creates a sender that discards messages
func NewLogEmailSender(logger *logrus.Logger) EmailSender {
	if logger == nil {
		logger = logrus.New()
	}
	return &logSender{logger: logger}
}

func (s *logSender) Enviar(_ context.Context, destinatario, assunto, _ string) error {
	s.logger.WithFields(logrus.Fields{
		"destinatario": destinatario,
		"assunto":      assunto,
	}).Debug("Envio de email desativado, mensagem descartada")
	return nil
}

// resendSender delivers confirmation emails through the Resend API.
// Wired only when EMAIL_ENVIO_ATIVO is set and a key is configured.
type resendSender struct {
	client    *resend.Client
	remetente string
	logger    *logrus.Logger
}

// NewResendEmailSender creates a sender backed by Resend
func NewResendEmailSender(apiKey, remetente string, logger *logrus.Logger) EmailSender {
	if logger == nil {
		logger = logrus.New()
	}
	return &resendSender{
		client:    resend.NewClient(apiKey),
		remetente: remetente,
		logger:    logger,
	}
}

func (s *resendSender) Enviar(_ context.Context, destinatario, assunto, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.remetente,
		To:      []string{destinatario},
		Subject: assunto,
		Html:    html,
	}

	enviado, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"destinatario": destinatario,
			"error":        err.Error(),
		}).Error("Falha ao enviar email")
		return fmt.Errorf("falha ao enviar email: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"destinatario": destinatario,
		"email_id":     enviado.Id,
	}).Info("Email de confirmação enviado")
	return nil
}
