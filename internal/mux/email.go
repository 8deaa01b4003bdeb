package mux

import (
	"doublelife-server/internal/config"
	"doublelife-server/internal/email"

	"github.com/sirupsen/logrus"
)

type emailSender interface {
	SendPasswordReset(to, url string) error
	SendVerification(to, displayName, url string) error
}

func newEmailSender() emailSender {
	cfg := config.Instance().Email
	if cfg.Disable || cfg.Host == "" {
		logrus.Warn("email is not configured; account links will only be logged")
		return logEmailSender{}
	}

	client, err := email.NewClient(cfg.From, cfg.Sender, cfg.Username, cfg.Password, cfg.Host)
	if err != nil {
		logrus.WithError(err).Fatal("could not create email client")
	}

	return client
}

// logEmailSender writes the link to the log instead of sending mail.
// Lets a local install verify accounts without an SMTP server.
type logEmailSender struct{}

func (logEmailSender) SendPasswordReset(to, url string) error {
	logrus.WithField("to", to).WithField("url", url).Info("password reset link")
	return nil
}

func (logEmailSender) SendVerification(to, displayName, url string) error {
	logrus.WithField("to", to).WithField("url", url).Info("account verification link")
	return nil
}
