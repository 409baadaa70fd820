package service

import "portfolio/logger"

// MailSender delivers account mail. SMTP transport is provided by the
// deployment; the default implementation only logs.
type MailSender interface {
	Send(to, subject, body string) error
}

// LogMailSender writes outgoing mail to the log instead of delivering it.
type LogMailSender struct{}

func (LogMailSender) Send(to, subject, body string) error {
	logger.Infof("mail to %s: %s", to, subject)
	logger.Debug(body)
	return nil
}
