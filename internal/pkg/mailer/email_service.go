package mailer

import (
	"fmt"
	"html"
	"io"

	"plagiarismpro-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReport(toEmail, title, fileName string, pdf []byte) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		logger:      log,
	}
}

func (s *emailService) SendReport(toEmail, title, fileName string, pdf []byte) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Plagiarism report: %s", title))
	m.SetBody("text/html", reportBody(title))
	m.Attach(fileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send report", map[string]interface{}{
			"to":    toEmail,
			"error": err,
		})
		return fmt.Errorf("send report email: %w", err)
	}

	s.logger.Info("MAILER", "Report sent", map[string]interface{}{"to": toEmail, "title": title})
	return nil
}

func reportBody(title string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your PlagiarismPro report</h2>
			<p>The analysis report for <strong>%s</strong> is attached to this email.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, html.EscapeString(title))
}

// logEmailService only records the send. Used when SMTP is not configured.
type logEmailService struct {
	logger logger.ILogger
}

func NewLogEmailService(log logger.ILogger) IEmailService {
	return &logEmailService{logger: log}
}

func (s *logEmailService) SendReport(toEmail, title, fileName string, pdf []byte) error {
	s.logger.Info("MAILER", "Simulated report email", map[string]interface{}{
		"to":         toEmail,
		"title":      title,
		"attachment": fileName,
		"bytes":      len(pdf),
	})
	return nil
}
