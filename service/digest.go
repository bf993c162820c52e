package service

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"

	"docchat/model"
	"docchat/platform"
)

type DigestService struct {
}

// UsageSince counts registered users and messages exchanged after cutoff.
func (s *DigestService) UsageSince(cutoff time.Time) (int64, int64, error) {
	users, err := model.CountUsers()
	if err != nil {
		return 0, 0, err
	}
	messages, err := model.CountMessagesSince(cutoff)
	if err != nil {
		return 0, 0, err
	}
	return users, messages, nil
}

// Send mails the daily usage digest to the configured recipients.
func (s *DigestService) Send() error {
	logger.Infof("[%s] Start scheduled task DigestSend", "scheduled task")
	startTime := time.Now()

	users, messages, err := s.UsageSince(startTime.Add(-24 * time.Hour))
	if err != nil {
		logger.Warnf("[%s] collect usage error, %s", "scheduled task", err)
		return fmt.Errorf("failed to collect usage: %w", err)
	}

	e := email.NewEmail()
	e.From = platform.Cfg.DigestFrom
	e.To = strings.Split(platform.Cfg.DigestTo, ",")
	e.Subject = fmt.Sprintf("docchat daily digest %s", startTime.Format("2006-01-02"))
	e.Text = []byte(fmt.Sprintf(
		"Registered users: %d\nMessages in the last 24h: %d\n", users, messages))

	addr := fmt.Sprintf("%s:%s", platform.Cfg.SMTPHost, platform.Cfg.SMTPPort)
	auth := smtp.PlainAuth("", platform.Cfg.SMTPUser, platform.Cfg.SMTPPassword, platform.Cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		logger.Warnf("[%s] send digest mail error, %s", "scheduled task", err)
		return fmt.Errorf("failed to send digest mail: %w", err)
	}

	logger.Infof("[%s] Finished scheduled task DigestSend cost %v", "scheduled task", time.Since(startTime))
	return nil
}
