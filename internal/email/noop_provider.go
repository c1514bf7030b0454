package email

import "careerlink_backend/internal/logger"

// NoopProvider - заглушка для окружений без SMTP (dev, тесты).
// Пишет факт отправки в лог и ничего не шлет.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(email *Email) error {
	logger.Debug("email suppressed (noop provider)", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendWelcome(to, firstName string) error {
	logger.Debug("welcome email suppressed (noop provider)", "to", to)
	return nil
}

func (p *NoopProvider) Close() error {
	return nil
}
