package email

// Provider sends transactional notifications. Sends happen off the request
// path; failures are logged by callers and never surfaced to the API client.
type Provider interface {
	SendWelcome(to, name string) error
	SendStatusUpdate(to, name, schemeName, status string) error
}

// NoopProvider is used when SMTP is not configured (local development,
// tests).
type NoopProvider struct{}

func (p *NoopProvider) SendWelcome(to, name string) error {
	return nil
}

func (p *NoopProvider) SendStatusUpdate(to, name, schemeName, status string) error {
	return nil
}
