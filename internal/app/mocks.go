package app

import "crewlink_backend/internal/email"

// MockEmailProvider is used for tests and local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(email *email.Email) error { return nil }
