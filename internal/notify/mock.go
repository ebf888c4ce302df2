package notify

import (
	"context"
	"log"
)

// Mock implements the Notifier interface by logging messages to stdout.
// Used when no mail API key is configured, and in tests.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Publish(ctx context.Context, message string) error {
	log.Printf("📨 [MockNotifier] %s", message)
	return nil
}
