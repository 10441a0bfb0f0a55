package rabbitmq

import (
	"errors"
	"testing"

	"portal-srv/pkg/rabbitmq"
)

type fakeConnection struct {
	closed bool
	ready  bool
}

func (f *fakeConnection) Close()        { f.closed = true }
func (f *fakeConnection) IsReady() bool { return f.ready }
func (f *fakeConnection) Channel() (rabbitmq.IChannel, error) {
	return nil, errors.New("connection closed")
}

func resetSingleton() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	initErr = nil
}

func TestDisconnect(t *testing.T) {
	t.Run("no connection is a no-op", func(t *testing.T) {
		resetSingleton()
		if err := Disconnect(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("closes and resets the singleton", func(t *testing.T) {
		resetSingleton()
		conn := &fakeConnection{ready: true}
		mu.Lock()
		instance = conn
		mu.Unlock()

		if err := Disconnect(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !conn.closed {
			t.Error("underlying connection was not closed")
		}
		if err := HealthCheck(); err == nil {
			t.Error("health check should fail after disconnect")
		}
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("not initialized", func(t *testing.T) {
		resetSingleton()
		if err := HealthCheck(); err == nil {
			t.Fatal("expected error when not initialized")
		}
	})

	t.Run("closed connection", func(t *testing.T) {
		resetSingleton()
		mu.Lock()
		instance = &fakeConnection{ready: false}
		mu.Unlock()
		defer resetSingleton()

		if err := HealthCheck(); err == nil {
			t.Fatal("expected error for closed connection")
		}
	})
}
