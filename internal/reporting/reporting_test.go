package reporting

import (
	"errors"
	"testing"
	"time"
)

func TestInit_EmptyDSNDisables(t *testing.T) {
	if err := Init("", "test", "dev"); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	if Enabled() {
		t.Error("expected reporting to stay disabled without a DSN")
	}

	// Must not panic or block while disabled.
	CaptureError(errors.New("boom"), map[string]string{"endpoint": "search"})
	if !Flush(10 * time.Millisecond) {
		t.Error("Flush() should report success when disabled")
	}
}

func TestInit_InvalidDSN(t *testing.T) {
	if err := Init("not a dsn", "test", "dev"); err == nil {
		t.Fatal("expected an error for an unparsable DSN")
	}
	if Enabled() {
		t.Error("expected reporting to stay disabled after a failed Init")
	}
}
