package app

import (
	"bytes"
	"sync"
	"testing"

	"github.com/specialistvlad/tfrtopts/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest validates cfg and creates an App wired to the HCL loader and
// encoder. It returns the App with its output and log buffers.
func SetupAppTest(t *testing.T, cfg Config) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	validated, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	if validated.LogLevel == "" {
		validated.LogLevel = "debug"
	}

	out := &bytes.Buffer{}
	logs := &SafeBuffer{}
	return NewApp(out, logs, validated, hcl.NewLoader(), hcl.NewEncoder()), out, logs
}
