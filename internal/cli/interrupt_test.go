package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestNewInterruptHandler(t *testing.T) {
	handler := NewInterruptHandler(nil, "Submission interrupted!", "")
	assert.NotNil(t, handler.writer)
	assert.False(t, handler.WasInterrupted())
}

func TestInterruptHandler_Watch(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Submission interrupted!", "No report was sent.")

	ctx, cancel := context.WithCancel(context.Background())
	handler.Watch(ctx)
	cancel()

	assert.Eventually(t, handler.WasInterrupted, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return strings.Contains(output.String(), "No report was sent.")
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, strings.Count(output.String(), "Submission interrupted!"))
}

func TestInterruptHandler_Stop(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Submission interrupted!", "")

	ctx, cancel := context.WithCancel(context.Background())
	handler.Watch(ctx)
	handler.Stop()
	handler.Stop()
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	assert.False(t, handler.WasInterrupted())
	assert.Empty(t, output.String())
}
