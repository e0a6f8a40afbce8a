package mail

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o deadline exceeded" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsTransient(t *testing.T) {
	transient := []error{
		timeoutErr{},
		&net.DNSError{Err: "lookup failed", Name: "api.emailjs.com"},
		fmt.Errorf("post: %w", syscall.ECONNRESET),
		io.ErrUnexpectedEOF,
		errors.New("read tcp 1.2.3.4: connection reset by peer"),
		errors.New("client network socket disconnected before secure TLS connection was established"),
		errors.New("request timed out"),
		errors.New("dial tcp: lookup api.emailjs.com: no such host"),
		errors.New("ETIMEDOUT"),
	}
	for _, err := range transient {
		assert.True(t, isTransient(err), "expected transient: %v", err)
	}

	permanent := []error{
		nil,
		errors.New("template is malformed"),
		errors.New("invalid public key"),
	}
	for _, err := range permanent {
		assert.False(t, isTransient(err), "expected permanent: %v", err)
	}
}

func TestClassifyDelivery_Messages(t *testing.T) {
	de := classifyDelivery(errors.New("read tcp: connection reset by peer"))
	assert.True(t, de.Transient)
	assert.Equal(t, "Network connection error. Please check your internet connection and try again.", de.Message)

	de = classifyDelivery(errors.New("request timed out"))
	assert.True(t, de.Transient)
	assert.Equal(t, "Request timed out. Please try again.", de.Message)

	de = classifyDelivery(errors.New("template is malformed"))
	assert.False(t, de.Transient)
	assert.Contains(t, de.Message, "template is malformed")
}

func TestClassifyDelivery_PassesThroughDeliveryError(t *testing.T) {
	orig := &DeliveryError{Status: 403, Text: "forbidden"}
	assert.Same(t, orig, classifyDelivery(orig))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&DeliveryError{Transient: true}))
	assert.False(t, Retryable(&DeliveryError{}))
	assert.False(t, Retryable(&ValidationError{Field: "email"}))
	assert.False(t, Retryable(&ConfigurationError{Channel: "order"}))
	assert.False(t, Retryable(nil))
}
