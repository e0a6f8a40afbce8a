package mail

import (
	"errors"
	"io"
	"net"
	"strings"
	"syscall"
)

// Failure signatures the relay has been observed to produce under flaky
// network conditions.
var transientFragments = []string{
	"connection reset",
	"socket disconnected",
	"timed out",
	"timeout",
	"no such host",
	"econnreset",
	"etimedout",
	"enotfound",
}

// isTransient classifies a dispatch failure as likely-recoverable. Connection
// resets, timeouts and DNS resolution failures qualify; anything else is
// treated as permanent.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, fragment := range transientFragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

// classifyDelivery converts a raw gateway error into a DeliveryError with a
// human-readable message distinct from the underlying error text.
func classifyDelivery(err error) *DeliveryError {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection reset") || strings.Contains(msg, "socket disconnected"):
		return &DeliveryError{
			Transient: true,
			Message:   "Network connection error. Please check your internet connection and try again.",
			Err:       err,
		}
	case isTransient(err):
		return &DeliveryError{
			Transient: true,
			Message:   "Request timed out. Please try again.",
			Err:       err,
		}
	default:
		return &DeliveryError{
			Message: "Failed to send email: " + err.Error(),
			Err:     err,
		}
	}
}
