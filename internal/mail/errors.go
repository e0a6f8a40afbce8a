package mail

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSubmissionInFlight is returned when a second submission is attempted on
// a channel whose previous submission has not resolved yet. The relay is not
// assumed idempotent, so concurrent sends could produce duplicate emails.
var ErrSubmissionInFlight = errors.New("a submission is already in progress, please wait")

// ValidationError reports bad user input. It is raised before any network
// call and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConfigurationError reports a channel whose deployment configuration is
// incomplete. It is raised before any network call and is never retried.
type ConfigurationError struct {
	Channel string
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s channel is not configured: missing %s",
		e.Channel, strings.Join(e.Missing, ", "))
}

// DeliveryError reports a failed dispatch to the mail relay. Transient
// failures (network/timeout class) are eligible for automatic retry;
// everything else surfaces immediately.
type DeliveryError struct {
	Transient bool
	Status    int
	Text      string
	Message   string
	Err       error
}

func (e *DeliveryError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("mail relay returned status %d: %s", e.Status, e.Text)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Retryable reports whether a failure is worth offering a retry for, either
// automatically or as a user-facing "try again" affordance.
func Retryable(err error) bool {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.Transient
	}
	return false
}
