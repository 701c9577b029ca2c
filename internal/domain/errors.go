package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Error taxonomy. The first three are absorbed by the fallback machinery and
// converted to degraded-but-valid data; only ErrInternalContractViolation is
// surfaced to callers, since it indicates a defect rather than an expected
// upstream failure.
var (
	ErrAdapterTimeout            = errors.New("adapter timed out")
	ErrAdapterUnavailable        = errors.New("adapter unavailable")
	ErrNarrativeGeneration       = errors.New("narrative generation failed")
	ErrInternalContractViolation = errors.New("internal contract violation")
)

// WrapFetchError normalizes a transport-level adapter failure into the
// taxonomy: timeouts map to ErrAdapterTimeout, everything else to
// ErrAdapterUnavailable.
func WrapFetchError(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %v", ErrAdapterTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrAdapterUnavailable, op, err)
}

// StatusError normalizes a non-2xx upstream response.
func StatusError(op string, status int, body []byte) error {
	return fmt.Errorf("%w: %s: status %d: %s", ErrAdapterUnavailable, op, status, body)
}
