package ironic

import (
	"errors"
	"fmt"
)

// ErrNotImplemented marks operations that are declared but not yet
// backed by an Ironic API call. It is distinct from connectivity
// failures so callers can tell "feature absent" from "feature failed".
var ErrNotImplemented = errors.New("ironic: not implemented")

// ClientError wraps failures internal to a connection attempt. These
// are the expected failure modes (unreachable network, malformed
// endpoint, refused connection) and are absorbed by CheckConnectivity.
type ClientError struct {
	Op  string
	Err error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("ironic: %s: %v", e.Op, e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}
