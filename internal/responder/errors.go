package responder

import "fmt"

// RemoteError reports a failed call to the completion service. Err is the
// error returned by the provider, unmodified.
type RemoteError struct {
	Provider string
	Model    string
	Err      error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s completion with model %s failed: %v", e.Provider, e.Model, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
