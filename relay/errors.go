package relay

import "fmt"

// ValidationError reports a malformed relay request, rejected before any
// adapter is invoked.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "relay: invalid request: " + e.Reason
}

// ConfigurationError reports a missing provider credential. No network call is
// attempted.
type ConfigurationError struct {
	Provider string
	Message  string
}

func (e *ConfigurationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("relay: %s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("relay: %s API key not configured", e.Provider)
}

// UnsupportedProviderError reports a provider tag no adapter is registered
// for. No network call is attempted.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("relay: provider %s not supported", e.Provider)
}

// ProviderError reports a non-success status from the upstream provider,
// carrying the upstream status code and error message when one was supplied.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("relay: %s API error: status %d: %s", e.Provider, e.Status, e.Message)
}

// HTTPStatusCode returns the upstream status code.
func (e *ProviderError) HTTPStatusCode() int {
	return e.Status
}

// NetworkError reports a transport-level failure where no upstream response
// was received at all.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("relay: %s request failed: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
