package network

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport failure (connection refused, timeout, DNS, TLS)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeAuth indicates the server rejected the API key
	ErrTypeAuth
	// ErrTypeHTTP indicates any other non-2xx response
	ErrTypeHTTP
	// ErrTypeParse indicates a response body that doesn't match the expected shape
	ErrTypeParse
	// ErrTypeValidation indicates a request that could not be built
	ErrTypeValidation
)

// NetworkErrorSubtype provides more specific network error classification
type NetworkErrorSubtype int

const (
	NetworkErrorGeneral NetworkErrorSubtype = iota
	NetworkErrorTimeout
	NetworkErrorConnectionRefused
	NetworkErrorDNS
	NetworkErrorHostUnreachable
	NetworkErrorTLS
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// RequestError represents a failed call to a remote server.
type RequestError struct {
	Type           ErrorType           // Category of error
	Message        string              // Human-readable error message
	StatusCode     int                 // HTTP status code (if applicable)
	Body           string              // Response body, whitespace collapsed (HTTP errors)
	Err            error               // Underlying error (if any)
	NetworkSubtype NetworkErrorSubtype // More specific network error type
	Server         string              // Server name (for context)
	Retryable      bool                // Whether a later poll may succeed
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *RequestError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a more
// specific RequestError.
func ClassifyNetworkError(err error, server string) *RequestError {
	if err == nil {
		return nil
	}

	newErr := func(subtype NetworkErrorSubtype, msg string, retryable bool) *RequestError {
		return &RequestError{
			Type:           ErrTypeNetwork,
			Message:        msg,
			Err:            err,
			NetworkSubtype: subtype,
			Server:         server,
			Retryable:      retryable,
		}
	}

	if os.IsTimeout(err) {
		return newErr(NetworkErrorTimeout, "Request timed out", true)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return newErr(NetworkErrorDNS, fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name), false)
	}

	var certErr *tls.CertificateVerificationError
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	if errors.As(err, &certErr) || errors.As(err, &unknownAuthority) || errors.As(err, &hostnameErr) {
		return newErr(NetworkErrorTLS, "TLS certificate verification failed", false)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch {
		case errors.Is(opErr.Err, syscall.ECONNREFUSED):
			return newErr(NetworkErrorConnectionRefused, "Server refused connection", true)
		case errors.Is(opErr.Err, syscall.EHOSTUNREACH), errors.Is(opErr.Err, syscall.ENETUNREACH):
			return newErr(NetworkErrorHostUnreachable, "Host unreachable", true)
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ClassifyNetworkError(urlErr.Err, server)
	}

	return newErr(NetworkErrorGeneral, "Network error occurred", true)
}

// NewNetworkError creates a transport error with automatic classification
func NewNetworkError(server string, err error) *RequestError {
	return ClassifyNetworkError(err, server)
}

var whitespace = regexp.MustCompile(`\s+`)

// NewHTTPError creates an HTTP-level error. 401 and 403 are reported as
// authentication errors since they almost always mean a wrong API key.
func NewHTTPError(server string, statusCode int, body string) *RequestError {
	errType := ErrTypeHTTP
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		errType = ErrTypeAuth
	}
	return &RequestError{
		Type:       errType,
		Message:    fmt.Sprintf("server returned %d %s", statusCode, http.StatusText(statusCode)),
		StatusCode: statusCode,
		Body:       strings.TrimSpace(whitespace.ReplaceAllString(body, " ")),
		Server:     server,
		Retryable:  statusCode >= 500,
	}
}

// NewParseError creates a parsing error
func NewParseError(server, message string, err error) *RequestError {
	return &RequestError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
		Server:  server,
	}
}

// NewValidationError creates an error for a request that could not be built
func NewValidationError(message string) *RequestError {
	return &RequestError{
		Type:    ErrTypeValidation,
		Message: message,
	}
}

func asRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// IsNetworkError checks if an error is a transport error
func IsNetworkError(err error) bool {
	e, ok := asRequestError(err)
	return ok && e.Type == ErrTypeNetwork
}

// IsAuthError checks if an error is an authentication error
func IsAuthError(err error) bool {
	e, ok := asRequestError(err)
	return ok && e.Type == ErrTypeAuth
}

// IsHTTPError checks if an error is an HTTP error (authentication included)
func IsHTTPError(err error) bool {
	e, ok := asRequestError(err)
	return ok && (e.Type == ErrTypeHTTP || e.Type == ErrTypeAuth)
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	e, ok := asRequestError(err)
	return ok && e.Type == ErrTypeParse
}

// IsRetryable checks if a later poll may succeed
func IsRetryable(err error) bool {
	if e, ok := asRequestError(err); ok {
		return e.Retryable
	}
	return false
}

// UserMessage returns the text shown in the dashboard's error banner.
func UserMessage(err error) string {
	e, ok := asRequestError(err)
	if !ok {
		return err.Error()
	}

	switch e.Type {
	case ErrTypeHTTP, ErrTypeAuth:
		return fmt.Sprintf("Request failed. Received %d %s response code with body: %s",
			e.StatusCode, http.StatusText(e.StatusCode), e.Body)
	case ErrTypeParse:
		return fmt.Sprintf("Failed to parse response! %v", e.Err)
	case ErrTypeNetwork:
		return fmt.Sprintf("Failed to send request. %s", GetShortErrorMessage(err))
	default:
		return e.Message
	}
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	e, ok := asRequestError(err)
	if !ok {
		return err.Error()
	}

	switch e.Type {
	case ErrTypeNetwork:
		switch e.NetworkSubtype {
		case NetworkErrorTimeout:
			return "Server not responding (timeout)"
		case NetworkErrorConnectionRefused:
			return "Server refused connection - is it running?"
		case NetworkErrorDNS:
			return "Cannot resolve server hostname"
		case NetworkErrorHostUnreachable:
			return "Server unreachable - check network connection"
		case NetworkErrorTLS:
			return "TLS certificate rejected - check ssl_cert_path"
		default:
			return "Network error - check connection"
		}
	case ErrTypeAuth:
		return "Authentication failed - check api_token"
	case ErrTypeHTTP:
		return fmt.Sprintf("Server error (HTTP %d)", e.StatusCode)
	case ErrTypeParse:
		return "Failed to parse server response"
	default:
		return e.Message
	}
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	e, ok := asRequestError(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch e.Type {
	case ErrTypeNetwork:
		switch e.NetworkSubtype {
		case NetworkErrorTimeout:
			return strings.Join([]string{
				"The server did not respond in time.",
				"Troubleshooting:",
				"  • Check that the server is running and not overloaded",
				"  • Raise preferences.request_timeout_seconds",
			}, "\n")
		case NetworkErrorConnectionRefused:
			return strings.Join([]string{
				"The server refused the connection.",
				"Troubleshooting:",
				"  • Verify host and port in the configuration",
				"  • Make sure the service is started",
			}, "\n")
		case NetworkErrorTLS:
			return strings.Join([]string{
				"The server's certificate could not be verified.",
				"Troubleshooting:",
				"  • Point ssl_cert_path at the CA or self-signed certificate",
			}, "\n")
		default:
			return strings.Join([]string{
				"Network communication failed.",
				"Troubleshooting:",
				"  • Check your network connection",
				"  • Verify the host name or uri in the configuration",
			}, "\n")
		}
	case ErrTypeAuth:
		return "The API key was rejected. Copy it from Settings > General in the server's web UI."
	case ErrTypeHTTP:
		if e.StatusCode >= 500 {
			return fmt.Sprintf("The server failed to handle the request (HTTP %d). Check its logs.", e.StatusCode)
		}
		return fmt.Sprintf("The server returned HTTP error %d. Check the request parameters.", e.StatusCode)
	case ErrTypeParse:
		return "The response did not match the expected format. The server version may be unsupported."
	default:
		return "An error occurred. Please check the error message for details."
	}
}
