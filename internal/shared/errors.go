package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Request errors. ErrInvalidRequest marks a malformed kind/parameter combination,
	// which is a caller defect rather than a runtime condition.
	ErrInvalidRequest      = fmt.Errorf("invalid request")
	ErrUnknownKind         = fmt.Errorf("unknown request kind")
	ErrIdentityUnavailable = fmt.Errorf("user identity unavailable")

	// Authentication errors
	ErrAuthUnavailable  = fmt.Errorf("access token unavailable")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("access token expired")

	// Transport and decoding errors
	ErrTransport          = fmt.Errorf("transport request failed")
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrParse              = fmt.Errorf("response parse failed")

	// Lookup errors
	ErrNotFound = fmt.Errorf("not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
