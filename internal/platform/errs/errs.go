package errs

import "fmt"

// Kind categorizes application errors for HTTP status mapping.
type Kind int

const (
	// Unknown represents an unclassified error (HTTP 500).
	Unknown Kind = iota
	// InvalidInput indicates the request was malformed (HTTP 400).
	InvalidInput
	// UnsupportedContent indicates the target did not return HTML (HTTP 415).
	UnsupportedContent
	// UpstreamStatus indicates the target answered with a non-success status.
	// The transport replies with the same status.
	UpstreamStatus
	// Unreachable indicates a transport failure talking to the target (HTTP 500).
	Unreachable
	// ParsingFailed indicates the response could not be parsed (HTTP 500).
	ParsingFailed
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case UnsupportedContent:
		return "unsupported_content"
	case UpstreamStatus:
		return "upstream_status"
	case Unreachable:
		return "unreachable"
	case ParsingFailed:
		return "parsing_failed"
	default:
		return "unknown"
	}
}

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind           Kind
	UpstreamStatus int // HTTP status code returned by the target domain
	Message        string
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}
