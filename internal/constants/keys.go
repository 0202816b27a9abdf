package constants

const (
	// TraceHeader is the default HTTP header for trace identifiers.
	TraceHeader = "X-Trace-ID"
	// RequestHeader is the default HTTP header for request identifiers.
	RequestHeader = "X-Request-ID"
)
