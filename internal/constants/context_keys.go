package constants

type (
	// RequestKey is the context key for the request identifier.
	RequestKey struct{}
	// TraceKey is the context key for the trace identifier.
	TraceKey struct{}
)
