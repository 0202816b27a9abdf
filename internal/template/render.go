package template

import (
	"strings"
	"time"

	"github.com/hyp3rd/writelog"
)

// DefaultTimestampFormat is used by {Timestamp} without a spec.
const DefaultTimestampFormat = "yyyy-MM-dd hh:mm:ss.fff"

// Values carries the per-event data substituted into a template.
type Values struct {
	Message    string
	Type       writelog.MessageType
	Time       time.Time
	CallerName string
}

// Render substitutes values into the compiled format.
func Render(format *Format, values Values) string {
	var builder strings.Builder

	builder.Grow(len(format.Text) + len(values.Message) + 32)

	for _, token := range format.Tokens {
		if token.IsLiteral() {
			builder.WriteString(token.Literal)

			continue
		}

		builder.WriteString(resolve(token, values))
	}

	return builder.String()
}

func resolve(token Token, values Values) string {
	switch token.Field {
	case FieldMessage:
		return values.Message
	case FieldTimestamp:
		spec := token.Spec
		if spec == "" {
			spec = DefaultTimestampFormat
		}

		return FormatTime(values.Time, spec)
	case FieldCallerName:
		if values.CallerName == "" {
			return writelog.UnknownCaller
		}

		return values.CallerName
	case FieldMessageType, FieldLogLevel:
		return values.Type.String()
	case FieldResult:
		if values.Type.IsResult() {
			return values.Type.String()
		}

		return ""
	default:
		return ""
	}
}
