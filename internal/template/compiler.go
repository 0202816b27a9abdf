// Package template compiles message-format templates such as
// "{Timestamp:hh:mm:ss} [{CallerName}] {MessageType}: {Message}" into token lists and
// renders them for a single log event.
//
// Placeholders take the form {Name} or {Name:Spec}. Field names are matched
// case-insensitively. Placeholders naming an unknown field are kept as literal text.
package template

import (
	"regexp"
	"strings"
	"sync"
)

// Field identifies a recognized template placeholder.
type Field uint8

const (
	// FieldMessage renders the message text.
	FieldMessage Field = iota + 1
	// FieldTimestamp renders the event time.
	FieldTimestamp
	// FieldCallerName renders the calling function.
	FieldCallerName
	// FieldMessageType renders the message type name.
	FieldMessageType
	// FieldLogLevel is an alias of FieldMessageType.
	FieldLogLevel
	// FieldResult renders the result type name for result messages.
	FieldResult
)

const maxCachedFormats = 64

//nolint:gochecknoglobals
var (
	placeholderPattern = regexp.MustCompile(`\{([A-Za-z]+)(?::([^{}]*))?\}`)

	fieldNames = map[string]Field{
		"message":     FieldMessage,
		"timestamp":   FieldTimestamp,
		"callername":  FieldCallerName,
		"messagetype": FieldMessageType,
		"loglevel":    FieldLogLevel,
		"result":      FieldResult,
	}
)

// String returns the canonical field name.
func (f Field) String() string {
	switch f {
	case FieldMessage:
		return "Message"
	case FieldTimestamp:
		return "Timestamp"
	case FieldCallerName:
		return "CallerName"
	case FieldMessageType:
		return "MessageType"
	case FieldLogLevel:
		return "LogLevel"
	case FieldResult:
		return "Result"
	default:
		return ""
	}
}

// LookupField returns the field named name, ignoring case.
func LookupField(name string) (Field, bool) {
	field, ok := fieldNames[strings.ToLower(name)]

	return field, ok
}

// Token is either literal text (Field == 0) or a field with an optional spec.
type Token struct {
	Literal string
	Field   Field
	Spec    string
	HasSpec bool
}

// IsLiteral reports whether the token is literal text.
func (t Token) IsLiteral() bool {
	return t.Field == 0
}

// Format is a compiled template.
type Format struct {
	Text   string
	Tokens []Token
	fields map[Field]struct{}
}

// Has reports whether the template references f.
func (f *Format) Has(field Field) bool {
	_, ok := f.fields[field]

	return ok
}

// Fields returns the set of referenced fields in first-use order.
func (f *Format) Fields() []Field {
	seen := make(map[Field]struct{}, len(f.fields))
	result := make([]Field, 0, len(f.fields))

	for _, token := range f.Tokens {
		if token.IsLiteral() {
			continue
		}

		if _, dup := seen[token.Field]; dup {
			continue
		}

		seen[token.Field] = struct{}{}
		result = append(result, token.Field)
	}

	return result
}

// Compile parses text into literal and field tokens. It never fails.
func Compile(text string) *Format {
	format := &Format{
		Text:   text,
		Tokens: make([]Token, 0, 8),
		fields: make(map[Field]struct{}),
	}

	var literal strings.Builder

	flush := func() {
		if literal.Len() == 0 {
			return
		}

		format.Tokens = append(format.Tokens, Token{Literal: literal.String()})
		literal.Reset()
	}

	last := 0

	for _, match := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		literal.WriteString(text[last:match[0]])
		last = match[1]

		field, ok := LookupField(text[match[2]:match[3]])
		if !ok {
			literal.WriteString(text[match[0]:match[1]])

			continue
		}

		flush()

		token := Token{Field: field}
		if match[4] >= 0 {
			token.Spec = text[match[4]:match[5]]
			token.HasSpec = true
		}

		format.Tokens = append(format.Tokens, token)
		format.fields[field] = struct{}{}
	}

	literal.WriteString(text[last:])
	flush()

	return format
}

// Cache memoizes compiled templates keyed by their text.
type Cache struct {
	mu       sync.Mutex
	formats  map[string]*Format
	compiles int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		formats: make(map[string]*Format),
	}
}

// Get returns the compiled form of text, compiling it only on first use.
func (c *Cache) Get(text string) *Format {
	c.mu.Lock()
	defer c.mu.Unlock()

	if format, ok := c.formats[text]; ok {
		return format
	}

	if len(c.formats) >= maxCachedFormats {
		clear(c.formats)
	}

	format := Compile(text)
	c.formats[text] = format
	c.compiles++

	return format
}

// Compiles returns how many times the cache had to compile a template.
func (c *Cache) Compiles() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.compiles
}
