package writelog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock types for testing.
type mockHook struct {
	types     []MessageType
	onLogFunc func(entry *Entry) error
	executed  int
}

func (m *mockHook) OnLog(entry *Entry) error {
	m.executed++
	if m.onLogFunc != nil {
		return m.onLogFunc(entry)
	}

	return nil
}

func (m *mockHook) MessageTypes() []MessageType {
	return m.types
}

func TestHookRegistry(t *testing.T) {
	registry := NewHookRegistry()

	results := &mockHook{types: []MessageType{MessageTypeSuccess, MessageTypeFailure}}
	errorsOnly := &mockHook{types: []MessageType{MessageTypeError}}

	require.NoError(t, registry.AddHook("results", results))
	require.NoError(t, registry.AddHook("errors", errorsOnly))

	require.Error(t, registry.AddHook("results", results), "duplicate names are rejected")
	require.Error(t, registry.AddHook("nil", nil), "nil hooks are rejected")

	hook, ok := registry.GetHook("errors")
	require.True(t, ok)
	assert.Same(t, errorsOnly, hook)

	assert.Len(t, registry.GetHooksForType(MessageTypeFailure), 1)
	assert.Empty(t, registry.GetHooksForType(MessageTypeDebug))

	assert.Empty(t, registry.FireHooks(&Entry{Type: MessageTypeSuccess}))
	assert.Equal(t, 1, results.executed)
	assert.Zero(t, errorsOnly.executed)

	assert.True(t, registry.RemoveHook("results"))
	assert.False(t, registry.RemoveHook("results"))

	_, ok = registry.GetHook("results")
	assert.False(t, ok)
}

func TestHookRegistryOrderAndErrors(t *testing.T) {
	registry := NewHookRegistry()

	var order []string

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, registry.AddHook(name, NewStandardHook(nil, func(*Entry) error {
			order = append(order, name)
			if name == "bravo" {
				return errors.New("bravo failed")
			}

			return nil
		})))
	}

	errs := registry.FireHooks(&Entry{Type: MessageTypeVerbose, Message: "m"})

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, order)
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "bravo failed")
}

func TestStandardHook(t *testing.T) {
	all := NewStandardHook(nil, nil)
	assert.Equal(t, AllMessageTypes(), all.MessageTypes())
	assert.NoError(t, all.OnLog(&Entry{}))

	var seen *Entry

	only := NewStandardHook([]MessageType{MessageTypeWarning}, func(entry *Entry) error {
		seen = entry

		return nil
	})

	entry := &Entry{Type: MessageTypeWarning, Text: "rendered"}

	require.NoError(t, only.OnLog(entry))
	assert.Same(t, entry, seen)
	assert.Equal(t, []MessageType{MessageTypeWarning}, only.MessageTypes())
}
