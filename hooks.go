package writelog

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"
)

// Entry represents an emitted log event that's passed to hooks.
type Entry struct {
	// Message is the raw message text.
	Message string
	// Type is the resolved message type.
	Type MessageType
	// Timestamp is the time the event was rendered.
	Timestamp time.Time
	// CallerName is the resolved caller, empty when the template did not need it.
	CallerName string
	// Destination is where the text was routed (host or streams).
	Destination Destination
	// Color is the host color used, unset for stream output.
	Color Color
	// Text is the rendered text.
	Text string
	// FilePath is the resolved log file path, empty when no file sink applies.
	FilePath string
}

// Hook is an interface that provides a way to observe emitted events.
type Hook interface {
	// OnLog is called once an event has been written.
	OnLog(entry *Entry) error

	// MessageTypes returns the message types this hook should be triggered for.
	MessageTypes() []MessageType
}

// HookRegistry manages a collection of hooks and provides thread-safe access
// to them.
type HookRegistry struct {
	mu sync.RWMutex

	Hooks map[string]Hook
}

// NewHookRegistry creates a new hook registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{
		Hooks: make(map[string]Hook),
	}
}

// AddHook adds a named hook to the registry.
func (r *HookRegistry) AddHook(name string, hook Hook) error {
	if hook == nil {
		return ewrap.New("hook cannot be nil").WithMetadata("name", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.Hooks[name]; exists {
		return ewrap.New("hook already exists").WithMetadata("name", name)
	}

	r.Hooks[name] = hook

	return nil
}

// RemoveHook removes a hook by name.
func (r *HookRegistry) RemoveHook(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.Hooks[name]; !exists {
		return false
	}

	delete(r.Hooks, name)

	return true
}

// GetHook retrieves a hook by name.
func (r *HookRegistry) GetHook(name string) (Hook, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hook, exists := r.Hooks[name]

	return hook, exists
}

// GetHooksForType returns, in name order, the hooks that trigger for t.
func (r *HookRegistry) GetHooksForType(t MessageType) []Hook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.Hooks))
	for name, hook := range r.Hooks {
		if slices.Contains(hook.MessageTypes(), t) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	result := make([]Hook, 0, len(names))
	for _, name := range names {
		result = append(result, r.Hooks[name])
	}

	return result
}

// FireHooks triggers all hooks for a given entry.
// It returns any errors encountered during hook execution.
func (r *HookRegistry) FireHooks(entry *Entry) []error {
	hooks := r.GetHooksForType(entry.Type)

	if len(hooks) == 0 {
		return nil
	}

	var errors []error

	for _, hook := range hooks {
		err := hook.OnLog(entry)
		if err != nil {
			errors = append(errors, err)
		}
	}

	return errors
}

// StandardHook provides a simpler way to implement the Hook interface.
type StandardHook struct {
	// Types contains the message types this hook should trigger for
	Types []MessageType
	// LogHandler is called when an entry is emitted
	LogHandler func(entry *Entry) error
}

// NewStandardHook creates a new StandardHook with the given types and handler.
// An empty type list subscribes to every message type.
func NewStandardHook(types []MessageType, handler func(entry *Entry) error) *StandardHook {
	if len(types) == 0 {
		types = AllMessageTypes()
	}

	return &StandardHook{
		Types:      types,
		LogHandler: handler,
	}
}

// OnLog implements Hook.OnLog.
func (h *StandardHook) OnLog(entry *Entry) error {
	if h.LogHandler != nil {
		return h.LogHandler(entry)
	}

	return nil
}

// MessageTypes implements Hook.MessageTypes.
func (h *StandardHook) MessageTypes() []MessageType {
	return h.Types
}
