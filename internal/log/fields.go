package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldHabitID   = "habit_id"
	FieldHabitName = "habit_name"
	FieldStreak    = "streak"
	FieldCompleted = "completed"
	FieldDate      = "date"
	FieldKey       = "key"
	FieldBackend   = "backend"
	FieldCount     = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentStreak  = "streak"
	ComponentHistory = "history"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpDelete   = "delete"
	OpToggle   = "toggle"
	OpRollover = "rollover"
	OpRecord   = "record"
	OpLoad     = "load"
	OpSave     = "save"
	OpDecode   = "decode"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithHabit adds habit-related fields
func (f LogFields) WithHabit(id int64, name string, streak int, completed bool) LogFields {
	f[FieldHabitID] = id
	f[FieldHabitName] = name
	f[FieldStreak] = streak
	f[FieldCompleted] = completed
	return f
}

// WithDate adds the calendar date the entry refers to
func (f LogFields) WithDate(date string) LogFields {
	f[FieldDate] = date
	return f
}

// WithKey adds the storage key
func (f LogFields) WithKey(key string) LogFields {
	f[FieldKey] = key
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
