package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "export-verify context key " + string(c)
}

// RunIDKey is the key for the verification run ID in context.Context
const RunIDKey = contextKey("runID")

// ComponentKey is the key for the active component name in context.Context
const ComponentKey = contextKey("component")

// OperationKey is the key for the current operation in context.Context
const OperationKey = contextKey("operation")
