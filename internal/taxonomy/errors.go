package taxonomy

import "fmt"

// ConflictError reports an alias claimed by two distinct canonical skills.
// It is fatal at registry build time: a broken taxonomy must not serve.
type ConflictError struct {
	Alias  string
	First  string
	Second string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("taxonomy conflict: %q maps to both %q and %q", e.Alias, e.First, e.Second)
}

// DefinitionError reports a malformed canonical skill entry.
type DefinitionError struct {
	Name    string
	Message string
}

func (e *DefinitionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid taxonomy entry %q: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("invalid taxonomy entry: %s", e.Message)
}

// LoadError reports a failure reading or decoding a taxonomy definition file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("failed to load taxonomy: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("failed to load taxonomy: %s", msg)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
