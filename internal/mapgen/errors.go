package mapgen

import "fmt"

// ConfigurationError reports a configuration generation cannot run with.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// CapacityError reports a prototype that cannot fit in a single combined
// mesh on its own.
type CapacityError struct {
	Region      string
	Prototype   string
	VertexCount int
	Limit       int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("region %q prototype %q has %d vertices, more than the %d a combined mesh can hold",
		e.Region, e.Prototype, e.VertexCount, e.Limit)
}
