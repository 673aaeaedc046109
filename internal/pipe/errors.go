package pipe

import "fmt"

// Kind classifies why a raw input could not be resolved.
type Kind string

const (
	KindGeometry      Kind = "unsupported geometry"
	KindPressureClass Kind = "unsupported pressure class"
	KindMaterial      Kind = "unsupported material/configuration"
	KindNumeric       Kind = "invalid numeric input"
	KindJoint         Kind = "unsupported joint type"
	KindDate          Kind = "invalid inspection date"
)

// ResolutionError reports a raw field that does not map to a valid pipe
// descriptor. The caller owns turning it into a user-facing message.
type ResolutionError struct {
	Kind   Kind   `json:"kind"`
	Field  string `json:"field"`
	Detail string `json:"detail"`
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", e.Kind, e.Field, e.Detail)
}

func resolveErr(kind Kind, field, format string, args ...interface{}) *ResolutionError {
	return &ResolutionError{Kind: kind, Field: field, Detail: fmt.Sprintf(format, args...)}
}

// ComputationError reports a formula that produced a nonphysical result for
// an input combination the resolver could not reject up front.
type ComputationError struct {
	Quantity string `json:"quantity"`
	Detail   string `json:"detail"`
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("nonphysical %s: %s", e.Quantity, e.Detail)
}
