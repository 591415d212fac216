package transform

import (
	"fmt"

	"github.com/rgehrsitz/nwgo/internal/domain"
)

// ParamsTransform defines the interface for all what-if transformations.
// Transforms are composable operations that modify simulation parameters in
// predictable ways; they never mutate the parameters they are given.
type ParamsTransform interface {
	// Apply returns a modified deep copy of base.
	Apply(base *domain.ModelParameters) (*domain.ModelParameters, error)

	// Name returns a short identifier for this transform (e.g., "end_job").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks the transform against base without applying it.
	Validate(base *domain.ModelParameters) error
}

// ApplyTransforms applies a sequence of transforms to base.
// Transforms are applied in order, with each transform receiving the output of the previous one.
func ApplyTransforms(base *domain.ModelParameters, transforms []ParamsTransform) (*domain.ModelParameters, error) {
	if base == nil {
		return nil, fmt.Errorf("base parameters cannot be nil")
	}

	if len(transforms) == 0 {
		return base.DeepCopy(), nil
	}

	current := base
	for i, t := range transforms {
		if t == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := t.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", t.Name(), err)
		}

		next, err := t.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}

		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}

func validateBase(name string, base *domain.ModelParameters) error {
	if base == nil {
		return NewTransformError(name, "validate", "base parameters cannot be nil", nil)
	}
	return nil
}
