package matrix

import "errors"

// Sentinel errors returned by this package. Callers match them with
// errors.Is; functions may wrap them with fmt.Errorf("...: %w", ErrX) to
// attach context.
var (
	// ErrInvalidShape is returned when a requested shape has a
	// non-positive axis extent.
	ErrInvalidShape = errors.New("matrix: shape must be at least (1, 1)")

	// ErrShapeDataMismatch is returned by constructors when the supplied
	// data length does not equal the product of the shape.
	ErrShapeDataMismatch = errors.New("matrix: data length does not match shape")

	// ErrInvalidElementType is returned when a dynamically typed value or
	// one of its elements is not numeric.
	ErrInvalidElementType = errors.New("matrix: element is not numeric")

	// ErrInvalidSelectorType is returned when an axis selector is not an
	// Index, a Set or a Span, or when a Span carries a zero step.
	ErrInvalidSelectorType = errors.New("matrix: selector must be an index, a set or a span")

	// ErrInvalidSelectorLength is returned when a selector pair does not
	// hold exactly two axis selectors.
	ErrInvalidSelectorLength = errors.New("matrix: expected exactly two axis selectors")

	// ErrTooManyAxes is returned when more than two axis selectors are
	// supplied for a rank-2 matrix.
	ErrTooManyAxes = errors.New("matrix: too many axis selectors, expected at most two")

	// ErrInvalidSetElement is returned when a Set selector holds a
	// non-integer element.
	ErrInvalidSetElement = errors.New("matrix: set elements must be integers")

	// ErrIndexOutOfBounds is returned when a scalar coordinate falls
	// outside the logical axis extents.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrEmptySelection is returned when a selection addresses no
	// elements.
	ErrEmptySelection = errors.New("matrix: selection addresses no elements")

	// ErrShapeMismatch is returned when two operands do not have the same
	// logical shape.
	ErrShapeMismatch = errors.New("matrix: operand shapes do not match")

	// ErrMatMulShapeMismatch is returned when the inner dimensions of a
	// matrix product do not agree.
	ErrMatMulShapeMismatch = errors.New("matrix: inner dimensions do not match")

	// ErrDivisionByZero is returned when a division would divide by zero.
	// The check happens before any result is allocated or mutated.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrInvalidArgument is returned for out-of-domain numeric arguments,
	// such as a zero norm order or a negative tolerance.
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)
