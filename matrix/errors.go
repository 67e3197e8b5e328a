// Copyright 2026 Planar Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/planar-engine/planar/internal/matrix"
)

// Sentinel errors returned by the package. Match with errors.Is; returned
// errors may wrap these with additional context.
var (
	ErrInvalidShape          = matrix.ErrInvalidShape
	ErrShapeDataMismatch     = matrix.ErrShapeDataMismatch
	ErrInvalidElementType    = matrix.ErrInvalidElementType
	ErrInvalidSelectorType   = matrix.ErrInvalidSelectorType
	ErrInvalidSelectorLength = matrix.ErrInvalidSelectorLength
	ErrTooManyAxes           = matrix.ErrTooManyAxes
	ErrInvalidSetElement     = matrix.ErrInvalidSetElement
	ErrIndexOutOfBounds      = matrix.ErrIndexOutOfBounds
	ErrEmptySelection        = matrix.ErrEmptySelection
	ErrShapeMismatch         = matrix.ErrShapeMismatch
	ErrMatMulShapeMismatch   = matrix.ErrMatMulShapeMismatch
	ErrDivisionByZero        = matrix.ErrDivisionByZero
	ErrInvalidArgument       = matrix.ErrInvalidArgument
)
