// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

import "errors"

// ErrIndexOutOfRange is returned by accessors given a storage or
// display index which is not smaller than the current number of rows
// (or columns for position based column operations).
var ErrIndexOutOfRange = errors.New("grid: index out of range: ")

// ErrInvalidColumn is returned if an operation references a column id
// which is unknown to a grid or if a column should be added with an id
// which is already taken.
var ErrInvalidColumn = errors.New("grid: invalid column id: ")

// ErrShapeMismatch is returned by a builder if a data row's cell count
// differs from the column count or if the number of row headers differs
// from the number of data rows.
var ErrShapeMismatch = errors.New("grid: shape mismatch: ")
