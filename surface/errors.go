// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

// ErrClosed is returned when refreshing a closed surface.
var ErrClosed = errors.New("surface: closed")
