// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz77

package lz77

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrInvalidParameters = errors.New("pointer parameters out of range")
	ErrMalformedPointer  = errors.New("malformed pointer")
	ErrTruncatedInput    = errors.New("unexpected end of compressed input")
)
