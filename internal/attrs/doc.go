// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package attrs parses --attrs specs that select, rename and transform the
// snapshot fields a command emits.
package attrs
