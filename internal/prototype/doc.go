// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package prototype defines the Prototype capability and its two concrete
// variants. Every variant knows how to copy itself field by field so a clone
// never shares mutable state with its source.
package prototype
