// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package differ reports field level differences between two prototype
// snapshots.
package differ
