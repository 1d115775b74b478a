// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders registry listings, prototype snapshots and
// comparison results as text tables, JSON or YAML.
package output
