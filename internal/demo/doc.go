// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package demo walks a fresh registry through the clone and compare
// scenario, narrating every step.
package demo
