// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package config loads protoctl.yaml and answers dotted-path lookups against
// it. Values may be namespaced by subcommand.
package config
