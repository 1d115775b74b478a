// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/staranto/protoctl/internal/config"
	"github.com/staranto/protoctl/internal/registry"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	// Registry, when set, is used instead of building one from the config
	// file.
	Registry *registry.Registry
}
