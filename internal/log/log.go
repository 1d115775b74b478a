// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// PROTOCTL_LOG env variable.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("PROTOCTL_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&CustomHandler{})
	log.SetLevelFromString(level)
}

// CustomHandler formats log messages and writes to Writer, or stdout when
// Writer is nil.
type CustomHandler struct {
	Writer io.Writer
	// Now is swapped out in tests.
	Now func() time.Time
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stdout
	}
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	timestamp := now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	_, err := fmt.Fprintf(w, "%s %.1s %s%s\n", timestamp, level, e.Message, fields(e.Fields))
	return err
}

// fields renders entry fields as sorted key=value pairs.
func fields(f log.Fields) string {
	if len(f) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range f.Names() {
		fmt.Fprintf(&b, " %s=%v", name, f.Get(name))
	}
	return b.String()
}
