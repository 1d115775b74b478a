// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/staranto/protoctl/internal/prototype"
)

// Options tunes Diff output.
type Options struct {
	// IgnoreInstance drops the instance ID, which always differs between two
	// distinct objects.
	IgnoreInstance bool
	Color          bool
}

// Diff renders the differences between left and right in the ascii delta
// format. The bool is false when nothing differs.
func Diff(left, right prototype.Snapshot, opts Options) (string, bool, error) {
	leftObj, err := toObject(left, opts)
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal left snapshot: %w", err)
	}
	rightObj, err := toObject(right, opts)
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal right snapshot: %w", err)
	}

	d := gojsondiff.New().CompareObjects(leftObj, rightObj)
	if !d.Modified() {
		log.Debugf("no differences between %s and %s", left.Key, right.Key)
		return "", false, nil
	}

	f := formatter.NewAsciiFormatter(leftObj, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       opts.Color,
	})
	out, err := f.Format(d)
	if err != nil {
		return "", false, fmt.Errorf("failed to format diff: %w", err)
	}

	return out, true, nil
}

// toObject turns s into the generic JSON object form the differ works on.
func toObject(s prototype.Snapshot, opts Options) (map[string]interface{}, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	if opts.IgnoreInstance {
		delete(obj, "instance")
	}
	return obj, nil
}
