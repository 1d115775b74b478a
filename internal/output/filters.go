// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/protoctl/internal/prototype"
)

// filterRegex is the pattern used to parse filter expressions into key, operator, and target components.
// It matches: key + operator + target, where operator can be negated with !
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~<>@/])(.*)$`)

// Filter represents a single parsed --filter expression including the key,
// operand, optional negation and target value.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Malformed expressions are skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("PROTOCTL_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		// parts[2] is the operand. It may have a leading negation.
		negate := strings.HasPrefix(parts[2], "!")
		if negate {
			parts[2] = strings.TrimPrefix(parts[2], "!")
		}

		filters = append(filters, Filter{
			Key:     strings.TrimSpace(parts[1]),
			Negate:  negate,
			Operand: parts[2],
			Target:  parts[3],
		})
	}

	return filters
}

// FilterSnapshots returns the snapshots matching every filter in spec.
func FilterSnapshots(snapshots []prototype.Snapshot, spec string) []prototype.Snapshot {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return snapshots
	}

	result := make([]prototype.Snapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if applyFilters(s, filters) {
			result = append(result, s)
		}
	}
	return result
}

// applyFilters returns true if the snapshot matches all of the filters.
// Filters naming an unknown field are reported and ignored.
func applyFilters(s prototype.Snapshot, filters []Filter) bool {
	for _, filter := range filters {
		value, ok := snapshotField(s, filter.Key)
		if !ok {
			msg := fmt.Sprintf("filter key not found: %s", filter.Key)
			log.Error(msg)
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
			continue
		}

		var result bool
		switch v := value.(type) {
		case int:
			result = checkIntOperand(v, filter)
		case map[string]string:
			result = checkContainsOperand(v, filter)
		case string:
			result = checkStringOperand(v, filter)
		}

		if !result {
			return false
		}
	}

	return true
}

func snapshotField(s prototype.Snapshot, key string) (any, bool) {
	switch strings.ToLower(key) {
	case "key":
		return s.Key, true
	case "variant":
		return s.Variant, true
	case "value":
		return s.Value, true
	case "extra":
		return s.Extra, true
	case "labels":
		return s.Labels, true
	case "instance":
		return s.Instance, true
	}
	return nil, false
}

// checkContainsOperand evaluates a membership filter (operand '@') against
// the label names.
func checkContainsOperand(labels map[string]string, filter Filter) bool {
	if filter.Operand != "@" {
		log.Error("labels only support the @ operand")
		return false
	}
	_, found := labels[filter.Target]
	return found == !filter.Negate
}

// checkIntOperand compares numerically when the target is a number and
// falls back to string semantics otherwise.
func checkIntOperand(value int, filter Filter) bool {
	target, err := strconv.Atoi(filter.Target)
	if err != nil {
		return checkStringOperand(strconv.Itoa(value), filter)
	}

	switch filter.Operand {
	case "=":
		return value == target == !filter.Negate
	case ">":
		return value > target == !filter.Negate
	case "<":
		return value < target == !filter.Negate
	default:
		return checkStringOperand(strconv.Itoa(value), filter)
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Target == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Target) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Target) == !filter.Negate
	case ">":
		return value > filter.Target == !filter.Negate
	case "<":
		return value < filter.Target == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Target) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Target, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Target)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}
