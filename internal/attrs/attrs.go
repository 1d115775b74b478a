// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var lengthRegex = regexp.MustCompile(`-?\d+`)

// Attr is one snapshot field to be included in the output.
type Attr struct {
	// The snapshot field to extract.
	Key string
	// Should this Attr be included in output or is it just a default that was
	// switched off?
	Include bool
	// The key to use in the output. This is also the column title when
	// output=text.
	OutputKey string
	// Transformation spec to apply to the output value.
	TransformSpec string
}

// Transform applies the case and length transformations in TransformSpec.
// Only string values are transformed, everything else passes through.
func (a *Attr) Transform(value any) any {
	result, ok := value.(string)
	if !ok {
		return value
	}

	// We need to know which case transformation appears last. A global spec is
	// prepended to each attr's own spec, so the attr's spec carries more
	// weight. IOW... --attrs '*::U,key::l' will be lower case.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Same logic as above re: case. The last length wins.
	match := lengthRegex.FindAllString(a.TransformSpec, -1)
	if len(match) == 0 {
		return result
	}

	l, _ := strconv.Atoi(match[len(match)-1])
	abs := int(math.Abs(float64(l)))
	if len(result) <= abs {
		return result
	}

	// A negative length keeps both ends and elides the middle.
	if l < 0 {
		lr := max(abs/2-1, 1)
		return result[:lr] + ".." + result[len(result)-lr:]
	}
	return result[:l]
}

type AttrList []Attr

// Return a string representation of the AttrList. This should match the format
// of the --attrs flag.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Set parses each comma separated spec of the form key[:outputKey[:transform]]
// and adds it to the AttrList. A leading ! excludes the key from output. A key
// of * carries a transform that applies to every attr.
func (a *AttrList) Set(value string) error {
	if value == "" {
		return nil
	}

	const (
		keyIdx = iota
		outputIdx
		transformIdx
	)

specloop:
	for _, spec := range strings.Split(value, ",") {
		attr := Attr{
			Include: true,
		}

		fields := strings.Split(spec, ":")
		if len(fields) > transformIdx+1 {
			return fmt.Errorf("invalid attr spec %q", spec)
		}

		attr.Key = strings.TrimSpace(fields[keyIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}

		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q", spec)
		}

		if attr.Key == "*" {
			attr.Include = false
		}

		attr.OutputKey = attr.Key
		if len(fields) > outputIdx && strings.TrimSpace(fields[outputIdx]) != "" {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}

		// If the attr already exists in the list (because it's one of the
		// defaults or the user double-entered it) just apply the OutputKey,
		// Include and TransformSpec to the existing Attr.
		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec inserts a global transform spec into the front of all
// attrs in the list.
func (a *AttrList) SetGlobalTransformSpec() {
	spec := ""

	// If there is more than one global spec, only the first counts.
	for i := range *a {
		if (*a)[i].Key == "*" {
			spec = (*a)[i].TransformSpec
			break
		}
	}

	if spec == "" {
		return
	}

	for i := range *a {
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
}

// Included returns the attrs that make it to the output, in order.
func (a AttrList) Included() AttrList {
	var result AttrList
	for _, attr := range a {
		if attr.Include && attr.Key != "*" {
			result = append(result, attr)
		}
	}
	return result
}

// Validate reports the first attr whose key is not one of known.
func (a AttrList) Validate(known ...string) error {
	for _, attr := range a {
		if attr.Key == "*" {
			continue
		}
		found := false
		for _, k := range known {
			if strings.EqualFold(attr.Key, k) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown attr %q, must be one of %v", attr.Key, known)
		}
	}
	return nil
}
