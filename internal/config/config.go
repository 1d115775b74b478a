// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the standard locations.
const FileName = "protoctl.yaml"

type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Exemplar declares a prototype to be put into the registry at startup.
type Exemplar struct {
	Key     string            `yaml:"key"`
	Variant string            `yaml:"variant"`
	Value   int               `yaml:"value"`
	Extra   int               `yaml:"extra"`
	Labels  map[string]string `yaml:"labels"`
}

var Config Type

func init() {
	_, _ = Load()
}

// Load reads the config file into Config. A missing file is reported to the
// caller, who is free to carry on with defaults.
func Load() (Type, error) {
	path, err := getConfigPath()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{
		Source:    path,
		Namespace: Config.Namespace,
		Data:      data}

	return Config, nil
}

// get traverses the map using a dotted key path. The namespaced key is tried
// first so that "create.count" wins over "count".
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		keys := strings.Split(key, ".")
		var current interface{} = cfg.Data

		success := true
		for _, key := range keys {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[key]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

func GetString(key string, defaultValue ...string) (string, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

func GetInt(key string, defaultValue ...int) (int, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

// GetStringSlice returns a list value. A scalar string is returned as a one
// element slice.
func GetStringSlice(key string) ([]string, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		return nil, err
	}

	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list item %v is not a string", item)
			}
			result = append(result, s)
		}
		return result, nil
	default:
		return nil, errors.New("value is not a list")
	}
}

// Exemplars decodes the top level "exemplars" list. No list means no
// exemplars and no error.
func Exemplars() ([]Exemplar, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	raw, ok := Config.Data["exemplars"]
	if !ok || raw == nil {
		return nil, nil
	}

	// Round trip through yaml so the typed struct tags do the work.
	bytes, err := yaml.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var exemplars []Exemplar
	if err := yaml.Unmarshal(bytes, &exemplars); err != nil {
		return nil, fmt.Errorf("invalid exemplars in %s: %w", Config.Source, err)
	}

	for i, e := range exemplars {
		if strings.TrimSpace(e.Key) == "" {
			return nil, fmt.Errorf("exemplar #%d in %s has no key", i+1, Config.Source)
		}
	}

	return exemplars, nil
}

func getConfigPath() (string, error) {
	// An explicit PROTOCTL_CFG wins and must exist.
	if file, ok := os.LookupEnv("PROTOCTL_CFG"); ok && file != "" {
		fileInfo, err := os.Stat(file)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", file)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("PROTOCTL_CFG points to a directory: %s", file)
		}
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	var candidates []string = []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", fmt.Errorf("no config file found in standard locations")
}
