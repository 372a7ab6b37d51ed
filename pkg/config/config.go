// Package config loads YAML configuration files with ${VAR} expansion and
// `env` struct tag overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path into out and applies env overrides.
func Load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), out); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	ApplyEnv(out)
	return nil
}

// LoadFirst loads the first existing file of paths into out and returns its
// path. When none exists, out keeps its current values, env overrides are
// still applied and the returned path is empty.
func LoadFirst(out any, paths ...string) (string, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("stat config file %s: %w", path, err)
		}
		if err := Load(path, out); err != nil {
			return "", err
		}
		return path, nil
	}

	ApplyEnv(out)
	return "", nil
}

// ApplyEnv sets fields of the struct pointed to by v from the environment
// variables named by their `env` tags. Nested structs are walked; values
// that do not parse for the field's kind are ignored.
func ApplyEnv(v any) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return
	}
	applyEnv(val.Elem())
}

func applyEnv(val reflect.Value) {
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := val.Field(i)
		if !fieldVal.CanSet() {
			continue
		}

		if fieldVal.Kind() == reflect.Struct {
			applyEnv(fieldVal)
			continue
		}

		name := field.Tag.Get("env")
		if name == "" {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		setField(fieldVal, raw)
	}
}

func setField(fieldVal reflect.Value, raw string) {
	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(raw)
	case reflect.Int, reflect.Int64:
		if n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			fieldVal.SetInt(n)
		}
	case reflect.Float64:
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			fieldVal.SetFloat(f)
		}
	case reflect.Bool:
		fieldVal.SetBool(strings.EqualFold(raw, "true") || raw == "1")
	}
}
