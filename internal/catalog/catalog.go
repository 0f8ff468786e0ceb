// Package catalog defines the method descriptors the interpreter matches
// against: each descriptor names one wrapped service and lists its
// callable methods, their parameter constraints, and example pairs of
// natural-language sentence and call template.
//
// Descriptors are pure data. They can come from the built-in set (shaped
// after the cloud/container/directory/messaging/browser wrappers this
// tool fronts) or from YAML files, e.g.:
//
//	- name: StorageModule
//	  description: Object storage operations
//	  keywords: [storage, object, upload]
//	  methods:
//	    - name: bucket_create
//	      description: Create a storage bucket
//	      parameters:
//	        name: Bucket name (must be globally unique)
//	      examples:
//	        - text: "create bucket {{name}}"
//	          code: "bucket_create(name='{{name}}')"
package catalog

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Example is one (sentence, call template) pair. Both sides use the same
// {{placeholder}} markers.
type Example struct {
	Text string `yaml:"text"`
	Code string `yaml:"code"`
}

// Method describes one callable operation of a wrapped service.
type Method struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Parameters  map[string]string `yaml:"parameters"`
	Returns     string            `yaml:"returns"`
	Examples    []Example         `yaml:"examples"`
}

// Descriptor is the method inventory of one wrapped service.
type Descriptor struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Methods     []Method `yaml:"methods"`
}

// Validate reports whether the descriptor carries enough shape to be
// loaded into a corpus. Invalid descriptors are skipped by the loader,
// not fatal.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("descriptor has no name")
	}
	if len(d.Methods) == 0 {
		return fmt.Errorf("descriptor %q has no methods", d.Name)
	}
	for _, m := range d.Methods {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("descriptor %q has a method with no name", d.Name)
		}
	}
	return nil
}

// Load decodes a YAML stream holding a list of descriptors.
func Load(r io.Reader) ([]Descriptor, error) {
	var descriptors []Descriptor
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&descriptors); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return descriptors, nil
}

// LoadFile reads descriptors from a single YAML file.
func LoadFile(path string) ([]Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	descriptors, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return descriptors, nil
}

// LoadDir reads every .yaml/.yml file in dir, skipping files that fail to
// parse so one broken catalog cannot take down the rest.
func LoadDir(dir string) ([]Descriptor, error) {
	var descriptors []Descriptor

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		loaded, err := LoadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable catalog file", "path", path, "error", err)
			return nil
		}
		descriptors = append(descriptors, loaded...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk catalog dir %s: %w", dir, err)
	}

	return descriptors, nil
}

// Builtin returns the descriptors shipped with the binary.
func Builtin() []Descriptor {
	return []Descriptor{
		gcpDescriptor(),
		dockerDescriptor(),
		mqttDescriptor(),
		ldapDescriptor(),
		seleniumDescriptor(),
	}
}
