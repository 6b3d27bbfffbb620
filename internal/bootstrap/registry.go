package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry is an RDAP bootstrap file (RFC 7484). Each service is a pair of
// [keys, urls].
type Registry struct {
	Description string       `json:"description" yaml:"description"`
	Publication string       `json:"publication" yaml:"publication"`
	Version     string       `json:"version" yaml:"version"`
	Services    [][][]string `json:"services" yaml:"services"`
}

type Entry struct {
	Key  string
	URLs []string
}

// Entries flattens the services into one (key, urls) pair per key, in file
// order. Services without both halves are dropped.
func (r Registry) Entries() []Entry {
	var entries []Entry
	for _, service := range r.Services {
		if len(service) != 2 {
			continue
		}
		keys, urls := service[0], service[1]
		for _, key := range keys {
			entries = append(entries, Entry{Key: key, URLs: append([]string(nil), urls...)})
		}
	}
	return entries
}

// ReadRegistry decodes a bootstrap file, as YAML when the extension is .yaml
// or .yml and as JSON otherwise.
func ReadRegistry(path string) (Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, fmt.Errorf("read bootstrap registry: %w", err)
	}

	var reg Registry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &reg)
	default:
		err = json.Unmarshal(raw, &reg)
	}
	if err != nil {
		return Registry{}, fmt.Errorf("decode bootstrap registry %s: %w", path, err)
	}
	return reg, nil
}
