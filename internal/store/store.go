// Package store loads keyword lists (stopwords, allow-keywords) from YAML
// files, falling back to built-in defaults when no file is configured or the
// file cannot be read. Keeping the lists in files lets deployments tune the
// classifier without a rebuild.
package store

import (
	"os"

	"gopkg.in/yaml.v3"

	"rmachado/extrato-xlsx/internal/logging"
)

// KeywordStore resolves one keyword list from an optional YAML file.
type KeywordStore struct {
	path string
	log  logging.Logger
}

// NewKeywordStore creates a store for the given file path. An empty path
// means "use defaults only".
func NewKeywordStore(path string) *KeywordStore {
	return &KeywordStore{path: path, log: logging.GetLogger()}
}

// SetLogger injects a configured logger.
func (s *KeywordStore) SetLogger(log logging.Logger) {
	if log != nil {
		s.log = log
	}
}

// Load returns the keywords from the configured file, or defaults when the
// path is empty, the file is missing, or the YAML is malformed. A bad file
// is logged and never fatal.
func (s *KeywordStore) Load(defaults []string) []string {
	if s.path == "" {
		return defaults
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).Warn("Failed to read keyword file, using defaults",
				logging.Field{Key: logging.FieldFile, Value: s.path})
		}
		return defaults
	}

	var keywords []string
	if err := yaml.Unmarshal(data, &keywords); err != nil {
		s.log.WithError(err).Warn("Failed to parse keyword file, using defaults",
			logging.Field{Key: logging.FieldFile, Value: s.path})
		return defaults
	}

	s.log.Debug("Loaded keyword file",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(keywords)})
	return keywords
}
