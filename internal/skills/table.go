package skills

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

//go:embed skills_table.json
var tableFiles embed.FS

// Table is the on-disk form of the skill dictionary and alias table.
type Table struct {
	Dictionary []string     `json:"dictionary"`
	Aliases    []AliasEntry `json:"aliases"`
}

var (
	defaultOnce  sync.Once
	defaultIndex *Index
)

// DefaultIndex returns the process-wide index built from the embedded skill
// table. It is constructed exactly once; callers share the same read-only
// instance.
func DefaultIndex() *Index {
	defaultOnce.Do(func() {
		data, err := tableFiles.ReadFile("skills_table.json")
		if err != nil {
			panic(fmt.Sprintf("embedded skill table missing: %v", err))
		}
		var table Table
		if err := json.Unmarshal(data, &table); err != nil {
			panic(fmt.Sprintf("embedded skill table invalid: %v", err))
		}
		defaultIndex = NewIndex(table.Dictionary, table.Aliases)
	})
	return defaultIndex
}

// LoadIndex builds an index from a skill table JSON file, for deployments
// that maintain their own dictionary.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill table %s: %w", path, err)
	}
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse skill table %s: %w", path, err)
	}
	return NewIndex(table.Dictionary, table.Aliases), nil
}
