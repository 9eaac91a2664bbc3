package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadBlockFile loads a single generated block definition file.
func LoadBlockFile(path string) (Block, error) {
	var b Block
	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if b.Name == "" {
		return b, fmt.Errorf("block file %s has no name", path)
	}
	return b, nil
}

// MergeBlockMaps merges multiple block maps, preferring later entries
// when names collide.
func MergeBlockMaps(maps ...map[string]Block) map[string]Block {
	out := make(map[string]Block)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// LoadBlocksDir scans a directory tree of generated block definition
// files and returns them keyed by block name.
func LoadBlocksDir(root string) (map[string]Block, error) {
	out := make(map[string]Block)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		b, err := LoadBlockFile(path)
		if err != nil {
			return fmt.Errorf("failed to load file %s: %s", path, err.Error())
		}
		out[b.Name] = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
