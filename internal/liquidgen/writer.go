package liquidgen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteBlocks writes one <name>.json per record into
// <outputRoot>/<baseName>. Any pre-existing directory of that name is
// removed first, so reruns with the same config produce identical
// file sets. Directory reset or creation failure aborts before any
// file is written; a failed file write aborts the rest of the batch
// without rolling back files already written.
func WriteBlocks(outputRoot, baseName string, blocks []BlockRecord) error {
	dir := filepath.Join(outputRoot, baseName)

	// RemoveAll is a no-op when the directory does not exist.
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove old output dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, b := range blocks {
		buf, err := json.MarshalIndent(b, "", "    ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", b.Name, err)
		}
		path := filepath.Join(dir, b.Name+".json")
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
