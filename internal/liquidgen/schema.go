package liquidgen

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed block.schema.json
var blockSchema string

// compileSchema compiles the embedded block definition schema.
func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("block.schema.json", bytes.NewReader([]byte(blockSchema))); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	s, err := c.Compile("block.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return s, nil
}

// ValidateBlocks checks every record against the block definition
// schema, as the consuming engine will see it on disk. Returns the
// first failure.
func ValidateBlocks(blocks []BlockRecord) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	for _, b := range blocks {
		buf, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", b.Name, err)
		}
		var doc any
		if err := json.Unmarshal(buf, &doc); err != nil {
			return fmt.Errorf("unmarshal %s: %w", b.Name, err)
		}
		if err := schema.Validate(doc); err != nil {
			return fmt.Errorf("block %s: %w", b.Name, err)
		}
	}
	return nil
}
