package datafields

import (
	"fmt"

	"github.com/goccy/go-json"
)

// convert serializes the input to JSON and deserializes it into the target output.
// This is a lossy mapping if source and destination do not have compatible JSON structures.
func convert[Input any, Output any](input Input, output *Output) error {
	data, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("datafields: marshal failed: %w", err)
	}
	if err = json.Unmarshal(data, output); err != nil {
		return fmt.Errorf("datafields: unmarshal failed: %w", err)
	}
	return nil
}
