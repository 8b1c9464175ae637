// Package file implements the catalog stores on top of flat JSON files.
//
// Each collection lives in a single pretty-printed JSON array. The file is
// read in full at the first access after process start and rewritten in full
// after every successful mutation, so the file always reflects the latest
// in-memory collection. A per-store mutex serializes access: concurrent
// mutating requests cannot race each other into a lost update.
package file

import (
	"encoding/json"
	"fmt"
	"os"
)

func readCollection(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: create the file with an empty collection.
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func writeCollection(path string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
