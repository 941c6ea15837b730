// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadSeedFile decodes a JSON array of records, as exported by the admin panel.
func ReadSeedFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("artwork: read seed %s: %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("artwork: decode seed %s: %w", path, err)
	}
	return records, nil
}
