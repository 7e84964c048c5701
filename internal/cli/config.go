// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ConfigPath is the config file location relative to the XDG config
// directories.
var ConfigPath = filepath.Join("inkgrid", "inkgrid.conf")

// LoadConfig returns the whitespace-separated arguments stored in the
// config file, to be parsed ahead of the command line.
func LoadConfig() ([]string, error) {
	path, err := xdg.SearchConfigFile(ConfigPath)
	if err != nil {
		// return no error when the file doesn't exist
		return nil, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}
