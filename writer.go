/*
	rirstats - RIR delegation dataset builder by ScraperWall
	Copyright (C) 2021 ScraperWall, Tobias von Dewitz <tobias@scraperwall.com>

	This program is free software: you can redistribute it and/or modify it
	under the terms of the GNU Affero General Public License as published by
	the Free Software Foundation, either version 3 of the License, or (at your
	option) any later version.

	This program is distributed in the hope that it will be useful, but WITHOUT
	ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
	FITNESS FOR A PARTICULAR PURPOSE. See the GNU Affero General Public License
	for more details.

	You should have received a copy of the GNU Affero General Public License
	along with this program. If not, see <https://www.gnu.org/licenses/>.
*/

package rirstats

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scraperwall/rirstats/config"
	"github.com/scraperwall/rirstats/store"
)

// Writer serializes a dataset
type Writer interface {
	Write(ds *Dataset) error
	// Location describes where the dataset ends up
	Location() string
}

// NewWriter creates the writer for the configured output format.
// kv is only used by the "badger" format and may be nil otherwise
func NewWriter(config *config.Config, kv store.KVStore) (Writer, error) {
	switch config.OutputFormat {
	case "go":
		return NewGoSourceWriter(config.OutputPath, config.GoPackage), nil
	case "json":
		return NewJSONWriter(config.OutputPath), nil
	case "badger":
		if kv == nil {
			return nil, fmt.Errorf("badger output needs a store")
		}
		return NewStoreWriter(kv, config.BadgerPath), nil
	}
	return nil, fmt.Errorf("unknown output format %q", config.OutputFormat)
}

// writeFileAtomic writes data next to path and renames it into place
func writeFileAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
