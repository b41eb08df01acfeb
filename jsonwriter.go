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
	"encoding/json"

	"github.com/scraperwall/rirstats/data"
	log "github.com/sirupsen/logrus"
)

// JSONWriter writes the dataset as a single JSON document
type JSONWriter struct {
	path string
}

type jsonDataset struct {
	ASNs    []data.ASNEntry    `json:"asns"`
	Subnets []data.SubnetEntry `json:"subnets"`
}

// NewJSONWriter creates a JSONWriter that writes to path
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Write encodes ds and writes it to the configured path
func (jw *JSONWriter) Write(ds *Dataset) error {
	raw, err := json.Marshal(jsonDataset{
		ASNs:    ds.ASNs,
		Subnets: ds.Subnets,
	})
	if err != nil {
		return err
	}

	if err := writeFileAtomic(jw.path, raw); err != nil {
		return err
	}

	log.Infof("generated %s with %d records", jw.path, ds.Size())
	return nil
}

// Location returns the output file
func (jw *JSONWriter) Location() string {
	return jw.path
}
