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
	"fmt"

	"github.com/scraperwall/rirstats/data"
	"github.com/scraperwall/rirstats/store"
	log "github.com/sirupsen/logrus"
)

var (
	// ASNNamespace holds the ASN catalog
	ASNNamespace = []byte("asn")
	// SubnetNamespace holds the subnet catalog
	SubnetNamespace = []byte("subnet")
	// MetaNamespace holds information about the last written dataset
	MetaNamespace = []byte("meta")

	metaDatasetKey = []byte("dataset")
)

// StoreWriter writes both catalogs to a key/value store.
// Entries are JSON encoded and keyed by their zero padded position so that
// iterating a namespace yields the catalog order.
type StoreWriter struct {
	store    store.KVStore
	location string
}

// NewStoreWriter creates a StoreWriter on top of kv. location names the store in log output and notifications
func NewStoreWriter(kv store.KVStore, location string) *StoreWriter {
	return &StoreWriter{
		store:    kv,
		location: location,
	}
}

// SeqKey returns the store key of the i-th catalog entry
func SeqKey(i int) []byte {
	return []byte(fmt.Sprintf("%010d", i))
}

// Write replaces the catalogs in the store with the content of ds
func (sw *StoreWriter) Write(ds *Dataset) error {
	for _, ns := range [][]byte{ASNNamespace, SubnetNamespace} {
		if err := sw.store.DropNamespace(ns); err != nil {
			return err
		}
	}

	keys := make([][]byte, len(ds.ASNs))
	values := make([][]byte, len(ds.ASNs))
	for i, a := range ds.ASNs {
		raw, err := json.Marshal(a)
		if err != nil {
			return err
		}
		keys[i], values[i] = SeqKey(i), raw
	}
	if err := sw.store.SetBatch(ASNNamespace, keys, values); err != nil {
		return err
	}

	keys = make([][]byte, len(ds.Subnets))
	values = make([][]byte, len(ds.Subnets))
	for i, s := range ds.Subnets {
		raw, err := json.Marshal(s)
		if err != nil {
			return err
		}
		keys[i], values[i] = SeqKey(i), raw
	}
	if err := sw.store.SetBatch(SubnetNamespace, keys, values); err != nil {
		return err
	}

	meta, err := json.Marshal(data.DatasetMessage{
		Output:      sw.Location(),
		Format:      "badger",
		ASNs:        len(ds.ASNs),
		Subnets:     len(ds.Subnets),
		Feeds:       ds.Feeds,
		GeneratedAt: ds.GeneratedAt,
	})
	if err != nil {
		return err
	}
	if err := sw.store.Set(MetaNamespace, metaDatasetKey, meta); err != nil {
		return err
	}

	log.Infof("stored %d records in %s", ds.Size(), sw.location)
	return nil
}

// Location describes the store
func (sw *StoreWriter) Location() string {
	return sw.location
}

// DatasetInfo reads the description of the last dataset written to kv
func DatasetInfo(kv store.KVStore) (*data.DatasetMessage, error) {
	raw, err := kv.Get(MetaNamespace, metaDatasetKey)
	if err != nil {
		return nil, err
	}

	var msg data.DatasetMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
