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
	"bytes"
	"context"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/scraperwall/rirstats/store"
	log "github.com/sirupsen/logrus"
)

const (
	// badgerDiscardRatio is the discard ratio for the BadgerDB value log GC.
	//
	// Ref: https://godoc.org/github.com/dgraph-io/badger#DB.RunValueLogGC
	badgerDiscardRatio = 0.5

	badgerGCInterval = 10 * time.Minute
)

// BadgerDB is a wrapper around a BadgerDB backend database that implements
// the KVStore interface.
type BadgerDB struct {
	db  *badger.DB
	ctx context.Context
}

// NewBadgerDB returns a new initialized BadgerDB database implementing the KVStore
// interface. If the database cannot be initialized, an error will be returned.
func NewBadgerDB(ctx context.Context, dataDir string) (store.KVStore, error) {
	opts := badger.DefaultOptions(dataDir)
	opts.SyncWrites = true
	opts.Dir, opts.ValueDir = dataDir, dataDir

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	bdb := &BadgerDB{
		db:  badgerDB,
		ctx: ctx,
	}

	go bdb.runGC()
	return bdb, nil
}

// Get attempts to get a value for a given key and namespace. If the key does
// not exist in the provided namespace, an error is returned, otherwise the retrieved value.
func (bdb *BadgerDB) Get(namespace, key []byte) ([]byte, error) {
	var value []byte

	err := bdb.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(bdb.badgerNamespaceKey(namespace, key))
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores a value for a given key and namespace
func (bdb *BadgerDB) Set(namespace, key, value []byte) error {
	return bdb.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bdb.badgerNamespaceKey(namespace, key), value)
	})
}

// SetBatch stores all key/value pairs in namespace using a single write batch.
// keys and values must have the same length
func (bdb *BadgerDB) SetBatch(namespace []byte, keys, values [][]byte) error {
	if len(keys) != len(values) {
		return fmt.Errorf("%d keys but %d values", len(keys), len(values))
	}

	wb := bdb.db.NewWriteBatch()
	defer wb.Cancel()

	for i := range keys {
		if err := wb.Set(bdb.badgerNamespaceKey(namespace, keys[i]), values[i]); err != nil {
			return err
		}
	}

	return wb.Flush()
}

// DropNamespace removes every key of namespace
func (bdb *BadgerDB) DropNamespace(namespace []byte) error {
	return bdb.db.DropPrefix(bdb.badgerNamespaceKey(namespace, []byte{}))
}

// Close closes the connection to the underlying BadgerDB database
func (bdb *BadgerDB) Close() error {
	return bdb.db.Close()
}

// runGC triggers the garbage collection for the BadgerDB backend database. It
// should be run in a goroutine.
func (bdb *BadgerDB) runGC() {
	ticker := time.NewTicker(badgerGCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := bdb.db.RunValueLogGC(badgerDiscardRatio)
			if err != nil {
				// don't report error when GC didn't result in any cleanup
				if err == badger.ErrNoRewrite {
					log.Debugf("no BadgerDB GC occurred: %v", err)
				} else {
					log.Errorf("failed to GC BadgerDB: %v", err)
				}
			}

		case <-bdb.ctx.Done():
			return
		}
	}
}

// Each iterates over all items that match namespace and prefix in key order.
// The key passed to callback has the namespace removed
func (bdb *BadgerDB) Each(namespace, prefix []byte, callback store.KVStoreEachFunc) error {
	nsPrefix := bdb.badgerNamespaceKey(namespace, []byte{})

	return bdb.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := bdb.badgerNamespaceKey(namespace, prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := bytes.TrimPrefix(item.KeyCopy(nil), nsPrefix)
			err := item.Value(func(v []byte) error {
				callback(key, v)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of entries that match namespace and prefix
func (bdb *BadgerDB) Count(namespace, prefix []byte) (int, error) {
	c := 0

	err := bdb.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := bdb.badgerNamespaceKey(namespace, prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			c++
		}
		return nil
	})

	return c, err
}

// ErrNotFound is the error badger returns when it can't find a key in the database
func (bdb *BadgerDB) ErrNotFound() error {
	return badger.ErrKeyNotFound
}

// badgerNamespaceKey returns a composite key used for lookup and storage for a
// given namespace and key.
func (bdb *BadgerDB) badgerNamespaceKey(namespace, key []byte) []byte {
	return []byte(fmt.Sprintf("%s/%s", string(namespace), string(key)))
}
