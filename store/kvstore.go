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

package store

// KVStoreEachFunc is the function that gets called on each item in the Each function
type KVStoreEachFunc func(key, value []byte)

// KVStore defines an embedded key/value store database interface.
type KVStore interface {
	Get(namespace, key []byte) (value []byte, err error)
	Set(namespace, key, value []byte) error
	SetBatch(namespace []byte, keys, values [][]byte) error
	Count(namespace, prefix []byte) (int, error)
	Each(namespace []byte, prefix []byte, callback KVStoreEachFunc) error
	DropNamespace(namespace []byte) error
	ErrNotFound() error
	Close() error
}
