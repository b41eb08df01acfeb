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
	"bufio"
	"io"

	"github.com/scraperwall/rirstats/data"
)

// maxLineSize bounds a single feed line
const maxLineSize = 1024 * 1024

// Index holds the two lookup tables built from the IP to ASN mapping feed.
// It is read-only once BuildIndex returns
type Index struct {
	byStart  map[string]data.IPMapping
	byNumber map[string]data.ASNRecord
}

// BuildIndex reads the mapping feed from r.
// Lines without exactly four comma separated fields are dropped silently.
// A repeated start address overwrites the earlier entry while a repeated
// ASN keeps the first one.
func BuildIndex(r io.Reader) (*Index, error) {
	idx := &Index{
		byStart:  make(map[string]data.IPMapping),
		byNumber: make(map[string]data.ASNRecord),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		m, ok := decodeMappingLine(scanner.Text())
		if !ok {
			continue
		}

		idx.byStart[m.Start] = m

		if m.ASNNumber == "" {
			continue
		}
		if _, exists := idx.byNumber[m.ASNNumber]; !exists {
			idx.byNumber[m.ASNNumber] = data.ASNRecord{
				Number:       m.ASNNumber,
				Organization: m.Organization,
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return idx, nil
}

// Size returns the number of distinct range start addresses
func (idx *Index) Size() int {
	return len(idx.byStart)
}

// NumASNs returns the number of distinct autonomous system numbers
func (idx *Index) NumASNs() int {
	return len(idx.byNumber)
}

// ByStart looks up the mapping entry for the exact textual start address
func (idx *Index) ByStart(start string) (data.IPMapping, bool) {
	m, ok := idx.byStart[start]
	return m, ok
}

// ByNumber looks up the first mapping entry seen for an ASN
func (idx *Index) ByNumber(number string) (data.ASNRecord, bool) {
	a, ok := idx.byNumber[number]
	return a, ok
}
