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
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/scraperwall/rirstats/config"
	"github.com/scraperwall/rirstats/data"
	log "github.com/sirupsen/logrus"
)

// DelegationScanner reads the records of one RIR delegation feed in file order.
// It works like a bufio.Scanner: call Scan until it returns false, then check Err.
// A scanner can't be rewound.
type DelegationScanner struct {
	scanner *bufio.Scanner
	index   *Index
	config  *config.Config
	record  data.Delegation
	line    int
	err     error
}

// NewDelegationScanner creates a scanner over the feed in r that joins every
// record against idx. Records of registries that aren't part of the configuration are dropped
func NewDelegationScanner(r io.Reader, idx *Index, config *config.Config) *DelegationScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &DelegationScanner{
		scanner: scanner,
		index:   idx,
		config:  config,
	}
}

// Scan advances to the next record. It returns false at the end of the feed or on the first error
func (ds *DelegationScanner) Scan() bool {
	if ds.err != nil {
		return false
	}

	for ds.scanner.Scan() {
		ds.line++

		rec, ok := decodeDelegationLine(ds.scanner.Text())
		if !ok || !ds.config.IsRegistry(rec.Registry) {
			continue
		}

		if err := ds.resolve(&rec); err != nil {
			ds.err = errors.Wrapf(err, "line %d", ds.line)
			return false
		}

		ds.record = rec
		return true
	}

	ds.err = ds.scanner.Err()
	return false
}

// Record returns the record read by the last successful call to Scan
func (ds *DelegationScanner) Record() data.Delegation {
	return ds.record
}

// Err returns the first error that stopped the scanner
func (ds *DelegationScanner) Err() error {
	return ds.err
}

func (ds *DelegationScanner) resolve(rec *data.Delegation) error {
	var number, org string
	var found bool

	switch rec.Type {
	case data.TypeIPv4, data.TypeIPv6:
		var m data.IPMapping
		m, found = ds.index.ByStart(rec.Start)
		number, org = m.ASNNumber, m.Organization

		hosts, err := strconv.ParseInt(rec.Value, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalidArgument, "%s value %q", rec.Type, rec.Value)
		}
		prefix, err := SubnetMask(hosts)
		if err != nil {
			return err
		}
		rec.Subnet = fmt.Sprintf("%s/%d", rec.Start, prefix)

	case data.TypeASN:
		var a data.ASNRecord
		a, found = ds.index.ByNumber(rec.Start)
		number, org = a.Number, a.Organization

	default:
		log.Debugf("unknown resource type %q in line %d", rec.Type, ds.line)
	}

	if !found || number == "" {
		return nil
	}

	asn, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return errors.Errorf("mapping feed has invalid ASN %q for %s", number, rec.Start)
	}

	rec.ASNNumber = asn
	rec.Organization = org
	return nil
}

// ParseDelegations reads a whole delegation feed into memory
func ParseDelegations(r io.Reader, idx *Index, config *config.Config) ([]data.Delegation, error) {
	records := make([]data.Delegation, 0, 1024)

	ds := NewDelegationScanner(r, idx, config)
	for ds.Scan() {
		records = append(records, ds.Record())
	}

	return records, ds.Err()
}
