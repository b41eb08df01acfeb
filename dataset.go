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
	"net/netip"
	"strconv"
	"time"

	"github.com/scraperwall/rirstats/data"
	"lukechampine.com/uint128"
)

// Dataset is the consolidated result of one pipeline run
type Dataset struct {
	ASNs        []data.ASNEntry
	Subnets     []data.SubnetEntry
	Feeds       []data.FeedStats
	GeneratedAt time.Time
}

// Generate projects the concatenated delegation records into the ASN catalog
// and the subnet catalog. Order is preserved. ASN records that couldn't be
// resolved against the mapping feed are left out, address blocks are always kept.
func Generate(records []data.Delegation) *Dataset {
	ds := &Dataset{
		ASNs:        make([]data.ASNEntry, 0),
		Subnets:     make([]data.SubnetEntry, 0, len(records)),
		GeneratedAt: time.Now(),
	}

	for i := range records {
		rec := &records[i]

		switch {
		case rec.Type == data.TypeASN && rec.ASNNumber != 0:
			ds.ASNs = append(ds.ASNs, data.ASNEntry{
				Number:       rec.ASNNumber,
				Registry:     rec.Registry,
				CountryCode:  rec.CountryCode,
				Organization: rec.Organization,
			})

		case rec.IsIP():
			// the value was validated by SubnetMask already
			count, _ := strconv.ParseInt(rec.Value, 10, 64)

			entry := data.SubnetEntry{
				Registry:     rec.Registry,
				CountryCode:  rec.CountryCode,
				Subnet:       rec.Subnet,
				AddressCount: count,
				Date:         rec.Date,
				ASNNumber:    rec.ASNNumber,
				Status:       rec.Status,
			}
			setIntIP(&entry, rec)
			ds.Subnets = append(ds.Subnets, entry)
		}
	}

	return ds
}

// setIntIP stores the integer form of the start address. Starts that don't
// parse as an address of the record's family are left at zero.
func setIntIP(entry *data.SubnetEntry, rec *data.Delegation) {
	addr, err := netip.ParseAddr(rec.Start)
	if err != nil {
		return
	}

	switch {
	case rec.Type == data.TypeIPv4 && addr.Is4():
		b := addr.As4()
		entry.IntIPv4 = int64(b[0])<<24 | int64(b[1])<<16 | int64(b[2])<<8 | int64(b[3])
	case rec.Type == data.TypeIPv6 && addr.Is6():
		b := addr.As16()
		entry.IntIPv6 = uint128.FromBytesBE(b[:]).String()
	}
}

// Size returns the number of entries in both catalogs
func (ds *Dataset) Size() int {
	return len(ds.ASNs) + len(ds.Subnets)
}
