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
	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/maps/treemap"
	log "github.com/sirupsen/logrus"
)

// RegistryStats counts the catalog entries of one registry
type RegistryStats struct {
	Registry  string
	ASNs      int
	Subnets   int
	Addresses int64
	Countries int
}

// Summary holds per registry statistics ordered by registry name
type Summary struct {
	registries *treemap.Map
}

// Summarize counts the entries of both catalogs per registry
func Summarize(ds *Dataset) *Summary {
	s := &Summary{registries: treemap.NewWithStringComparator()}
	countries := make(map[string]map[string]bool)

	for _, a := range ds.ASNs {
		s.get(a.Registry).ASNs++
	}

	for _, sn := range ds.Subnets {
		rs := s.get(sn.Registry)
		rs.Subnets++
		rs.Addresses += sn.AddressCount

		if countries[sn.Registry] == nil {
			countries[sn.Registry] = make(map[string]bool)
		}
		countries[sn.Registry][sn.CountryCode] = true
	}

	for registry, ccs := range countries {
		s.get(registry).Countries = len(ccs)
	}

	return s
}

func (s *Summary) get(registry string) *RegistryStats {
	if v, ok := s.registries.Get(registry); ok {
		return v.(*RegistryStats)
	}

	rs := &RegistryStats{Registry: registry}
	s.registries.Put(registry, rs)
	return rs
}

// Registries returns the statistics of all registries sorted by name
func (s *Summary) Registries() []RegistryStats {
	res := make([]RegistryStats, 0, s.registries.Size())

	iter := s.registries.Iterator()
	for iter.Next() {
		res = append(res, *iter.Value().(*RegistryStats))
	}

	return res
}

// Log writes one line per registry
func (s *Summary) Log() {
	for _, rs := range s.Registries() {
		log.Infof("%-8s :: %s ASNs / %s subnets / %s addresses / %d countries",
			rs.Registry,
			humanize.Comma(int64(rs.ASNs)),
			humanize.Comma(int64(rs.Subnets)),
			humanize.Comma(rs.Addresses),
			rs.Countries)
	}
}
