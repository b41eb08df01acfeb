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

import "testing"

func TestSummarize(t *testing.T) {
	ds := testDataset()
	ds.Subnets = append(ds.Subnets, ds.Subnets[0])
	ds.Subnets[2].CountryCode = "BR"

	regs := Summarize(ds).Registries()
	if len(regs) != 2 {
		t.Fatalf("there are %d registries but 2 are expected", len(regs))
	}

	if regs[0].Registry != "apnic" || regs[1].Registry != "lacnic" {
		t.Errorf("registries are not sorted: %s, %s", regs[0].Registry, regs[1].Registry)
	}

	lacnic := regs[1]
	if lacnic.ASNs != 1 || lacnic.Subnets != 2 || lacnic.Addresses != 2048 || lacnic.Countries != 2 {
		t.Errorf("lacnic stats are %+v", lacnic)
	}

	apnic := regs[0]
	if apnic.ASNs != 0 || apnic.Subnets != 1 || apnic.Countries != 1 {
		t.Errorf("apnic stats are %+v", apnic)
	}

	Summarize(ds).Log()
}
