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

package data

// Resource types found in the third column of a delegation feed
const (
	TypeIPv4 = "ipv4"
	TypeIPv6 = "ipv6"
	TypeASN  = "asn"
)

// Delegation is a single normalized line of an RIR delegation feed joined
// against the mapping feed indexes
type Delegation struct {
	Registry     string
	CountryCode  string
	Type         string
	Start        string
	Value        string
	Date         string
	Status       string
	Subnet       string
	ASNNumber    int64
	Organization string
}

// IsIP reports whether the delegation describes an address block
func (d *Delegation) IsIP() bool {
	return d.Type == TypeIPv4 || d.Type == TypeIPv6
}

// SubnetEntry is one element of the subnet delegation catalog
type SubnetEntry struct {
	Registry     string `json:"registry"`
	CountryCode  string `json:"country_code"`
	Subnet       string `json:"subnet"`
	IntIPv4      int64  `json:"int_ipv4,omitempty"`
	IntIPv6      string `json:"int_ipv6,omitempty"`
	AddressCount int64  `json:"address_count"`
	Date         string `json:"date"`
	ASNNumber    int64  `json:"asn_number"`
	Status       string `json:"status"`
}
