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

// ASNRecord is the first mapping feed entry seen for an autonomous system number
type ASNRecord struct {
	Number       string
	Organization string
}

// IPMapping is the mapping feed entry for one textual range start address
type IPMapping struct {
	Start        string
	ASNNumber    string
	Organization string
}

// ASNEntry is one element of the ASN catalog
type ASNEntry struct {
	Number       int64  `json:"number"`
	Registry     string `json:"registry"`
	CountryCode  string `json:"country_code"`
	Organization string `json:"organization"`
}
