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
	"regexp"
	"strings"

	"github.com/scraperwall/rirstats/data"
)

const (
	mappingSeparator    = ","
	mappingFields       = 4
	delegationSeparator = "|"
	delegationFields    = 7
)

var orgDisallowed = regexp.MustCompile(`[^a-zA-Z0-9 .()-]`)

// SanitizeOrganization strips every character outside [a-zA-Z0-9 .()-]
func SanitizeOrganization(org string) string {
	return orgDisallowed.ReplaceAllString(org, "")
}

// decodeMappingLine decodes one line of the mapping feed:
//
//	ip_range_start,ip_range_end,asn_number,organization
//
// ok is false when the line doesn't have exactly four fields.
func decodeMappingLine(line string) (m data.IPMapping, ok bool) {
	fields := strings.Split(line, mappingSeparator)
	if len(fields) != mappingFields {
		return m, false
	}

	return data.IPMapping{
		Start:        strings.ToLower(fields[0]),
		ASNNumber:    strings.TrimSpace(fields[2]),
		Organization: SanitizeOrganization(strings.TrimSpace(fields[3])),
	}, true
}

// decodeDelegationLine decodes one line of an RIR delegation feed:
//
//	registry|cc|type|start|value|date|status[|...]
//
// Blank lines, comments and lines with fewer than seven fields yield ok == false.
// Only the fixed columns are extracted; the lookup columns stay empty.
func decodeDelegationLine(line string) (d data.Delegation, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return d, false
	}

	fields := strings.Split(strings.ToLower(line), delegationSeparator)
	if len(fields) < delegationFields {
		return d, false
	}

	return data.Delegation{
		Registry:    fields[0],
		CountryCode: strings.ToUpper(fields[1]),
		Type:        fields[2],
		Start:       fields[3],
		Value:       fields[4],
		Date:        fields[5],
		Status:      fields[6],
	}, true
}
