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
	"strings"
	"testing"
)

const indexTestCSV = `1.0.0.0,1.0.0.255,13335,Cloudflare Inc.
1.0.4.0,1.0.7.255,38803,Wirefreebroadband Pty Ltd
1.0.4.0,1.0.7.255,38804,Second Entry
5.183.80.0,5.183.80.255,13335,Another Cloudflare
2.2.2.0,2.2.2.255,64500
3.3.3.0,3.3.3.255,64501,Too,Many
4.4.4.0,4.4.4.255,,No ASN
2001:DB8::,2001:db8::ffff,64510,Documentation
`

func TestBuildIndex(t *testing.T) {
	idx, err := BuildIndex(strings.NewReader(indexTestCSV))
	if err != nil {
		t.Fatal(err)
	}

	if idx.Size() != 5 {
		t.Errorf("there are %d ranges but 5 are expected", idx.Size())
	}

	// last occurrence of a start address wins
	m, ok := idx.ByStart("1.0.4.0")
	if !ok {
		t.Fatal("1.0.4.0 is missing")
	}
	if m.ASNNumber != "38804" || m.Organization != "Second Entry" {
		t.Errorf("1.0.4.0 maps to %s %q but 38804 \"Second Entry\" is expected", m.ASNNumber, m.Organization)
	}

	// first occurrence of an ASN wins
	a, ok := idx.ByNumber("13335")
	if !ok {
		t.Fatal("ASN 13335 is missing")
	}
	if a.Organization != "Cloudflare Inc." {
		t.Errorf("ASN 13335 belongs to %q but \"Cloudflare Inc.\" is expected", a.Organization)
	}

	if _, ok := idx.ByNumber("38803"); !ok {
		t.Error("ASN 38803 should be indexed even though its start address was overwritten")
	}

	// lines with three or five fields are dropped
	for _, start := range []string{"2.2.2.0", "3.3.3.0"} {
		if _, ok := idx.ByStart(start); ok {
			t.Errorf("%s comes from a malformed line and must not be indexed", start)
		}
	}
	for _, asn := range []string{"64500", "64501"} {
		if _, ok := idx.ByNumber(asn); ok {
			t.Errorf("ASN %s comes from a malformed line and must not be indexed", asn)
		}
	}

	// empty ASNs are only indexed by start address
	if _, ok := idx.ByStart("4.4.4.0"); !ok {
		t.Error("4.4.4.0 is missing")
	}
	if _, ok := idx.ByNumber(""); ok {
		t.Error("the empty ASN must not be indexed")
	}

	// start addresses are lower cased
	if _, ok := idx.ByStart("2001:db8::"); !ok {
		t.Error("2001:db8:: is missing")
	}

	if idx.NumASNs() != 4 {
		t.Errorf("there are %d ASNs but 4 are expected", idx.NumASNs())
	}
}

func TestSanitizeOrganization(t *testing.T) {
	tests := map[string]string{
		"Acme, Inc.™":              "Acme Inc.",
		"Example Corp":             "Example Corp",
		"A-B (Holdings) Ltd.":      "A-B (Holdings) Ltd.",
		"Müller & Söhne GmbH":      "Mller  Shne GmbH",
		"\"quoted\" name; with_us": "quoted name withus",
		"":                         "",
	}

	for in, expected := range tests {
		if out := SanitizeOrganization(in); out != expected {
			t.Errorf("SanitizeOrganization(%q) is %q but %q is expected", in, out, expected)
		}
	}
}
