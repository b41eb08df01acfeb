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
	"encoding/json"
	"go/parser"
	"go/token"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scraperwall/rirstats/config"
	"github.com/scraperwall/rirstats/data"
)

func testDataset() *Dataset {
	return &Dataset{
		ASNs: []data.ASNEntry{
			{Number: 1234, Registry: "lacnic", CountryCode: "BR", Organization: "Example Corp"},
		},
		Subnets: []data.SubnetEntry{
			{Registry: "lacnic", CountryCode: "DO", Subnet: "5.183.80.0/22", IntIPv4: 95899648, AddressCount: 1024, Date: "20240711", ASNNumber: 1234, Status: "allocated"},
			{Registry: "apnic", CountryCode: "AU", Subnet: "2001:db8::/27", IntIPv6: "42540766411282592856903984951653826560", AddressCount: 32, Date: "20110811", Status: "allocated"},
		},
	}
}

func TestGoSourceWriter(t *testing.T) {
	dir, err := ioutil.TempDir("", "rirstats-gosource")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "pkg", "models", "asn.go")
	gw := NewGoSourceWriter(fname, "models")
	if err := gw.Write(testDataset()); err != nil {
		t.Fatal(err)
	}

	src, err := ioutil.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}

	f, err := parser.ParseFile(token.NewFileSet(), fname, src, 0)
	if err != nil {
		t.Fatalf("generated source doesn't parse: %s", err)
	}
	if f.Name.Name != "models" {
		t.Errorf("package is %s but models is expected", f.Name.Name)
	}

	for _, want := range []string{
		"var ASNList = []ASN{",
		"var ASNDelegated = []ASNIpDelegate{",
		`Org:         "Example Corp",`,
		`Subnet:      "5.183.80.0/22",`,
		"IntIPv4:     95899648,",
		`IntIPv6:     "42540766411282592856903984951653826560",`,
		"ASN:         1234,",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source lacks %q:\n%s", want, src)
		}
	}

	if _, err := os.Stat(fname + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file was left behind")
	}
}

func TestJSONWriter(t *testing.T) {
	dir, err := ioutil.TempDir("", "rirstats-json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "dataset.json")
	if err := NewJSONWriter(fname).Write(testDataset()); err != nil {
		t.Fatal(err)
	}

	raw, err := ioutil.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		ASNs    []map[string]interface{} `json:"asns"`
		Subnets []map[string]interface{} `json:"subnets"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}

	if len(decoded.ASNs) != 1 || len(decoded.Subnets) != 2 {
		t.Fatalf("decoded %d ASNs and %d subnets but 1 and 2 are expected", len(decoded.ASNs), len(decoded.Subnets))
	}

	if decoded.ASNs[0]["organization"] != "Example Corp" || decoded.ASNs[0]["number"] != float64(1234) {
		t.Errorf("ASN entry is %v", decoded.ASNs[0])
	}
	if decoded.Subnets[0]["subnet"] != "5.183.80.0/22" || decoded.Subnets[0]["address_count"] != float64(1024) {
		t.Errorf("subnet entry is %v", decoded.Subnets[0])
	}
	if _, ok := decoded.Subnets[0]["int_ipv6"]; ok {
		t.Error("ipv4 entries must not carry int_ipv6")
	}
}

func TestNewWriter(t *testing.T) {
	cfg := config.Default()

	for _, format := range []string{"go", "json"} {
		cfg.OutputFormat = format
		w, err := NewWriter(cfg, nil)
		if err != nil {
			t.Errorf("%s: %s", format, err)
			continue
		}
		if w.Location() != cfg.OutputPath {
			t.Errorf("%s writer writes to %s but %s is expected", format, w.Location(), cfg.OutputPath)
		}
	}

	cfg.OutputFormat = "badger"
	if _, err := NewWriter(cfg, nil); err == nil {
		t.Error("badger output without a store should fail")
	}

	cfg.OutputFormat = "xml"
	if _, err := NewWriter(cfg, nil); err == nil {
		t.Error("unknown formats should fail")
	}
}
