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
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"testing"

	"github.com/scraperwall/rirstats/data"
)

func TestStoreWriter(t *testing.T) {
	dir, err := ioutil.TempDir("", "rirstats-badger")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, err := NewBadgerDB(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	// a larger earlier dataset must not leave entries behind
	big := testDataset()
	big.Subnets = append(big.Subnets, big.Subnets...)
	sw := NewStoreWriter(kv, dir)
	if err := sw.Write(big); err != nil {
		t.Fatal(err)
	}

	ds := testDataset()
	if err := sw.Write(ds); err != nil {
		t.Fatal(err)
	}

	n, err := kv.Count(SubnetNamespace, []byte{})
	if err != nil {
		t.Fatal(err)
	}
	if n != len(ds.Subnets) {
		t.Errorf("store has %d subnets but %d are expected", n, len(ds.Subnets))
	}

	subnets := make([]data.SubnetEntry, 0)
	keys := make([]string, 0)
	err = kv.Each(SubnetNamespace, []byte{}, func(key, value []byte) {
		var s data.SubnetEntry
		if err := json.Unmarshal(value, &s); err != nil {
			t.Error(err)
		}
		keys = append(keys, string(key))
		subnets = append(subnets, s)
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := range ds.Subnets {
		if i >= len(subnets) {
			break
		}
		if subnets[i] != ds.Subnets[i] {
			t.Errorf("stored subnet %d is %+v but %+v is expected", i, subnets[i], ds.Subnets[i])
		}
		if keys[i] != string(SeqKey(i)) {
			t.Errorf("key %d is %s but %s is expected", i, keys[i], SeqKey(i))
		}
	}

	raw, err := kv.Get(ASNNamespace, SeqKey(0))
	if err != nil {
		t.Fatal(err)
	}
	var a data.ASNEntry
	if err := json.Unmarshal(raw, &a); err != nil {
		t.Fatal(err)
	}
	if a != ds.ASNs[0] {
		t.Errorf("stored ASN is %+v but %+v is expected", a, ds.ASNs[0])
	}

	if _, err := kv.Get(ASNNamespace, SeqKey(1)); err != kv.ErrNotFound() {
		t.Errorf("ASN 1 should not exist but returned %v", err)
	}

	info, err := DatasetInfo(kv)
	if err != nil {
		t.Fatal(err)
	}
	if info.ASNs != 1 || info.Subnets != 2 || info.Output != dir {
		t.Errorf("dataset info is %+v", info)
	}
}
