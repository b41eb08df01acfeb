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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/scraperwall/rirstats"
)

func main() {
	dbdir := flag.String("dir", "./badger", "badger db dir")
	namespace := flag.String("namespace", "subnet", "print the entries of this namespace (asn, subnet or meta)")
	prefix := flag.String("prefix", "", "return all keys with this prefix")

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, err := rirstats.NewBadgerDB(ctx, *dbdir)
	if err != nil {
		log.Fatal(err)
	}
	defer kv.Close()

	if info, err := rirstats.DatasetInfo(kv); err == nil {
		log.Printf("dataset of %s: %d ASNs, %d subnets", info.GeneratedAt, info.ASNs, info.Subnets)
	}

	err = kv.Each([]byte(*namespace), []byte(*prefix), func(key, value []byte) {
		fmt.Printf("%s\t%s\n", key, value)
	})
	if err != nil {
		log.Fatal(err)
	}
}
