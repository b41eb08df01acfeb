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
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/namsral/flag"
	"github.com/pkg/errors"
	"github.com/scraperwall/rirstats"
	"github.com/scraperwall/rirstats/config"
	"github.com/scraperwall/rirstats/store"
	log "github.com/sirupsen/logrus"
)

func main() {
	config := config.Default()

	flag.StringVar(&config.MappingURL, "mapping-url", config.MappingURL, "the IP to ASN mapping feed (CSV)")
	flag.StringVar(&config.FeedsTOML, "feeds-toml", "", "TOML file overriding the mapping URL, the RIR feeds and the sanity thresholds")
	flag.IntVar(&config.MinIndexEntries, "min-index-entries", config.MinIndexEntries, "abort if the mapping feed has fewer entries")
	flag.IntVar(&config.MinFeedRecords, "min-feed-records", config.MinFeedRecords, "warn if a delegation feed has fewer records")
	flag.BoolVar(&config.ParallelFetch, "parallel", false, "fetch the delegation feeds concurrently")
	flag.BoolVar(&config.Offline, "offline", false, "read the feeds from the cache directory instead of downloading them")
	flag.StringVar(&config.CacheDir, "cache-dir", config.CacheDir, "the directory downloaded feeds are stored in")
	flag.StringVar(&config.OutputFormat, "format", config.OutputFormat, "output format: go, json or badger")
	flag.StringVar(&config.OutputPath, "output", config.OutputPath, "the output file for the go and json formats")
	flag.StringVar(&config.GoPackage, "go-package", config.GoPackage, "the package name of the generated go file")
	flag.StringVar(&config.BadgerPath, "badger-path", config.BadgerPath, "the directory where the badger database resides")
	flag.StringVar(&config.NatsURL, "nats-url", "", "announce the new dataset on this NATS server")
	flag.StringVar(&config.NatsSubject, "nats-subject", config.NatsSubject, "the NATS subject for dataset announcements")
	flag.StringVar(&config.LogLevel, "loglevel", config.LogLevel, "the log level")

	flag.Parse()

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	if err := config.Load(config.FeedsTOML); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("exiting...")
		cancel()
	}()

	if err := run(ctx, config); err != nil {
		if errors.Is(err, rirstats.ErrFeedTooSmall) {
			log.Errorf("failed to get IP/ASN list: %s", err)
			os.Exit(2)
		}
		log.Fatal(err)
	}

	logMemoryStats()
}

func logMemoryStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	log.Debugf("-=- alloc: %s, total_alloc: %s, in_use: %s, objs: %s, sys: %s, gc: %d",
		humanize.Bytes(m.Alloc),
		humanize.Bytes(m.TotalAlloc),
		humanize.Bytes(m.HeapInuse),
		humanize.FormatInteger("#,###.", int(m.HeapObjects)),
		humanize.Bytes(m.Sys),
		m.NumGC)
}

func run(ctx context.Context, config *config.Config) error {
	var fetcher rirstats.Fetcher
	if config.Offline {
		log.Infof("offline mode, make sure the feeds are in %s", config.CacheDir)
		fetcher = rirstats.NewFileFetcher(config.CacheDir)
	} else {
		gf, err := rirstats.NewGrabFetcher(config.CacheDir)
		if err != nil {
			return err
		}
		fetcher = gf
	}

	var kv store.KVStore
	if config.OutputFormat == "badger" {
		var err error
		kv, err = rirstats.NewBadgerDB(ctx, config.BadgerPath)
		if err != nil {
			return err
		}
		defer kv.Close()
	}

	writer, err := rirstats.NewWriter(config, kv)
	if err != nil {
		return err
	}

	ds, err := rirstats.NewPipeline(config, fetcher).Run(ctx)
	if err != nil {
		return err
	}

	if err := writer.Write(ds); err != nil {
		return err
	}
	rirstats.Summarize(ds).Log()

	if config.NatsURL == "" {
		return nil
	}

	notifier, err := rirstats.NewNotifier(config.NatsURL, config.NatsSubject)
	if err != nil {
		return err
	}
	defer notifier.Close()

	return notifier.Notify(ds, config.OutputFormat, writer.Location())
}
