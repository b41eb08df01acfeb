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

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/scraperwall/rirstats/config"
	"github.com/scraperwall/rirstats/data"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Pipeline fetches the mapping feed and the RIR delegation feeds and turns them into a Dataset
type Pipeline struct {
	config  *config.Config
	fetcher Fetcher
}

// NewPipeline creates a new Pipeline
func NewPipeline(config *config.Config, fetcher Fetcher) *Pipeline {
	return &Pipeline{
		config:  config,
		fetcher: fetcher,
	}
}

// Run executes the whole pipeline. It fails with ErrFeedTooSmall if the
// mapping feed is truncated, any fetch or parse error ends the run as well.
// Undersized delegation feeds are only logged.
func (p *Pipeline) Run(ctx context.Context) (*Dataset, error) {
	idx, err := p.buildIndex(ctx)
	if err != nil {
		return nil, err
	}

	feeds, err := p.parseFeeds(ctx, idx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, recs := range feeds {
		total += len(recs)
	}

	records := make([]data.Delegation, 0, total)
	stats := make([]data.FeedStats, len(feeds))
	for i, recs := range feeds {
		feed := p.config.Feeds[i]
		stats[i] = data.FeedStats{
			Registry:   feed.Registry,
			URL:        feed.URL,
			Records:    len(recs),
			Undersized: len(recs) < p.config.MinFeedRecords,
		}
		records = append(records, recs...)
	}

	ds := Generate(records)
	ds.Feeds = stats

	log.Infof("dataset has %s ASNs and %s subnets", humanize.Comma(int64(len(ds.ASNs))), humanize.Comma(int64(len(ds.Subnets))))
	return ds, nil
}

func (p *Pipeline) buildIndex(ctx context.Context) (*Index, error) {
	rc, err := p.fetcher.Fetch(ctx, p.config.MappingURL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	log.Info("parsing asn list")
	idx, err := BuildIndex(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping feed %s", p.config.MappingURL)
	}

	if idx.Size() < p.config.MinIndexEntries {
		return nil, errors.Wrapf(ErrFeedTooSmall, "mapping feed %s has %d entries, expected at least %d", p.config.MappingURL, idx.Size(), p.config.MinIndexEntries)
	}

	log.Infof("asn index has %s ranges and %s ASNs", humanize.Comma(int64(idx.Size())), humanize.Comma(int64(idx.NumASNs())))
	return idx, nil
}

// parseFeeds returns the records of every configured feed, in feed order
func (p *Pipeline) parseFeeds(ctx context.Context, idx *Index) ([][]data.Delegation, error) {
	res := make([][]data.Delegation, len(p.config.Feeds))

	if !p.config.ParallelFetch {
		for i, feed := range p.config.Feeds {
			recs, err := p.parseFeed(ctx, feed, idx)
			if err != nil {
				return nil, err
			}
			res[i] = recs
		}
		return res, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, feed := range p.config.Feeds {
		i, feed := i, feed
		g.Go(func() error {
			recs, err := p.parseFeed(gctx, feed, idx)
			if err != nil {
				return err
			}
			res[i] = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Pipeline) parseFeed(ctx context.Context, feed config.Feed, idx *Index) ([]data.Delegation, error) {
	rc, err := p.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	log.Infof("parsing %s delegations", feed.Registry)
	recs, err := ParseDelegations(rc, idx, p.config)
	if err != nil {
		return nil, errors.Wrapf(err, "%s feed %s", feed.Registry, feed.URL)
	}

	if len(recs) < p.config.MinFeedRecords {
		log.Warn(errors.Wrapf(ErrFeedUndersized, "%s feed %s has %d records, expected at least %d", feed.Registry, feed.URL, len(recs), p.config.MinFeedRecords))
	}
	log.Infof("%s: %s records", feed.Registry, humanize.Comma(int64(len(recs))))

	return recs, nil
}
