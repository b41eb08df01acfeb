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
	"compress/gzip"
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cavaliergopher/grab/v3"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Fetcher retrieves the text of a feed
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (io.ReadCloser, error)
}

// GrabFetcher downloads feeds into a cache directory
type GrabFetcher struct {
	client   *grab.Client
	cacheDir string
}

// NewGrabFetcher creates a GrabFetcher that stores downloads in cacheDir
func NewGrabFetcher(cacheDir string) (*GrabFetcher, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}

	client := grab.NewClient()
	client.UserAgent = "rirstats"

	return &GrabFetcher{
		client:   client,
		cacheDir: cacheDir,
	}, nil
}

// Fetch downloads feedURL and opens the downloaded file. A file left over from
// an earlier run is always downloaded again
func (gf *GrabFetcher) Fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	log.Infof("downloading %s", feedURL)

	req, err := grab.NewRequest(gf.cacheDir, feedURL)
	if err != nil {
		return nil, errors.Wrap(ErrRetrieval, err.Error())
	}
	req = req.WithContext(ctx)
	req.NoResume = true

	resp := gf.client.Do(req)
	if err := resp.Err(); err != nil {
		return nil, errors.Wrapf(ErrRetrieval, "%s: %s", feedURL, err)
	}

	log.Infof("downloaded %s (%s)", feedURL, humanize.Bytes(uint64(resp.BytesComplete())))

	return openFeed(resp.Filename)
}

// FileFetcher reads feeds from a local directory. The file name is the last
// path element of the feed URL
type FileFetcher struct {
	dir string
}

// NewFileFetcher creates a FileFetcher for dir
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{dir: dir}
}

// Fetch opens the local copy of feedURL
func (ff *FileFetcher) Fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	name := feedURL
	if u, err := url.Parse(feedURL); err == nil && u.Path != "" {
		name = path.Base(u.Path)
	}

	fname := filepath.Join(ff.dir, name)
	log.Infof("reading %s from %s", feedURL, fname)

	rc, err := openFeed(fname)
	if err != nil {
		return nil, errors.Wrapf(ErrRetrieval, "%s: %s", feedURL, err)
	}
	return rc, nil
}

// gzipFile closes both the gzip stream and the file underneath
type gzipFile struct {
	*gzip.Reader
	fh *os.File
}

func (gz *gzipFile) Close() error {
	gz.Reader.Close()
	return gz.fh.Close()
}

// openFeed opens fname, decompressing it if it ends in .gz
func openFeed(fname string) (io.ReadCloser, error) {
	fh, err := os.Open(fname)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(fname, ".gz") {
		return fh, nil
	}

	gz, err := gzip.NewReader(fh)
	if err != nil {
		fh.Close()
		return nil, errors.Wrapf(err, "%s", fname)
	}

	return &gzipFile{Reader: gz, fh: fh}, nil
}
