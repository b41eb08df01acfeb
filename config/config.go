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

package config

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/pelletier/go-toml"
)

// Feed is a single RIR delegation feed
type Feed struct {
	Registry string `toml:"registry"`
	URL      string `toml:"url"`
}

// Config contains all configurable bits and pieces the rirstats pipeline needs.
// It is built once at startup and passed on to all parts of the application that need to access it
type Config struct {
	MappingURL      string
	Feeds           []Feed
	Registries      []string
	MinIndexEntries int
	MinFeedRecords  int
	ParallelFetch   bool
	Offline         bool
	CacheDir        string
	OutputFormat    string
	OutputPath      string
	GoPackage       string
	BadgerPath      string
	NatsURL         string
	NatsSubject     string
	LogLevel        string
	FeedsTOML       string

	registrySet map[string]bool
}

// feedsFile is the layout of the optional TOML feed configuration
type feedsFile struct {
	MappingURL      string `toml:"mapping_url"`
	MinIndexEntries int    `toml:"min_index_entries"`
	MinFeedRecords  int    `toml:"min_feed_records"`
	Feeds           []Feed `toml:"feeds"`
}

// Default returns the configuration for the five RIR statistics files and the
// sapics IPv4 to ASN mapping
func Default() *Config {
	return &Config{
		MappingURL: "https://raw.githubusercontent.com/sapics/ip-location-db/refs/heads/main/asn/asn-ipv4.csv",
		Feeds: []Feed{
			{Registry: "lacnic", URL: "https://ftp.lacnic.net/pub/stats/lacnic/delegated-lacnic-latest"},
			{Registry: "arin", URL: "https://ftp.arin.net/pub/stats/arin/delegated-arin-extended-latest"},
			{Registry: "apnic", URL: "https://ftp.apnic.net/stats/apnic/delegated-apnic-latest"},
			{Registry: "afrinic", URL: "https://ftp.afrinic.net/stats/afrinic/delegated-afrinic-latest"},
			{Registry: "ripencc", URL: "https://ftp.lacnic.net/pub/stats/ripencc/delegated-ripencc-latest"},
		},
		Registries:      []string{"lacnic", "arin", "apnic", "afrinic", "ripencc"},
		MinIndexEntries: 100,
		MinFeedRecords:  100,
		CacheDir:        "./feeds",
		OutputFormat:    "go",
		OutputPath:      "pkg/models/asn.go",
		GoPackage:       "models",
		BadgerPath:      "./badger",
		NatsSubject:     "rirstats.dataset",
		LogLevel:        "info",
	}
}

// Load reads the TOML feed configuration from path and applies it on top of c.
// An empty path leaves c untouched apart from validation
func (c *Config) Load(path string) error {
	if path != "" {
		raw, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}

		var ff feedsFile
		if err := toml.Unmarshal(raw, &ff); err != nil {
			return fmt.Errorf("can't parse feed config %s: %s", path, err)
		}

		if ff.MappingURL != "" {
			c.MappingURL = ff.MappingURL
		}
		if ff.MinIndexEntries > 0 {
			c.MinIndexEntries = ff.MinIndexEntries
		}
		if ff.MinFeedRecords > 0 {
			c.MinFeedRecords = ff.MinFeedRecords
		}
		if len(ff.Feeds) > 0 {
			c.Feeds = ff.Feeds
		}
	}

	return c.validate()
}

func (c *Config) validate() error {
	c.registrySet = make(map[string]bool, len(c.Registries))
	for _, r := range c.Registries {
		c.registrySet[strings.ToLower(r)] = true
	}

	if c.MappingURL == "" {
		return fmt.Errorf("no mapping feed configured")
	}

	for i, f := range c.Feeds {
		c.Feeds[i].Registry = strings.ToLower(strings.TrimSpace(f.Registry))
		if !c.registrySet[c.Feeds[i].Registry] {
			return fmt.Errorf("feed %s: %q is not a known registry", f.URL, f.Registry)
		}
		if f.URL == "" {
			return fmt.Errorf("feed for %s has no URL", f.Registry)
		}
	}

	return nil
}

// IsRegistry reports whether name is one of the enumerated registries.
// name must already be lower case
func (c *Config) IsRegistry(name string) bool {
	if c.registrySet == nil {
		for _, r := range c.Registries {
			if r == name {
				return true
			}
		}
		return false
	}
	return c.registrySet[name]
}
