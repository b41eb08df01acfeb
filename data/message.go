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

import "time"

// FeedStats describes how many records one delegation feed contributed
type FeedStats struct {
	Registry   string `json:"registry"`
	URL        string `json:"url"`
	Records    int    `json:"records"`
	Undersized bool   `json:"undersized"`
}

// DatasetMessage is published on NATS after a dataset has been written
type DatasetMessage struct {
	Output      string      `json:"output"`
	Format      string      `json:"format"`
	ASNs        int         `json:"asns"`
	Subnets     int         `json:"subnets"`
	Feeds       []FeedStats `json:"feeds"`
	GeneratedAt time.Time   `json:"generated_at"`
}
