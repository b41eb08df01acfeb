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

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned by SubnetMask for a host count below one
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFeedTooSmall means the mapping feed yielded fewer index entries than
	// configured. The pipeline aborts before any delegation feed is read
	ErrFeedTooSmall = errors.New("feed too small")

	// ErrFeedUndersized marks a delegation feed that yielded fewer records than
	// configured. It is only ever logged
	ErrFeedUndersized = errors.New("feed undersized")

	// ErrRetrieval wraps every failure to fetch a feed
	ErrRetrieval = errors.New("retrieval failed")
)
