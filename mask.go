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
	"math/bits"

	"github.com/pkg/errors"
)

// SubnetMask returns the CIDR prefix length of the smallest power of two block
// that holds hosts addresses, i.e. 32 - ceil(log2(hosts)).
// The same arithmetic is applied to ipv6 values of the delegation feeds.
func SubnetMask(hosts int64) (int, error) {
	if hosts <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "number of hosts must be positive, got %d", hosts)
	}

	// ceil(log2(n)) is the bit length of n-1 for n >= 1
	return 32 - bits.Len64(uint64(hosts-1)), nil
}
