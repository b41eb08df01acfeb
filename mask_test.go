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
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestSubnetMask(t *testing.T) {
	tests := []struct {
		hosts  int64
		prefix int
	}{
		{1, 32},
		{2, 31},
		{3, 30},
		{4, 30},
		{256, 24},
		{257, 23},
		{1024, 22},
		{1025, 21},
		{65536, 16},
		{1 << 24, 8},
	}

	for _, tt := range tests {
		prefix, err := SubnetMask(tt.hosts)
		if err != nil {
			t.Errorf("SubnetMask(%d) failed: %s", tt.hosts, err)
			continue
		}
		if prefix != tt.prefix {
			t.Errorf("SubnetMask(%d) is %d but %d is expected", tt.hosts, prefix, tt.prefix)
		}
	}
}

func TestSubnetMaskMatchesLog2(t *testing.T) {
	for n := int64(1); n <= 100000; n += 37 {
		prefix, err := SubnetMask(n)
		if err != nil {
			t.Fatal(err)
		}
		expected := 32 - int(math.Ceil(math.Log2(float64(n))))
		if prefix != expected {
			t.Fatalf("SubnetMask(%d) is %d but %d is expected", n, prefix, expected)
		}
	}
}

func TestSubnetMaskInvalid(t *testing.T) {
	for _, n := range []int64{0, -5} {
		if _, err := SubnetMask(n); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SubnetMask(%d) should fail with ErrInvalidArgument but returned %v", n, err)
		}
	}
}
