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
	nats "github.com/nats-io/nats.go"
	"github.com/scraperwall/rirstats/data"
	log "github.com/sirupsen/logrus"
)

// Notifier announces freshly written datasets on a NATS subject
type Notifier struct {
	conn    *nats.EncodedConn
	subject string
}

// NewNotifier connects to the NATS server at url
func NewNotifier(url, subject string) (*Notifier, error) {
	nc, err := nats.Connect(url, nats.Name("rirstats"))
	if err != nil {
		return nil, err
	}

	jsonc, err := nats.NewEncodedConn(nc, nats.JSON_ENCODER)
	if err != nil {
		nc.Close()
		return nil, err
	}

	return &Notifier{
		conn:    jsonc,
		subject: subject,
	}, nil
}

// Notify publishes a data.DatasetMessage for ds and waits until
// the server has received it
func (n *Notifier) Notify(ds *Dataset, format, output string) error {
	msg := data.DatasetMessage{
		Output:      output,
		Format:      format,
		ASNs:        len(ds.ASNs),
		Subnets:     len(ds.Subnets),
		Feeds:       ds.Feeds,
		GeneratedAt: ds.GeneratedAt,
	}

	if err := n.conn.Publish(n.subject, &msg); err != nil {
		return err
	}
	if err := n.conn.Flush(); err != nil {
		return err
	}

	log.Infof("published dataset notification on %s", n.subject)
	return nil
}

// Close drains and closes the NATS connection
func (n *Notifier) Close() {
	if err := n.conn.Drain(); err != nil {
		log.Warnf("failed to drain nats connection: %s", err)
		n.conn.Close()
	}
}
