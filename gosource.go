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
	"bytes"
	"go/format"
	"text/template"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var goSourceTemplate = template.Must(template.New("gosource").Parse(`// Code generated by rirstats. DO NOT EDIT.

package {{ .Package }}

var ASNList = []ASN{
{{- range .ASNs }}
	{
		Number: {{ .Number }},
		RIRName: {{ printf "%q" .Registry }},
		CountryCode: {{ printf "%q" .CountryCode }},
		Org: {{ printf "%q" .Organization }},
	},
{{- end }}
}

var ASNDelegated = []ASNIpDelegate{
{{- range .Subnets }}
	{
		RIRName: {{ printf "%q" .Registry }},
		CountryCode: {{ printf "%q" .CountryCode }},
		Subnet: {{ printf "%q" .Subnet }},
		{{- if .IntIPv4 }}
		IntIPv4: {{ .IntIPv4 }},
		{{- end }}
		{{- if .IntIPv6 }}
		IntIPv6: {{ printf "%q" .IntIPv6 }},
		{{- end }}
		Addresses: {{ .AddressCount }},
		Date: {{ printf "%q" .Date }},
		ASN: {{ .ASNNumber }},
		Status: {{ printf "%q" .Status }},
	},
{{- end }}
}
`))

// GoSourceWriter renders the dataset as Go package level variables ASNList and
// ASNDelegated. The consuming package declares the ASN and ASNIpDelegate types
type GoSourceWriter struct {
	path string
	pkg  string
}

// NewGoSourceWriter creates a GoSourceWriter that writes package pkg to path
func NewGoSourceWriter(path, pkg string) *GoSourceWriter {
	return &GoSourceWriter{
		path: path,
		pkg:  pkg,
	}
}

// Render returns the formatted source for ds
func (gw *GoSourceWriter) Render(ds *Dataset) ([]byte, error) {
	var buf bytes.Buffer

	err := goSourceTemplate.Execute(&buf, struct {
		*Dataset
		Package string
	}{ds, gw.pkg})
	if err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "generated source doesn't compile")
	}
	return src, nil
}

// Write renders ds and writes it to the configured path
func (gw *GoSourceWriter) Write(ds *Dataset) error {
	src, err := gw.Render(ds)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(gw.path, src); err != nil {
		return err
	}

	log.Infof("generated %s with %d records", gw.path, ds.Size())
	return nil
}

// Location returns the output file
func (gw *GoSourceWriter) Location() string {
	return gw.path
}
