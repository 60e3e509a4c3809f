// Package encoder serializes maze snapshots for the CLI and the HTTP API.
package encoder

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-mazegen/service/dto"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown encoding format")

var (
	_ i.Encoder = &JSON{}
	_ i.Encoder = &YAML{}
	_ i.Encoder = &Protobuf{}
)

// ForFormat returns the encoder registered under name: json, yaml or pb.
func ForFormat(name string) (i.Encoder, error) {
	switch name {
	case "json", "":
		return &JSON{}, nil
	case "yaml", "yml":
		return &YAML{}, nil
	case "pb", "protobuf":
		return &Protobuf{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// JSON encodes snapshots as indented JSON.
type JSON struct{}

// Marshal implements i.Encoder.
func (j *JSON) Marshal(s *dto.Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ContentType implements i.Encoder.
func (j *JSON) ContentType() string {
	return "application/json"
}

// YAML encodes snapshots as YAML documents.
type YAML struct{}

// Marshal implements i.Encoder.
func (y *YAML) Marshal(s *dto.Snapshot) ([]byte, error) {
	return yaml.Marshal(s)
}

// ContentType implements i.Encoder.
func (y *YAML) ContentType() string {
	return "application/yaml"
}
