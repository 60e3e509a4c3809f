package encoder

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-mazegen/service/dto"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the Snapshot message.
const (
	snapshotID protowire.Number = iota + 1
	snapshotRows
	snapshotColumns
	snapshotSeed
	snapshotStatus
	snapshotCurrent
	snapshotSteps
	snapshotAdvances
	snapshotBacktracks
	snapshotPerfect
	snapshotCells
)

// Field numbers of the Position and Cell messages.
const (
	posRow protowire.Number = iota + 1
	posCol
	cellVisited
	cellWalls
)

// Wall bits of the Cell.walls field.
const (
	wallNorth uint64 = 1 << iota
	wallEast
	wallSouth
	wallWest
)

var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Protobuf encodes snapshots in protocol buffer wire format:
//
//	message Snapshot {
//	  string id = 1; int64 rows = 2; int64 columns = 3; sint64 seed = 4;
//	  string status = 5; Position current = 6; int64 steps = 7;
//	  int64 advances = 8; int64 backtracks = 9; bool perfect = 10;
//	  repeated Cell cells = 11;
//	}
//	message Position { int64 row = 1; int64 col = 2; }
//	message Cell { int64 row = 1; int64 col = 2; bool visited = 3; uint32 walls = 4; }
type Protobuf struct{}

// Marshal implements i.Encoder.
func (p *Protobuf) Marshal(s *dto.Snapshot) ([]byte, error) {
	var b []byte
	b = appendString(b, snapshotID, s.ID)
	b = appendVarint(b, snapshotRows, uint64(s.Rows))
	b = appendVarint(b, snapshotColumns, uint64(s.Columns))
	b = appendVarint(b, snapshotSeed, protowire.EncodeZigZag(s.Seed))
	b = appendString(b, snapshotStatus, s.Status)

	var current []byte
	current = appendVarint(current, posRow, uint64(s.Current.Row))
	current = appendVarint(current, posCol, uint64(s.Current.Col))
	b = protowire.AppendTag(b, snapshotCurrent, protowire.BytesType)
	b = protowire.AppendBytes(b, current)

	b = appendVarint(b, snapshotSteps, uint64(s.Steps))
	b = appendVarint(b, snapshotAdvances, uint64(s.Advances))
	b = appendVarint(b, snapshotBacktracks, uint64(s.Backtracks))
	b = appendVarint(b, snapshotPerfect, protowire.EncodeBool(s.Perfect))

	for _, c := range s.Cells {
		var cell []byte
		cell = appendVarint(cell, posRow, uint64(c.Row))
		cell = appendVarint(cell, posCol, uint64(c.Col))
		cell = appendVarint(cell, cellVisited, protowire.EncodeBool(c.Visited))
		cell = appendVarint(cell, cellWalls, wallBits(c))
		b = protowire.AppendTag(b, snapshotCells, protowire.BytesType)
		b = protowire.AppendBytes(b, cell)
	}
	return b, nil
}

// ContentType implements i.Encoder.
func (p *Protobuf) ContentType() string {
	return "application/x-protobuf"
}

// Unmarshal decodes a snapshot produced by Marshal. Unknown fields are skipped.
func (p *Protobuf) Unmarshal(b []byte) (*dto.Snapshot, error) {
	s := &dto.Snapshot{}
	err := consumeFields(b, func(num protowire.Number, v uint64, raw []byte) error {
		switch num {
		case snapshotID:
			s.ID = string(raw)
		case snapshotRows:
			s.Rows = int(v)
		case snapshotColumns:
			s.Columns = int(v)
		case snapshotSeed:
			s.Seed = protowire.DecodeZigZag(v)
		case snapshotStatus:
			s.Status = string(raw)
		case snapshotCurrent:
			return consumeFields(raw, func(num protowire.Number, v uint64, _ []byte) error {
				switch num {
				case posRow:
					s.Current.Row = int(v)
				case posCol:
					s.Current.Col = int(v)
				}
				return nil
			})
		case snapshotSteps:
			s.Steps = int(v)
		case snapshotAdvances:
			s.Advances = int(v)
		case snapshotBacktracks:
			s.Backtracks = int(v)
		case snapshotPerfect:
			s.Perfect = protowire.DecodeBool(v)
		case snapshotCells:
			var c dto.CellView
			err := consumeFields(raw, func(num protowire.Number, v uint64, _ []byte) error {
				switch num {
				case posRow:
					c.Row = int(v)
				case posCol:
					c.Col = int(v)
				case cellVisited:
					c.Visited = protowire.DecodeBool(v)
				case cellWalls:
					c.NorthWall = v&wallNorth != 0
					c.EastWall = v&wallEast != 0
					c.SouthWall = v&wallSouth != 0
					c.WestWall = v&wallWest != 0
				}
				return nil
			})
			if err != nil {
				return err
			}
			s.Cells = append(s.Cells, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func wallBits(c dto.CellView) uint64 {
	var bits uint64
	if c.NorthWall {
		bits |= wallNorth
	}
	if c.EastWall {
		bits |= wallEast
	}
	if c.SouthWall {
		bits |= wallSouth
	}
	if c.WestWall {
		bits |= wallWest
	}
	return bits
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// consumeFields walks a message, passing varint values as v and
// length-delimited values as raw. Other wire types are skipped.
func consumeFields(b []byte, field func(num protowire.Number, v uint64, raw []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformedSnapshot, protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformedSnapshot, num, protowire.ParseError(n))
			}
			b = b[n:]
			if err := field(num, v, nil); err != nil {
				return err
			}
		case protowire.BytesType:
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformedSnapshot, num, protowire.ParseError(n))
			}
			b = b[n:]
			if err := field(num, 0, raw); err != nil {
				return err
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformedSnapshot, num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return nil
}
