package i

import "github.com/beka-birhanu/vinom-mazegen/service/dto"

// Encoder serializes maze snapshots.
type Encoder interface {
	Marshal(*dto.Snapshot) ([]byte, error)
	ContentType() string
}
