package schema

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
)

var (
	ErrBadMagic = errors.New("payload is not an inventory snapshot")
)

// magic prefixes every encoded snapshot so foreign files are rejected before decoding.
var magic = []byte{'I', 'N', 'V', 1}

type Codec interface {
	Encode(v SnapshotV1) ([]byte, error)
	Decode(data []byte) (SnapshotV1, error)
}

type codec struct {
	avroSchema avro.Schema
}

func NewSnapshotCodecV1() (Codec, error) {
	const op = "NewSnapshotCodecV1"

	avroSchema, err := avro.Parse(SnapshotSchemaTextV1)
	if err != nil {
		return codec{}, fmt.Errorf("%s: %w", op, err)
	}
	return codec{avroSchema: avroSchema}, nil
}

func (c codec) Encode(v SnapshotV1) ([]byte, error) {
	const op = "codec.Encode"

	body, err := avro.Marshal(c.avroSchema, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return append(append(make([]byte, 0, len(magic)+len(body)), magic...), body...), nil
}

func (c codec) Decode(data []byte) (SnapshotV1, error) {
	const op = "codec.Decode"

	var v SnapshotV1
	if !bytes.HasPrefix(data, magic) {
		return v, fmt.Errorf("%s: %w", op, ErrBadMagic)
	}
	if err := avro.Unmarshal(c.avroSchema, data[len(magic):], &v); err != nil {
		return SnapshotV1{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}
