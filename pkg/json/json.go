// Package json provides JSON serialization for Quiver with buffer pooling
package json

import (
	"bytes"
	"sync"

	gojson "github.com/goccy/go-json"

	"github.com/quiverlabs/quiver/pkg/errors"
	"github.com/quiverlabs/quiver/pkg/models"
)

// Supported multi-point output formats.
const (
	// FormatArray renders points as a single JSON array
	FormatArray = "array"
	// FormatLines renders points as line-delimited JSON (JSONL)
	FormatLines = "lines"
)

// bufferPool recycles scratch buffers for multi-point encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// GetBuffer gets a pooled bytes.Buffer
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 1024*1024 { // Don't pool very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Marshal is a high-performance drop-in replacement for json.Marshal
func Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

// Unmarshal is a high-performance drop-in replacement for json.Unmarshal
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

// MarshalIndent is a high-performance replacement for json.MarshalIndent
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// MarshalPoint serializes a data point to its JSON object form. The
// round-trip through UnmarshalPoint is lossless.
func MarshalPoint(p models.DataPoint) ([]byte, error) {
	data, err := gojson.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "cannot encode point")
	}
	return data, nil
}

// UnmarshalPoint parses a data point from its JSON object form.
func UnmarshalPoint(data []byte) (models.DataPoint, error) {
	var p models.DataPoint
	if err := gojson.Unmarshal(data, &p); err != nil {
		return models.DataPoint{}, errors.Wrap(err, errors.ErrorTypeSerialization, "cannot decode point")
	}
	return p, nil
}

// MarshalPoints serializes a slice of points in the requested format.
// Unknown formats fall back to the array form.
func MarshalPoints(points []models.DataPoint, format string) ([]byte, error) {
	switch format {
	case FormatLines:
		return marshalPointsLines(points)
	default:
		return marshalPointsArray(points)
	}
}

// marshalPointsArray renders points as a JSON array using a pooled buffer.
func marshalPointsArray(points []models.DataPoint) ([]byte, error) {
	if len(points) == 0 {
		return []byte("[]"), nil
	}

	buf := GetBuffer()
	defer PutBuffer(buf)

	buf.WriteByte('[')
	for i, p := range points {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := MarshalPoint(p)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')

	// Copy out: the buffer goes back to the pool.
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// marshalPointsLines renders points as line-delimited JSON.
func marshalPointsLines(points []models.DataPoint) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	for _, p := range points {
		data, err := MarshalPoint(p)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
