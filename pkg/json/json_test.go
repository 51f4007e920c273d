package json

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiverlabs/quiver/pkg/errors"
	"github.com/quiverlabs/quiver/pkg/models"
)

func TestMarshalPoint(t *testing.T) {
	p := models.NewDataPoint(42, 99.5, "2025-10-27T12:00:00Z")

	data, err := MarshalPoint(p)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"id":42`)
	assert.Contains(t, s, `"value":99.5`)
	assert.Contains(t, s, `"timestamp":"2025-10-27T12:00:00Z"`)
}

func TestPointRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		point models.DataPoint
	}{
		{"simple", models.NewDataPoint(1, 10.0, "2025-10-27T12:00:00Z")},
		{"zero value", models.NewDataPoint(7, 0, "t")},
		{"negative value", models.NewDataPoint(7, -273.15, "t")},
		{"large id", models.NewDataPoint(math.MaxUint64, 1, "t")},
		{"empty timestamp", models.NewDataPoint(1, 1, "")},
		{"timestamp needing escapes", models.NewDataPoint(1, 1, `a"b\c`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalPoint(tt.point)
			require.NoError(t, err)

			got, err := UnmarshalPoint(data)
			require.NoError(t, err)
			assert.Equal(t, tt.point, got)
		})
	}
}

func TestUnmarshalPointInvalid(t *testing.T) {
	for _, bad := range []string{"", "{", "[]", `{"id":"not a number"}`} {
		_, err := UnmarshalPoint([]byte(bad))
		require.Error(t, err, "input %q should fail", bad)
		assert.True(t, errors.IsType(err, errors.ErrorTypeSerialization),
			"expected serialization error for %q, got %v", bad, err)
	}
}

func TestUnmarshalPointExternalForm(t *testing.T) {
	// Decoding accepts hand-written JSON regardless of field order.
	got, err := UnmarshalPoint([]byte(`{"timestamp":"t1","value":42.0,"id":1}`))
	require.NoError(t, err)
	assert.Equal(t, models.NewDataPoint(1, 42.0, "t1"), got)
}

func TestMarshalPointsArray(t *testing.T) {
	points := []models.DataPoint{
		models.NewDataPoint(1, 10.0, "t1"),
		models.NewDataPoint(2, 20.0, "t2"),
	}

	data, err := MarshalPoints(points, FormatArray)
	require.NoError(t, err)

	var decoded []models.DataPoint
	require.NoError(t, Unmarshal(data, &decoded))
	assert.Equal(t, points, decoded)
}

func TestMarshalPointsArrayEmpty(t *testing.T) {
	data, err := MarshalPoints(nil, FormatArray)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestMarshalPointsLines(t *testing.T) {
	points := []models.DataPoint{
		models.NewDataPoint(1, 10.0, "t1"),
		models.NewDataPoint(2, 20.0, "t2"),
		models.NewDataPoint(3, 30.0, "t3"),
	}

	data, err := MarshalPoints(points, FormatLines)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		got, err := UnmarshalPoint([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, points[i], got)
	}
}

func TestMarshalPointsUnknownFormatFallsBack(t *testing.T) {
	points := []models.DataPoint{models.NewDataPoint(1, 1, "t")}

	data, err := MarshalPoints(points, "parquet")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("[")))
}

func TestBufferPoolReuse(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("scratch")
	PutBuffer(buf)

	again := GetBuffer()
	assert.Zero(t, again.Len(), "pooled buffer must come back reset")
	PutBuffer(again)
}

func BenchmarkMarshalPoint(b *testing.B) {
	p := models.NewRandomPoint()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := MarshalPoint(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalPointsLines(b *testing.B) {
	points := models.NewRandomPoints(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := MarshalPoints(points, FormatLines); err != nil {
			b.Fatal(err)
		}
	}
}
