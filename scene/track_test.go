package scene

import (
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack(t *testing.T) {
	track, err := NewTrack(map[float64]pt.Vector{
		10: V(10, 0, 0),
		1:  V(0, 0, 0),
		20: V(10, 10, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10, 20}, track.Frames())

	tests := []struct {
		name   string
		frame  float64
		expect pt.Vector
	}{
		{"first_key", 1, V(0, 0, 0)},
		{"between", 5.5, V(5, 0, 0)},
		{"middle_key", 10, V(10, 0, 0)},
		{"second_segment", 15, V(10, 5, 0)},
		{"before_first", -100, V(0, 0, 0)},
		{"after_last", 100, V(10, 10, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertVecNear(t, test.expect, track.At(test.frame))
		})
	}
}

func TestTrackSingleKey(t *testing.T) {
	track, err := NewTrack(map[float64]pt.Vector{4: V(1, 2, 3)})
	require.NoError(t, err)
	assertVecNear(t, V(1, 2, 3), track.At(0))
	assertVecNear(t, V(1, 2, 3), track.At(50))
}

func TestTrackEmpty(t *testing.T) {
	_, err := NewTrack(nil)
	assert.Error(t, err)
}
