package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePassthrough(t *testing.T) {
	set := ParsePassthrough(" RTMP, hls ,,")
	assert.Equal(t, []string{"hls", "rtmp"}, set.Protocols())
	assert.True(t, set.Has("rtmp"))
	assert.True(t, set.Has("HLS"))
	assert.False(t, set.Has("http"))
	assert.False(t, set.Has(""))

	assert.Empty(t, ParsePassthrough("").Protocols())
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		protocol string
		set      PassthroughSet
		want     Target
	}{
		{"member", "rtmp", NewPassthroughSet("rtmp"), URL("rtmp://test.se")},
		{"member different case", "RTMP", NewPassthroughSet("rtmp"), URL("rtmp://test.se")},
		{"not a member", "http", NewPassthroughSet("rtmp"), Pipe()},
		{"empty set", "rtmp", nil, Pipe()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.protocol, "rtmp://test.se", tt.set)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTarget(t *testing.T) {
	assert.Equal(t, "-", Pipe().String())
	assert.Equal(t, "pipe", Pipe().Mode())
	assert.True(t, Pipe().IsPipe())

	u := URL("rtmp://test.se")
	assert.Equal(t, "rtmp://test.se", u.String())
	assert.Equal(t, "passthrough", u.Mode())
	assert.False(t, u.IsPipe())
}
