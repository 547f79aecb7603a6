package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		path string
		name string
		want []string
	}{
		{"/usr/bin/mpv", "mpv", []string{"--force-media-title=Poker Stars"}},
		{"iina", "iina", []string{"--force-media-title=Poker Stars"}},
		{`c:\Program Files\VideoLAN\VLC\vlc.exe`, "vlc", []string{"--meta-title", "Poker Stars"}},
		{"/Applications/Video Player/VLC/VLC", "vlc", []string{"--meta-title", "Poker Stars"}},
		{"/usr/bin/mplayer", "mplayer", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := ProfileFor(tt.path)
			assert.Equal(t, tt.name, p.Name)
			assert.Equal(t, tt.want, p.TitleArgs("Poker Stars"))
		})
	}

	assert.Nil(t, ProfileFor("mpv").TitleArgs(""))
}
