package player

import (
	"path/filepath"
	"strings"
)

// Profile captures how a known player expects optional arguments.
type Profile struct {
	Name  string
	title func(title string) []string
}

// mpvTitle covers mpv and the players that accept mpv-style flags.
func mpvTitle(title string) []string { return []string{"--force-media-title=" + title} }

var profiles = map[string]Profile{
	"mpv":       {Name: "mpv", title: mpvTitle},
	"iina":      {Name: "iina", title: mpvTitle},
	"celluloid": {Name: "celluloid", title: mpvTitle},
	"vlc": {Name: "vlc", title: func(title string) []string {
		return []string{"--meta-title", title}
	}},
}

// ProfileFor returns the profile matching the executable's base name.
// Unknown players get a profile without optional arguments.
func ProfileFor(path string) Profile {
	base := strings.ToLower(filepath.Base(strings.ReplaceAll(path, `\`, "/")))
	for _, suffix := range executableSuffixes {
		base = strings.TrimSuffix(base, suffix)
	}
	if p, ok := profiles[base]; ok {
		return p
	}
	return Profile{Name: base}
}

// TitleArgs returns the arguments setting the window/media title, or nil.
func (p Profile) TitleArgs(title string) []string {
	if p.title == nil || title == "" {
		return nil
	}
	return p.title(title)
}
