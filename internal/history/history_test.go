package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"livecli/internal/media"
)

func session(url string, code int) media.Session {
	return media.Session{
		Time:       time.Date(2026, 3, 1, 20, 15, 0, 0, time.UTC),
		URL:        url,
		Protocol:   "rtmp",
		Mode:       "passthrough",
		Player:     `"/Applications/Video Player/VLC/vlc"`,
		PlayerArgs: `--input-title-format "Poker \"Stars\"" {filename}`,
		ExitCode:   code,
	}
}

func TestAppendAndLoad(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	want := session("rtmp://test.se", 0)
	if err := Append(want); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	sessions, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}

	got := sessions[0]
	if !got.Time.Equal(want.Time) {
		t.Errorf("Time = %v, want %v", got.Time, want.Time)
	}
	if got.URL != want.URL || got.Player != want.Player || got.PlayerArgs != want.PlayerArgs {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Mode != "passthrough" || got.Protocol != "rtmp" {
		t.Errorf("mode/protocol = %q/%q", got.Mode, got.Protocol)
	}
}

func TestAppendKeepsOrderAndCap(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	for i := 0; i < MaxEntries+5; i++ {
		if err := Append(session("rtmp://test.se", i)); err != nil {
			t.Fatalf("Append(%d) error: %v", i, err)
		}
	}

	sessions, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(sessions) != MaxEntries {
		t.Fatalf("expected %d sessions, got %d", MaxEntries, len(sessions))
	}
	if sessions[0].ExitCode != 5 {
		t.Errorf("oldest kept exit code = %d, want 5", sessions[0].ExitCode)
	}
	if last := sessions[len(sessions)-1].ExitCode; last != MaxEntries+4 {
		t.Errorf("newest exit code = %d, want %d", last, MaxEntries+4)
	}
}

func TestAppendSanitizesFields(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	s := session("rtmp://test.se", 0)
	s.PlayerArgs = "--a\t--b\n--c"
	if err := Append(s); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	sessions, _ := Load()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].PlayerArgs != "--a --b --c" {
		t.Errorf("PlayerArgs = %q", sessions[0].PlayerArgs)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "livecli")
	os.MkdirAll(dir, 0700)
	content := "# comment\n" +
		"not\tenough\tcolumns\n" +
		"yesterday\thttp://a\thttp\tpipe\tmpv\t\t0\n" +
		"2026-03-01T20:15:00Z\thttp://b\thttp\tpipe\tmpv\t\t3\n"
	os.WriteFile(filepath.Join(dir, "history.tsv"), []byte(content), 0600)

	sessions, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].URL != "http://b" || sessions[0].ExitCode != 3 {
		t.Errorf("sessions = %+v", sessions)
	}
}

func TestClear(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	Append(session("rtmp://test.se", 0))
	if err := Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if err := Clear(); err != nil {
		t.Fatalf("Clear() on missing file error: %v", err)
	}

	sessions, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty history, got %d", len(sessions))
	}
}

func TestLoadEmpty(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	sessions, err := Load()
	if err != nil {
		t.Fatalf("Load() on missing file should not error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected 0 sessions, got %d", len(sessions))
	}
}

func TestFormatForDisplay(t *testing.T) {
	first := session("rtmp://first", 0)
	second := session("http://second", 2)
	second.Mode = "pipe"

	items := FormatForDisplay([]media.Session{first, second})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	want0 := first.Time.Local().Format("2006-01-02 15:04") + "  pipe        http://second [exit 2]"
	if items[0] != want0 {
		t.Errorf("items[0] = %q, want %q", items[0], want0)
	}
	want1 := first.Time.Local().Format("2006-01-02 15:04") + "  passthrough rtmp://first"
	if items[1] != want1 {
		t.Errorf("items[1] = %q, want %q", items[1], want1)
	}
}
