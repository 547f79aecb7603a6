// Package history keeps a log of player sessions in TSV format.
// Uses atomic writes (temp+rename) to prevent data corruption.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"livecli/internal/config"
	"livecli/internal/media"
)

// TSV columns: time, url, protocol, mode, player, player args, exit code
const numColumns = 7

// MaxEntries caps the history length; the oldest sessions are dropped first.
const MaxEntries = 200

// Load reads the history file and returns all sessions, oldest first.
func Load() ([]media.Session, error) {
	path, err := config.HistoryPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	var sessions []media.Session
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s, err := parseLine(line)
		if err != nil {
			continue // Skip malformed lines
		}
		sessions = append(sessions, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	return sessions, nil
}

// Append adds a session to the history, trimming it to MaxEntries.
func Append(s media.Session) error {
	sessions, err := Load()
	if err != nil {
		return err
	}

	sessions = append(sessions, s)
	if len(sessions) > MaxEntries {
		sessions = sessions[len(sessions)-MaxEntries:]
	}

	return write(sessions)
}

// Clear removes the history file.
func Clear() error {
	path, err := config.HistoryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing history: %w", err)
	}
	return nil
}

// FormatForDisplay creates display strings for fzf selection, newest first.
// Index i of the result corresponds to sessions[len(sessions)-1-i].
func FormatForDisplay(sessions []media.Session) []string {
	items := make([]string, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		display := fmt.Sprintf("%s  %-11s %s", s.Time.Local().Format("2006-01-02 15:04"), s.Mode, s.URL)
		if s.ExitCode != 0 {
			display += fmt.Sprintf(" [exit %d]", s.ExitCode)
		}
		items = append(items, display)
	}
	return items
}

// write atomically replaces the history file: temp file + rename.
func write(sessions []media.Session) error {
	path, err := config.HistoryPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "history-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	writer := bufio.NewWriter(tmpFile)
	for _, s := range sessions {
		if _, err := writer.WriteString(formatLine(s) + "\n"); err != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("writing history: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flushing history: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming history file: %w", err)
	}

	return nil
}

// parseLine parses a TSV line into a Session.
func parseLine(line string) (media.Session, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < numColumns {
		return media.Session{}, fmt.Errorf("expected %d columns, got %d", numColumns, len(fields))
	}

	ts, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return media.Session{}, fmt.Errorf("parsing time: %w", err)
	}
	code, err := strconv.Atoi(fields[6])
	if err != nil {
		return media.Session{}, fmt.Errorf("parsing exit code: %w", err)
	}

	return media.Session{
		Time:       ts,
		URL:        fields[1],
		Protocol:   fields[2],
		Mode:       fields[3],
		Player:     fields[4],
		PlayerArgs: fields[5],
		ExitCode:   code,
	}, nil
}

// formatLine converts a Session to a TSV line.
func formatLine(s media.Session) string {
	return strings.Join([]string{
		s.Time.UTC().Format(time.RFC3339),
		clean(s.URL),
		clean(s.Protocol),
		clean(s.Mode),
		clean(s.Player),
		clean(s.PlayerArgs),
		strconv.Itoa(s.ExitCode),
	}, "\t")
}

var fieldReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// clean keeps a field on one TSV cell.
func clean(s string) string {
	return fieldReplacer.Replace(s)
}
