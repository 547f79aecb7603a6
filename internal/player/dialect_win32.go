package player

import "strings"

// executableSuffixes are the extensions CreateProcess will launch.
var executableSuffixes = []string{".exe", ".com", ".bat", ".cmd"}

type windowsDialect struct{}

func (windowsDialect) Name() string { return "windows" }

// Parse validates the command and keeps it verbatim, except that an unquoted
// executable path containing whitespace is wrapped in double quotes.
func (windowsDialect) Parse(spec string) (*Command, error) {
	raw := strings.TrimSpace(spec)
	if _, err := SplitWindows(raw); err != nil {
		return nil, err
	}

	path, rest := splitExecutable(raw)
	if path == "" {
		return nil, &MalformedSpecError{Input: spec, Reason: "no player executable"}
	}
	args, err := SplitWindows(rest)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(raw, `"`) {
		raw = quoteWindows(path, false)
		if rest != "" {
			raw += " " + rest
		}
	}
	return &Command{Path: path, Args: args, raw: raw, parsed: len(args)}, nil
}

func (windowsDialect) Expand(template string, target Target) ([]string, error) {
	tokens, err := SplitWindows(template)
	if err != nil {
		return nil, err
	}

	value := target.String()
	if !target.IsPipe() {
		value = quoteWindows(value, true)
	}

	tmpl := strings.TrimSpace(template)
	if _, found := replaceFirst(tokens, value); found {
		return []string{strings.Replace(tmpl, Placeholder, value, 1)}, nil
	}
	if tmpl == "" {
		return []string{value}, nil
	}
	return []string{tmpl, value}, nil
}

func (windowsDialect) Build(cmd *Command, extra []string) CommandLine {
	parts := []string{cmd.raw}
	if cmd.raw == "" {
		parts[0] = quoteWindows(cmd.Path, false)
		for _, arg := range cmd.Args[:cmd.parsed] {
			parts = append(parts, quoteWindows(arg, false))
		}
	}
	for _, arg := range cmd.Args[cmd.parsed:] {
		parts = append(parts, quoteWindows(arg, false))
	}
	for _, frag := range extra {
		if frag != "" {
			parts = append(parts, frag)
		}
	}
	return WindowsLine{Path: cmd.Path, Line: strings.Join(parts, " ")}
}

// splitExecutable separates the executable from the rest of a Windows spec.
// A quoted path is taken verbatim. Unquoted paths may contain spaces, so the
// shortest prefix ending in an executable suffix wins, like CreateProcess
// probing "c:\Program Files\..." one space at a time.
func splitExecutable(raw string) (path, rest string) {
	if strings.HasPrefix(raw, `"`) {
		end := strings.IndexByte(raw[1:], '"')
		if end < 0 {
			return "", ""
		}
		return raw[1 : 1+end], strings.TrimSpace(raw[2+end:])
	}

	lower := strings.ToLower(raw)
	for i := 0; i <= len(raw); i++ {
		if i < len(raw) && raw[i] != ' ' && raw[i] != '\t' {
			continue
		}
		for _, suffix := range executableSuffixes {
			if strings.HasSuffix(lower[:i], suffix) {
				return raw[:i], strings.TrimSpace(raw[i:])
			}
		}
	}

	if i := strings.IndexAny(raw, " \t"); i >= 0 {
		return raw[:i], strings.TrimSpace(raw[i:])
	}
	return raw, ""
}
