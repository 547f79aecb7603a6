package player

import "strings"

// SplitPOSIX splits s into words using POSIX shell quoting rules.
// Backslash escapes the next character outside quotes; inside double quotes it
// only escapes ", \, $, ` and newline; single quotes are literal.
func SplitPOSIX(s string) ([]string, error) {
	var (
		words  []string
		cur    strings.Builder
		inWord bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		case '\\':
			if i+1 >= len(s) {
				return nil, &MalformedSpecError{Input: s, Offset: i, Reason: "trailing backslash"}
			}
			i++
			if s[i] == '\n' {
				continue // line continuation
			}
			cur.WriteByte(s[i])
			inWord = true
		case '\'':
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return nil, &MalformedSpecError{Input: s, Offset: i, Reason: "unterminated single quote"}
			}
			cur.WriteString(s[i+1 : i+1+end])
			i += end + 1
			inWord = true
		case '"':
			j, closed := i+1, false
			for ; j < len(s); j++ {
				d := s[j]
				if d == '"' {
					closed = true
					break
				}
				if d == '\\' && j+1 < len(s) && strings.IndexByte("\"\\$`\n", s[j+1]) >= 0 {
					j++
					if s[j] != '\n' {
						cur.WriteByte(s[j])
					}
					continue
				}
				cur.WriteByte(d)
			}
			if !closed {
				return nil, &MalformedSpecError{Input: s, Offset: i, Reason: "unterminated double quote"}
			}
			i = j
			inWord = true
		default:
			cur.WriteByte(c)
			inWord = true
		}
	}

	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}

// SplitWindows splits s the way CommandLineToArgvW does: 2n backslashes
// before a quote become n and the quote toggles quoting, 2n+1 become n and a
// literal quote, other backslashes are literal. Unlike Windows it rejects an
// unterminated quote.
func SplitWindows(s string) ([]string, error) {
	var (
		words   []string
		cur     strings.Builder
		inWord  bool
		inQuote bool
		quoteAt int
	)

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case (c == ' ' || c == '\t') && !inQuote:
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
			i++
		case c == '\\':
			n := 0
			for i < len(s) && s[i] == '\\' {
				n++
				i++
			}
			if i < len(s) && s[i] == '"' {
				cur.WriteString(strings.Repeat(`\`, n/2))
				if n%2 == 1 {
					cur.WriteByte('"')
					i++
				}
			} else {
				cur.WriteString(strings.Repeat(`\`, n))
			}
			inWord = true
		case c == '"':
			inQuote = !inQuote
			if inQuote {
				quoteAt = i
			}
			inWord = true
			i++
		default:
			cur.WriteByte(c)
			inWord = true
			i++
		}
	}

	if inQuote {
		return nil, &MalformedSpecError{Input: s, Offset: quoteAt, Reason: "unterminated double quote"}
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}

// quoteWindows quotes s so that SplitWindows (and CommandLineToArgvW) yields
// it back as a single argument. Without force, s is left alone unless it is
// empty or contains whitespace or quotes.
func quoteWindows(s string, force bool) string {
	if !force && s != "" && !strings.ContainsAny(s, " \t\"") {
		return s
	}

	var b strings.Builder
	b.WriteByte('"')
	slashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, slashes+1))
			slashes = 0
		default:
			slashes = 0
		}
		b.WriteByte(c)
	}
	b.WriteString(strings.Repeat(`\`, slashes))
	b.WriteByte('"')
	return b.String()
}
