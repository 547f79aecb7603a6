package player

type posixDialect struct{}

func (posixDialect) Name() string { return "posix" }

func (posixDialect) Parse(spec string) (*Command, error) {
	words, err := SplitPOSIX(spec)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 || words[0] == "" {
		return nil, &MalformedSpecError{Input: spec, Reason: "no player executable"}
	}
	return &Command{Path: words[0], Args: words[1:], parsed: len(words) - 1}, nil
}

func (posixDialect) Expand(template string, target Target) ([]string, error) {
	tokens, err := SplitPOSIX(template)
	if err != nil {
		return nil, err
	}
	tokens, _ = replaceFirst(tokens, target.String())
	return tokens, nil
}

func (posixDialect) Build(cmd *Command, extra []string) CommandLine {
	argv := make(ArgvLine, 0, 1+len(cmd.Args)+len(extra))
	argv = append(argv, cmd.Path)
	argv = append(argv, cmd.Args...)
	argv = append(argv, extra...)
	return argv
}
