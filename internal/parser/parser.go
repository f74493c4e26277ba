// Package parser turns a line of user input into a command. Parsing never
// touches the store: foreign keys stay as raw IDs inside pending entities
// until the command executes.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/domain"
)

const (
	wordClient  = "client"
	wordProject = "project"
	wordIssue   = "issue"
	wordClear   = "clear"
	wordHelp    = "help"
	wordExit    = "exit"

	flagAdd    = "-a"
	flagEdit   = "-e"
	flagDelete = "-d"
	flagList   = "-l"
	flagFind   = "-f"
	flagMark   = "-m"
	flagUnmark = "-u"
)

var commandFormat = regexp.MustCompile(`^(?P<word>\w+)(?P<flag>\s+-\w+)?(?P<args>.*)$`)

// Parse parses one line of input.
func Parse(input string) (command.Command, error) {
	m := commandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return nil, invalidFormat(command.UsageHelp)
	}
	word := m[commandFormat.SubexpIndex("word")]
	flag := strings.TrimSpace(m[commandFormat.SubexpIndex("flag")])
	args := m[commandFormat.SubexpIndex("args")]

	switch word {
	case wordClient:
		return parseClient(flag, args)
	case wordProject:
		return parseProject(flag, args)
	case wordIssue:
		return parseIssue(flag, args)
	case wordClear:
		return command.Clear{}, nil
	case wordHelp:
		return command.Help{}, nil
	case wordExit:
		return command.Exit{}, nil
	default:
		return nil, &domain.FormatError{Message: domain.MessageUnknownCommand}
	}
}

func invalidFormat(usage string) error {
	return &domain.FormatError{Message: domain.MessageInvalidFormat, Usage: usage}
}

func missingArguments(usage string) error {
	return &domain.FormatError{Message: domain.MessageMissingArguments, Usage: usage, Missing: true}
}

func unknownFlag(word string) error {
	return &domain.FormatError{Message: fmt.Sprintf(domain.MessageUnknownFlag, word)}
}

// tokenizeStrict tokenizes args and rejects input that lacks a required
// prefix or carries a preamble.
func tokenizeStrict(args, usage string, required []Prefix, prefixes ...Prefix) (ArgumentMultimap, error) {
	m := Tokenize(args, prefixes...)
	if !m.Has(required...) || m.Preamble() != "" {
		return m, invalidFormat(usage)
	}
	return m, nil
}

// parseTargetID parses a bare ID given as the whole argument string.
func parseTargetID(kind, args, usage string) (int, error) {
	id, err := domain.ParseID(kind, Tokenize(args).Preamble())
	if err != nil {
		return 0, invalidFormat(usage)
	}
	return id, nil
}

// optional parses the value of p when present and returns nil otherwise.
func optional[T any](m ArgumentMultimap, p Prefix, parse func(string) (T, error)) (*T, error) {
	raw, ok := m.Value(p)
	if !ok {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// orDefault parses the value of p when present and returns def otherwise.
func orDefault[T any](m ArgumentMultimap, p Prefix, def T, parse func(string) (T, error)) (T, error) {
	v, err := optional(m, p, parse)
	if err != nil || v == nil {
		return def, err
	}
	return *v, nil
}

// keywords returns the whitespace-split keywords given for p. A prefix given
// without any keyword is a format error.
func keywords(m ArgumentMultimap, p Prefix, usage string) ([]string, error) {
	if !m.Has(p) {
		return nil, nil
	}
	kws := command.Keywords(m.All(p))
	if len(kws) == 0 {
		return nil, invalidFormat(usage)
	}
	return kws, nil
}

// parsedKeywords is keywords with each keyword parsed into a value type.
func parsedKeywords[T any](m ArgumentMultimap, p Prefix, usage string, parse func(string) (T, error)) ([]T, error) {
	kws, err := keywords(m, p, usage)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, kw := range kws {
		v, err := parse(kw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func idParser(kind string) func(string) (int, error) {
	return func(raw string) (int, error) { return domain.ParseID(kind, raw) }
}
