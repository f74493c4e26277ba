package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of an argument, e.g. "n/" in "n/John Doe".
type Prefix string

const (
	PrefixName       Prefix = "n/"
	PrefixPhone      Prefix = "p/"
	PrefixEmail      Prefix = "e/"
	PrefixRepository Prefix = "r/"
	PrefixDeadline   Prefix = "d/"
	PrefixTitle      Prefix = "t/"
	PrefixPriority   Prefix = "pr/"
	PrefixStatus     Prefix = "s/"
	PrefixClientID   Prefix = "cid/"
	PrefixProjectID  Prefix = "pid/"
	PrefixIssueID    Prefix = "iid/"
)

// ArgumentMultimap maps each prefix to the values given for it, in input
// order. Text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text that precedes the first prefix.
func (m ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// All returns every value given for p.
func (m ArgumentMultimap) All(p Prefix) []string { return m.values[p] }

// Has reports whether every prefix in ps was given.
func (m ArgumentMultimap) Has(ps ...Prefix) bool {
	for _, p := range ps {
		if len(m.values[p]) == 0 {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one prefix in ps was given.
func (m ArgumentMultimap) HasAny(ps ...Prefix) bool {
	for _, p := range ps {
		if len(m.values[p]) > 0 {
			return true
		}
	}
	return false
}

type position struct {
	at     int
	prefix Prefix
}

// Tokenize splits args on the given prefixes. A prefix is only recognised at
// the start of args or right after whitespace, so "pid/" never matches the
// "d/" inside it.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var found []position
	for _, p := range prefixes {
		for from := 0; ; {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if r, _ := utf8.DecodeLastRuneInString(args[:at]); at == 0 || unicode.IsSpace(r) {
				found = append(found, position{at: at, prefix: p})
			}
			from = at + 1
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].at < found[j].at })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(found) > 0 {
		end = found[0].at
	}
	m.preamble = strings.TrimSpace(args[:end])

	for n, pos := range found {
		end := len(args)
		if n+1 < len(found) {
			end = found[n+1].at
		}
		value := strings.TrimSpace(args[pos.at+len(pos.prefix) : end])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}
