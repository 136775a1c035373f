// Package tagmatch decides whether a game's header tags satisfy a set of
// registered selection criteria. Criteria are added per tag during a
// configuration phase; records are then evaluated in a single pass, each
// tag family with its own comparison rules (phonetic name matching, date
// ranges, time-control parsing, numeric relations, regular expressions).
package tagmatch

import (
	"fmt"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"github.com/rs/zerolog"
)

// SetupStatus selects how records carrying a SetUp tag are treated.
type SetupStatus int

const (
	// SetupAny accepts records with or without a SetUp tag.
	SetupAny SetupStatus = iota
	// SetupAbsent accepts only records without a SetUp tag.
	SetupAbsent
	// SetupPresent accepts only records with a SetUp tag.
	SetupPresent
)

// Options fixes the matching behaviour for the life of a Matcher.
type Options struct {
	// Soundex enables phonetic matching on the name-like tags
	// (players, event, site, annotator).
	Soundex bool
	// MatchAnywhere lets a plain-text criterion match anywhere inside the
	// field value instead of only as a prefix.
	MatchAnywhere bool
	// Setup selects the SetUp-tag acceptance rule for MatchSetup.
	Setup SetupStatus
	// FENPattern receives criteria registered against the FEN tag.
	// Position patterns belong to the board-matching side, not the tag
	// lists; when nil such criteria are discarded.
	FENPattern func(pattern string)
	// Logger for diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

type criterion struct {
	text string
	op   Operator
}

// criteriaList holds the registered criteria for one tag, in registration
// order. The order matters to the date matcher. The anywhere scanner over
// the plain-text criteria is built lazily on first use and reused for every
// record; Add discards it, and registration strictly precedes evaluation.
type criteriaList struct {
	items []criterion

	scan      *ahocorasick.AhoCorasick
	scanAll   bool // an empty plain-text criterion matches everything
	scanReady bool
}

func (cl *criteriaList) buildScan() {
	var patterns []string
	for _, c := range cl.items {
		if c.op != None {
			continue
		}
		if c.text == "" {
			cl.scanAll = true
			continue
		}
		patterns = append(patterns, c.text)
	}
	if len(patterns) > 0 {
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			MatchKind: ahocorasick.LeftMostLongestMatch,
			DFA:       true,
		})
		automaton := builder.Build(patterns)
		cl.scan = &automaton
	}
	cl.scanReady = true
}

// matchAnywhere reports whether any plain-text criterion occurs in s.
func (cl *criteriaList) matchAnywhere(s string) bool {
	if !cl.scanReady {
		cl.buildScan()
	}
	if cl.scanAll {
		return true
	}
	if cl.scan == nil {
		return false
	}
	return len(cl.scan.FindAll(s)) > 0
}

// matchPrefix reports whether any plain-text criterion is a prefix of s.
func (cl *criteriaList) matchPrefix(s string) bool {
	for _, c := range cl.items {
		if c.op != None {
			continue
		}
		if strings.HasPrefix(s, c.text) {
			return true
		}
	}
	return false
}

// Matcher owns the per-tag criteria table. Populate it with Add or
// AddShorthand, then evaluate records with MatchDetails, MatchECO and
// MatchSetup. It is not safe to register criteria while matching.
type Matcher struct {
	l    zerolog.Logger
	opts Options

	lists []criteriaList

	// haveCriteria flips on the first registration; until then every
	// record passes unconditionally.
	haveCriteria bool
}

// New returns a Matcher with an empty criteria table for the known tags.
func New(opts Options) *Matcher {
	m := &Matcher{
		opts:  opts,
		lists: make([]criteriaList, knownTags),
	}
	if opts.Logger != nil {
		m.l = opts.Logger.With().Str("mod", "tagmatch").Logger()
	} else {
		m.l = zerolog.Nop()
	}
	return m
}

// extend grows the tag table to newLength slots. The table only ever
// grows; asking for anything else is a caller bug.
func (m *Matcher) extend(newLength int) {
	if newLength <= len(m.lists) {
		m.fatalf("tag table extension to %d does not grow current length %d",
			newLength, len(m.lists))
	}
	grown := make([]criteriaList, newLength)
	copy(grown, m.lists)
	m.lists = grown
}

// Add registers one criterion against tag. Unknown tag identifiers beyond
// the current table extend it. For the phonetic tags with Soundex enabled
// the stored text is the phonetic code, not the raw string. Criteria
// against the FEN tag are handed to Options.FENPattern instead.
func (m *Matcher) Add(tag Tag, text string, op Operator) {
	if tag < 0 {
		m.l.Error().Int("tag", int(tag)).Msg("illegal tag number")
		return
	}
	if int(tag) >= len(m.lists) {
		m.extend(int(tag) + 1)
	}
	if tag == TagFEN {
		if m.opts.FENPattern != nil {
			m.opts.FENPattern(text)
		}
		return
	}
	store := text
	if m.opts.Soundex && tag.usesSoundex() {
		store = Soundex(text)
	}
	cl := &m.lists[tag]
	cl.items = append(cl.items, criterion{text: store, op: op})
	cl.scan = nil
	cl.scanAll = false
	cl.scanReady = false
	m.haveCriteria = true
}

// fatalf reports an internal contract violation and aborts. These are
// programming errors, not data problems, and are never recoverable.
func (m *Matcher) fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	m.l.Error().Msg(msg)
	panic("tagmatch: " + msg)
}
