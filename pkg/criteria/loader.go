// Package criteria loads tag-selection criteria from a YAML file and feeds
// them to a tagmatch.Matcher. A file sets the match options and lists the
// criteria by tag name:
//
//	soundex: true
//	anywhere: false
//	setup: any
//	criteria:
//	  - tag: Player
//	    value: Kasparov
//	  - tag: WhiteElo
//	    value: "2600"
//	    op: ">="
//	  - tag: Date
//	    value: b2000
package criteria

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/etiennepellegrini/pgn-extract/tagmatch"
)

// Entry is one criterion: a tag name, the text to match and an optional
// operator ("", ==, !=, <, <=, >, >=, regex).
type Entry struct {
	Tag   string `yaml:"tag"`
	Value string `yaml:"value"`
	Op    string `yaml:"op"`
}

// File is a parsed criteria file.
type File struct {
	Soundex  bool    `yaml:"soundex"`
	Anywhere bool    `yaml:"anywhere"`
	Setup    string  `yaml:"setup"`
	Criteria []Entry `yaml:"criteria"`
}

// Parse decodes and validates a criteria file. Bad entries are user
// errors, reported by index; they never abort the process.
func Parse(b []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("criteria file: %w", err)
	}
	if _, err := parseSetup(f.Setup); err != nil {
		return File{}, err
	}
	for i, e := range f.Criteria {
		if _, ok := tagmatch.ParseTag(e.Tag); !ok {
			return File{}, fmt.Errorf("criteria[%d]: unknown tag %q", i, e.Tag)
		}
		if _, ok := tagmatch.ParseOperator(e.Op); !ok {
			return File{}, fmt.Errorf("criteria[%d]: unknown operator %q", i, e.Op)
		}
		if e.Value == "" {
			return File{}, fmt.Errorf("criteria[%d]: empty value", i)
		}
	}
	return f, nil
}

// Load reads and parses the criteria file at path.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return Parse(b)
}

// Options translates the file's flags into matcher options. The caller
// fills in Logger and FENPattern.
func (f File) Options() tagmatch.Options {
	setup, err := parseSetup(f.Setup)
	if err != nil {
		// Parse rejects bad setup values; a hand-built File falls back
		// to accepting everything.
		setup = tagmatch.SetupAny
	}
	return tagmatch.Options{
		Soundex:       f.Soundex,
		MatchAnywhere: f.Anywhere,
		Setup:         setup,
	}
}

// Apply registers every criterion in the file with m.
func (f File) Apply(m *tagmatch.Matcher) error {
	for i, e := range f.Criteria {
		tag, ok := tagmatch.ParseTag(e.Tag)
		if !ok {
			return fmt.Errorf("criteria[%d]: unknown tag %q", i, e.Tag)
		}
		op, ok := tagmatch.ParseOperator(e.Op)
		if !ok {
			return fmt.Errorf("criteria[%d]: unknown operator %q", i, e.Op)
		}
		m.Add(tag, e.Value, op)
	}
	return nil
}

func parseSetup(s string) (tagmatch.SetupStatus, error) {
	switch s {
	case "", "any":
		return tagmatch.SetupAny, nil
	case "absent":
		return tagmatch.SetupAbsent, nil
	case "present":
		return tagmatch.SetupPresent, nil
	default:
		return 0, fmt.Errorf("setup must be any, absent or present, got %q", s)
	}
}
