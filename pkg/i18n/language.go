// Package i18n resolves language tags into human-readable display names.
// Tag parsing and locale data come from golang.org/x/text.
package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// InvalidTagMessage is the error text reported for a tag that does not
// resolve to a real locale.
const InvalidTagMessage = "Invalid language tag."

// ErrInvalidTag is wrapped by every error returned for an unresolvable tag.
var ErrInvalidTag = errors.New("invalid language tag")

// Namer renders display names for a parsed tag.
type Namer interface {
	// Names returns the tag's name in English and in its own language.
	Names(tag language.Tag) (english, localized string)
}

// DisplayNamer is the Namer backed by the CLDR tables in x/text.
type DisplayNamer struct {
	english display.Namer
}

// NewDisplayNamer creates a namer that renders English names with the full
// tag (language, script, region) taken into account.
func NewDisplayNamer() *DisplayNamer {
	return &DisplayNamer{english: display.Tags(language.English)}
}

func (n *DisplayNamer) Names(tag language.Tag) (string, string) {
	english := n.english.Name(tag)
	localized := display.Self.Name(tag)

	// The tables have gaps for rare combinations; the canonical tag is
	// still a better name than nothing.
	if english == "" {
		english = tag.String()
	}
	if localized == "" {
		localized = tag.String()
	}
	return english, localized
}

// Record is the result of resolving one tag. Either both names are set or
// Err is, never both.
type Record struct {
	Tag           string
	EnglishName   string
	LocalizedName string
	Err           error
}

// Valid reports whether the tag resolved to a locale.
func (r Record) Valid() bool {
	return r.Err == nil
}

// ErrorMessage returns InvalidTagMessage for an invalid record and "" otherwise.
func (r Record) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return InvalidTagMessage
}

// ParseTag parses s as a BCP 47 tag. Matching is case-insensitive.
//
// Well-formed tags with unknown subtags are accepted with whatever x/text
// could make of them; the tag is only rejected when it is malformed or when
// nothing but the root locale is left.
func ParseTag(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return language.Und, fmt.Errorf("%w %q: %v", ErrInvalidTag, s, err)
		}
	}
	if tag == language.Und {
		return language.Und, fmt.Errorf("%w %q: resolves to the root locale", ErrInvalidTag, s)
	}
	return tag, nil
}

// Resolver turns tag strings into Records.
type Resolver struct {
	namer Namer
}

// NewResolver creates a Resolver. A nil namer selects the DisplayNamer.
func NewResolver(namer Namer) *Resolver {
	if namer == nil {
		namer = NewDisplayNamer()
	}
	return &Resolver{namer: namer}
}

// Resolve parses s and looks up its display names.
func (r *Resolver) Resolve(s string) Record {
	tag, err := ParseTag(s)
	if err != nil {
		return Record{Tag: s, Err: err}
	}

	english, localized := r.namer.Names(tag)
	return Record{
		Tag:           s,
		EnglishName:   english,
		LocalizedName: localized,
	}
}

var defaultResolver = NewResolver(nil)

// Resolve resolves s with the default DisplayNamer.
func Resolve(s string) Record {
	return defaultResolver.Resolve(s)
}
