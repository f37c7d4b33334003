// Package book loads named positions from CUE declarations.
//
// A book file declares positions keyed by label:
//
//	position: "up-star": {
//		notation:    "{0,*|0}"
//		description: "up plus star in simplest form"
//		tags: ["infinitesimal"]
//	}
//
// Every declaration is validated against the embedded schema, its
// notation is parsed into a game tree, and names are normalized to
// NFC so that lookups are insensitive to the Unicode composition of
// the source file.
package book

import (
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pregame/game"
	"github.com/roach88/pregame/notation"
)

// Position is one named entry of a book.
type Position struct {
	Name        string
	Notation    string
	Description string
	Tags        []string
	Game        *game.Game
}

// HasTag reports whether the position carries the given tag.
func (p *Position) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Book is a compiled set of positions, sorted by name.
type Book struct {
	Positions []Position
}

// Len returns the number of positions.
func (b *Book) Len() int { return len(b.Positions) }

// Names returns the position names in sorted order.
func (b *Book) Names() []string {
	names := make([]string, len(b.Positions))
	for i := range b.Positions {
		names[i] = b.Positions[i].Name
	}
	return names
}

// Get looks up a position by name. The query is NFC-normalized the
// same way declaration labels are.
func (b *Book) Get(name string) (*Position, bool) {
	want := norm.NFC.String(name)
	i := sort.Search(len(b.Positions), func(i int) bool {
		return b.Positions[i].Name >= want
	})
	if i < len(b.Positions) && b.Positions[i].Name == want {
		return &b.Positions[i], true
	}
	return nil, false
}

// WithTag returns the positions carrying the given tag, in name order.
func (b *Book) WithTag(tag string) []Position {
	var out []Position
	for _, p := range b.Positions {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// CompileBook parses a CUE value into a Book.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the whole file value, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`position: star: {notation: "*"}`)
//	b, err := CompileBook(v)
func CompileBook(v cue.Value) (*Book, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	schema := v.Context().CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	unified := v.Unify(schema.LookupPath(cue.ParsePath("#Book")))
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	posVal := unified.LookupPath(cue.ParsePath("position"))
	iter, err := posVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	book := &Book{}
	seen := make(map[string]bool)
	for iter.Next() {
		name := norm.NFC.String(iter.Label())
		if seen[name] {
			return nil, &CompileError{
				Field:   "position." + name,
				Message: "duplicate position name",
				Pos:     iter.Value().Pos(),
			}
		}
		seen[name] = true

		pos, err := compilePosition(name, iter.Value())
		if err != nil {
			return nil, err
		}
		book.Positions = append(book.Positions, *pos)
	}

	if len(book.Positions) == 0 {
		return nil, &CompileError{
			Field:   "position",
			Message: "no positions declared",
			Pos:     v.Pos(),
		}
	}

	sort.Slice(book.Positions, func(i, j int) bool {
		return book.Positions[i].Name < book.Positions[j].Name
	})
	return book, nil
}

// compilePosition extracts one position declaration. The schema has
// already enforced field presence and types.
func compilePosition(name string, v cue.Value) (*Position, error) {
	pos := &Position{Name: name}

	notationVal := v.LookupPath(cue.ParsePath("notation"))
	source, err := notationVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	g, err := notation.Parse(source)
	if err != nil {
		return nil, &CompileError{
			Field:   "position." + name + ".notation",
			Message: err.Error(),
			Pos:     notationVal.Pos(),
		}
	}
	pos.Notation = source
	pos.Game = g

	descVal := v.LookupPath(cue.ParsePath("description"))
	if descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		pos.Description = desc
	}

	tagsVal := v.LookupPath(cue.ParsePath("tags"))
	if tagsVal.Exists() {
		list, err := tagsVal.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for list.Next() {
			tag, err := list.Value().String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			pos.Tags = append(pos.Tags, tag)
		}
	}

	return pos, nil
}

// CompileError represents a book compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
