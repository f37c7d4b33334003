package book

import (
	"errors"
	"path/filepath"
	"testing"

	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pregame/game"
)

func TestCompileBookBasic(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		position: star: {
			notation:    "*"
			description: "first player wins"
			tags: ["nimber", "infinitesimal"]
		}

		position: one: {
			notation: "1"
		}
	`)
	require.NoError(t, v.Err())

	b, err := CompileBook(v)
	require.NoError(t, err)

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"one", "star"}, b.Names())

	star, ok := b.Get("star")
	require.True(t, ok)
	assert.Equal(t, "*", star.Notation)
	assert.Equal(t, "first player wins", star.Description)
	assert.True(t, star.HasTag("nimber"))
	assert.False(t, star.HasTag("number"))
	assert.True(t, game.Equal(star.Game, game.Star()))

	one, ok := b.Get("one")
	require.True(t, ok)
	assert.Empty(t, one.Description)
	assert.Empty(t, one.Tags)
	assert.True(t, game.Equal(one.Game, game.One()))

	_, ok = b.Get("two")
	assert.False(t, ok)
}

func TestCompileBookMissingNotation(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		position: bad: {
			description: "has no notation"
		}
	`)
	require.NoError(t, v.Err())

	_, err := CompileBook(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notation")
}

func TestCompileBookEmptyNotation(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		position: bad: {
			notation: ""
		}
	`)
	require.NoError(t, v.Err())

	_, err := CompileBook(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notation")
}

func TestCompileBookInvalidNotation(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		position: bad: {
			notation: "1/3"
		}
	`)
	require.NoError(t, v.Err())

	_, err := CompileBook(v)
	require.Error(t, err)

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, "position.bad.notation", compileErr.Field)
	assert.Contains(t, compileErr.Message, "power of two")
	assert.True(t, compileErr.Pos.IsValid())
}

func TestCompileBookRejectsUnknownFields(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		position: bad: {
			notation: "0"
			colour:   "red"
		}
	`)
	require.NoError(t, v.Err())

	_, err := CompileBook(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestCompileBookDuplicateAfterNormalization(t *testing.T) {
	// The two labels differ in bytes but both normalize to "café".
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		position: "café": {
			notation: "0"
		}
		position: "café": {
			notation: "1"
		}
	`)
	require.NoError(t, v.Err())

	_, err := CompileBook(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCompileBookNoPositions(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`position: {}`)
	require.NoError(t, v.Err())

	_, err := CompileBook(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no positions")
}

func TestGetNormalizesQuery(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		position: "café": {
			notation: "*"
		}
	`)
	require.NoError(t, v.Err())

	b, err := CompileBook(v)
	require.NoError(t, err)

	p, ok := b.Get("café")
	require.True(t, ok)
	assert.Equal(t, "café", p.Name)
}

func TestStandardBook(t *testing.T) {
	b, err := Standard()
	require.NoError(t, err)

	assert.Equal(t, 17, b.Len())

	names := b.Names()
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
	for _, name := range names {
		assert.Equal(t, norm.NFC.String(name), name)
	}

	zero, ok := b.Get("zero")
	require.True(t, ok)
	assert.True(t, game.Equal(zero.Game, game.Zero()))
	assert.NotEmpty(t, zero.Description)

	upStar, ok := b.Get("up-star")
	require.True(t, ok)
	want := game.New([]*game.Game{game.Zero(), game.Star()}, []*game.Game{game.Zero()})
	assert.True(t, game.Equal(upStar.Game, want))

	star2, ok := b.Get("star2")
	require.True(t, ok)
	assert.Equal(t, game.Nim(2).Digest(), star2.Game.Digest())

	starSum, ok := b.Get("star-plus-star")
	require.True(t, ok)
	assert.Equal(t, game.Add(game.Star(), game.Star()).Digest(), starSum.Game.Digest())

	nimbers := b.WithTag("nimber")
	require.Len(t, nimbers, 4)
	assert.Equal(t, "star", nimbers[0].Name)
}

func TestLoadDirectory(t *testing.T) {
	b, err := Load(filepath.Join("testdata", "valid"))
	require.NoError(t, err)

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, []string{"half", "one", "star", "up-star"}, b.Names())

	half, ok := b.Get("half")
	require.True(t, ok)
	assert.True(t, game.Equal(half.Game, game.Half()))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CUE files")

	_, err = Load(filepath.Join("testdata", "valid", "openings.cue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestLoadFile(t *testing.T) {
	b, err := LoadFile(filepath.Join("testdata", "valid", "openings.cue"))
	require.NoError(t, err)
	assert.Equal(t, []string{"star", "up-star"}, b.Names())

	_, err = LoadFile(filepath.Join("testdata", "missing.cue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}
