package yamltag_test

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/0xalexb/yamltag"
	"github.com/0xalexb/yamltag/memfs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAll(t *testing.T) {
	t.Parallel()

	docs := newLoader(nil).LoadAll(strings.NewReader("1\n---\n!bypass 123\n---\n!x\n---\n2"))

	value, err := docs.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	value, err = docs.Next()
	require.NoError(t, err)
	assert.Equal(t, "123", value)

	_, err = docs.Next()

	var loadErr *yamltag.Error
	require.ErrorAs(t, err, &loadErr)
	require.ErrorIs(t, err, yamltag.ErrUnknownTag)

	_, err = docs.Next()
	require.ErrorIs(t, err, io.EOF)

	_, err = docs.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestLoadAll_ConstructsLazily(t *testing.T) {
	t.Parallel()

	var calls int

	loader := yamltag.New()
	loader.AddTag("!count", yamltag.TagFunc(func(*yamltag.TagContext) (any, error) {
		calls++

		return calls, nil
	}))

	docs := loader.LoadAll(strings.NewReader("!count\n---\n!count\n---\n!count\n"))
	assert.Equal(t, 0, calls)

	value, err := docs.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, value)
	assert.Equal(t, 1, calls)

	require.NoError(t, docs.Close())

	_, err = docs.Next()
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, calls)
}

func TestLoadAll_SyntaxErrorInLaterDocument(t *testing.T) {
	t.Parallel()

	docs := yamltag.New().LoadAll(strings.NewReader("a: 1\n---\nb: [2\n"), yamltag.WithName("docs.yml"))

	value, err := docs.Next()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, value)

	_, err = docs.Next()

	var loadErr *yamltag.Error
	require.ErrorAs(t, err, &loadErr)
	require.NotNil(t, loadErr.Mark)
	assert.Equal(t, "docs.yml", loadErr.Mark.Name)
	assert.GreaterOrEqual(t, loadErr.Mark.Line, 2)

	_, err = docs.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestLoadAll_SyntaxErrorInFirstDocument(t *testing.T) {
	t.Parallel()

	docs := yamltag.New().LoadAll(strings.NewReader("a: [1\n---\nb: 2\n"))

	_, err := docs.Next()

	var loadErr *yamltag.Error
	require.ErrorAs(t, err, &loadErr)

	_, err = docs.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestLoadAll_DocumentCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []any
	}{
		{"empty stream", "", nil},
		{"comments only", "# nothing here\n", nil},
		{"single document", "a\n", []any{"a"}},
		{"explicit empty document", "---\n", []any{nil}},
		{"empty document between", "1\n---\n---\n2", []any{1, nil, 2}},
		{"leading comment", "# head\n---\na\n", []any{"a"}},
		{"document end", "a\n...\n# tail\n", []any{"a"}},
		{"document end then header", "a\n...\n---\nb\n", []any{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var values []any

			for value, err := range yamltag.New().LoadAll(strings.NewReader(tt.content)).All() {
				require.NoError(t, err)

				values = append(values, value)
			}

			assert.Equal(t, tt.expected, values)
		})
	}
}

func TestLoadAllFromPath(t *testing.T) {
	t.Parallel()

	fsys := memfs.New(map[string]string{
		"path/to/scenario.yml": "1\n---\n!bypass abc\n---\n!x\n---\n2\n",
	})

	docs := newLoader(fsys).LoadAllFromPath("path/to/scenario.yml")
	assert.Empty(t, fsys.Opened())

	value, err := docs.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, value)
	assert.Equal(t, 1, fsys.OpenCount())

	value, err = docs.Next()
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	_, err = docs.Next()

	var loadErr *yamltag.Error
	require.ErrorAs(t, err, &loadErr)
	require.NotNil(t, loadErr.Mark)
	assert.Equal(t, "path/to/scenario.yml", loadErr.Mark.Name)

	_, err = docs.Next()
	require.ErrorIs(t, err, io.EOF)

	assert.True(t, fsys.AllClosed())
	assert.Equal(t, []string{"path/to/scenario.yml"}, fsys.Opened())
}

func TestLoadAllFromPath_Exhausted(t *testing.T) {
	t.Parallel()

	fsys := memfs.New(map[string]string{"docs.yml": "a\n---\nb\n"})

	docs := newLoader(fsys).LoadAllFromPath("docs.yml")

	var values []any

	for {
		value, err := docs.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		values = append(values, value)
	}

	assert.Equal(t, []any{"a", "b"}, values)
	assert.True(t, fsys.AllClosed())
	require.NoError(t, docs.Close())
}

func TestLoadAllFromPath_NotFound(t *testing.T) {
	t.Parallel()

	docs := newLoader(memfs.New(nil)).LoadAllFromPath("/////foo/bar/baz")

	_, err := docs.Next()

	var loadErr *yamltag.Error
	require.ErrorAs(t, err, &loadErr)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, loadErr.Mark)

	_, err = docs.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestLoadAllFromPath_CloseBeforeFirstPull(t *testing.T) {
	t.Parallel()

	fsys := memfs.New(map[string]string{"docs.yml": "a\n"})

	docs := newLoader(fsys).LoadAllFromPath("docs.yml")
	require.NoError(t, docs.Close())
	require.NoError(t, docs.Close())

	_, err := docs.Next()
	require.ErrorIs(t, err, io.EOF)
	assert.Empty(t, fsys.Opened())
}

func TestDocuments_All(t *testing.T) {
	t.Parallel()

	fsys := memfs.New(map[string]string{"docs.yml": "a\n---\nb\n---\nc\n"})

	var values []any

	for value, err := range newLoader(fsys).LoadAllFromPath("docs.yml").All() {
		require.NoError(t, err)

		values = append(values, value)
	}

	assert.Equal(t, []any{"a", "b", "c"}, values)
	assert.True(t, fsys.AllClosed())
}

func TestDocuments_AllBreakCloses(t *testing.T) {
	t.Parallel()

	fsys := memfs.New(map[string]string{"docs.yml": "a\n---\nb\n---\nc\n"})

	for value, err := range newLoader(fsys).LoadAllFromPath("docs.yml").All() {
		require.NoError(t, err)
		assert.Equal(t, "a", value)

		break
	}

	assert.Len(t, fsys.Opened(), 1)
	assert.True(t, fsys.AllClosed())
}

func TestDocuments_AllStopsAfterError(t *testing.T) {
	t.Parallel()

	var (
		values []any
		errs   []error
	)

	for value, err := range newLoader(nil).LoadAll(strings.NewReader("1\n---\n!x\n---\n2\n")).All() {
		if err != nil {
			errs = append(errs, err)

			continue
		}

		values = append(values, value)
	}

	assert.Equal(t, []any{1}, values)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], yamltag.ErrUnknownTag)
}
