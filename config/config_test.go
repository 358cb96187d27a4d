package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type parserFunc func(data []byte, target any, path string) error

func (f parserFunc) Parse(data []byte, target any, path string) error {
	return f(data, target, path)
}

type fetcherFunc func() ([]byte, error)

func (f fetcherFunc) Fetch() ([]byte, error) {
	return f()
}

type databaseConfig struct {
	DSN      string
	Pool     int
	changed  bool
	validErr error
}

func (c *databaseConfig) SetDefaults() bool {
	if c.Pool == 0 {
		c.Pool = 4
		c.changed = true
	}

	return c.changed
}

func (c *databaseConfig) Validate() error {
	return c.validErr
}

type plainConfig struct {
	DSN string
}

func staticData(data string) fetcherFunc {
	return func() ([]byte, error) {
		return []byte(data), nil
	}
}

func TestProvider_ParsesFetchedData(t *testing.T) {
	t.Parallel()

	var (
		gotData []byte
		gotPath string
	)

	parser := parserFunc(func(data []byte, target any, path string) error {
		gotData = data
		gotPath = path

		cfg, ok := target.(*plainConfig)
		require.True(t, ok)

		cfg.DSN = "postgres://localhost"

		return nil
	})

	target := &plainConfig{}

	result, err := Provider(target, "services:db")(parser, staticData("dsn: postgres://localhost"))
	require.NoError(t, err)
	require.Same(t, target, result)
	require.Equal(t, "postgres://localhost", result.DSN)
	require.Equal(t, "dsn: postgres://localhost", string(gotData))
	require.Equal(t, "services:db", gotPath)
}

func TestProvider_AppliesDefaultsBeforeValidation(t *testing.T) {
	t.Parallel()

	parser := parserFunc(func(_ []byte, _ any, _ string) error {
		return nil
	})

	target := &databaseConfig{}

	result, err := Provider(target, "")(parser, staticData("{}"))
	require.NoError(t, err)
	require.Equal(t, 4, result.Pool)
	require.True(t, result.changed)
}

func TestProvider_KeepsParsedValuesOverDefaults(t *testing.T) {
	t.Parallel()

	parser := parserFunc(func(_ []byte, target any, _ string) error {
		cfg, ok := target.(*databaseConfig)
		require.True(t, ok)

		cfg.Pool = 16

		return nil
	})

	result, err := Provider(&databaseConfig{}, "")(parser, staticData("pool: 16"))
	require.NoError(t, err)
	require.Equal(t, 16, result.Pool)
	require.False(t, result.changed)
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name     string
		fetcher  fetcherFunc
		parser   parserFunc
		validErr error
		wantErr  error
		wantKind error
	}{
		{
			name: "fetch error",
			fetcher: func() ([]byte, error) {
				return nil, fetchErr
			},
			parser: func(_ []byte, _ any, _ string) error {
				return nil
			},
			wantErr:  fetchErr,
			wantKind: ErrFetch,
		},
		{
			name:    "parse error",
			fetcher: staticData("data"),
			parser: func(_ []byte, _ any, _ string) error {
				return parseErr
			},
			wantErr:  parseErr,
			wantKind: ErrParse,
		},
		{
			name:    "validation error",
			fetcher: staticData("data"),
			parser: func(_ []byte, _ any, _ string) error {
				return nil
			},
			validErr: validationErr,
			wantErr:  validationErr,
			wantKind: ErrValidate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			target := &databaseConfig{validErr: tc.validErr}

			result, err := Provider(target, "")(tc.parser, tc.fetcher)
			require.Nil(t, result)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, tc.wantKind)
		})
	}
}
