package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParser_Has(t *testing.T) {
	p := New([]string{"--input", "data.csv", "--verbose"})

	require.True(t, p.Has("--input"))
	require.True(t, p.Has("--verbose"))
	require.False(t, p.Has("--output"))
}

func TestParser_Value(t *testing.T) {
	p := New([]string{"--input", "data.csv", "--verbose"})

	tests := []struct {
		name    string
		flag    string
		want    string
		wantErr error
	}{
		{"flag with value", "--input", "data.csv", nil},
		{"missing flag", "--output", "", ErrNotFound},
		{"flag at end of args", "--verbose", "", ErrEmptyValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Value(tt.flag)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParser_EmptyArgs(t *testing.T) {
	p := New(nil)
	require.False(t, p.Has("--anything"))
	_, err := p.Value("--anything")
	require.ErrorIs(t, err, ErrNotFound)
}
