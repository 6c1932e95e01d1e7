package mods

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAcronym(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"HD", nil},
		{"SV2", nil},
		{"10K", nil},
		{"ABCD", nil},
		{"H", ErrInvalidAcronymLength},
		{"", ErrInvalidAcronymLength},
		{"ABCDE", ErrInvalidAcronymLength},
		{"hd", ErrInvalidAcronymChars},
		{"H!", ErrInvalidAcronymChars},
		{"H D", ErrInvalidAcronymChars},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			a, err := ParseAcronym(test.input)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				require.True(t, a.IsZero())
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.input, a.String())
		})
	}
}

func TestAcronymJSON(t *testing.T) {
	a := mustAcronym("DT")
	data, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `"DT"`, string(data))

	var decoded Acronym
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, a, decoded)

	require.ErrorIs(t, json.Unmarshal([]byte(`"dt"`), &decoded), ErrInvalidAcronymChars)
}

func TestAcronymCompare(t *testing.T) {
	require.Negative(t, mustAcronym("BL").Compare(mustAcronym("CL")))
	require.Zero(t, mustAcronym("HD").Compare(mustAcronym("HD")))
	require.Positive(t, mustAcronym("SV2").Compare(mustAcronym("SD")))
}
