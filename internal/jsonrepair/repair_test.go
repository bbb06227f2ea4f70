package jsonrepair

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean_StripsFences(t *testing.T) {
	input := "```json\n{\"a\": 1}\n```"
	cleaned := Clean(input)
	require.Equal(t, `{"a": 1}`, cleaned)
	require.True(t, json.Valid([]byte(cleaned)))
}

func TestClean_StripsFullLineComments(t *testing.T) {
	input := "{\n  // this explains the field\n  \"a\": 1\n}"
	cleaned := Clean(input)
	require.True(t, json.Valid([]byte(cleaned)), "cleaned: %s", cleaned)
	require.NotContains(t, cleaned, "explains")
}

func TestClean_PreservesURLs(t *testing.T) {
	input := `{"description": "see https://example.com for details"}`
	cleaned := Clean(input)
	require.Equal(t, input, cleaned)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal([]byte(cleaned), &parsed))
	require.Equal(t, "see https://example.com for details", parsed["description"])
}

func TestClean_StripsTrailingCommas(t *testing.T) {
	input := `{"list": [1, 2, 3,], "obj": {"a": 1,},}`
	cleaned := Clean(input)
	require.True(t, json.Valid([]byte(cleaned)), "cleaned: %s", cleaned)
}

func TestClean_SlicesPreambleAndPostamble(t *testing.T) {
	input := "Here is the JSON you asked for:\n{\"a\": 1}\nLet me know if you need anything else."
	cleaned := Clean(input)
	require.Equal(t, `{"a": 1}`, cleaned)
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\n  // comment\n  \"url\": \"https://example.com\",\n  \"list\": [1,2,],\n}\n```",
		"prose before {\"a\": [1,],} prose after",
		`{"a": 1}`,
	}
	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		require.Equal(t, once, twice, "input: %s", input)
	}
}

func TestSalvage_RecoversFromOriginal(t *testing.T) {
	original := "The model says: {\"concepts\": [{\"name\": \"x\",}]} trailing chatter"
	salvaged, ok := Salvage(original)
	require.True(t, ok)
	require.True(t, json.Valid([]byte(salvaged)), "salvaged: %s", salvaged)
}

func TestSalvage_NoObject(t *testing.T) {
	_, ok := Salvage("no json here at all")
	require.False(t, ok)
}
