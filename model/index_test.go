package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"number", `3000`, "3000"},
		{"float", `99.5`, "99.5"},
		{"string", `"3000"`, "3000"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexNumber
			require.NoError(t, json.Unmarshal([]byte(tc.in), &f))
			assert.Equal(t, tc.want, f.String())
		})
	}
}

func TestFlexNumberRejectsNonNumericJSON(t *testing.T) {
	var f FlexNumber
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &f))
}
