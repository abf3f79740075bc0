package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	tests := []struct {
		writes []string
		want   string
	}{
		{writes: nil, want: ""},
		{writes: []string{"one\n"}, want: "in: one\n"},
		{writes: []string{"one\ntwo\n"}, want: "in: one\nin: two\n"},
		{writes: []string{"par", "tial\n", "next"}, want: "in: partial\nin: next"},
		{writes: []string{"\n\n"}, want: "in: \nin: \n"},
	}

	for i, test := range tests {
		var buf bytes.Buffer
		pw := newPrefixWriter(&buf, "in: ")
		for _, s := range test.writes {
			n, err := fmt.Fprint(pw, s)
			require.NoError(t, err)
			assert.Equal(t, len(s), n, "%d", i)
		}
		assert.Equal(t, test.want, buf.String(), "%d", i)
	}
}
