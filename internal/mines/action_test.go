package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	testCases := []struct {
		input  string
		action Action
	}{
		{"free", Reveal},
		{"mine", Mark},
		{"FREE", Reveal},
	}
	for _, test := range testCases {
		a, err := ParseAction(test.input)
		require.NoError(t, err)
		assert.Equal(t, test.action, a)
	}

	for _, input := range []string{"", "flag", "open", "mines"} {
		_, err := ParseAction(input)
		assert.ErrorIs(t, err, ErrInvalidAction, "input %q", input)
	}
}
