package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestGetText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><div>hello <b>storefront</b> world</div></body></html>`))
	require.NoError(t, err)

	require.Contains(t, GetText(doc), "hello storefront world")
}

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  padded  ", "padded"},
		{"inner    runs", "inner runs"},
		{"zero\x00width", "zerowidth"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanText(test.input))
	}
}
