package appstore

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionHistoryRequiresID(t *testing.T) {
	client := testClient(t, http.NotFoundHandler())

	_, err := client.VersionHistory(context.Background(), VersionHistoryOptions{})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestVersionHistory(t *testing.T) {
	var gotQuery string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/us/app/id553834731" {
			w.Write([]byte(tokenPage))
			return
		}
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"data": [{
				"attributes": {
					"platformAttributes": {
						"ios": {
							"versionHistory": [
								{"versionDisplay": "1.2.4", "releaseDate": "2024-02-01", "releaseNotes": "fixes"},
								{"versionDisplay": "1.2.3", "releaseDate": "2024-01-10"}
							]
						}
					}
				}
			}]
		}`))
	}))

	versions, err := client.VersionHistory(context.Background(), VersionHistoryOptions{ID: 553834731})
	require.NoError(t, err)
	require.Equal(t, "platform=web&extend=versionHistory&l=en-US", gotQuery)

	require.Equal(t, []Version{
		{VersionDisplay: "1.2.4", ReleaseDate: "2024-02-01", ReleaseNotes: "fixes"},
		{VersionDisplay: "1.2.3", ReleaseDate: "2024-01-10"},
	}, versions)
}

func TestVersionHistoryEmpty(t *testing.T) {
	for _, response := range []string{
		`{"data":[]}`,
		`{"data":[{"attributes":{}}]}`,
		`{"data":[{"attributes":{"platformAttributes":{"ios":{}}}}]}`,
	} {
		client := testClient(t, tokenHandler(t, response))

		versions, err := client.VersionHistory(context.Background(), VersionHistoryOptions{ID: 553834731})
		require.NoError(t, err, "response %s", response)
		require.Len(t, versions, 0)
	}
}

func TestVersionHistoryTokenMissing(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>nothing embedded here</html>`))
	}))

	_, err := client.VersionHistory(context.Background(), VersionHistoryOptions{ID: 1})
	require.ErrorIs(t, err, ErrNoToken)
}
