package appstore

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimilarRequiresIdentifier(t *testing.T) {
	client := testClient(t, http.NotFoundHandler())

	_, err := client.Similar(context.Background(), SimilarOptions{})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestSimilar(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/us/app/app/id553834731":
			w.Write([]byte(`<html><script>var data = {"customersAlsoBoughtApps":[11,22,33],"other":1};</script></html>`))
		case "/lookup":
			require.Equal(t, "11,22,33", r.URL.Query().Get("id"))
			w.Write([]byte(`{"resultCount":3,"results":[
				{"trackId":11,"kind":"software"},
				{"trackId":22,"kind":"software"},
				{"trackId":33,"kind":"software"}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))

	apps, err := client.Similar(context.Background(), SimilarOptions{ID: 553834731})
	require.NoError(t, err)
	require.Len(t, apps, 3)
	require.Equal(t, int64(11), apps[0].ID)
}

func TestSimilarMarkerAbsent(t *testing.T) {
	var lookupCalls atomic.Int64
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/lookup" {
			lookupCalls.Add(1)
		}
		w.Write([]byte(`<html><body>no marker on this page</body></html>`))
	}))

	apps, err := client.Similar(context.Background(), SimilarOptions{ID: 1})
	require.NoError(t, err)
	require.Len(t, apps, 0)
	require.Equal(t, int64(0), lookupCalls.Load())
}

func TestSimilarMalformedMarker(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>{"customersAlsoBoughtApps":"not an array"}</html>`))
	}))

	apps, err := client.Similar(context.Background(), SimilarOptions{ID: 1})
	require.NoError(t, err)
	require.Len(t, apps, 0)
}

func TestSimilarPageFetchFailure(t *testing.T) {
	// an unavailable page is a best-effort miss, not an error
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	apps, err := client.Similar(context.Background(), SimilarOptions{ID: 1})
	require.NoError(t, err)
	require.Len(t, apps, 0)
}

func TestExtractSimilarIDs(t *testing.T) {
	require.Equal(t, []int64{1, 2}, extractSimilarIDs(`x"customersAlsoBoughtApps":[1,2]y`))
	require.Nil(t, extractSimilarIDs(`no marker`))
	require.Nil(t, extractSimilarIDs(`"customersAlsoBoughtApps":{}`))
	require.Nil(t, extractSimilarIDs(`"customersAlsoBoughtApps":[1,"x"]`))
}
