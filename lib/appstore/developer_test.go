package appstore

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeveloperRequiresID(t *testing.T) {
	client := testClient(t, http.NotFoundHandler())

	_, err := client.Developer(context.Background(), DeveloperOptions{})
	require.ErrorIs(t, err, ErrMissingField)
	require.Contains(t, err.Error(), "devId is required")
}

func TestDeveloper(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// artist lookups use the plain id query parameter
		require.Equal(t, "526656015", r.URL.Query().Get("id"))
		require.Equal(t, "", r.URL.Query().Get("artistId"))
		w.Write([]byte(`{"resultCount":3,"results":[
			{"wrapperType":"artist","artistId":526656015,"artistName":"King"},
			{"trackId":1,"kind":"software","artistId":526656015},
			{"trackId":2,"kind":"software","artistId":526656015}
		]}`))
	}))

	apps, err := client.Developer(context.Background(), DeveloperOptions{DevID: 526656015})
	require.NoError(t, err)

	// the artist row upstream prepends is not an app
	require.Len(t, apps, 2)
	require.Equal(t, int64(1), apps[0].ID)
	require.Equal(t, int64(2), apps[1].ID)
}
