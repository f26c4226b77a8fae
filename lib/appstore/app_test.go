package appstore

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const lookupFixture = `{
	"resultCount": 1,
	"results": [{
		"wrapperType": "software",
		"kind": "software",
		"trackId": 553834731,
		"bundleId": "com.midasplayer.apps.candycrushsaga",
		"trackName": "Candy Crush Saga",
		"price": 0,
		"artistId": 526656015,
		"artistName": "King"
	}]
}`

func TestAppRequiresIdentifier(t *testing.T) {
	client := testClient(t, http.NotFoundHandler())

	_, err := client.App(context.Background(), AppOptions{})
	require.ErrorIs(t, err, ErrMissingField)
	require.Contains(t, err.Error(), "either id or appId is required")
}

func TestAppByID(t *testing.T) {
	var gotQuery string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lookup", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Write([]byte(lookupFixture))
	}))

	app, err := client.App(context.Background(), AppOptions{ID: 553834731})
	require.NoError(t, err)

	require.Equal(t, int64(553834731), app.ID)
	require.Equal(t, "com.midasplayer.apps.candycrushsaga", app.AppID)
	require.Equal(t, "Candy Crush Saga", app.Title)
	require.True(t, app.Free)
	require.Nil(t, app.Histogram)

	require.Contains(t, gotQuery, "id=553834731")
	require.Contains(t, gotQuery, "country=us")
	require.Contains(t, gotQuery, "entity=software")
}

func TestAppByBundleID(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "com.midasplayer.apps.candycrushsaga", r.URL.Query().Get("bundleId"))
		w.Write([]byte(lookupFixture))
	}))

	app, err := client.App(context.Background(), AppOptions{AppID: "com.midasplayer.apps.candycrushsaga"})
	require.NoError(t, err)
	require.Equal(t, int64(553834731), app.ID)
}

func TestAppNotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultCount":0,"results":[]}`))
	}))

	_, err := client.App(context.Background(), AppOptions{ID: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAppLangForwarded(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "fr-fr", r.URL.Query().Get("lang"))
		w.Write([]byte(lookupFixture))
	}))

	_, err := client.App(context.Background(), AppOptions{ID: 553834731, Lang: "fr-fr"})
	require.NoError(t, err)
}

func TestAppWithRatings(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/lookup":
			w.Write([]byte(lookupFixture))
		case "/WebObjects/MZStore.woa/wa/viewContentsUserReviews":
			w.Write([]byte(`<html><body>
				<div class="rating"><span class="rating-count">5 stars</span><span class="total">300 Ratings</span></div>
				<div class="rating"><span class="rating-count">1 star</span><span class="total">12 Ratings</span></div>
			</body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))

	app, err := client.App(context.Background(), AppOptions{ID: 553834731, Ratings: true})
	require.NoError(t, err)
	require.Equal(t, RatingHistogram{1: 12, 2: 0, 3: 0, 4: 0, 5: 300}, app.Histogram)
}

func TestAppRatingsFailureSwallowed(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/lookup" {
			w.Write([]byte(lookupFixture))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	app, err := client.App(context.Background(), AppOptions{ID: 553834731, Ratings: true})
	require.NoError(t, err)
	require.Nil(t, app.Histogram)
}

func TestAppValidationFailureSurfaces(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultCount":"oops"}`))
	}))

	_, err := client.App(context.Background(), AppOptions{ID: 1})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}
