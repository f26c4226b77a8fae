package appstore

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatingsRequiresID(t *testing.T) {
	client := testClient(t, http.NotFoundHandler())

	_, err := client.Ratings(context.Background(), RatingsOptions{})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestRatingsPrimarySelectors(t *testing.T) {
	var gotStoreFront string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/WebObjects/MZStore.woa/wa/viewContentsUserReviews", r.URL.Path)
		require.Equal(t, "553834731", r.URL.Query().Get("id"))
		gotStoreFront = r.Header.Get("X-Apple-Store-Front")
		w.Write([]byte(`<html><body>
			<div class="rating"><span class="rating-count">5 stars</span><span class="total">1,000 Ratings</span></div>
			<div class="rating"><span class="rating-count">4 stars</span><span class="total">400 Ratings</span></div>
			<div class="rating"><span class="rating-count">1 star</span><span class="total">25 Ratings</span></div>
		</body></html>`))
	}))

	histogram, err := client.Ratings(context.Background(), RatingsOptions{ID: 553834731, Country: "gb"})
	require.NoError(t, err)
	require.Equal(t, RatingHistogram{1: 25, 2: 0, 3: 0, 4: 400, 5: 1000}, histogram)
	require.Equal(t, "143444,12", gotStoreFront)
}

func TestRatingsPaddedLabels(t *testing.T) {
	// star labels arrive with zero-width and other non-printable
	// runes between the digit and the word
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>" +
			"<div class=\"rating\"><span class=\"rating-count\">4​ stars</span><span class=\"total\">7 Ratings</span></div>" +
			"<div class=\"rating\"><span class=\"rating-count\"> 2 stars </span><span class=\"total\">3 Ratings</span></div>" +
			"</body></html>"))
	}))

	histogram, err := client.Ratings(context.Background(), RatingsOptions{ID: 1})
	require.NoError(t, err)
	require.Equal(t, int64(7), histogram[4])
	require.Equal(t, int64(3), histogram[2])
}

func TestRatingsVoteFallback(t *testing.T) {
	// the alternate layout lists votes five-star-first with no star
	// label on the row
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<div class="vote"><span class="total">50</span></div>
			<div class="vote"><span class="total">40</span></div>
			<div class="vote"><span class="total">30</span></div>
			<div class="vote"><span class="total">20</span></div>
			<div class="vote"><span class="total">10</span></div>
		</body></html>`))
	}))

	histogram, err := client.Ratings(context.Background(), RatingsOptions{ID: 1})
	require.NoError(t, err)
	require.Equal(t, RatingHistogram{1: 10, 2: 20, 3: 30, 4: 40, 5: 50}, histogram)
}

func TestRatingsVoteOverwritesPrimary(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<div class="rating"><span class="rating-count">5 stars</span><span class="total">999</span></div>
			<div class="vote"><span class="total">1</span></div>
		</body></html>`))
	}))

	histogram, err := client.Ratings(context.Background(), RatingsOptions{ID: 1})
	require.NoError(t, err)
	// later selector matches win for the same star value
	require.Equal(t, int64(1), histogram[5])
}

func TestRatingsNothingScrapeable(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>nothing here</p></body></html>`))
	}))

	histogram, err := client.Ratings(context.Background(), RatingsOptions{ID: 1})
	require.NoError(t, err)

	// always exactly the five star keys, all zero
	require.Len(t, histogram, 5)
	for star := 1; star <= 5; star++ {
		require.Equal(t, int64(0), histogram[star])
	}
}

func TestRatingsRequestErrorSurfaces(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := client.Ratings(context.Background(), RatingsOptions{ID: 1})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusForbidden, reqErr.StatusCode)
}
