package appstore

import (
	"context"
	"fmt"
)

type ReviewsOptions struct {
	// numeric track id; one of ID or AppID must be set
	ID int64
	// reverse-DNS bundle id, resolved to a track id first
	AppID string
	// page number, 1 through 10; upstream serves no more
	Page int
	// sort order, default SortRecent
	Sort           Sort
	Country        string
	RequestOptions RequestOptions
}

// Reviews fetches one page of user reviews from the customer reviews
// feed.
func (c *Client) Reviews(ctx context.Context, opts ReviewsOptions) ([]Review, error) {
	ctx, span := tracer.Start(ctx, "Reviews")
	defer span.End()

	if err := requireAny("either id or appId is required", opts.ID != 0, opts.AppID != ""); err != nil {
		return nil, err
	}
	if opts.Page < 1 || opts.Page > 10 {
		return nil, ErrPageOutOfRange
	}

	sort := opts.Sort
	if sort == "" {
		sort = SortRecent
	}
	country := defaultCountry(opts.Country)

	id := opts.ID
	if id == 0 {
		app, err := c.App(ctx, AppOptions{
			AppID:          opts.AppID,
			Country:        country,
			RequestOptions: opts.RequestOptions,
		})
		if err != nil {
			return nil, err
		}
		id = app.ID
	}

	link := fmt.Sprintf(
		"%s/%s/rss/customerreviews/page=%d/id=%d/sortby=%s/json",
		c.lookupBase, country, opts.Page, id, sort,
	)

	body, err := c.doRequest(ctx, link, opts.RequestOptions.Headers)
	if err != nil {
		return nil, err
	}

	var parsed reviewsFeed
	if err := decodeJSON("reviews", body, &parsed); err != nil {
		return nil, err
	}

	// the first feed entry is app metadata, not a review. coerce to a
	// list first, then drop it: a feed with a single entry therefore
	// yields zero reviews.
	entries := parsed.Feed.Entry
	if len(entries) <= 1 {
		return []Review{}, nil
	}

	reviews := make([]Review, 0, len(entries)-1)
	for _, entry := range entries[1:] {
		reviews = append(reviews, mapReviewEntry(entry))
	}
	return reviews, nil
}
