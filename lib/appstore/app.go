package appstore

import (
	"context"
	"log/slog"
	"strconv"
)

type AppOptions struct {
	// numeric track id; one of ID or AppID must be set
	ID int64
	// reverse-DNS bundle id
	AppID   string
	Country string
	Lang    string
	// also fetch the rating histogram and attach it
	Ratings        bool
	RequestOptions RequestOptions
}

// App fetches the full record for a single app, addressed either by
// track id or bundle id.
func (c *Client) App(ctx context.Context, opts AppOptions) (App, error) {
	ctx, span := tracer.Start(ctx, "App")
	defer span.End()

	if err := requireAny("either id or appId is required", opts.ID != 0, opts.AppID != ""); err != nil {
		return App{}, err
	}

	country := defaultCountry(opts.Country)

	field := "id"
	value := strconv.FormatInt(opts.ID, 10)
	if opts.ID == 0 {
		field = "bundleId"
		value = opts.AppID
	}

	apps, err := c.lookup(ctx, field, []string{value}, country, opts.Lang, opts.RequestOptions)
	if err != nil {
		return App{}, err
	}
	if len(apps) == 0 {
		return App{}, ErrNotFound
	}

	app := apps[0]

	if opts.Ratings {
		// histogram scraping is fragile; a failure here must not
		// sink the whole call
		histogram, err := c.Ratings(ctx, RatingsOptions{
			ID:             app.ID,
			Country:        country,
			RequestOptions: opts.RequestOptions,
		})
		if err != nil {
			slog.WarnContext(ctx, "could not attach rating histogram", "id", app.ID, "err", err)
		} else {
			app.Histogram = histogram
		}
	}

	return app, nil
}
