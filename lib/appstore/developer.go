package appstore

import (
	"context"
	"strconv"
)

type DeveloperOptions struct {
	// artist id of the developer, required
	DevID          int64
	Country        string
	Lang           string
	RequestOptions RequestOptions
}

// Developer lists every app published under a developer's artist id.
func (c *Client) Developer(ctx context.Context, opts DeveloperOptions) ([]App, error) {
	ctx, span := tracer.Start(ctx, "Developer")
	defer span.End()

	if err := requireAny("devId is required", opts.DevID != 0); err != nil {
		return nil, err
	}

	return c.lookup(
		ctx,
		"artistId",
		[]string{strconv.FormatInt(opts.DevID, 10)},
		defaultCountry(opts.Country),
		opts.Lang,
		opts.RequestOptions,
	)
}
