package appstore

import (
	"context"
	"fmt"
	"strconv"
)

type ListOptions struct {
	// feed collection, default TopFreeIos
	Collection Collection
	// optional genre filter
	Category Category
	// number of results, default 50, capped at 200
	Num     int
	Country string
	Lang    string
	// FullDetail is accepted for compatibility with the historical
	// option surface; entries are always resolved to full records
	// through lookup either way.
	FullDetail     bool
	RequestOptions RequestOptions
}

// List fetches a collection feed (top free, top paid, ...) and
// resolves its entries to full app records.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]App, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	collection := opts.Collection
	if collection == "" {
		collection = TopFreeIos
	}
	num := opts.Num
	if num == 0 {
		num = 50
	}
	if num > 200 {
		num = 200
	}
	country := defaultCountry(opts.Country)

	link := fmt.Sprintf("%s/%s/rss/%s", c.lookupBase, country, collection)
	if opts.Category != 0 {
		link += fmt.Sprintf("/genre=%d", opts.Category)
	}
	link += fmt.Sprintf("/limit=%d/json", num)

	body, err := c.doRequest(ctx, link, opts.RequestOptions.Headers)
	if err != nil {
		return nil, err
	}

	var parsed listFeed
	if err := decodeJSON("list", body, &parsed); err != nil {
		return nil, err
	}

	// entries without an im:id attribute are dropped silently
	var ids []int64
	for _, entry := range parsed.Feed.Entry {
		id, err := strconv.ParseInt(entry.ID.Attributes.IMID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []App{}, nil
	}

	return c.lookupIDs(ctx, ids, country, opts.Lang, opts.RequestOptions)
}
