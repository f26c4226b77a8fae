package appstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

type SimilarOptions struct {
	// numeric track id; one of ID or AppID must be set
	ID int64
	// reverse-DNS bundle id, resolved to a track id first
	AppID          string
	Country        string
	Lang           string
	RequestOptions RequestOptions
}

const similarMarker = `"customersAlsoBoughtApps":`

// Similar returns the "customers also bought" apps for an app. The id
// list is embedded as a JSON array inside the storefront page HTML;
// when the page or marker is missing the answer is an empty list,
// because similar-apps data is best effort.
func (c *Client) Similar(ctx context.Context, opts SimilarOptions) ([]App, error) {
	ctx, span := tracer.Start(ctx, "Similar")
	defer span.End()

	if err := requireAny("either id or appId is required", opts.ID != 0, opts.AppID != ""); err != nil {
		return nil, err
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

	link := fmt.Sprintf("%s/us/app/app/id%d", c.lookupBase, id)
	body, err := c.doRequest(ctx, link, opts.RequestOptions.Headers)
	if err != nil {
		slog.DebugContext(ctx, "similar apps page unavailable", "id", id, "err", err)
		return []App{}, nil
	}

	ids := extractSimilarIDs(body)
	if len(ids) == 0 {
		return []App{}, nil
	}

	return c.lookupIDs(ctx, ids, country, opts.Lang, opts.RequestOptions)
}

func extractSimilarIDs(body string) []int64 {
	idx := strings.Index(body, similarMarker)
	if idx < 0 {
		return nil
	}

	var ids []int64
	dec := json.NewDecoder(strings.NewReader(body[idx+len(similarMarker):]))
	if err := dec.Decode(&ids); err != nil {
		return nil
	}
	return ids
}
