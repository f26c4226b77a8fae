package appstore

import (
	"context"
	"fmt"
	"net/url"
)

type SearchOptions struct {
	// search term, required
	Term string
	// results per page, default 50
	Num int
	// page number, default 1
	Page           int
	Country        string
	Lang           string
	RequestOptions RequestOptions
}

// Search queries the storefront search endpoint. Upstream returns one
// bubble of results regardless of Num/Page; pagination is a window
// sliced client-side, so a page past the end is an empty result, not
// an error.
func (c *Client) Search(ctx context.Context, opts SearchOptions) ([]App, error) {
	results, err := c.search(ctx, opts)
	if err != nil {
		return nil, err
	}

	apps := []App{}
	for _, raw := range results {
		if raw.TrackID == 0 {
			continue
		}
		apps = append(apps, cleanApp(raw))
	}
	return apps, nil
}

// SearchIDs is Search returning just the numeric track ids.
func (c *Client) SearchIDs(ctx context.Context, opts SearchOptions) ([]int64, error) {
	results, err := c.search(ctx, opts)
	if err != nil {
		return nil, err
	}

	ids := []int64{}
	for _, raw := range results {
		if raw.TrackID == 0 {
			continue
		}
		ids = append(ids, raw.TrackID)
	}
	return ids, nil
}

func (c *Client) search(ctx context.Context, opts SearchOptions) ([]lookupApp, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	if err := requireAny("term is required", opts.Term != ""); err != nil {
		return nil, err
	}

	num := opts.Num
	if num == 0 {
		num = 50
	}
	page := opts.Page
	if page == 0 {
		page = 1
	}
	lang := opts.Lang
	if lang == "" {
		lang = "en-us"
	}
	store := storeID(defaultCountry(opts.Country))

	link := fmt.Sprintf(
		"%s/WebObjects/MZStore.woa/wa/search?clientApplication=Software&media=software&term=%s",
		c.searchBase, url.QueryEscape(opts.Term),
	)

	body, err := c.doRequest(ctx, link, mergeHeaders(map[string]string{
		"X-Apple-Store-Front": fmt.Sprintf("%d,24 t:native", store),
		"Accept-Language":     lang,
	}, opts.RequestOptions.Headers))
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := decodeJSON("search", body, &parsed); err != nil {
		return nil, err
	}

	var results []lookupApp
	if len(parsed.Bubbles) > 0 {
		results = parsed.Bubbles[0].Results
	}

	start := (page - 1) * num
	if start >= len(results) {
		return nil, nil
	}
	end := start + num
	if end > len(results) {
		end = len(results)
	}
	return results[start:end], nil
}

// mergeHeaders lays caller overrides on top of operation headers.
func mergeHeaders(base, overrides map[string]string) map[string]string {
	if len(overrides) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
