package appstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// lookup hits the generic multi-id lookup endpoint shared by App,
// Developer, List and Similar. The results may mix artist records in
// with app records; only software rows survive.
func (c *Client) lookup(ctx context.Context, field string, values []string, country, lang string, ro RequestOptions) ([]App, error) {
	// artist lookups go through the plain id parameter upstream
	param := field
	if param == "artistId" {
		param = "id"
	}

	query := url.Values{}
	query.Set(param, strings.Join(values, ","))
	query.Set("country", country)
	query.Set("entity", "software")
	if lang != "" {
		query.Set("lang", lang)
	}

	body, err := c.doRequest(ctx, fmt.Sprintf("%s/lookup?%s", c.lookupBase, query.Encode()), ro.Headers)
	if err != nil {
		return nil, err
	}

	var parsed lookupResponse
	if err := decodeJSON("lookup", body, &parsed); err != nil {
		return nil, err
	}

	apps := []App{}
	for _, raw := range parsed.Results {
		if raw.Kind != "software" && raw.WrapperType != "software" {
			continue
		}
		apps = append(apps, cleanApp(raw))
	}
	return apps, nil
}

func (c *Client) lookupIDs(ctx context.Context, ids []int64, country, lang string, ro RequestOptions) ([]App, error) {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = strconv.FormatInt(id, 10)
	}
	return c.lookup(ctx, "id", values, country, lang, ro)
}

func defaultCountry(country string) string {
	if country == "" {
		return "us"
	}
	return country
}
