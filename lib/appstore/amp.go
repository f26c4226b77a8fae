package appstore

import (
	"context"
	"fmt"
	"regexp"
)

// The catalog API wants a bearer token that only exists URL-encoded
// inside the public app page markup.
var bearerTokenPattern = regexp.MustCompile(`token%22%3A%22([^%]+)%22%7D`)

func (c *Client) fetchBearerToken(ctx context.Context, country string, id int64, ro RequestOptions) (string, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("%s/%s/app/id%d", c.webBase, country, id), ro.Headers)
	if err != nil {
		return "", err
	}

	groups := bearerTokenPattern.FindStringSubmatch(body)
	if groups == nil {
		return "", ErrNoToken
	}
	return groups[1], nil
}

// fetchCatalog runs the two-step token-then-fetch sequence against the
// catalog API. fields is the raw query fragment selecting what to
// extend ("fields=privacyDetails" or "extend=versionHistory").
func (c *Client) fetchCatalog(ctx context.Context, country string, id int64, fields string, ro RequestOptions) (string, error) {
	token, err := c.fetchBearerToken(ctx, country, id, ro)
	if err != nil {
		return "", err
	}

	link := fmt.Sprintf(
		"%s/v1/catalog/%s/apps/%d?platform=web&%s&l=en-US",
		c.ampBase, country, id, fields,
	)
	return c.doRequest(ctx, link, mergeHeaders(map[string]string{
		"Origin":        "https://apps.apple.com",
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}, ro.Headers))
}
