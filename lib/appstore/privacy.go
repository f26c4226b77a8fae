package appstore

import "context"

type PrivacyOptions struct {
	// numeric track id, required
	ID             int64
	Country        string
	RequestOptions RequestOptions
}

// Privacy fetches an app's privacy disclosures from the catalog API.
// An app with no disclosure yields the empty PrivacyDetails, which is
// a valid state.
func (c *Client) Privacy(ctx context.Context, opts PrivacyOptions) (PrivacyDetails, error) {
	ctx, span := tracer.Start(ctx, "Privacy")
	defer span.End()

	if err := requireAny("id is required", opts.ID != 0); err != nil {
		return PrivacyDetails{}, err
	}

	country := defaultCountry(opts.Country)

	body, err := c.fetchCatalog(ctx, country, opts.ID, "fields=privacyDetails", opts.RequestOptions)
	if err != nil {
		return PrivacyDetails{}, err
	}

	var parsed ampPrivacyResponse
	if err := decodeJSON("privacy", body, &parsed); err != nil {
		return PrivacyDetails{}, err
	}

	if len(parsed.Data) == 0 {
		return PrivacyDetails{}, nil
	}
	return mapPrivacyDetails(parsed.Data[0].Attributes.PrivacyDetails), nil
}
