package appstore

import "context"

type VersionHistoryOptions struct {
	// numeric track id, required
	ID             int64
	Country        string
	RequestOptions RequestOptions
}

// VersionHistory fetches the released versions of an app from the
// catalog API, newest first as upstream delivers them. An app with no
// recorded history yields an empty list.
func (c *Client) VersionHistory(ctx context.Context, opts VersionHistoryOptions) ([]Version, error) {
	ctx, span := tracer.Start(ctx, "VersionHistory")
	defer span.End()

	if err := requireAny("id is required", opts.ID != 0); err != nil {
		return nil, err
	}

	country := defaultCountry(opts.Country)

	body, err := c.fetchCatalog(ctx, country, opts.ID, "extend=versionHistory", opts.RequestOptions)
	if err != nil {
		return nil, err
	}

	var parsed ampVersionHistoryResponse
	if err := decodeJSON("versionHistory", body, &parsed); err != nil {
		return nil, err
	}

	versions := []Version{}
	if len(parsed.Data) == 0 {
		return versions, nil
	}
	for _, entry := range parsed.Data[0].Attributes.PlatformAttributes.Ios.VersionHistory {
		versions = append(versions, mapVersionEntry(entry))
	}
	return versions, nil
}
