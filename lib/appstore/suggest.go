package appstore

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
)

type SuggestOptions struct {
	// search term, required
	Term           string
	RequestOptions RequestOptions
}

// The hints endpoint answers with property-list XML. Navigation is by
// element structure (plist > dict > array > dict), matching how the
// feed actually nests, and only the first <string> child of each hint
// dict is the term.
type suggestPlist struct {
	Dict struct {
		Array struct {
			Dicts []struct {
				Strings []string `xml:"string"`
			} `xml:"dict"`
		} `xml:"array"`
	} `xml:"dict"`
}

// Suggest fetches search term completions. A structurally unexpected
// plist (no array, no dicts) is an empty result, not an error.
func (c *Client) Suggest(ctx context.Context, opts SuggestOptions) ([]Suggestion, error) {
	ctx, span := tracer.Start(ctx, "Suggest")
	defer span.End()

	if err := requireAny("term is required", opts.Term != ""); err != nil {
		return nil, err
	}

	link := fmt.Sprintf(
		"%s/WebObjects/MZSearchHints.woa/wa/hints?clientApplication=Software&term=%s",
		c.searchBase, url.QueryEscape(opts.Term),
	)

	body, err := c.doRequest(ctx, link, opts.RequestOptions.Headers)
	if err != nil {
		return nil, err
	}

	var parsed suggestPlist
	if err := xml.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, &ValidationError{Endpoint: "suggest", Err: err}
	}

	suggestions := []Suggestion{}
	for _, dict := range parsed.Dict.Array.Dicts {
		if len(dict.Strings) == 0 || dict.Strings[0] == "" {
			continue
		}
		suggestions = append(suggestions, Suggestion{Term: dict.Strings[0]})
	}
	return suggestions, nil
}
