package appstore

import (
	"bytes"
	"encoding/json"
)

// Decode targets for the upstream response shapes. Every field is
// optional: the feeds routinely omit, rename, or reshape fields, and
// tolerating that is the whole point of this layer. Stricter rules
// (required ids, ranges) belong to the orchestrators.

// decodeJSON wraps decode failures in a *ValidationError naming the
// endpoint; extra upstream fields pass through silently, a wrong type
// on a declared field fails.
func decodeJSON(endpoint string, body string, out any) error {
	err := json.Unmarshal([]byte(body), out)
	if err != nil {
		return &ValidationError{Endpoint: endpoint, Err: err}
	}
	return nil
}

// oneOrMany absorbs the upstream XML-to-JSON conversion quirk where a
// single child element collapses into a bare object instead of a
// one-element list. null and absent both decode to an empty list, a
// scalar to a singleton, a list to itself.
type oneOrMany[T any] []T

func (l *oneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*l = many
		return nil
	}
	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = []T{one}
	return nil
}

type lookupResponse struct {
	ResultCount int         `json:"resultCount"`
	Results     []lookupApp `json:"results"`
}

type lookupApp struct {
	WrapperType                        string   `json:"wrapperType"`
	Kind                               string   `json:"kind"`
	TrackID                            int64    `json:"trackId"`
	BundleID                           string   `json:"bundleId"`
	TrackName                          string   `json:"trackName"`
	TrackViewURL                       string   `json:"trackViewUrl"`
	Description                        string   `json:"description"`
	ArtworkURL512                      string   `json:"artworkUrl512"`
	ArtworkURL100                      string   `json:"artworkUrl100"`
	Genres                             []string `json:"genres"`
	GenreIDs                           []string `json:"genreIds"`
	PrimaryGenreName                   string   `json:"primaryGenreName"`
	PrimaryGenreID                     int64    `json:"primaryGenreId"`
	ContentAdvisoryRating              string   `json:"contentAdvisoryRating"`
	LanguageCodesISO2A                 []string `json:"languageCodesISO2A"`
	FileSizeBytes                      string   `json:"fileSizeBytes"`
	MinimumOsVersion                   string   `json:"minimumOsVersion"`
	ReleaseDate                        string   `json:"releaseDate"`
	CurrentVersionReleaseDate          string   `json:"currentVersionReleaseDate"`
	ReleaseNotes                       string   `json:"releaseNotes"`
	Version                            string   `json:"version"`
	Price                              float64  `json:"price"`
	Currency                           string   `json:"currency"`
	ArtistID                           int64    `json:"artistId"`
	ArtistName                         string   `json:"artistName"`
	ArtistViewURL                      string   `json:"artistViewUrl"`
	SellerURL                          string   `json:"sellerUrl"`
	AverageUserRating                  float64  `json:"averageUserRating"`
	UserRatingCount                    int64    `json:"userRatingCount"`
	AverageUserRatingForCurrentVersion float64  `json:"averageUserRatingForCurrentVersion"`
	UserRatingCountForCurrentVersion   int64    `json:"userRatingCountForCurrentVersion"`
	ScreenshotURLs                     []string `json:"screenshotUrls"`
	IpadScreenshotURLs                 []string `json:"ipadScreenshotUrls"`
	AppletvScreenshotURLs              []string `json:"appletvScreenshotUrls"`
	SupportedDevices                   []string `json:"supportedDevices"`
}

type searchResponse struct {
	Bubbles []searchBubble `json:"bubbles"`
}

type searchBubble struct {
	Results []lookupApp `json:"results"`
}

type listFeed struct {
	Feed struct {
		Entry []listEntry `json:"entry"`
	} `json:"feed"`
}

type listEntry struct {
	ID struct {
		Attributes struct {
			IMID string `json:"im:id"`
		} `json:"attributes"`
	} `json:"id"`
}

type feedLabel struct {
	Label string `json:"label"`
}

type reviewsFeed struct {
	Feed struct {
		Entry oneOrMany[reviewEntry] `json:"entry"`
	} `json:"feed"`
}

type reviewEntry struct {
	Author struct {
		URI  feedLabel `json:"uri"`
		Name feedLabel `json:"name"`
	} `json:"author"`
	Version feedLabel `json:"im:version"`
	Rating  feedLabel `json:"im:rating"`
	Title   feedLabel `json:"title"`
	Content feedLabel `json:"content"`
	ID      feedLabel `json:"id"`
	Updated feedLabel `json:"updated"`
}

type ampPrivacyResponse struct {
	Data []struct {
		Attributes struct {
			PrivacyDetails *privacyDetailsPayload `json:"privacyDetails"`
		} `json:"attributes"`
	} `json:"data"`
}

type privacyDetailsPayload struct {
	ManagePrivacyChoicesURL string               `json:"managePrivacyChoicesUrl"`
	PrivacyPolicyURL        string               `json:"privacyPolicyUrl"`
	PrivacyPolicyText       string               `json:"privacyPolicyText"`
	PrivacyTypes            []privacyTypePayload `json:"privacyTypes"`
}

type privacyTypePayload struct {
	PrivacyType    string   `json:"privacyType"`
	Identifier     string   `json:"identifier"`
	Description    string   `json:"description"`
	DataCategories []string `json:"dataCategories"`
	Purposes       []string `json:"purposes"`
}

type ampVersionHistoryResponse struct {
	Data []struct {
		Attributes struct {
			PlatformAttributes struct {
				Ios struct {
					VersionHistory []versionEntry `json:"versionHistory"`
				} `json:"ios"`
			} `json:"platformAttributes"`
		} `json:"attributes"`
	} `json:"data"`
}

type versionEntry struct {
	VersionDisplay string `json:"versionDisplay"`
	ReleaseDate    string `json:"releaseDate"`
	ReleaseNotes   string `json:"releaseNotes"`
}
