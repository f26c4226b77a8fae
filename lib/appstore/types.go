package appstore

// App is the stable record every lookup-style operation resolves to.
// Every field has a deterministic default, so a caller never has to
// nil-check anything except Histogram.
type App struct {
	ID                    int64    `json:"id"`
	AppID                 string   `json:"appId"`
	Title                 string   `json:"title"`
	URL                   string   `json:"url"`
	Description           string   `json:"description"`
	Icon                  string   `json:"icon"`
	Genres                []string `json:"genres"`
	GenreIDs              []string `json:"genreIds"`
	PrimaryGenre          string   `json:"primaryGenre"`
	PrimaryGenreID        string   `json:"primaryGenreId"`
	ContentRating         string   `json:"contentRating"`
	Languages             []string `json:"languages"`
	Size                  string   `json:"size"`
	RequiredOsVersion     string   `json:"requiredOsVersion"`
	Released              string   `json:"released"`
	Updated               string   `json:"updated"`
	ReleaseNotes          string   `json:"releaseNotes"`
	Version               string   `json:"version"`
	Price                 float64  `json:"price"`
	Currency              string   `json:"currency"`
	Free                  bool     `json:"free"`
	DeveloperID           int64    `json:"developerId"`
	Developer             string   `json:"developer"`
	DeveloperURL          string   `json:"developerUrl"`
	DeveloperWebsite      string   `json:"developerWebsite,omitempty"`
	Score                 float64  `json:"score"`
	Reviews               int64    `json:"reviews"`
	CurrentVersionScore   float64  `json:"currentVersionScore"`
	CurrentVersionReviews int64    `json:"currentVersionReviews"`
	Screenshots           []string `json:"screenshots"`
	IpadScreenshots       []string `json:"ipadScreenshots"`
	AppletvScreenshots    []string `json:"appletvScreenshots"`
	SupportedDevices      []string `json:"supportedDevices"`

	// only populated when AppOptions.Ratings is set
	Histogram RatingHistogram `json:"histogram,omitempty"`
}

// RatingHistogram maps a star value (1 through 5) to the number of
// ratings with that value. All five keys are always present.
type RatingHistogram map[int]int64

func newHistogram() RatingHistogram {
	return RatingHistogram{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
}

type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	UserURL  string `json:"userUrl"`
	Version  string `json:"version"`
	Score    int    `json:"score"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	// submission timestamp exactly as the feed delivered it
	Updated string `json:"updated"`
}

type Version struct {
	VersionDisplay string `json:"versionDisplay"`
	ReleaseDate    string `json:"releaseDate"`
	ReleaseNotes   string `json:"releaseNotes,omitempty"`
}

type Suggestion struct {
	Term string `json:"term"`
}

// PrivacyDetails may legitimately be entirely empty: an app with no
// privacy disclosure is not an error.
type PrivacyDetails struct {
	ManagePrivacyChoicesURL string        `json:"managePrivacyChoicesUrl,omitempty"`
	PrivacyPolicyURL        string        `json:"privacyPolicyUrl,omitempty"`
	PrivacyPolicyText       string        `json:"privacyPolicyText,omitempty"`
	PrivacyTypes            []PrivacyType `json:"privacyTypes,omitempty"`
}

type PrivacyType struct {
	PrivacyType    string   `json:"privacyType"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	DataCategories []string `json:"dataCategories,omitempty"`
	Purposes       []string `json:"purposes,omitempty"`
}
