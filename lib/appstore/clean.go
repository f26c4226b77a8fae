package appstore

import "strconv"

// cleanApp projects a raw lookup record into the stable App shape.
// Total function: every output field gets a concrete default when the
// upstream one is missing, so it never fails and does no I/O.
func cleanApp(raw lookupApp) App {
	icon := raw.ArtworkURL512
	if icon == "" {
		icon = raw.ArtworkURL100
	}

	primaryGenreID := ""
	if raw.PrimaryGenreID != 0 {
		primaryGenreID = strconv.FormatInt(raw.PrimaryGenreID, 10)
	}

	contentRating := raw.ContentAdvisoryRating
	if contentRating == "" {
		contentRating = "4+"
	}

	size := raw.FileSizeBytes
	if size == "" {
		size = "0"
	}

	currency := raw.Currency
	if currency == "" {
		currency = "USD"
	}

	return App{
		ID:                    raw.TrackID,
		AppID:                 raw.BundleID,
		Title:                 raw.TrackName,
		URL:                   raw.TrackViewURL,
		Description:           raw.Description,
		Icon:                  icon,
		Genres:                emptyIfNil(raw.Genres),
		GenreIDs:              emptyIfNil(raw.GenreIDs),
		PrimaryGenre:          raw.PrimaryGenreName,
		PrimaryGenreID:        primaryGenreID,
		ContentRating:         contentRating,
		Languages:             emptyIfNil(raw.LanguageCodesISO2A),
		Size:                  size,
		RequiredOsVersion:     raw.MinimumOsVersion,
		Released:              raw.ReleaseDate,
		Updated:               raw.CurrentVersionReleaseDate,
		ReleaseNotes:          raw.ReleaseNotes,
		Version:               raw.Version,
		Price:                 raw.Price,
		Currency:              currency,
		Free:                  raw.Price == 0,
		DeveloperID:           raw.ArtistID,
		Developer:             raw.ArtistName,
		DeveloperURL:          raw.ArtistViewURL,
		DeveloperWebsite:      raw.SellerURL,
		Score:                 raw.AverageUserRating,
		Reviews:               raw.UserRatingCount,
		CurrentVersionScore:   raw.AverageUserRatingForCurrentVersion,
		CurrentVersionReviews: raw.UserRatingCountForCurrentVersion,
		Screenshots:           emptyIfNil(raw.ScreenshotURLs),
		IpadScreenshots:       emptyIfNil(raw.IpadScreenshotURLs),
		AppletvScreenshots:    emptyIfNil(raw.AppletvScreenshotURLs),
		SupportedDevices:      emptyIfNil(raw.SupportedDevices),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapReviewEntry(entry reviewEntry) Review {
	score, err := strconv.Atoi(entry.Rating.Label)
	if err != nil {
		score = 0
	}
	return Review{
		ID:       entry.ID.Label,
		UserName: entry.Author.Name.Label,
		UserURL:  entry.Author.URI.Label,
		Version:  entry.Version.Label,
		Score:    score,
		Title:    entry.Title.Label,
		Text:     entry.Content.Label,
		Updated:  entry.Updated.Label,
	}
}

func mapPrivacyDetails(payload *privacyDetailsPayload) PrivacyDetails {
	if payload == nil {
		return PrivacyDetails{}
	}
	out := PrivacyDetails{
		ManagePrivacyChoicesURL: payload.ManagePrivacyChoicesURL,
		PrivacyPolicyURL:        payload.PrivacyPolicyURL,
		PrivacyPolicyText:       payload.PrivacyPolicyText,
	}
	for _, t := range payload.PrivacyTypes {
		identifier := t.Identifier
		if identifier == "" {
			identifier = t.PrivacyType
		}
		out.PrivacyTypes = append(out.PrivacyTypes, PrivacyType{
			PrivacyType:    identifier,
			Name:           t.PrivacyType,
			Description:    t.Description,
			DataCategories: t.DataCategories,
			Purposes:       t.Purposes,
		})
	}
	return out
}

func mapVersionEntry(entry versionEntry) Version {
	return Version{
		VersionDisplay: entry.VersionDisplay,
		ReleaseDate:    entry.ReleaseDate,
		ReleaseNotes:   entry.ReleaseNotes,
	}
}
