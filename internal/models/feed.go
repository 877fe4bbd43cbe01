package models

// FeedEntry is a normalized news-feed item ready for display.
// Published holds the formatted timestamp, or the feed's raw date
// string verbatim when it could not be parsed.
type FeedEntry struct {
	Title     string `json:"title"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
	Link      string `json:"link"`
}
