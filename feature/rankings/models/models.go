package models

// Player is one entry of the external ranking feed. The feed is read-only
// input: the syncer never produces or mutates players.
type Player struct {
	// Name is the player's display name.
	Name string `json:"name"`
	// Rank is the player's position, starting at 1.
	Rank int `json:"rank"`
	// Country is an optional alpha-3 country code (e.g. "FRA").
	Country string `json:"country,omitempty"`
}

// PageObject is the page payload sent to the store. Field names follow the
// schema of the target database and must not be renamed.
type PageObject struct {
	Icon       Icon       `json:"icon"`
	Properties Properties `json:"properties"`
	// Parent is attached only when the payload is built for insertion.
	Parent *Parent `json:"parent,omitempty"`
}

// Icon is the page icon, always an emoji derived from the rank.
type Icon struct {
	Emoji string `json:"emoji"`
}

// Parent identifies the database a new page is inserted into.
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// Properties holds the three page properties of a ranking page.
type Properties struct {
	PlayerName TitleProperty  `json:"Player's name"`
	Rank       NumberProperty `json:"Rank"`
	Date       DateProperty   `json:"Date"`
}

// TitleProperty is the rich-text title of the page.
type TitleProperty struct {
	Title []RichText `json:"title"`
}

// RichText is a single rich-text fragment.
type RichText struct {
	Type string      `json:"type"`
	Text TextContent `json:"text"`
}

// TextContent is the plain content of a rich-text fragment.
type TextContent struct {
	Content string `json:"content"`
}

// NumberProperty is a numeric page property.
type NumberProperty struct {
	Number int `json:"number"`
}

// DateProperty is a date page property.
type DateProperty struct {
	Date DateValue `json:"date"`
}

// DateValue is a date range with only the start bound set. End and TimeZone
// stay nil so they serialize as explicit nulls, which the store expects.
type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end"`
	TimeZone *string `json:"time_zone"`
}
