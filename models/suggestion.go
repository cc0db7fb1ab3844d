package models

// OutfitPair is one scored top/bottom pairing returned by the rulebase
// endpoint. Pairs are ephemeral: they are shown to the user and only
// persisted if the user saves one as an Outfit.
type OutfitPair struct {
	Top    Item    `json:"top"`
	Bottom Item    `json:"bottom"`
	Score  float64 `json:"score"`
}

// SuggestionContext is the caller-side input to an outfit suggestion
// request. ItemID, when set, restricts suggestions to pairs involving
// that item.
type SuggestionContext struct {
	ConsiderWeather bool
	UserOccasion    string
	Latitude        float64
	Longitude       float64
	ItemID          *int
	VoiceOccasion   string
}
