package models

// WeatherReading is the client's view of current conditions at a
// coordinate. Known is false when the lookup failed; callers must treat
// an unknown reading as "weather unavailable", never as zero degrees.
type WeatherReading struct {
	Description string
	Icon        string
	FeelsLike   float64
	Known       bool
}
