package domain

// WeatherSnapshot is an ephemeral reading from the weather provider.
type WeatherSnapshot struct {
	TemperatureCelsius float64 `json:"temperature_celsius"`
	Condition          string  `json:"condition"`
}
