package models

// CategoryForAQI buckets an AQI value into its display category (US EPA
// breakpoints). The predictor only ever reports raw numbers; categories are
// applied at the API layer.
func CategoryForAQI(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}
