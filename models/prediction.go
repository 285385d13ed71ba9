package models

// Actions understood by the predictor script. The script is invoked as
// <interpreter> <script-path> <action> <params-json> and answers with a
// single JSON line on stdout.
const (
	ActionCurrent  = "predict_current"
	ActionForecast = "predict_forecast"
	ActionNearby   = "predict_nearby"
)

// CurrentReading is the payload of a predict_current invocation.
type CurrentReading struct {
	AQI  int     `json:"aqi"`
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	CO   float64 `json:"co"`
}

// ForecastPoint is one entry of a predict_forecast payload.
type ForecastPoint struct {
	Time string `json:"time"`
	AQI  int    `json:"aqi"`
}

// NearbyStationReading is one entry of a predict_nearby payload.
type NearbyStationReading struct {
	Name     string `json:"name"`
	AQI      int    `json:"aqi"`
	Distance string `json:"distance"`
}

// CurrentResponse is the API response for GET /api/current
type CurrentResponse struct {
	Location string  `json:"location"`
	AQI      int     `json:"aqi"`
	Category string  `json:"category"`
	PM25     float64 `json:"pm25"`
	PM10     float64 `json:"pm10"`
	NO2      float64 `json:"no2"`
	SO2      float64 `json:"so2"`
	CO       float64 `json:"co"`
}

// ForecastEntry is a forecast point decorated with its AQI category
type ForecastEntry struct {
	Time     string `json:"time"`
	AQI      int    `json:"aqi"`
	Category string `json:"category"`
}

// ForecastResponse is the API response for GET /api/forecast
type ForecastResponse struct {
	Location string          `json:"location"`
	Days     int             `json:"days"`
	Forecast []ForecastEntry `json:"forecast"`
}

// NearbyStation is a nearby reading decorated with its AQI category
type NearbyStation struct {
	Name     string `json:"name"`
	AQI      int    `json:"aqi"`
	Category string `json:"category"`
	Distance string `json:"distance"`
}

// NearbyResponse is the API response for GET /api/nearby
type NearbyResponse struct {
	Location string          `json:"location"`
	Radius   int             `json:"radius"`
	Stations []NearbyStation `json:"stations"`
}
