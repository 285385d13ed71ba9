package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForAQI(t *testing.T) {
	tests := []struct {
		aqi  int
		want string
	}{
		{0, "Good"},
		{42, "Good"},
		{50, "Good"},
		{51, "Moderate"},
		{100, "Moderate"},
		{101, "Unhealthy for Sensitive Groups"},
		{150, "Unhealthy for Sensitive Groups"},
		{151, "Unhealthy"},
		{200, "Unhealthy"},
		{201, "Very Unhealthy"},
		{300, "Very Unhealthy"},
		{301, "Hazardous"},
		{500, "Hazardous"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryForAQI(tt.aqi), "aqi=%d", tt.aqi)
	}
}
