package utils_test

import (
	"testing"
	"time"

	"github.com/tyemirov/foldertree/internal/utils"
)

func TestFormatFileSize(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero", bytes: 0, expected: "0.0 B"},
		{name: "bytes", bytes: 512, expected: "512.0 B"},
		{name: "kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional_kilobytes", bytes: 1536, expected: "1.5 KB"},
		{name: "just_below_megabyte", bytes: 1023, expected: "1023.0 B"},
		{name: "megabytes", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
		{name: "gigabytes", bytes: 3 * 1024 * 1024 * 1024, expected: "3.0 GB"},
		{name: "terabytes_cap", bytes: 2048 * 1024 * 1024 * 1024 * 1024, expected: "2048.0 TB"},
		{name: "negative_clamped", bytes: -5, expected: "0.0 B"},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			if actual := utils.FormatFileSize(testCase.bytes); actual != testCase.expected {
				subTest.Fatalf("FormatFileSize(%d) = %q, expected %q", testCase.bytes, actual, testCase.expected)
			}
		})
	}
}

func TestFormatTimestamp(testingHandle *testing.T) {
	timestamp := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
	if actual := utils.FormatTimestamp(timestamp); actual != "2024-03-05 14:07:09" {
		testingHandle.Fatalf("unexpected timestamp %q", actual)
	}
	if actual := utils.FormatTimestamp(time.Time{}); actual != "Unknown" {
		testingHandle.Fatalf("expected Unknown for zero time, got %q", actual)
	}
}
