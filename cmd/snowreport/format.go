package main

import (
	"strconv"

	"parkjunwoo.com/snowreport/pkg/snow"
)

const missing = "-"

func formatInches(v *snow.Inches) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(float64(*v), 'f', 1, 64) + `"`
}

func formatDepth(v *int) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v) + `"`
}

// formatRatio는 open/total 형태로 출력합니다. 둘 다 없으면 "-"입니다.
func formatRatio(open, total *int) string {
	if open == nil && total == nil {
		return missing
	}
	o, t := "?", "?"
	if open != nil {
		o = strconv.Itoa(*open)
	}
	if total != nil {
		t = strconv.Itoa(*total)
	}
	return o + "/" + t
}
