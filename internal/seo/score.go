package seo

const scoreScale = 1.25

// Normalize rescales a raw rule score onto 0-100.
func Normalize(raw float64) float64 {
	return max(0, min(100, raw*scoreScale))
}
