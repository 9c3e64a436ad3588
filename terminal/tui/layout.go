package tui

// SplitH splits region into columns by ratios, ratios are normalized
func SplitH(r Region, ratios ...float64) []Region {
	widths := splitRatios(r.W, ratios)
	regions := make([]Region, len(widths))
	x := 0
	for i, w := range widths {
		regions[i] = r.Sub(x, 0, w, r.H)
		x += w
	}
	return regions
}

// SplitV splits region into rows by ratios, ratios are normalized
func SplitV(r Region, ratios ...float64) []Region {
	heights := splitRatios(r.H, ratios)
	regions := make([]Region, len(heights))
	y := 0
	for i, h := range heights {
		regions[i] = r.Sub(0, y, r.W, h)
		y += h
	}
	return regions
}

// splitRatios divides total cells by ratios, the last part gets the rounding remainder
func splitRatios(total int, ratios []float64) []int {
	if len(ratios) == 0 {
		return nil
	}
	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	if sum <= 0 {
		sum = 1
	}

	sizes := make([]int, len(ratios))
	remaining := max(total, 0)
	for i, ratio := range ratios {
		if i == len(ratios)-1 {
			sizes[i] = remaining
			break
		}
		n := min(int(float64(total)*ratio/sum+0.5), remaining)
		sizes[i] = max(n, 0)
		remaining -= sizes[i]
	}
	return sizes
}

// SplitVFixed splits with fixed top height, rest to bottom
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	topH = min(max(topH, 0), r.H)
	return r.Sub(0, 0, r.W, topH), r.Sub(0, topH, r.W, r.H-topH)
}
