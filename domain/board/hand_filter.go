package board

import (
	"log/slog"
	"sort"
)

// Thresholds separating genuine hand cards from the smaller "up-next"
// preview card rendered near the bottom-left of the tray.
const (
	minAreaRatio   = 0.6  // of the median candidate area
	maxCenterYDrif = 0.10 // of the region height, around the median center-y
	minCenterXFrac = 0.15 // of the region width; excludes the preview slot
)

// HandFilter statistically discriminates hand cards from the preview
// artifact when the detector reports more candidates than hand slots.
type HandFilter struct {
	logger *slog.Logger
}

// NewHandFilter returns a HandFilter. logger may be nil.
func NewHandFilter(logger *slog.Logger) *HandFilter {
	return &HandFilter{logger: logger}
}

// Filter returns the candidates believed to be genuine hand cards plus
// the ones it excluded. With HandSize or fewer candidates the input is
// returned unchanged. Kept order is unspecified; callers sort by
// center-x to assign slots.
func (f *HandFilter) Filter(cands []Record, regionW, regionH float64) (kept, dropped []Record) {
	if len(cands) <= HandSize {
		return cands, nil
	}

	areas := make([]float64, len(cands))
	ys := make([]float64, len(cands))
	for i, c := range cands {
		areas[i] = c.Area
		ys[i] = c.CenterY
	}
	medArea := median(areas)
	medY := median(ys)

	for _, c := range cands {
		drift := c.CenterY - medY
		if drift < 0 {
			drift = -drift
		}
		if c.Area >= minAreaRatio*medArea &&
			drift < maxCenterYDrif*regionH &&
			c.CenterX > minCenterXFrac*regionW {
			kept = append(kept, c)
		} else {
			dropped = append(dropped, c)
		}
	}
	if f.logger != nil && len(dropped) > 0 {
		f.logger.Debug("hand candidates filtered", "kept", len(kept), "dropped", len(dropped), "median_area", medArea)
	}

	if len(kept) > HandSize {
		sort.Slice(kept, func(i, j int) bool { return kept[i].Area > kept[j].Area })
		dropped = append(dropped, kept[HandSize:]...)
		kept = kept[:HandSize]
	}
	return kept, dropped
}

// median returns the middle value of xs (mean of the middle pair for
// even counts). xs is sorted in place.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sort.Float64s(xs)
	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}
	return (xs[mid-1] + xs[mid]) / 2
}
