// Package viewhelpers holds pure sizing rules for the viewer window so they
// can be tested without creating any UI.
package viewhelpers

// FitWindow scales figure pixel dimensions down to a window size that fits a
// typical desktop, preserving aspect ratio. Rules: fit within 1280x860, never
// smaller than 640x420.
func FitWindow(imgW, imgH int) (float32, float32) {
	const (
		maxW, maxH = 1280.0, 860.0
		minW, minH = 640.0, 420.0
	)
	w := float64(imgW)
	h := float64(imgH)
	if w <= 0 || h <= 0 {
		return minW, minH
	}
	scale := 1.0
	if s := maxW / w; s < scale {
		scale = s
	}
	if s := maxH / h; s < scale {
		scale = s
	}
	w *= scale
	h *= scale
	if w < minW {
		w = minW
	}
	if h < minH {
		h = minH
	}
	return float32(w), float32(h)
}
