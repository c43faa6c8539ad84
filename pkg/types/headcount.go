package types

import "fmt"

// Headcount is a number of people (patients, residents, beds in use).
type Headcount int64

// Humanized returns a human-readable string with a decimal unit (K, M, B).
func (h Headcount) Humanized() string {
	v := float64(h)
	a := h
	if a < 0 {
		a = -a
	}
	switch {
	case a >= 1e9:
		return fmt.Sprintf("%.2f B", v/1e9)
	case a >= 1e6:
		return fmt.Sprintf("%.2f M", v/1e6)
	case a >= 1e3:
		return fmt.Sprintf("%.2f K", v/1e3)
	default:
		return fmt.Sprintf("%d", h)
	}
}
