package render

import "strconv"

// ARIA holds the accessibility attributes of the thumb element.
type ARIA struct {
	ID          string
	ValueMin    float64
	ValueMax    float64
	ValueNow    int
	ValueText   string
	Orientation string
	Label       string
	LabelledBy  string
}

// Attrs renders the attribute set as it would appear on the element. Empty
// optional attributes are omitted.
func (a ARIA) Attrs() map[string]string {
	out := map[string]string{
		"id":               a.ID,
		"role":             "slider",
		"tabindex":         "0",
		"aria-valuemin":    strconv.FormatFloat(a.ValueMin, 'f', -1, 64),
		"aria-valuemax":    strconv.FormatFloat(a.ValueMax, 'f', -1, 64),
		"aria-valuenow":    strconv.Itoa(a.ValueNow),
		"aria-orientation": a.Orientation,
	}
	if a.ValueText != "" {
		out["aria-valuetext"] = a.ValueText
	}
	if a.Label != "" {
		out["aria-label"] = a.Label
	}
	if a.LabelledBy != "" {
		out["aria-labelledby"] = a.LabelledBy
	}
	return out
}

// Spoken is what a screen reader announces for the current value.
func (a ARIA) Spoken() string {
	if a.ValueText != "" {
		return a.ValueText
	}
	return strconv.Itoa(a.ValueNow)
}
