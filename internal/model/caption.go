package model

// Style categorizes the caption being generated
type Style string

const (
	StyleBaity   Style = "baity"   // Flirty, attention-grabbing
	StyleOpinion Style = "opinion" // Reactive commentary on a local headline
	StyleEvent   Style = "event"   // Promoting a local concert or festival
)

// Styles lists all styles in rotation order
var Styles = []Style{StyleBaity, StyleOpinion, StyleEvent}

// CaptionRequest is the body of POST /generate
type CaptionRequest struct {
	Location    string `json:"location"`
	Number      int    `json:"number"`
	Description string `json:"description,omitempty"` // Optional persona hint
}

// CaptionResponse is the generated caption plus its style tag
type CaptionResponse struct {
	Caption     string `json:"caption"`
	CaptionType Style  `json:"caption_type"`
}

// Weather is the friendly-phrased current conditions for a location
type Weather struct {
	Condition string `json:"condition"`
	City      string `json:"city"`
	Region    string `json:"region"`
}

// Event describes an upcoming event pulled from the ticketing API.
// Date carries the raw ISO local date; DateLabel is what templates use.
type Event struct {
	Artist    string `json:"artist"`
	Venue     string `json:"venue"`
	City      string `json:"city"`
	Date      string `json:"date"`
	DateLabel string `json:"date_label,omitempty"`
	Name      string `json:"name"`
}

// Coordinates is a geocoded point for radius-filtered event search
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
