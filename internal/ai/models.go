package ai

// ExtractionResult captures the structured output from the model.
// Zero values mean the slot was not found in the message.
type ExtractionResult struct {
	// Destination is the canonical city name, if one was mentioned.
	Destination string `json:"destination,omitempty"`

	// Duration is the trip length in nights.
	Duration int `json:"duration,omitempty"`

	// Budget is the per-person budget in won.
	Budget int `json:"budget,omitempty"`

	// NumPeople is the party size.
	NumPeople int `json:"num_people,omitempty"`

	// TravelStyle lists the style tags implied by the message.
	TravelStyle []string `json:"travel_style,omitempty"`
}
