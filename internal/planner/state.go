// README: Trip session state, step machine, and the patch type merged by callers.
package planner

import (
	"time"
)

// Step is the workflow position of a session. Steps only ever move forward.
type Step string

const (
	StepCollecting       Step = "collecting"
	StepSearchingFlights Step = "searching_flights"
	StepSearchingHotels  Step = "searching_hotels"
	StepPlanning         Step = "planning"
	StepDone             Step = "done"
)

var stepRank = map[Step]int{
	StepCollecting:       0,
	StepSearchingFlights: 1,
	StepSearchingHotels:  2,
	StepPlanning:         3,
	StepDone:             4,
}

// Tier is one of the three fixed service levels for flights and hotels.
type Tier string

const (
	TierBudget   Tier = "budget"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// Tiers in ascending price order.
var Tiers = []Tier{TierBudget, TierStandard, TierPremium}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FlightLeg is one direction of a round trip.
type FlightLeg struct {
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	FlightTime    string `json:"flight_time"`
	Date          string `json:"date"`
}

type FlightOption struct {
	Type     Tier      `json:"type"`
	Price    int       `json:"price"`
	Airline  string    `json:"airline"`
	Outbound FlightLeg `json:"outbound"`
	Inbound  FlightLeg `json:"inbound"`
}

type HotelOption struct {
	Type               Tier     `json:"type"`
	Name               string   `json:"name"`
	PricePerNight      int      `json:"price_per_night"`
	TotalPrice         int      `json:"total_price"`
	Location           string   `json:"location"`
	Rating             float64  `json:"rating"`
	Amenities          []string `json:"amenities"`
	DistanceFromCenter string   `json:"distance_from_center"`
}

type ActivityType string

const (
	ActivityTransport   ActivityType = "transport"
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityFood        ActivityType = "food"
	ActivityShopping    ActivityType = "shopping"
	ActivityRest        ActivityType = "rest"
)

type Activity struct {
	Time        string       `json:"time"`
	Label       string       `json:"activity"`
	Type        ActivityType `json:"type"`
	Location    string       `json:"location,omitempty"`
	Duration    string       `json:"duration,omitempty"`
	Description string       `json:"description,omitempty"`
}

type DayPlan struct {
	Date       string     `json:"date"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// TripState is the aggregate for one planning session. It is owned by the
// session store; the workflow receives a snapshot and returns a Patch.
type TripState struct {
	SessionID string `json:"session_id"`

	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Budget      int      `json:"budget"`
	NumPeople   int      `json:"num_people"`
	TravelStyle []string `json:"travel_style"`

	InfoCollected bool `json:"info_collected"`
	CurrentStep   Step `json:"current_step"`

	FlightOptions []FlightOption     `json:"flight_options"`
	HotelOptions  []HotelOption      `json:"hotel_options"`
	Itinerary     map[string]DayPlan `json:"itinerary"`

	Messages []Message `json:"messages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Error holds the last non-fatal failure; it never halts the pipeline.
	Error string `json:"error,omitempty"`
}

// NewState returns an empty session state. Zero values mean "unset".
func NewState(sessionID string, now time.Time) *TripState {
	return &TripState{
		SessionID:   sessionID,
		TravelStyle: []string{},
		CurrentStep: StepCollecting,
		Itinerary:   map[string]DayPlan{},
		Messages:    []Message{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone deep-copies the state so nodes can work on a private snapshot.
func (st *TripState) Clone() *TripState {
	cp := *st
	cp.TravelStyle = append([]string(nil), st.TravelStyle...)
	cp.FlightOptions = append([]FlightOption(nil), st.FlightOptions...)
	cp.HotelOptions = append([]HotelOption(nil), st.HotelOptions...)
	cp.Messages = append([]Message(nil), st.Messages...)
	cp.Itinerary = make(map[string]DayPlan, len(st.Itinerary))
	for k, v := range st.Itinerary {
		cp.Itinerary[k] = v
	}
	return &cp
}

// AppendUserMessage records an inbound user turn. Callers do this before
// invoking the workflow.
func (st *TripState) AppendUserMessage(content string, now time.Time) {
	st.Messages = append(st.Messages, Message{Role: RoleUser, Content: content})
	st.UpdatedAt = now
}

// Patch is a partial state update produced by one node (or a whole turn).
// Zero-valued fields are "no change"; Messages are appended, never replaced.
type Patch struct {
	Destination string
	Duration    int
	Budget      int
	NumPeople   int
	TravelStyle []string

	InfoCollected bool
	CurrentStep   Step

	FlightOptions []FlightOption
	HotelOptions  []HotelOption
	Itinerary     map[string]DayPlan

	Messages []Message
	Error    string
}

func (p Patch) IsEmpty() bool {
	return p.Destination == "" &&
		p.Duration == 0 &&
		p.Budget == 0 &&
		p.NumPeople == 0 &&
		len(p.TravelStyle) == 0 &&
		!p.InfoCollected &&
		p.CurrentStep == "" &&
		len(p.FlightOptions) == 0 &&
		len(p.HotelOptions) == 0 &&
		len(p.Itinerary) == 0 &&
		len(p.Messages) == 0 &&
		p.Error == ""
}

// merge folds a later node's patch into an accumulated turn patch.
func (p *Patch) merge(q Patch) {
	if q.Destination != "" {
		p.Destination = q.Destination
	}
	if q.Duration != 0 {
		p.Duration = q.Duration
	}
	if q.Budget != 0 {
		p.Budget = q.Budget
	}
	if q.NumPeople != 0 {
		p.NumPeople = q.NumPeople
	}
	if len(q.TravelStyle) != 0 {
		p.TravelStyle = q.TravelStyle
	}
	if q.InfoCollected {
		p.InfoCollected = true
	}
	if q.CurrentStep != "" {
		p.CurrentStep = q.CurrentStep
	}
	if len(q.FlightOptions) != 0 {
		p.FlightOptions = q.FlightOptions
	}
	if len(q.HotelOptions) != 0 {
		p.HotelOptions = q.HotelOptions
	}
	if len(q.Itinerary) != 0 {
		p.Itinerary = q.Itinerary
	}
	if len(q.Messages) != 0 {
		p.Messages = append(p.Messages, q.Messages...)
	}
	if q.Error != "" {
		p.Error = q.Error
	}
}

// Apply merges a patch into the state. The step only ever advances; an
// already-set step with a lower rank in the patch is ignored.
func (st *TripState) Apply(p Patch, now time.Time) {
	if p.IsEmpty() {
		return
	}
	if p.Destination != "" {
		st.Destination = p.Destination
	}
	if p.Duration != 0 {
		st.Duration = p.Duration
	}
	if p.Budget != 0 {
		st.Budget = p.Budget
	}
	if p.NumPeople != 0 {
		st.NumPeople = p.NumPeople
	}
	if len(p.TravelStyle) != 0 {
		st.TravelStyle = append([]string(nil), p.TravelStyle...)
	}
	if p.InfoCollected {
		st.InfoCollected = true
	}
	if p.CurrentStep != "" && stepRank[p.CurrentStep] > stepRank[st.CurrentStep] {
		st.CurrentStep = p.CurrentStep
	}
	if len(p.FlightOptions) != 0 && len(st.FlightOptions) == 0 {
		st.FlightOptions = p.FlightOptions
	}
	if len(p.HotelOptions) != 0 && len(st.HotelOptions) == 0 {
		st.HotelOptions = p.HotelOptions
	}
	if len(p.Itinerary) != 0 && len(st.Itinerary) == 0 {
		st.Itinerary = p.Itinerary
	}
	if len(p.Messages) != 0 {
		st.Messages = append(st.Messages, p.Messages...)
	}
	if p.Error != "" {
		st.Error = p.Error
	}
	st.UpdatedAt = now
}

// LastReply returns the most recent assistant message, if any.
func (st *TripState) LastReply() string {
	for i := len(st.Messages) - 1; i >= 0; i-- {
		if st.Messages[i].Role == RoleAssistant {
			return st.Messages[i].Content
		}
	}
	return ""
}

// CollectedCount reports how many of the five slots are set.
func (st *TripState) CollectedCount() int {
	n := 0
	if st.Destination != "" {
		n++
	}
	if st.Duration > 0 {
		n++
	}
	if st.Budget > 0 {
		n++
	}
	if st.NumPeople > 0 {
		n++
	}
	if len(st.TravelStyle) > 0 {
		n++
	}
	return n
}
