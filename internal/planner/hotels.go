// README: Hotel search node; synthesizes three tiered stay offers.
package planner

import (
	"fmt"

	"go.uber.org/zap"
)

// Flat per-night surcharge for each guest beyond two.
const extraGuestFee = 20_000

// searchHotels generates the three hotel offers. Same re-entry contract
// as searchFlights: existing offers are never regenerated, and a missing
// destination records a non-fatal error while still advancing to planning.
func (w *Workflow) searchHotels(st *TripState) Patch {
	if !st.InfoCollected {
		return Patch{}
	}
	if len(st.HotelOptions) > 0 {
		return Patch{}
	}
	if st.Destination == "" {
		return Patch{
			Error:       "목적지 정보가 없습니다.",
			CurrentStep: StepPlanning,
			Messages: []Message{{
				Role:    RoleAssistant,
				Content: "숙박 정보를 가져오는 데 문제가 발생했습니다. 일정 계획으로 넘어갑니다...",
			}},
		}
	}

	options := make([]HotelOption, 0, len(Tiers))
	for _, tier := range Tiers {
		options = append(options, w.buildHotelOption(st.Destination, tier, st.Duration, st.NumPeople))
	}

	w.log.Info("hotel options generated",
		zap.String("session_id", st.SessionID),
		zap.String("destination", st.Destination),
		zap.Int("count", len(options)))

	return Patch{
		HotelOptions: options,
		CurrentStep:  StepPlanning,
		Messages: []Message{{
			Role: RoleAssistant,
			Content: fmt.Sprintf("🏨 %s 숙박 %d개 옵션을 찾았습니다! 이제 일정을 계획합니다...",
				st.Destination, len(options)),
		}},
	}
}

func (w *Workflow) buildHotelOption(destination string, tier Tier, nights, numPeople int) HotelOption {
	catalog, ok := hotelCatalog[destination]
	if !ok {
		catalog = defaultHotels
	}
	pool := catalog[tier]
	if len(pool) == 0 {
		pool = defaultHotels[tier]
	}
	hotel := pick(w.rng, pool)

	// -5% to +15% jitter around the base nightly rate.
	perNight := int(float64(hotel.BasePrice) * (0.95 + w.rng.Float64()*0.20))
	if numPeople > 2 {
		perNight += extraGuestFee * (numPeople - 2)
	}

	return HotelOption{
		Type:               tier,
		Name:               hotel.Name,
		PricePerNight:      perNight,
		TotalPrice:         perNight * nights,
		Location:           hotel.Location,
		Rating:             hotel.Rating,
		Amenities:          tierAmenities[tier],
		DistanceFromCenter: pick(w.rng, distancePools[tier]),
	}
}
