// README: Flight search node; synthesizes three tiered round-trip offers.
package planner

import (
	"fmt"

	"go.uber.org/zap"
)

// searchFlights generates the three flight offers once slot collection is
// done. Guard clauses keep the node re-invocable: it skips when offers
// already exist, and a missing destination records a non-fatal error and
// still advances to hotel search.
func (w *Workflow) searchFlights(st *TripState) Patch {
	if !st.InfoCollected {
		return Patch{}
	}
	if len(st.FlightOptions) > 0 {
		return Patch{}
	}
	if st.Destination == "" {
		return Patch{
			Error:       "목적지 정보가 없습니다.",
			CurrentStep: StepSearchingHotels,
			Messages: []Message{{
				Role:    RoleAssistant,
				Content: "항공권 정보를 가져오는 데 문제가 발생했습니다. 숙박 검색으로 넘어갑니다...",
			}},
		}
	}

	depDate := w.defaultStartDate()
	retDate := depDate.AddDate(0, 0, st.Duration+1)

	options := make([]FlightOption, 0, len(Tiers))
	for _, tier := range Tiers {
		options = append(options, w.buildFlightOption(
			st.Destination, tier,
			depDate.Format(dateLayout), retDate.Format(dateLayout),
		))
	}

	w.log.Info("flight options generated",
		zap.String("session_id", st.SessionID),
		zap.String("destination", st.Destination),
		zap.Int("count", len(options)))

	return Patch{
		FlightOptions: options,
		CurrentStep:   StepSearchingHotels,
		Messages: []Message{{
			Role: RoleAssistant,
			Content: fmt.Sprintf("✈️ %s행 항공권 %d개 옵션을 찾았습니다! 이제 숙박을 검색합니다...",
				st.Destination, len(options)),
		}},
	}
}

func (w *Workflow) buildFlightOption(destination string, tier Tier, depDate, retDate string) FlightOption {
	prices, ok := flightBasePrices[destination]
	if !ok {
		prices = flightBasePrices[defaultDestination]
	}
	// ±10% jitter around the tier's base fare.
	price := int(float64(prices[tier]) * (0.9 + w.rng.Float64()*0.2))

	minutes, ok := flightMinutes[destination]
	if !ok {
		minutes = flightMinutes[defaultDestination]
	}

	outDep := pick(w.rng, outboundTimePools[tier])
	inDep := pick(w.rng, inboundTimePools[tier])

	return FlightOption{
		Type:    tier,
		Price:   price,
		Airline: pick(w.rng, airlinePools[tier]),
		Outbound: FlightLeg{
			DepartureTime: outDep,
			ArrivalTime:   addClock(outDep, minutes),
			FlightTime:    formatFlightTime(minutes),
			Date:          depDate,
		},
		Inbound: FlightLeg{
			DepartureTime: inDep,
			ArrivalTime:   addClock(inDep, minutes),
			FlightTime:    formatFlightTime(minutes),
			Date:          retDate,
		},
	}
}
