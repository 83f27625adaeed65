package planner

import (
	"strings"
	"testing"
)

func collectedState(destination string) *TripState {
	st := NewState("s1", testNow)
	st.Destination = destination
	st.Duration = 3
	st.Budget = 1_000_000
	st.NumPeople = 2
	st.TravelStyle = []string{"food", "shopping"}
	st.InfoCollected = true
	st.CurrentStep = StepSearchingFlights
	return st
}

func TestSearchFlightsGeneratesThreeTiers(t *testing.T) {
	w := newTestWorkflow(7)
	st := collectedState("Osaka")

	patch := w.searchFlights(st)
	if len(patch.FlightOptions) != 3 {
		t.Fatalf("got %d options, want 3", len(patch.FlightOptions))
	}
	for i, tier := range Tiers {
		if patch.FlightOptions[i].Type != tier {
			t.Fatalf("option %d tier = %s, want %s", i, patch.FlightOptions[i].Type, tier)
		}
	}
	if patch.CurrentStep != StepSearchingHotels {
		t.Fatalf("step = %s", patch.CurrentStep)
	}

	// Clock fixed at 2026-03-01: departure 30 days out, return after the
	// full stay (nights + 1).
	out := patch.FlightOptions[0].Outbound
	in := patch.FlightOptions[0].Inbound
	if out.Date != "2026-03-31" {
		t.Fatalf("outbound date = %s", out.Date)
	}
	if in.Date != "2026-04-04" {
		t.Fatalf("inbound date = %s", in.Date)
	}
}

func TestSearchFlightsTierPricesOrdered(t *testing.T) {
	// Base fares are spaced so the ±10% jitter can never reorder tiers.
	for seed := int64(0); seed < 100; seed++ {
		w := newTestWorkflow(seed)
		patch := w.searchFlights(collectedState("Osaka"))
		budget := patch.FlightOptions[0].Price
		standard := patch.FlightOptions[1].Price
		premium := patch.FlightOptions[2].Price
		if !(budget < standard && standard < premium) {
			t.Fatalf("seed %d: prices not ordered: %d %d %d", seed, budget, standard, premium)
		}
	}
}

func TestSearchFlightsSkipsWhenOffersExist(t *testing.T) {
	w := newTestWorkflow(7)
	st := collectedState("Osaka")
	st.FlightOptions = []FlightOption{{Type: TierBudget}}

	if patch := w.searchFlights(st); !patch.IsEmpty() {
		t.Fatalf("expected no-op, got %+v", patch)
	}
}

func TestSearchFlightsMissingDestination(t *testing.T) {
	w := newTestWorkflow(7)
	st := collectedState("")

	patch := w.searchFlights(st)
	if patch.Error == "" {
		t.Fatal("missing destination must record an error")
	}
	if len(patch.FlightOptions) != 0 {
		t.Fatal("no offers expected without a destination")
	}
	// The failure is non-fatal: the pipeline still advances.
	if patch.CurrentStep != StepSearchingHotels {
		t.Fatalf("step = %s", patch.CurrentStep)
	}
	if len(patch.Messages) != 1 {
		t.Fatalf("want one apology message, got %d", len(patch.Messages))
	}
}

func TestSearchFlightsUnknownCityFallsBack(t *testing.T) {
	w := newTestWorkflow(7)
	patch := w.searchFlights(collectedState("Atlantis"))

	// Unknown cities price off the fallback tables.
	price := patch.FlightOptions[1].Price
	base := flightBasePrices[defaultDestination][TierStandard]
	if price < base*9/10 || price > base*11/10 {
		t.Fatalf("fallback price %d outside band around %d", price, base)
	}
}

func TestSearchHotelsGeneratesThreeTiers(t *testing.T) {
	w := newTestWorkflow(7)
	st := collectedState("Osaka")

	patch := w.searchHotels(st)
	if len(patch.HotelOptions) != 3 {
		t.Fatalf("got %d options, want 3", len(patch.HotelOptions))
	}
	if patch.CurrentStep != StepPlanning {
		t.Fatalf("step = %s", patch.CurrentStep)
	}
	for _, h := range patch.HotelOptions {
		if h.TotalPrice != h.PricePerNight*st.Duration {
			t.Fatalf("%s: total %d != %d * %d nights", h.Name, h.TotalPrice, h.PricePerNight, st.Duration)
		}
		if len(h.Amenities) == 0 {
			t.Fatalf("%s: no amenities", h.Name)
		}
	}
}

func TestSearchHotelsTierPricesOrdered(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		w := newTestWorkflow(seed)
		patch := w.searchHotels(collectedState("Osaka"))
		budget := patch.HotelOptions[0].PricePerNight
		standard := patch.HotelOptions[1].PricePerNight
		premium := patch.HotelOptions[2].PricePerNight
		if !(budget < standard && standard < premium) {
			t.Fatalf("seed %d: rates not ordered: %d %d %d", seed, budget, standard, premium)
		}
	}
}

func TestSearchHotelsExtraGuestFee(t *testing.T) {
	small := collectedState("Osaka")
	small.NumPeople = 2
	large := collectedState("Osaka")
	large.NumPeople = 4

	// Same seed, same draws; the only difference is the party size.
	rateSmall := newTestWorkflow(3).searchHotels(small).HotelOptions[1].PricePerNight
	rateLarge := newTestWorkflow(3).searchHotels(large).HotelOptions[1].PricePerNight

	if rateLarge-rateSmall != extraGuestFee*2 {
		t.Fatalf("fee delta = %d, want %d", rateLarge-rateSmall, extraGuestFee*2)
	}
}

func TestPlanItineraryCoversWholeStay(t *testing.T) {
	w := newTestWorkflow(7)
	st := collectedState("Osaka")

	patch := w.planItinerary(st)
	if patch.CurrentStep != StepDone {
		t.Fatalf("step = %s", patch.CurrentStep)
	}
	// 3 nights means 4 calendar days.
	if len(patch.Itinerary) != 4 {
		t.Fatalf("got %d days, want 4", len(patch.Itinerary))
	}

	first := patch.Itinerary["day1"]
	if first.Date != "2026-03-31" {
		t.Fatalf("day1 date = %s", first.Date)
	}
	if !strings.Contains(first.Theme, "도착") {
		t.Fatalf("day1 theme = %q", first.Theme)
	}
	if first.Activities[0].Label != "인천공항 출발" {
		t.Fatalf("day1 starts with %q", first.Activities[0].Label)
	}

	last := patch.Itinerary["day4"]
	if last.Date != "2026-04-03" {
		t.Fatalf("day4 date = %s", last.Date)
	}
	if last.Theme != "마지막 쇼핑 & 귀국" {
		t.Fatalf("day4 theme = %q", last.Theme)
	}

	for day := 2; day < 4; day++ {
		plan := patch.Itinerary[dayKey(day)]
		if len(plan.Activities) == 0 {
			t.Fatalf("day%d has no activities", day)
		}
	}
}

func TestPlanItineraryUnknownCityFallsBack(t *testing.T) {
	w := newTestWorkflow(7)
	patch := w.planItinerary(collectedState("Atlantis"))
	if len(patch.Itinerary) != 4 {
		t.Fatalf("got %d days, want 4", len(patch.Itinerary))
	}
}

func TestGenerateResponseOncePerSession(t *testing.T) {
	w := newTestWorkflow(7)
	st := collectedState("Osaka")
	st.Apply(w.searchFlights(st), testNow)
	st.Apply(w.searchHotels(st), testNow)
	st.Apply(w.planItinerary(st), testNow)

	patch := w.generateResponse(st)
	if len(patch.Messages) != 1 {
		t.Fatalf("want one summary message, got %d", len(patch.Messages))
	}
	summary := patch.Messages[0].Content
	if !strings.HasPrefix(summary, summaryPrefix) {
		t.Fatalf("summary missing prefix: %q", summary[:20])
	}
	for _, want := range []string{"여행 정보", "항공권 옵션", "숙박 옵션", "일정", "예상 총 비용"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing section %q", want)
		}
	}

	st.Apply(patch, testNow)
	if again := w.generateResponse(st); !again.IsEmpty() {
		t.Fatal("summary must only be sent once")
	}
}

func TestBuildSummaryBudgetVerdict(t *testing.T) {
	st := collectedState("Osaka")
	st.FlightOptions = []FlightOption{{Type: TierStandard, Price: 350_000}}
	st.HotelOptions = []HotelOption{{Type: TierStandard, PricePerNight: 80_000, TotalPrice: 240_000}}

	// 2 people, 4 days: flights 700k + hotel 240k + food 400k +
	// transport 60k + activities 160k = 1,560,000 vs budget 2,000,000.
	summary := BuildSummary(st)
	if !strings.Contains(summary, "1,560,000") {
		t.Fatalf("total missing: %q", summary)
	}
	if !strings.Contains(summary, "440,000원 여유") {
		t.Fatalf("surplus verdict missing: %q", summary)
	}

	st.Budget = 500_000
	over := BuildSummary(st)
	if !strings.Contains(over, "560,000원 초과") {
		t.Fatalf("overrun verdict missing: %q", over)
	}
}
