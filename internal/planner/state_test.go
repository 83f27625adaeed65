package planner

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestApplyStepOnlyAdvances(t *testing.T) {
	st := NewState("s1", testNow)
	st.CurrentStep = StepPlanning

	st.Apply(Patch{CurrentStep: StepSearchingFlights}, testNow)
	if st.CurrentStep != StepPlanning {
		t.Fatalf("step moved backwards to %s", st.CurrentStep)
	}

	st.Apply(Patch{CurrentStep: StepDone}, testNow)
	if st.CurrentStep != StepDone {
		t.Fatalf("step did not advance, got %s", st.CurrentStep)
	}
}

func TestApplyNeverOverwritesOptions(t *testing.T) {
	st := NewState("s1", testNow)
	st.FlightOptions = []FlightOption{{Type: TierBudget, Airline: "Jin Air"}}

	st.Apply(Patch{FlightOptions: []FlightOption{{Type: TierPremium, Airline: "JAL"}}}, testNow)
	if len(st.FlightOptions) != 1 || st.FlightOptions[0].Airline != "Jin Air" {
		t.Fatalf("existing flight options replaced: %+v", st.FlightOptions)
	}
}

func TestApplyAppendsMessages(t *testing.T) {
	st := NewState("s1", testNow)
	st.AppendUserMessage("안녕하세요", testNow)
	st.Apply(Patch{Messages: []Message{{Role: RoleAssistant, Content: "반갑습니다"}}}, testNow)

	if len(st.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(st.Messages))
	}
	if st.Messages[1].Role != RoleAssistant {
		t.Fatalf("appended message role = %s", st.Messages[1].Role)
	}
}

func TestApplyEmptyPatchKeepsTimestamp(t *testing.T) {
	st := NewState("s1", testNow)
	later := testNow.Add(time.Hour)
	st.Apply(Patch{}, later)
	if !st.UpdatedAt.Equal(testNow) {
		t.Fatal("empty patch must not touch the state")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	st := NewState("s1", testNow)
	st.TravelStyle = []string{"food"}
	st.Itinerary["day1"] = DayPlan{Theme: "도착"}
	st.AppendUserMessage("오사카요", testNow)

	cp := st.Clone()
	cp.TravelStyle[0] = "shopping"
	cp.Itinerary["day2"] = DayPlan{Theme: "탐방"}
	cp.Messages = append(cp.Messages, Message{Role: RoleAssistant, Content: "x"})

	if st.TravelStyle[0] != "food" {
		t.Fatal("clone shares TravelStyle backing array")
	}
	if len(st.Itinerary) != 1 {
		t.Fatal("clone shares Itinerary map")
	}
	if len(st.Messages) != 1 {
		t.Fatal("clone shares Messages slice")
	}
}

func TestMergeAccumulatesMessages(t *testing.T) {
	var total Patch
	total.merge(Patch{Messages: []Message{{Role: RoleAssistant, Content: "a"}}})
	total.merge(Patch{Messages: []Message{{Role: RoleAssistant, Content: "b"}}, CurrentStep: StepSearchingHotels})

	if len(total.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(total.Messages))
	}
	if total.CurrentStep != StepSearchingHotels {
		t.Fatalf("step = %s", total.CurrentStep)
	}
}

func TestCollectedCount(t *testing.T) {
	st := NewState("s1", testNow)
	if st.CollectedCount() != 0 {
		t.Fatal("fresh state must report zero slots")
	}
	st.Destination = "Osaka"
	st.Duration = 3
	st.TravelStyle = []string{"food"}
	if got := st.CollectedCount(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}
