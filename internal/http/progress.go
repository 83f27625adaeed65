// README: Slot-collection progress reported alongside every chat response.
package http

import "tripmate/internal/planner"

const totalSlots = 5

type progress struct {
	Current    int    `json:"current"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Step       string `json:"step"`
	StepLabel  string `json:"step_label"`
}

var stepLabels = map[planner.Step]string{
	planner.StepCollecting:       "여행 정보 수집 중",
	planner.StepSearchingFlights: "항공권 검색 중",
	planner.StepSearchingHotels:  "호텔 검색 중",
	planner.StepPlanning:         "일정 계획 중",
	planner.StepDone:             "여행 계획 완성",
}

func progressOf(st *planner.TripState) progress {
	n := st.CollectedCount()
	return progress{
		Current:    n,
		Total:      totalSlots,
		Percentage: n * 100 / totalSlots,
		Step:       string(st.CurrentStep),
		StepLabel:  stepLabels[st.CurrentStep],
	}
}
