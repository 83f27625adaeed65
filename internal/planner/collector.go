// README: Dialogue node; fills slots from the latest user turn and asks for what is missing.
package planner

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	fieldDestination = "destination"
	fieldDuration    = "duration"
	fieldBudget      = "budget"
	fieldNumPeople   = "num_people"
	fieldTravelStyle = "travel_style"
)

// Question precedence is fixed: the first missing field in this order is
// the one asked about next.
var fieldOrder = []string{
	fieldDestination,
	fieldDuration,
	fieldBudget,
	fieldNumPeople,
	fieldTravelStyle,
}

var fieldQuestions = map[string]string{
	fieldDestination: "어디로 여행을 가고 싶으세요? (예: 오사카, 도쿄, 방콕 등)",
	fieldDuration:    "몇 박 며칠로 여행을 계획하고 계세요?",
	fieldBudget:      "1인 기준 예산은 얼마 정도 생각하고 계세요? (예: 100만원)",
	fieldNumPeople:   "몇 분이서 여행하시나요?",
	fieldTravelStyle: "어떤 스타일의 여행을 원하세요? (관광/맛집/쇼핑/휴양 등)",
}

const greeting = "안녕하세요! 여행 계획을 도와드리겠습니다. 어디로 여행을 가고 싶으세요?"

// missingFields lists the unset slots in question order.
func missingFields(st *TripState) []string {
	var missing []string
	if st.Destination == "" {
		missing = append(missing, fieldDestination)
	}
	if st.Duration == 0 {
		missing = append(missing, fieldDuration)
	}
	if st.Budget == 0 {
		missing = append(missing, fieldBudget)
	}
	if st.NumPeople == 0 {
		missing = append(missing, fieldNumPeople)
	}
	if len(st.TravelStyle) == 0 {
		missing = append(missing, fieldTravelStyle)
	}
	return missing
}

func nextQuestion(missing []string) string {
	if len(missing) == 0 {
		return "정보 수집이 완료되었습니다! 최적의 여행 계획을 찾아볼게요."
	}
	if q, ok := fieldQuestions[missing[0]]; ok {
		return q
	}
	return "더 필요한 정보가 있으신가요?"
}

// collectInfo extracts slots from the most recent user message and either
// asks the next question or closes collection with a recap. It never
// mutates st; all changes go into the returned patch.
func (w *Workflow) collectInfo(ctx context.Context, st *TripState) Patch {
	if st.InfoCollected {
		return Patch{}
	}

	if len(st.Messages) == 0 {
		return Patch{Messages: []Message{{Role: RoleAssistant, Content: greeting}}}
	}

	lastUser := ""
	for i := len(st.Messages) - 1; i >= 0; i-- {
		if st.Messages[i].Role == RoleUser {
			lastUser = st.Messages[i].Content
			break
		}
	}
	if lastUser == "" {
		return Patch{Messages: []Message{{Role: RoleAssistant, Content: "어디로 여행을 가고 싶으세요?"}}}
	}

	var patch Patch
	if st.Destination == "" {
		patch.Destination = ExtractDestination(lastUser)
	}
	if st.Duration == 0 {
		if d := ExtractDuration(lastUser); d > 0 {
			if ok, _ := ValidateDuration(d); ok {
				patch.Duration = d
			}
		}
	}
	if st.Budget == 0 {
		if b := ExtractBudget(lastUser); b > 0 {
			if ok, _ := ValidateBudget(b); ok {
				patch.Budget = b
			}
		}
	}
	if st.NumPeople == 0 {
		if n := ExtractNumPeople(lastUser); n > 0 {
			if ok, _ := ValidateNumPeople(n); ok {
				patch.NumPeople = n
			}
		}
	}
	if len(st.TravelStyle) == 0 {
		patch.TravelStyle = ExtractTravelStyle(lastUser)
	}

	if w.ai != nil && !capturedAnySlot(patch) {
		w.consultFallbackExtractor(ctx, st, lastUser, &patch)
	}

	merged := st.Clone()
	merged.Apply(patch, w.now())
	missing := missingFields(merged)

	if len(missing) == 0 {
		patch.InfoCollected = true
		patch.CurrentStep = StepSearchingFlights
		recap := fmt.Sprintf(
			"완벽해요! %s %d박 %d일 여행을 %d명이서, 1인 예산 %s원으로 계획하시는군요. 여행 스타일은 %s이시네요! 지금 최적의 여행 계획을 찾고 있습니다...",
			merged.Destination, merged.Duration, merged.Duration+1, merged.NumPeople,
			formatComma(merged.Budget), strings.Join(merged.TravelStyle, ", "),
		)
		patch.Messages = []Message{{Role: RoleAssistant, Content: recap}}
		return patch
	}

	reply := nextQuestion(missing)
	if confirmation := confirmCaptured(patch); confirmation != "" {
		reply = confirmation + " - 좋아요! " + reply
	}
	patch.Messages = []Message{{Role: RoleAssistant, Content: reply}}

	w.log.Debug("slot collection progress",
		zap.String("session_id", st.SessionID),
		zap.Strings("missing", missing))
	return patch
}

// confirmCaptured echoes only the values captured this turn.
func confirmCaptured(p Patch) string {
	var parts []string
	if p.Destination != "" {
		parts = append(parts, p.Destination)
	}
	if p.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%d박", p.Duration))
	}
	if p.Budget > 0 {
		parts = append(parts, formatComma(p.Budget)+"원")
	}
	if p.NumPeople > 0 {
		parts = append(parts, fmt.Sprintf("%d명", p.NumPeople))
	}
	if len(p.TravelStyle) > 0 {
		parts = append(parts, strings.Join(p.TravelStyle, ", "))
	}
	return strings.Join(parts, ", ")
}

func capturedAnySlot(p Patch) bool {
	return p.Destination != "" || p.Duration > 0 || p.Budget > 0 ||
		p.NumPeople > 0 || len(p.TravelStyle) > 0
}

// consultFallbackExtractor lets the configured model take a pass when the
// rule tables matched nothing. Model output goes through the same
// validators as rule output; failures are logged and dropped.
func (w *Workflow) consultFallbackExtractor(ctx context.Context, st *TripState, lastUser string, patch *Patch) {
	known := map[string]string{
		"destination":  st.Destination,
		"duration":     fmt.Sprintf("%d", st.Duration),
		"budget":       fmt.Sprintf("%d", st.Budget),
		"num_people":   fmt.Sprintf("%d", st.NumPeople),
		"travel_style": strings.Join(st.TravelStyle, ", "),
	}
	res, err := w.ai.ExtractSlots(ctx, lastUser, known)
	if err != nil {
		w.log.Warn("fallback extraction failed", zap.Error(err))
		return
	}
	if st.Destination == "" && res.Destination != "" {
		patch.Destination = res.Destination
	}
	if st.Duration == 0 && res.Duration > 0 {
		if ok, _ := ValidateDuration(res.Duration); ok {
			patch.Duration = res.Duration
		}
	}
	if st.Budget == 0 && res.Budget > 0 {
		if ok, _ := ValidateBudget(res.Budget); ok {
			patch.Budget = res.Budget
		}
	}
	if st.NumPeople == 0 && res.NumPeople > 0 {
		if ok, _ := ValidateNumPeople(res.NumPeople); ok {
			patch.NumPeople = res.NumPeople
		}
	}
	if len(st.TravelStyle) == 0 && len(res.TravelStyle) > 0 {
		patch.TravelStyle = res.TravelStyle
	}
}
