// README: Itinerary node; one day plan per calendar day from day-type templates.
package planner

import (
	"fmt"

	"go.uber.org/zap"
)

// planItinerary builds duration+1 day plans. Re-entry contract matches
// the search nodes; a missing destination records a non-fatal error and
// closes the pipeline at done.
func (w *Workflow) planItinerary(st *TripState) Patch {
	if !st.InfoCollected {
		return Patch{}
	}
	if len(st.Itinerary) > 0 {
		return Patch{}
	}
	if st.Destination == "" {
		return Patch{
			Error:       "목적지 정보가 없습니다.",
			CurrentStep: StepDone,
			Messages: []Message{{
				Role:    RoleAssistant,
				Content: "일정을 생성하는 데 문제가 발생했습니다.",
			}},
		}
	}

	itinerary := w.buildItinerary(st.Destination, st.Duration, st.TravelStyle)

	w.log.Info("itinerary generated",
		zap.String("session_id", st.SessionID),
		zap.String("destination", st.Destination),
		zap.Int("days", len(itinerary)))

	return Patch{
		Itinerary:   itinerary,
		CurrentStep: StepDone,
		Messages: []Message{{
			Role: RoleAssistant,
			Content: fmt.Sprintf("📅 %d박 %d일 일정이 완성되었습니다! 결과를 정리해드릴게요.",
				st.Duration, st.Duration+1),
		}},
	}
}

func (w *Workflow) buildItinerary(destination string, nights int, styles []string) map[string]DayPlan {
	start := w.defaultStartDate()
	totalDays := nights + 1
	spots := spotsForStyle(destination, styles)

	itinerary := make(map[string]DayPlan, totalDays)
	for day := 1; day <= totalDays; day++ {
		date := start.AddDate(0, 0, day-1).Format(dateLayout)
		var plan DayPlan
		switch {
		case day == 1:
			plan = w.firstDayPlan(destination, date, spots)
		case day == totalDays:
			plan = w.lastDayPlan(date, spots)
		default:
			plan = w.middleDayPlan(day, date, destination, spots, styles)
		}
		itinerary[dayKey(day)] = plan
	}
	return itinerary
}

func dayKey(day int) string {
	return fmt.Sprintf("day%d", day)
}

// spotsForStyle selects the spot categories implied by the requested
// styles. Sightseeing and food are always present so no day template
// comes up empty.
func spotsForStyle(destination string, styles []string) map[string][]Spot {
	catalog, ok := spotCatalog[destination]
	if !ok {
		catalog = defaultSpots
	}

	selected := map[string][]Spot{}
	for _, style := range styles {
		category, ok := styleCategory[style]
		if !ok {
			category = categorySightseeing
		}
		if pool, ok := catalog[category]; ok {
			selected[category] = pool
		}
	}
	if _, ok := selected[categorySightseeing]; !ok {
		if pool, ok := catalog[categorySightseeing]; ok {
			selected[categorySightseeing] = pool
		} else {
			selected[categorySightseeing] = defaultSpots[categorySightseeing]
		}
	}
	if _, ok := selected[categoryFood]; !ok {
		if pool, ok := catalog[categoryFood]; ok {
			selected[categoryFood] = pool
		} else {
			selected[categoryFood] = defaultSpots[categoryFood]
		}
	}
	return selected
}

func (w *Workflow) firstDayPlan(destination, date string, spots map[string][]Spot) DayPlan {
	activities := []Activity{
		{Time: "09:00", Label: "인천공항 출발", Type: ActivityTransport, Description: "출국 수속 및 탑승"},
		{Time: "12:00", Label: destination + " 도착", Type: ActivityTransport, Description: "입국 수속 및 숙소 이동"},
		{Time: "14:00", Label: "숙소 체크인", Type: ActivityRest, Duration: "1시간", Description: "짐 정리 및 휴식"},
	}

	if pool := spots[categorySightseeing]; len(pool) > 0 {
		spot := pick(w.rng, pool)
		activities = append(activities, Activity{
			Time: "15:00", Label: spot.Name, Type: ActivitySightseeing,
			Location: spot.Name, Duration: spot.Stay, Description: spot.Description,
		})
	}
	if pool := spots[categoryFood]; len(pool) > 0 {
		spot := pick(w.rng, pool)
		activities = append(activities, Activity{
			Time: "18:00", Label: "저녁 - " + spot.Name, Type: ActivityFood,
			Location: spot.Name, Duration: spot.Stay, Description: spot.Description,
		})
	}

	return DayPlan{
		Date:       date,
		Theme:      fmt.Sprintf("도착 & %s 첫 탐방", destination),
		Activities: activities,
	}
}

func (w *Workflow) lastDayPlan(date string, spots map[string][]Spot) DayPlan {
	var activities []Activity

	if pool := spots[categoryFood]; len(pool) > 0 {
		spot := pick(w.rng, pool)
		activities = append(activities, Activity{
			Time: "08:00", Label: "아침 식사 - " + spot.Name, Type: ActivityFood,
			Location: spot.Name, Duration: "1시간", Description: spot.Description,
		})
	}

	activities = append(activities, Activity{
		Time: "10:00", Label: "숙소 체크아웃", Type: ActivityRest, Duration: "30분", Description: "짐 챙기기",
	})

	if pool := spots[categoryShopping]; len(pool) > 0 {
		spot := pick(w.rng, pool)
		activities = append(activities, Activity{
			Time: "10:30", Label: "마지막 쇼핑 - " + spot.Name, Type: ActivityShopping,
			Location: spot.Name, Duration: "1시간", Description: spot.Description,
		})
	}

	activities = append(activities,
		Activity{Time: "12:00", Label: "공항 이동", Type: ActivityTransport, Description: "공항 버스 또는 택시"},
		Activity{Time: "15:00", Label: "인천공항 도착", Type: ActivityTransport, Description: "귀국 완료"},
	)

	return DayPlan{Date: date, Theme: "마지막 쇼핑 & 귀국", Activities: activities}
}

func (w *Workflow) middleDayPlan(day int, date, destination string, spots map[string][]Spot, styles []string) DayPlan {
	var activities []Activity

	foodPool := spots[categoryFood]
	if len(foodPool) > 0 {
		activities = append(activities, Activity{
			Time: "08:00", Label: "아침 식사", Type: ActivityFood,
			Duration: "1시간", Description: "호텔 조식 또는 현지 식당",
		})
	}

	// Two morning sights two hours apart, drawn from a fresh shuffle.
	sights := append([]Spot(nil), spots[categorySightseeing]...)
	w.rng.Shuffle(len(sights), func(i, j int) { sights[i], sights[j] = sights[j], sights[i] })
	for i, spot := range sights {
		if i >= 2 {
			break
		}
		activities = append(activities, Activity{
			Time:  fmt.Sprintf("%02d:00", 9+i*2),
			Label: spot.Name, Type: ActivitySightseeing,
			Location: spot.Name, Duration: spot.Stay, Description: spot.Description,
		})
	}

	if len(foodPool) > 0 {
		spot := pick(w.rng, foodPool)
		activities = append(activities, Activity{
			Time: "12:30", Label: "점심 - " + spot.Name, Type: ActivityFood,
			Location: spot.Name, Duration: spot.Stay, Description: spot.Description,
		})
	}

	// Afternoon branch: shopping style gets a shopping stop, everyone
	// else gets a third sight when one is left.
	if containsString(styles, "shopping") && len(spots[categoryShopping]) > 0 {
		spot := pick(w.rng, spots[categoryShopping])
		activities = append(activities, Activity{
			Time: "14:00", Label: spot.Name, Type: ActivityShopping,
			Location: spot.Name, Duration: spot.Stay, Description: spot.Description,
		})
	} else if len(sights) > 2 {
		spot := sights[2]
		activities = append(activities, Activity{
			Time: "14:00", Label: spot.Name, Type: ActivitySightseeing,
			Location: spot.Name, Duration: spot.Stay, Description: spot.Description,
		})
	}

	if len(foodPool) > 0 {
		spot := pick(w.rng, foodPool)
		activities = append(activities, Activity{
			Time: "18:30", Label: "저녁 - " + spot.Name, Type: ActivityFood,
			Location: spot.Name, Duration: spot.Stay, Description: spot.Description,
		})
	}

	if containsString(styles, "food") || containsString(styles, "shopping") {
		activities = append(activities, Activity{
			Time: "20:00", Label: "야경 감상 & 산책", Type: ActivitySightseeing,
			Duration: "1시간", Description: "도심 야경 즐기기",
		})
	}

	return DayPlan{
		Date:       date,
		Theme:      fmt.Sprintf("Day %d - %s 탐방", day, destination),
		Activities: activities,
	}
}
