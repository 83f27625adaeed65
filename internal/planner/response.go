// README: Final response node; aggregates results into one markdown plan document.
package planner

import (
	"fmt"
	"strings"
)

// summaryPrefix marks the final plan document; its presence in the
// history is the re-entry guard for this node.
const summaryPrefix = "# 🎉 "

// Per-person per-day spend estimates used in the cost table (won).
const (
	foodPerDay     = 50_000
	transportFlat  = 30_000
	activityPerDay = 20_000
)

var tierEmojis = map[Tier]string{
	TierBudget:   "💰",
	TierStandard: "🎯",
	TierPremium:  "👑",
}

var tierLabels = map[Tier]string{
	TierBudget:   "저가형",
	TierStandard: "추천",
	TierPremium:  "프리미엄",
}

// generateResponse renders the aggregated plan once per session.
func (w *Workflow) generateResponse(st *TripState) Patch {
	if st.HasFinalSummary() {
		return Patch{}
	}
	return Patch{
		Messages: []Message{{Role: RoleAssistant, Content: BuildSummary(st)}},
	}
}

// HasFinalSummary reports whether the plan document was already sent.
func (st *TripState) HasFinalSummary() bool {
	for i := len(st.Messages) - 1; i >= 0; i-- {
		m := st.Messages[i]
		if m.Role == RoleAssistant && strings.HasPrefix(m.Content, summaryPrefix) {
			return true
		}
	}
	return false
}

// BuildSummary renders the full plan as a markdown document: header,
// recap, flight and hotel cards, itinerary, and a cost table against the
// per-person budget.
func BuildSummary(st *TripState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s%s %d박%d일 여행 계획\n\n", summaryPrefix, st.Destination, st.Duration, st.Duration+1)

	b.WriteString("## 📋 여행 정보\n")
	fmt.Fprintf(&b, "- **목적지**: %s\n", st.Destination)
	fmt.Fprintf(&b, "- **기간**: %d박 %d일\n", st.Duration, st.Duration+1)
	fmt.Fprintf(&b, "- **인원**: %d명\n", st.NumPeople)
	fmt.Fprintf(&b, "- **1인 예산**: %s원\n", formatComma(st.Budget))
	fmt.Fprintf(&b, "- **여행 스타일**: %s\n\n", strings.Join(st.TravelStyle, ", "))

	if len(st.FlightOptions) > 0 {
		b.WriteString("## ✈️ 항공권 옵션\n\n")
		for _, f := range st.FlightOptions {
			fmt.Fprintf(&b, "### %s %s (왕복 %s원)\n", tierEmojis[f.Type], tierLabels[f.Type], formatComma(f.Price))
			fmt.Fprintf(&b, "- **항공사**: %s\n", f.Airline)
			fmt.Fprintf(&b, "- **가는 편**: %s %s → %s (%s)\n",
				f.Outbound.Date, f.Outbound.DepartureTime, f.Outbound.ArrivalTime, f.Outbound.FlightTime)
			fmt.Fprintf(&b, "- **오는 편**: %s %s → %s (%s)\n\n",
				f.Inbound.Date, f.Inbound.DepartureTime, f.Inbound.ArrivalTime, f.Inbound.FlightTime)
		}
	}

	if len(st.HotelOptions) > 0 {
		b.WriteString("## 🏨 숙박 옵션\n\n")
		for _, h := range st.HotelOptions {
			fmt.Fprintf(&b, "### %s %s - %s\n", tierEmojis[h.Type], tierLabels[h.Type], h.Name)
			fmt.Fprintf(&b, "- **위치**: %s\n", h.Location)
			fmt.Fprintf(&b, "- **평점**: ⭐ %.1f/5.0\n", h.Rating)
			fmt.Fprintf(&b, "- **1박**: %s원 / **총**: %s원\n", formatComma(h.PricePerNight), formatComma(h.TotalPrice))
			fmt.Fprintf(&b, "- **편의시설**: %s\n\n", strings.Join(h.Amenities, ", "))
		}
	}

	if len(st.Itinerary) > 0 {
		b.WriteString("## 📅 일정\n\n")
		for day := 1; day <= len(st.Itinerary); day++ {
			plan, ok := st.Itinerary[dayKey(day)]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "### DAY%d (%s) - %s\n", day, plan.Date, plan.Theme)
			for _, a := range plan.Activities {
				fmt.Fprintf(&b, "- **%s** %s", a.Time, a.Label)
				if a.Description != "" {
					fmt.Fprintf(&b, " - %s", a.Description)
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## 💰 예상 총 비용\n\n")

	flight := pickTierOrFirst(st.FlightOptions)
	hotel := pickHotelTierOrFirst(st.HotelOptions)

	days := st.Duration + 1
	flightTotal := flight.Price * st.NumPeople
	hotelTotal := hotel.TotalPrice
	foodEstimate := foodPerDay * days * st.NumPeople
	transportEstimate := transportFlat * st.NumPeople
	activityEstimate := activityPerDay * days * st.NumPeople

	total := flightTotal + hotelTotal + foodEstimate + transportEstimate + activityEstimate
	budgetTotal := st.Budget * st.NumPeople
	remaining := budgetTotal - total

	b.WriteString("| 항목 | 금액 |\n")
	b.WriteString("|------|------|\n")
	fmt.Fprintf(&b, "| 항공권 (추천) | %s원 |\n", formatComma(flightTotal))
	fmt.Fprintf(&b, "| 숙박 (추천) | %s원 |\n", formatComma(hotelTotal))
	fmt.Fprintf(&b, "| 식비 (예상) | %s원 |\n", formatComma(foodEstimate))
	fmt.Fprintf(&b, "| 교통비 (예상) | %s원 |\n", formatComma(transportEstimate))
	fmt.Fprintf(&b, "| 관광/활동 (예상) | %s원 |\n", formatComma(activityEstimate))
	fmt.Fprintf(&b, "| **합계** | **%s원** |\n\n", formatComma(total))

	if remaining >= 0 {
		fmt.Fprintf(&b, "✅ 예산(%s원) 대비 **%s원 여유**가 있습니다!",
			formatComma(budgetTotal), formatComma(remaining))
	} else {
		fmt.Fprintf(&b, "⚠️ 예산(%s원)을 **%s원 초과**합니다. 저가 옵션을 고려해보세요.",
			formatComma(budgetTotal), formatComma(-remaining))
	}

	return b.String()
}

// pickTierOrFirst prefers the standard tier, then the first option, then
// a zero value so the cost table still renders after a failed search.
func pickTierOrFirst(options []FlightOption) FlightOption {
	for _, f := range options {
		if f.Type == TierStandard {
			return f
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return FlightOption{}
}

func pickHotelTierOrFirst(options []HotelOption) HotelOption {
	for _, h := range options {
		if h.Type == TierStandard {
			return h
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return HotelOption{}
}
