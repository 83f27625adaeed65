// README: Rule-based slot extraction from free-text user turns (Korean + English patterns).
package planner

import (
	"regexp"
	"strconv"
	"strings"
)

// Alias tables are ordered slices, not maps: the first matching entry wins
// and that order must be stable across runs.

type cityAlias struct {
	keyword string
	city    string
}

var cityAliases = []cityAlias{
	{"오사카", "Osaka"},
	{"osaka", "Osaka"},
	{"도쿄", "Tokyo"},
	{"tokyo", "Tokyo"},
	{"교토", "Kyoto"},
	{"kyoto", "Kyoto"},
	{"방콕", "Bangkok"},
	{"bangkok", "Bangkok"},
	{"파리", "Paris"},
	{"paris", "Paris"},
	{"런던", "London"},
	{"london", "London"},
	{"뉴욕", "New York"},
	{"new york", "New York"},
	{"하와이", "Hawaii"},
	{"hawaii", "Hawaii"},
	{"괌", "Guam"},
	{"guam", "Guam"},
	{"싱가포르", "Singapore"},
	{"singapore", "Singapore"},
	{"홍콩", "Hong Kong"},
	{"hongkong", "Hong Kong"},
	{"제주", "Jeju"},
	{"jeju", "Jeju"},
	{"다낭", "Da Nang"},
	{"danang", "Da Nang"},
	{"발리", "Bali"},
	{"bali", "Bali"},
	{"세부", "Cebu"},
	{"cebu", "Cebu"},
}

var (
	reNights = regexp.MustCompile(`(\d+)\s*(?:박|nights?)`)
	reDays   = regexp.MustCompile(`(\d+)\s*(?:일|days?)`)

	reBudgetMan  = regexp.MustCompile(`(\d+)\s*만\s*원?`)
	reBudgetWon  = regexp.MustCompile(`(\d{4,})\s*원?`)
	rePeopleNum  = regexp.MustCompile(`(\d+)\s*(?:명|인|people|persons?)`)
	reDigitComma = regexp.MustCompile(`(\d),(\d{3})`)
)

// spelled-out budget magnitudes, checked in order ("백만" before longer
// compounds would shadow them, matching the reference vocabulary order).
var budgetWords = []struct {
	word  string
	value int
}{
	{"백만", 1_000_000},
	{"이백만", 2_000_000},
	{"삼백만", 3_000_000},
	{"오십만", 500_000},
	{"million", 1_000_000},
}

var partyWords = []struct {
	word  string
	count int
}{
	{"혼자", 1},
	{"alone", 1},
	{"solo", 1},
	{"둘", 2},
	{"커플", 2},
	{"couple", 2},
	{"셋", 3},
	{"trio", 3},
	{"넷", 4},
	{"가족", 4},
	{"family", 4},
}

// Canonical travel style tags and the keywords that map to them.
var styleKeywords = []struct {
	keyword string
	tag     string
}{
	{"관광", "sightseeing"},
	{"sightseeing", "sightseeing"},
	{"맛집", "food"},
	{"food", "food"},
	{"쇼핑", "shopping"},
	{"shopping", "shopping"},
	{"휴양", "relaxation"},
	{"relaxation", "relaxation"},
	{"액티비티", "activity"},
	{"activity", "activity"},
	{"문화", "culture"},
	{"culture", "culture"},
	{"자연", "nature"},
	{"nature", "nature"},
	{"역사", "history"},
	{"history", "history"},
}

// Synonym pass: looser wording that implies a tag without naming it.
var styleSynonyms = []struct {
	keyword string
	tag     string
}{
	{"먹방", "food"},
	{"음식", "food"},
	{"맛있는", "food"},
	{"delicious", "food"},
	{"eat", "food"},
	{"구경", "sightseeing"},
	{"명소", "sightseeing"},
	{"landmark", "sightseeing"},
	{"쉬", "relaxation"},
	{"휴식", "relaxation"},
	{"rest", "relaxation"},
	{"relax", "relaxation"},
}

// ExtractDestination returns the canonical city for the first alias found
// in the text, or "" when no known city is mentioned.
func ExtractDestination(text string) string {
	lower := strings.ToLower(text)
	for _, a := range cityAliases {
		if strings.Contains(lower, a.keyword) {
			return a.city
		}
	}
	return ""
}

// ExtractDuration returns the trip length in nights, or 0 when absent.
// A bare day count converts as nights = max(1, days-1).
func ExtractDuration(text string) int {
	lower := strings.ToLower(text)
	if m := reNights.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := reDays.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n-1 < 1 {
			return 1
		}
		return n - 1
	}
	return 0
}

// ExtractBudget returns the per-person budget in won, or 0 when absent.
// Cascade: "N만원" notation, then a bare number of at least four digits,
// then spelled-out magnitudes.
func ExtractBudget(text string) int {
	normalized := normalizeDigits(strings.ToLower(text))
	if m := reBudgetMan.FindStringSubmatch(normalized); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n * 10_000
	}
	if m := reBudgetWon.FindStringSubmatch(normalized); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	for _, w := range budgetWords {
		if strings.Contains(normalized, w.word) {
			return w.value
		}
	}
	return 0
}

// ExtractNumPeople returns the party size, or 0 when absent.
func ExtractNumPeople(text string) int {
	lower := strings.ToLower(text)
	if m := rePeopleNum.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	for _, w := range partyWords {
		if strings.Contains(lower, w.word) {
			return w.count
		}
	}
	return 0
}

// ExtractTravelStyle returns the matched style tags in match order, or nil
// when none are found. Synonym-derived tags are appended only when the
// direct pass did not already produce them.
func ExtractTravelStyle(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, s := range styleKeywords {
		if strings.Contains(lower, s.keyword) && !containsString(found, s.tag) {
			found = append(found, s.tag)
		}
	}
	for _, s := range styleSynonyms {
		if strings.Contains(lower, s.keyword) && !containsString(found, s.tag) {
			found = append(found, s.tag)
		}
	}
	return found
}

// normalizeDigits strips thousands separators ("1,000,000" -> "1000000").
func normalizeDigits(text string) string {
	for {
		next := reDigitComma.ReplaceAllString(text, "$1$2")
		if next == text {
			return next
		}
		text = next
	}
}

func containsString(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
