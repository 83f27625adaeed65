// README: Static destination catalogs (prices, airlines, hotels, spots); pure data, no logic.
package planner

// defaultDestination backs every lookup for cities missing from a table.
const defaultDestination = "Osaka"

var airportCodes = map[string]string{
	"Osaka":     "KIX",
	"Tokyo":     "NRT",
	"Kyoto":     "KIX",
	"Bangkok":   "BKK",
	"Paris":     "CDG",
	"London":    "LHR",
	"New York":  "JFK",
	"Hawaii":    "HNL",
	"Guam":      "GUM",
	"Singapore": "SIN",
	"Hong Kong": "HKG",
	"Jeju":      "CJU",
	"Da Nang":   "DAD",
	"Bali":      "DPS",
	"Cebu":      "CEB",
}

// AirportCode returns the IATA code for a city; unknown cities fall back
// to the departure airport.
func AirportCode(city string) string {
	if code, ok := airportCodes[city]; ok {
		return code
	}
	return "ICN"
}

// One-way flight minutes per destination.
var flightMinutes = map[string]int{
	"Osaka":     120,
	"Tokyo":     150,
	"Kyoto":     120,
	"Bangkok":   330,
	"Paris":     720,
	"London":    690,
	"New York":  840,
	"Hawaii":    540,
	"Guam":      240,
	"Singapore": 390,
	"Hong Kong": 210,
	"Jeju":      65,
	"Da Nang":   270,
	"Bali":      420,
	"Cebu":      270,
}

// Round-trip base prices in won. Bands per tier do not overlap even after
// the ±10% jitter, so tier ordering holds for every sample.
var flightBasePrices = map[string]map[Tier]int{
	"Osaka":     {TierBudget: 250_000, TierStandard: 350_000, TierPremium: 550_000},
	"Tokyo":     {TierBudget: 280_000, TierStandard: 400_000, TierPremium: 600_000},
	"Kyoto":     {TierBudget: 250_000, TierStandard: 350_000, TierPremium: 550_000},
	"Bangkok":   {TierBudget: 300_000, TierStandard: 450_000, TierPremium: 700_000},
	"Paris":     {TierBudget: 800_000, TierStandard: 1_200_000, TierPremium: 2_500_000},
	"London":    {TierBudget: 750_000, TierStandard: 1_100_000, TierPremium: 2_300_000},
	"New York":  {TierBudget: 900_000, TierStandard: 1_400_000, TierPremium: 3_000_000},
	"Hawaii":    {TierBudget: 700_000, TierStandard: 1_000_000, TierPremium: 2_000_000},
	"Guam":      {TierBudget: 400_000, TierStandard: 550_000, TierPremium: 850_000},
	"Singapore": {TierBudget: 350_000, TierStandard: 500_000, TierPremium: 900_000},
	"Hong Kong": {TierBudget: 250_000, TierStandard: 380_000, TierPremium: 600_000},
	"Jeju":      {TierBudget: 80_000, TierStandard: 120_000, TierPremium: 200_000},
	"Da Nang":   {TierBudget: 280_000, TierStandard: 400_000, TierPremium: 650_000},
	"Bali":      {TierBudget: 450_000, TierStandard: 650_000, TierPremium: 1_100_000},
	"Cebu":      {TierBudget: 300_000, TierStandard: 420_000, TierPremium: 700_000},
}

var airlinePools = map[Tier][]string{
	TierBudget:   {"T'way Air", "Jin Air", "Jeju Air", "Air Seoul", "Eastar Jet"},
	TierStandard: {"Asiana Airlines", "Korean Air", "AirAsia", "Peach Aviation"},
	TierPremium:  {"Korean Air", "Asiana Airlines", "Singapore Airlines", "ANA", "JAL"},
}

// Departure clock-time pools. Budget skews to red-eye slots, premium to
// comfortable mid-day slots.
var outboundTimePools = map[Tier][]string{
	TierBudget:   {"06:00", "06:30", "07:00", "21:00", "22:00"},
	TierStandard: {"09:00", "10:00", "11:00", "14:00", "15:00"},
	TierPremium:  {"10:00", "11:00", "12:00"},
}

var inboundTimePools = map[Tier][]string{
	TierBudget:   {"08:00", "09:00", "22:00", "23:00"},
	TierStandard: {"10:00", "11:00", "15:00", "16:00"},
	TierPremium:  {"12:00", "13:00", "14:00"},
}

// Hotel is a catalog entry; BasePrice is per night in won.
type Hotel struct {
	Name      string
	Location  string
	Rating    float64
	BasePrice int
}

var hotelCatalog = map[string]map[Tier][]Hotel{
	"Osaka": {
		TierBudget: {
			{"Guesthouse Namba", "Namba", 4.2, 35_000},
			{"The Guest House Umeda", "Umeda", 4.0, 38_000},
			{"J-Hoppers Osaka Hostel", "Shinsaibashi", 4.1, 32_000},
		},
		TierStandard: {
			{"Hotel Namba Oriental", "Namba", 4.4, 75_000},
			{"Cross Hotel Osaka", "Shinsaibashi", 4.5, 85_000},
			{"Hotel Gracery Osaka Namba", "Namba", 4.3, 70_000},
		},
		TierPremium: {
			{"Hilton Osaka", "Umeda", 4.7, 180_000},
			{"The St. Regis Osaka", "Shinsaibashi", 4.8, 350_000},
			{"The Ritz-Carlton Osaka", "Umeda", 4.9, 400_000},
		},
	},
	"Tokyo": {
		TierBudget: {
			{"Sakura Hotel Ikebukuro", "Ikebukuro", 4.1, 45_000},
			{"Khaosan World Asakusa", "Asakusa", 4.0, 40_000},
			{"&And Hostel Shibuya", "Shibuya", 4.2, 50_000},
		},
		TierStandard: {
			{"Hotel Sunroute Shinjuku", "Shinjuku", 4.3, 90_000},
			{"Citadines Shinjuku Tokyo", "Shinjuku", 4.4, 100_000},
			{"Remm Plus Ginza", "Ginza", 4.5, 110_000},
		},
		TierPremium: {
			{"Park Hyatt Tokyo", "Shinjuku", 4.9, 450_000},
			{"Mandarin Oriental Tokyo", "Nihonbashi", 4.8, 400_000},
			{"Aman Tokyo", "Otemachi", 4.9, 600_000},
		},
	},
	"Bangkok": {
		TierBudget: {
			{"Lub d Bangkok Silom", "Silom", 4.3, 25_000},
			{"NapPark Hostel @ Khao San", "Khao San", 4.1, 20_000},
			{"Hotel Doors Bangkok", "Sathorn", 4.0, 28_000},
		},
		TierStandard: {
			{"Amari Watergate", "Pratunam", 4.4, 60_000},
			{"Novotel Bangkok Sukhumvit", "Sukhumvit", 4.3, 65_000},
			{"The Westin Grande Sukhumvit", "Sukhumvit", 4.5, 75_000},
		},
		TierPremium: {
			{"Mandarin Oriental Bangkok", "Chao Phraya", 4.9, 350_000},
			{"The Peninsula Bangkok", "Chao Phraya", 4.8, 300_000},
			{"Siam Kempinski Hotel", "Siam", 4.8, 280_000},
		},
	},
	"Jeju": {
		TierBudget: {
			{"Jeju Eco Hostel", "Jeju City", 4.0, 35_000},
			{"Airport Guesthouse", "Jeju City", 3.9, 30_000},
			{"Woljeongri Beach Guesthouse", "Woljeongri", 4.2, 40_000},
		},
		TierStandard: {
			{"Gravel Hotel Jeju", "Jeju City", 4.4, 80_000},
			{"Maison Glad Jeju", "Jungmun", 4.5, 90_000},
			{"Hotel Areumdeuri Jeju", "Seogwipo", 4.3, 75_000},
		},
		TierPremium: {
			{"Lotte Hotel Jeju", "Jungmun", 4.7, 200_000},
			{"Shilla Stay Jeju", "Jeju City", 4.6, 180_000},
			{"Hyatt Regency Jeju", "Jungmun", 4.8, 250_000},
		},
	},
}

// Generic single-entry fallback per tier for cities without a catalog.
var defaultHotels = map[Tier][]Hotel{
	TierBudget:   {{"City Guesthouse", "시내", 4.0, 40_000}},
	TierStandard: {{"City Hotel", "시내", 4.4, 80_000}},
	TierPremium:  {{"Grand Hotel", "시내", 4.7, 200_000}},
}

var tierAmenities = map[Tier][]string{
	TierBudget:   {"WiFi", "공용 주방", "라운지"},
	TierStandard: {"WiFi", "조식", "피트니스", "세탁", "룸서비스"},
	TierPremium:  {"WiFi", "조식", "피트니스", "스파", "수영장", "발레파킹", "컨시어지"},
}

var distancePools = map[Tier][]string{
	TierBudget:   {"0.8km", "1.0km", "1.2km", "1.5km"},
	TierStandard: {"0.3km", "0.5km", "0.7km"},
	TierPremium:  {"0.1km", "0.2km", "0.3km"},
}

const (
	categorySightseeing = "sightseeing"
	categoryFood        = "food"
	categoryShopping    = "shopping"
)

// Spot is a point of interest; Stay is the suggested visit length.
type Spot struct {
	Name        string
	Stay        string
	Description string
}

var spotCatalog = map[string]map[string][]Spot{
	"Osaka": {
		categorySightseeing: {
			{"오사카성", "2시간", "일본 3대 명성 중 하나, 역사적인 성곽"},
			{"도톤보리", "2시간", "오사카의 상징적인 번화가, 글리코 사인"},
			{"신사이바시", "2시간", "쇼핑과 먹거리의 천국"},
			{"유니버셜 스튜디오 재팬", "8시간", "해리포터, 슈퍼 닌텐도 월드"},
			{"텐노지 동물원", "3시간", "일본에서 가장 오래된 동물원 중 하나"},
			{"아베노 하루카스", "1시간", "일본에서 가장 높은 빌딩, 전망대"},
			{"구로몬 시장", "2시간", "오사카의 부엌, 신선한 해산물"},
		},
		categoryFood: {
			{"타코야키 맛집", "1시간", "문어가 들어간 오사카 명물"},
			{"오코노미야키 맛집", "1시간", "철판에 구운 일본식 전"},
			{"쿠시카츠 맛집", "1시간", "꼬치 튀김, 난바 소스에 찍어 먹는"},
			{"라멘 이치란", "1시간", "개인 칸막이에서 즐기는 돈코츠 라멘"},
			{"카이센동 (해산물 덮밥)", "1시간", "신선한 회 덮밥"},
		},
		categoryShopping: {
			{"신사이바시 쇼핑", "3시간", "패션, 잡화, 드럭스토어"},
			{"돈키호테", "2시간", "디스카운트 스토어, 다양한 상품"},
			{"난바 파크스", "2시간", "대형 쇼핑몰, 루프탑 가든"},
		},
	},
	"Tokyo": {
		categorySightseeing: {
			{"센소지", "2시간", "도쿄에서 가장 오래된 절, 아사쿠사"},
			{"도쿄 스카이트리", "2시간", "634m 높이의 전망대"},
			{"시부야 스크램블 교차로", "1시간", "세계에서 가장 바쁜 교차로"},
			{"메이지 신궁", "2시간", "도심 속 힐링 공간, 하라주쿠"},
			{"도쿄타워", "1.5시간", "도쿄의 상징, 야경 명소"},
			{"우에노 공원", "3시간", "박물관, 동물원, 벚꽃 명소"},
			{"츠키지 시장", "2시간", "신선한 해산물과 먹거리"},
		},
		categoryFood: {
			{"스시 오마카세", "1.5시간", "셰프에게 맡기는 초밥 코스"},
			{"라멘 요코초", "1시간", "다양한 라멘을 한 곳에서"},
			{"규카츠", "1시간", "소고기 커틀릿"},
			{"몬자야키", "1시간", "도쿄식 철판 요리"},
			{"야키토리 골목", "1.5시간", "꼬치구이와 사케"},
		},
		categoryShopping: {
			{"하라주쿠 타케시타 거리", "2시간", "트렌디한 패션의 중심"},
			{"긴자 쇼핑", "3시간", "고급 브랜드 쇼핑가"},
			{"아키하바라", "3시간", "전자제품, 애니메이션, 게임"},
		},
	},
	"Bangkok": {
		categorySightseeing: {
			{"왓 프라깨우 (에메랄드 사원)", "2시간", "태국에서 가장 신성한 사원"},
			{"왕궁", "2시간", "화려한 태국 건축의 정수"},
			{"왓 아룬", "1.5시간", "새벽 사원, 아름다운 일몰"},
			{"짜뚜짝 시장", "4시간", "세계 최대 규모의 주말 시장"},
			{"카오산 로드", "3시간", "배낭여행자의 성지"},
			{"짐 톰슨 하우스", "1.5시간", "태국 실크 왕의 저택"},
		},
		categoryFood: {
			{"팟타이", "1시간", "태국식 볶음 쌀국수"},
			{"똠얌꿍", "1시간", "새우 들어간 매콤한 수프"},
			{"망고 스티키 라이스", "0.5시간", "달콤한 태국 디저트"},
			{"길거리 음식 투어", "2시간", "다양한 로컬 음식 체험"},
			{"루프탑 바", "2시간", "방콕 야경과 칵테일"},
		},
		categoryShopping: {
			{"터미널 21", "3시간", "공항 테마 쇼핑몰"},
			{"씨암 파라곤", "3시간", "럭셔리 쇼핑몰"},
			{"아시아티크", "3시간", "강변 야시장"},
		},
	},
	"Jeju": {
		categorySightseeing: {
			{"성산일출봉", "2시간", "유네스코 세계자연유산"},
			{"한라산", "6시간", "대한민국 최고봉 등반"},
			{"만장굴", "1시간", "세계 최장의 용암동굴"},
			{"우도", "4시간", "아름다운 섬 안의 섬"},
			{"주상절리대", "1시간", "기둥 모양의 절벽"},
			{"협재해변", "2시간", "에메랄드빛 해변"},
		},
		categoryFood: {
			{"흑돼지 구이", "1.5시간", "제주 대표 먹거리"},
			{"해물뚝배기", "1시간", "신선한 해산물 요리"},
			{"고기국수", "1시간", "제주 소울푸드"},
			{"빙떡", "0.5시간", "메밀전에 무채 싸먹는"},
			{"카페 투어", "2시간", "제주 감성 카페"},
		},
		categoryShopping: {
			{"동문시장", "2시간", "제주 전통시장, 야시장"},
			{"애월 카페거리", "2시간", "카페와 소품샵"},
		},
	},
}

var defaultSpots = map[string][]Spot{
	categorySightseeing: {
		{"시내 관광", "2시간", "주요 명소 둘러보기"},
		{"전망대", "1시간", "도시 전경 감상"},
	},
	categoryFood: {
		{"현지 맛집", "1시간", "현지 대표 음식"},
		{"카페", "1시간", "휴식과 커피"},
	},
	categoryShopping: {
		{"쇼핑몰", "2시간", "쇼핑과 기념품"},
	},
}

// styleCategory maps a travel style tag to the spot category it pulls from.
var styleCategory = map[string]string{
	"sightseeing": categorySightseeing,
	"food":        categoryFood,
	"shopping":    categoryShopping,
	"relaxation":  categorySightseeing,
	"activity":    categorySightseeing,
	"culture":     categorySightseeing,
	"nature":      categorySightseeing,
	"history":     categorySightseeing,
}
