// Package vocab holds the closed vocabularies the AI prompt is constrained
// to and the report validation pass checks against: the brand allow-list and
// the two-level category taxonomy. Both are immutable for the lifetime of
// the process.
package vocab

// Brands is the closed brand allow-list, ending with the catch-all "OTHERS".
var Brands = []string{
	"ASK YOURSELF",
	"ACNE STUDIOS",
	"ALEXANDER MCQUEEN",
	"ALEXANDER WANG",
	"ALYX",
	"AMI",
	"AMIRI",
	"ARCTERYX",
	"AUDEMARS PIGUET",
	"BALENCIAGA",
	"BALMAIN",
	"BAPE",
	"BERLUTI",
	"BLANCPAIN",
	"BOTTEGA VENETA",
	"BREGUET",
	"BALLY",
	"BREITLING",
	"BRUNELLO CUCINELLI",
	"BULGARI",
	"BURBERRY",
	"CANADA GOOSE",
	"CARTIER",
	"CASABLANCA",
	"CELINE",
	"CHANEL",
	"CHAUMET",
	"CHLOE",
	"CHROME HEARTS",
	"COMME DES GARCONS",
	"CP COMPANY",
	"DELVAUX",
	"DRIES VAN NOTEN",
	"DIESEL",
	"DIOR",
	"DOLCE & GABBANA",
	"EMPORIO ARMANI",
	"FEAR OF GOD",
	"FENDI",
	"FERRAGAMO",
	"GALLERY DEPT",
	"GENTLE MONSTER",
	"GIVENCHY",
	"GOLDEN GOOSE",
	"GOYARD",
	"GUCCI",
	"HERMES",
	"HUBLOT",
	"ISABEL MARANT",
	"IAB STUDIO",
	"IWC",
	"JACQUEMUS",
	"JIL SANDER",
	"JUNJI",
	"JIMMY CHOO",
	"JORDAN",
	"JUNYA WATANABE",
	"KENZO",
	"LANVIN BLANC",
	"LANVIN",
	"LEMAIRE",
	"LOEWE",
	"LORO PIANA",
	"LOUBOUTIN",
	"LOUIS VUITTON",
	"MACKAGE",
	"MAISON MARGIELA",
	"MAISON MIHARA YASUHIRO",
	"MANOLO BLAHNIK",
	"MARNI",
	"MARTINE ROSE",
	"MAX MARA",
	"MAISON KITSUNE",
	"MIU MIU",
	"MONCLER",
	"MOOSE KNUCKLES",
	"NEW BALANCE",
	"NIKE",
	"OFF WHITE",
	"OMEGA",
	"PHILIPP PLEIN",
	"PANERAI",
	"PARAJUMPERS",
	"PALM ANGELS",
	"PALACE",
	"PATEK PHILIPPE",
	"PRADA",
	"PIAGET",
	"POLORALPHLAUREN",
	"RAY BAN",
	"RHUDE",
	"RICK OWENS",
	"RIMOWA",
	"ROGER VIVIER",
	"ROLEX",
	"SACAI",
	"SUPREME",
	"SAINT LAURENT",
	"SALOMON",
	"STUSSY",
	"STONE ISLAND",
	"TAG HEUER",
	"THE NORTH FACE",
	"THOM BROWNE",
	"TIFFANY & CO",
	"TOM FORD",
	"TUDOR",
	"UMA WANG",
	"VACHERON CONSTANTIN",
	"VALENTINO",
	"VETEMENTS",
	"VANCLEEF",
	"VERSACE",
	"WOOYOUNGMI",
	"YEEZY",
	"ZEGNA",
	"OTHERS",
}

// FirstCategories is the ordered list of first-level category keys.
var FirstCategories = []string{
	"상의", "아우터", "하의", "가방", "신발", "지갑", "시계", "패션잡화", "액세서리", "벨트",
}

// Categories maps each first-level category to its ordered second-level
// labels. "벨트" deliberately has none.
var Categories = map[string][]string{
	"상의":   {"반팔 티셔츠", "긴팔 티셔츠", "니트/가디건", "맨투맨", "후드", "원피스", "셔츠", "드레스", "슬리브리스", "셋업", "기타 상의"},
	"아우터":  {"집업", "자켓", "패딩", "레더", "코트", "기타 아우터"},
	"하의":   {"팬츠", "쇼츠", "트레이닝 팬츠", "데님", "스커트", "기타 하의"},
	"가방":   {"미니백", "백팩", "숄더백", "토트백", "크로스백", "클러치", "캐리어", "핸드백", "더플백", "버킷백", "기타 가방"},
	"신발":   {"스니커즈", "샌들/슬리퍼", "플랫", "로퍼", "더비/레이스업", "힐/펌프스", "부츠", "기타 신발"},
	"지갑":   {"반지갑", "카드지갑", "지퍼장지갑", "중/장지갑", "여권지갑", "WOC", "기타 지갑"},
	"시계":   {"메탈", "가죽", "우레탄"},
	"패션잡화": {"머플러/스카프", "아이웨어", "넥타이", "모자", "헤어액세서리", "기타 잡화"},
	"액세서리": {"반지", "목걸이", "팔찌", "귀걸이", "키링", "브로치", "기타 ACC"},
	"벨트":   {},
}

// IsBrand reports whether s is in the brand allow-list.
func IsBrand(s string) bool {
	for _, b := range Brands {
		if s == b {
			return true
		}
	}
	return false
}

// IsFirstCategory reports whether s is a first-level category key.
func IsFirstCategory(s string) bool {
	for _, c := range FirstCategories {
		if s == c {
			return true
		}
	}
	return false
}

// IsSecondCategory reports whether s appears anywhere in the flattened
// second-level list. Membership is not checked against a particular
// first-level category; the report validation pass relies on exactly this
// flattened behavior.
func IsSecondCategory(s string) bool {
	for _, first := range FirstCategories {
		for _, c := range Categories[first] {
			if s == c {
				return true
			}
		}
	}
	return false
}
