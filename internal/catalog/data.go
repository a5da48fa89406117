package catalog

import "github.com/angelpay/topup/internal/domain"

// entry is the raw, declaration-friendly form of a product. Rates are kept
// as strings so the tables stay exact; New parses and validates them.
type entry struct {
	components   []string
	rate         string
	uniform      string            // refund per component when all components share one price
	perComponent map[string]string // refund per component id when prices differ
}

func one(id, rate string) entry {
	return entry{components: []string{id}, rate: rate}
}

var catalogData = map[domain.Region]map[domain.Game]map[string]entry{
	domain.RegionPH: {
		domain.GameMLBB: mlbbPH,
		domain.GameMCGG: mcggPH,
	},
	domain.RegionBR: {
		domain.GameMLBB: mlbbBR,
		domain.GameMCGG: mcggBR,
		domain.GameBIGO: bigoBR,
	},
}

var mlbbPH = map[string]entry{
	"11": one("212", "9.50"),
	"22": one("213", "19.00"),
	"33": {
		components:   []string{"212", "213"},
		rate:         "28.50",
		perComponent: map[string]string{"212": "9.50", "213": "19.00"},
	},
	"44": {
		components: []string{"213", "213"},
		rate:       "38.00",
		uniform:    "19.00",
	},
	"56":   one("214", "47.50"),
	"112":  one("215", "95.00"),
	"223":  one("216", "190.00"),
	"336":  one("217", "285.00"),
	"570":  one("218", "475.00"),
	"1163": one("219", "950.00"),
	"2398": one("220", "1900.00"),
	"6042": one("221", "4750.00"),
	"wdp":  one("16641", "95.00"),
}

var mlbbBR = map[string]entry{
	"svp":   one("22594", "39.00"),
	"55":    one("22590", "39.00"),
	"165":   one("22591", "116.90"),
	"275":   one("22592", "187.50"),
	"565":   one("22593", "385.00"),
	"wp":    one("16642", "76.00"),
	"wp2":   {components: []string{"16642", "16642"}, rate: "152.00", uniform: "76.00"},
	"wp3":   {components: []string{"16642", "16642", "16642"}, rate: "228.00", uniform: "76.00"},
	"wp4":   {components: []string{"16642", "16642", "16642", "16642"}, rate: "304.00", uniform: "76.00"},
	"wp5":   {components: []string{"16642", "16642", "16642", "16642", "16642"}, rate: "380.00", uniform: "76.00"},
	"wp10":  {components: []string{"16642", "16642", "16642", "16642", "16642", "16642", "16642", "16642", "16642", "16642"}, rate: "760.00", uniform: "76.00"},
	"tlp":   one("33", "402.50"),
	"86":    one("13", "61.50"),
	"172":   one("23", "122.00"),
	"257":   one("25", "177.50"),
	"706":   one("26", "480.00"),
	"2195":  one("27", "1453.00"),
	"3688":  one("28", "2424.00"),
	"5532":  one("29", "3660.00"),
	"9288":  one("30", "6079.00"),
	"343":   {components: []string{"13", "25"}, rate: "239.00", perComponent: map[string]string{"13": "61.50", "25": "177.50"}},
	"344":   {components: []string{"23", "23"}, rate: "244.00", uniform: "122.00"},
	"429":   {components: []string{"23", "25"}, rate: "299.50", perComponent: map[string]string{"23": "122.00", "25": "177.50"}},
	"514":   {components: []string{"25", "25"}, rate: "355.00", uniform: "177.50"},
	"600":   {components: []string{"25", "25", "13"}, rate: "416.50", perComponent: map[string]string{"25": "177.50", "13": "61.50"}},
	"792":   {components: []string{"26", "13"}, rate: "541.50", perComponent: map[string]string{"26": "480.00", "13": "61.50"}},
	"878":   {components: []string{"26", "23"}, rate: "602.00", perComponent: map[string]string{"26": "480.00", "23": "122.00"}},
	"963":   {components: []string{"26", "25"}, rate: "657.50", perComponent: map[string]string{"26": "480.00", "25": "177.50"}},
	"1049":  {components: []string{"26", "25", "13"}, rate: "719.00", perComponent: map[string]string{"26": "480.00", "25": "177.50", "13": "61.50"}},
	"1135":  {components: []string{"26", "25", "23"}, rate: "779.50", perComponent: map[string]string{"26": "480.00", "25": "177.50", "23": "122.00"}},
	"1220":  {components: []string{"26", "25", "25"}, rate: "835.00", uniform: "177.50"},
	"1412":  {components: []string{"26", "26"}, rate: "960.00", uniform: "480.00"},
	"1584":  {components: []string{"26", "26", "23"}, rate: "1082.00", perComponent: map[string]string{"26": "480.00", "23": "122.00"}},
	"1755":  {components: []string{"26", "26", "25", "13"}, rate: "1199.00", perComponent: map[string]string{"26": "480.00", "25": "177.50", "13": "61.50"}},
	"2901":  {components: []string{"27", "26"}, rate: "1933.00", perComponent: map[string]string{"27": "1453.00", "26": "480.00"}},
	"4390":  {components: []string{"27", "27"}, rate: "2906.00", uniform: "1453.00"},
	"11483": {components: []string{"30", "27"}, rate: "7532.00", perComponent: map[string]string{"30": "6079.00", "27": "1453.00"}},
	"86wp":  {components: []string{"13", "16642"}, rate: "137.50", perComponent: map[string]string{"13": "61.50", "16642": "76.00"}},
	"172wp": {components: []string{"23", "16642"}, rate: "198.00", perComponent: map[string]string{"23": "122.00", "16642": "76.00"}},
	"86wp2": {components: []string{"13", "16642", "16642"}, rate: "213.50", perComponent: map[string]string{"13": "61.50", "16642": "76.00"}},
	"257wp": {components: []string{"25", "16642"}, rate: "253.50", perComponent: map[string]string{"25": "177.50", "16642": "76.00"}},
	"B12":   {components: []string{"22590", "22591"}, rate: "155.90", perComponent: map[string]string{"22590": "39.00", "22591": "116.90"}},
	"B123":  {components: []string{"22590", "22591", "22592"}, rate: "343.40", perComponent: map[string]string{"22590": "39.00", "22591": "116.90", "22592": "187.50"}},
	"B23":   {components: []string{"22591", "22592"}, rate: "304.40", perComponent: map[string]string{"22591": "116.90", "22592": "187.50"}},
	"B1234": {components: []string{"22590", "22591", "22592", "22593"}, rate: "728.40", perComponent: map[string]string{"22590": "39.00", "22591": "116.90", "22592": "187.50", "22593": "385.00"}},
}

var mcggPH = map[string]entry{
	"5":  one("23906", "4.90"),
	"11": one("23907", "9.31"),
	"22": one("23908", "18.62"),
	"33": {
		components:   []string{"23907", "23908"},
		rate:         "27.93",
		perComponent: map[string]string{"23907": "9.31", "23908": "18.62"},
	},
	"44":   {components: []string{"23908", "23908"}, rate: "37.24", uniform: "18.62"},
	"55":   one("23918", "48.95"),
	"56":   one("23909", "46.55"),
	"112":  one("23910", "93.10"),
	"165":  one("23919", "145.04"),
	"223":  one("23911", "186.20"),
	"275":  one("23920", "241.08"),
	"336":  one("23912", "279.30"),
	"565":  one("23921", "488.04"),
	"570":  one("23913", "465.50"),
	"1163": one("23914", "931.00"),
	"2398": one("23915", "1862.00"),
	"6042": one("23916", "4655.00"),
	"wdp":  one("23922", "98.00"),
}

var mcggBR = map[string]entry{
	"55":   one("23837", "40.00"),
	"86":   one("23825", "62.50"),
	"165":  one("23838", "120.00"),
	"172":  one("23826", "125.00"),
	"257":  one("23827", "187.00"),
	"275":  one("23839", "200.00"),
	"344":  one("23828", "250.00"),
	"516":  one("23829", "375.00"),
	"565":  one("23840", "400.00"),
	"706":  one("23830", "500.00"),
	"1346": one("23831", "937.50"),
	"1825": one("23832", "1250.00"),
	"2195": one("23833", "1500.00"),
	"3688": one("23834", "2500.00"),
	"5532": one("23835", "3750.00"),
	"9288": one("23836", "6250.00"),
	"wp":   one("23841", "99.90"),
	"wp2":  {components: []string{"23841", "23841"}, rate: "199.80", uniform: "99.90"},
	"wp3":  {components: []string{"23841", "23841", "23841"}, rate: "299.70", uniform: "99.90"},
	"wp4":  {components: []string{"23841", "23841", "23841", "23841"}, rate: "399.60", uniform: "99.90"},
	"wp5":  {components: []string{"23841", "23841", "23841", "23841", "23841"}, rate: "499.50", uniform: "99.90"},
	"LBB":  one("25585", "41.40"),
	"BFD":  one("25586", "41.40"),
	"PB":   one("25587", "41.40"),
}

var bigoBR = map[string]entry{
	"20":    one("16081", "22.80"),
	"50":    one("16082", "56.70"),
	"100":   one("16083", "115.30"),
	"200":   one("16084", "232.50"),
	"500":   one("16085", "575.50"),
	"1000":  one("18013", "1135.80"),
	"2000":  one("16086", "2240.60"),
	"5000":  one("16087", "5683.80"),
	"10000": one("16088", "11198.00"),
}
