package carbon

// Category 排放因子表的一级分类
type Category string

const (
	CategoryTransportation Category = "transportation"
	CategoryMeal           Category = "meal"
	CategoryDigital        Category = "digital"
)

// TransportMode 出行方式
type TransportMode string

const (
	Walking         TransportMode = "walking"
	Cycling         TransportMode = "cycling"
	Bus             TransportMode = "bus"
	Train           TransportMode = "train"
	Car             TransportMode = "car"
	ElectricVehicle TransportMode = "electric_vehicle"
)

// MealType 餐食类型
type MealType string

const (
	Vegan      MealType = "vegan"
	Vegetarian MealType = "vegetarian"
	Fish       MealType = "fish"
	Meat       MealType = "meat"
)

// 数字化排放的两个子项
const (
	DigitalEmail     = "email"
	DigitalStreaming = "streaming"
)

// emissionFactors 单位：kg CO2e / km、kg CO2e / 餐、kg CO2e / 封邮件、kg CO2e / 小时
// 客户端预览与服务端入库共用这一张表，修改时两边数值自动一致
var emissionFactors = map[Category]map[string]float64{
	CategoryTransportation: {
		string(Walking):         0,
		string(Cycling):         0,
		string(Bus):             0.089,
		string(Train):           0.041,
		string(Car):             0.21,
		string(ElectricVehicle): 0.05,
	},
	CategoryMeal: {
		string(Vegan):      1.5,
		string(Vegetarian): 2.0,
		string(Fish):       3.5,
		string(Meat):       5.0,
	},
	CategoryDigital: {
		DigitalEmail:     0.004,
		DigitalStreaming: 0.036,
	},
}

// Factor 查询排放因子，未知分类或子类返回 0
func Factor(category Category, subtype string) float64 {
	return emissionFactors[category][subtype]
}

// Factors 返回排放因子表的副本
func Factors() map[Category]map[string]float64 {
	out := make(map[Category]map[string]float64, len(emissionFactors))
	for category, table := range emissionFactors {
		inner := make(map[string]float64, len(table))
		for subtype, factor := range table {
			inner[subtype] = factor
		}
		out[category] = inner
	}
	return out
}

func knownSubtype(category Category, subtype string) bool {
	_, ok := emissionFactors[category][subtype]
	return ok
}
