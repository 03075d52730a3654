package carbon

// EPA 温室气体当量换算系数（2024 版）
const (
	EPAMilesDrivenFactor      = 0.192   // kg CO2e / 英里（普通乘用车）
	EPASmartphoneChargeFactor = 0.00822 // kg CO2e / 次手机充电
	EPATreeSeedlingFactor     = 60.0    // 一棵树苗十年吸收的 kg CO2e
)

// Equivalency 把排放量换算成更直观的生活场景
type Equivalency struct {
	MilesDriven        float64 `json:"milesDriven"`
	SmartphonesCharged float64 `json:"smartphonesCharged"`
	TreeSeedlings      float64 `json:"treeSeedlings"`
}

// Equivalencies 计算排放当量，非正数返回零值
func Equivalencies(kg float64) Equivalency {
	if kg <= 0 {
		return Equivalency{}
	}
	return Equivalency{
		MilesDriven:        Round2(kg / EPAMilesDrivenFactor),
		SmartphonesCharged: Round2(kg / EPASmartphoneChargeFactor),
		TreeSeedlings:      Round2(kg / EPATreeSeedlingFactor),
	}
}
