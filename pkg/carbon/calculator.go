// Package carbon 实现碳排放计算与可持续评分，所有结果单位为 kg CO2e。
// 函数均为纯函数，可被任意数量的调用方并发使用。
package carbon

import "math"

// Transportation 当日出行记录
type Transportation struct {
	Mode       TransportMode `json:"type"`
	DistanceKm float64       `json:"distance"`
}

// Meal 一条餐食记录，Count 为 0 时按 1 餐计算
type Meal struct {
	Type  MealType `json:"type"`
	Count int      `json:"count,omitempty"`
}

// DigitalWaste 当日数字化使用情况
type DigitalWaste struct {
	Emails         int     `json:"emails"`
	StreamingHours float64 `json:"streamingHours"`
}

// ActivityRecord 一次提交的原始活动数据，缺失的部分按无活动处理
type ActivityRecord struct {
	Transportation *Transportation `json:"transportation,omitempty"`
	Meals          []Meal          `json:"meals,omitempty"`
	DigitalWaste   *DigitalWaste   `json:"digitalWaste,omitempty"`
}

// Breakdown 原样回传的活动明细
type Breakdown struct {
	Transportation *Transportation `json:"transportation"`
	Meals          []Meal          `json:"meals"`
	Digital        *DigitalWaste   `json:"digital"`
}

// Footprint 单日碳足迹计算结果
type Footprint struct {
	TransportationEmissions float64   `json:"transportationEmissions"`
	MealEmissions           float64   `json:"mealEmissions"`
	DigitalEmissions        float64   `json:"digitalEmissions"`
	TotalEmissions          float64   `json:"totalEmissions"`
	Breakdown               Breakdown `json:"breakdown"`
}

// Round2 保留两位小数，与 JavaScript 的 Math.round(x*100)/100 结果一致
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// TransportationEmissions 出行排放 = 因子 × 公里数
func TransportationEmissions(mode TransportMode, distanceKm float64) float64 {
	return Round2(Factor(CategoryTransportation, string(mode)) * distanceKm)
}

// MealEmissions 餐食排放 = 因子 × 餐数
func MealEmissions(mealType MealType, count int) float64 {
	return Round2(Factor(CategoryMeal, string(mealType)) * float64(count))
}

// DigitalEmissions 邮件与视频流排放之和，只在求和后取整一次
func DigitalEmissions(emailCount int, streamingHours float64) float64 {
	email := Factor(CategoryDigital, DigitalEmail) * float64(emailCount)
	streaming := Factor(CategoryDigital, DigitalStreaming) * streamingHours
	return Round2(email + streaming)
}

// DailyFootprint 汇总单日三类排放
func DailyFootprint(record ActivityRecord) Footprint {
	var transportation, meals, digital float64

	if t := record.Transportation; t != nil {
		transportation = TransportationEmissions(t.Mode, t.DistanceKm)
	}

	for _, meal := range record.Meals {
		meals += MealEmissions(meal.Type, mealCount(meal))
	}

	if d := record.DigitalWaste; d != nil {
		digital = DigitalEmissions(d.Emails, d.StreamingHours)
	}

	total := transportation + meals + digital

	return Footprint{
		TransportationEmissions: Round2(transportation),
		MealEmissions:           Round2(meals),
		DigitalEmissions:        Round2(digital),
		TotalEmissions:          Round2(total),
		Breakdown: Breakdown{
			Transportation: record.Transportation,
			Meals:          record.Meals,
			Digital:        record.DigitalWaste,
		},
	}
}

func mealCount(m Meal) int {
	if m.Count == 0 {
		return 1
	}
	return m.Count
}
