package carbon

import "math"

// BaselineDailyEmissionsKg 欧盟人均日排放（约 25kg CO2e），评分的固定基准
const BaselineDailyEmissionsKg = 25.0

// SustainabilityScore 将当日总排放映射到 0-100 分，排放越低分数越高。
// 排放 >= 25kg 得 0 分，排放为 0 得 100 分；负值在入库前已被 Validate 拒绝，这里只做区间截断
func SustainabilityScore(totalEmissionsKg float64) int {
	score := math.Max(0, 100-(totalEmissionsKg/BaselineDailyEmissionsKg)*100)
	score = math.Min(100, score)
	return int(math.Floor(score + 0.5))
}
