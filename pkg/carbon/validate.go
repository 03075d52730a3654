package carbon

import (
	"fmt"
	"math"
)

// Validate 在入库边界校验活动数据：拒绝未知的出行方式/餐食类型以及负数或非有限数值。
// 计算函数本身不调用 Validate，未知子类在计算时仍按 0 处理
func Validate(record ActivityRecord) error {
	if t := record.Transportation; t != nil {
		if !knownSubtype(CategoryTransportation, string(t.Mode)) {
			return &ValidationError{Field: "transportation.type", Reason: fmt.Sprintf("unknown transport mode %q", t.Mode)}
		}
		if err := checkQuantity("transportation.distance", t.DistanceKm); err != nil {
			return err
		}
	}

	for i, meal := range record.Meals {
		field := fmt.Sprintf("meals[%d]", i)
		if !knownSubtype(CategoryMeal, string(meal.Type)) {
			return &ValidationError{Field: field + ".type", Reason: fmt.Sprintf("unknown meal type %q", meal.Type)}
		}
		if meal.Count < 0 {
			return &ValidationError{Field: field + ".count", Reason: "must not be negative"}
		}
	}

	if d := record.DigitalWaste; d != nil {
		if d.Emails < 0 {
			return &ValidationError{Field: "digitalWaste.emails", Reason: "must not be negative"}
		}
		if err := checkQuantity("digitalWaste.streamingHours", d.StreamingHours); err != nil {
			return err
		}
	}

	return nil
}

func checkQuantity(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}
