package ranking

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidSortKey 不支持的排行榜排序字段
var ErrInvalidSortKey = errors.New("invalid leaderboard sort key")

// SortKey 排行榜排序字段
type SortKey string

const (
	SortByPoints               SortKey = "points"
	SortByLevel                SortKey = "level"
	SortByDailyScore           SortKey = "dailyScore"
	SortByTotalCarbonFootprint SortKey = "totalCarbonFootprint"
)

// ParseSortKey 解析查询参数，空字符串默认按积分排序
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(s); key {
	case "":
		return SortByPoints, nil
	case SortByPoints, SortByLevel, SortByDailyScore, SortByTotalCarbonFootprint:
		return key, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
}

// Standing 参与排名的用户快照
type Standing struct {
	UserID               uint     `json:"userId"`
	Name                 string   `json:"name"`
	University           string   `json:"university,omitempty"`
	Department           string   `json:"department,omitempty"`
	Points               int      `json:"points"`
	Level                int      `json:"level"`
	DailyScore           int      `json:"dailyScore"`
	TotalCarbonFootprint float64  `json:"totalCarbonFootprint"`
	Badges               []string `json:"badges"`
}

// Entry 排行榜中的一行，Rank 为排序后的位置（从 1 开始）
type Entry struct {
	Rank int `json:"rank"`
	Standing
}

// Rank 单个用户的名次：积分严格高于该用户的人数 + 1，同分用户名次相同
func Rank(user Standing, population []Standing) int {
	above := 0
	for _, other := range population {
		if other.Points > user.Points {
			above++
		}
	}
	return above + 1
}

// Leaderboard 按 key 降序排列并截取前 limit 名，名次取排序后的位置。
// 同分时保持输入顺序，因此与 Rank 的结果可能不同
func Leaderboard(population []Standing, key SortKey, limit int) []Entry {
	if limit <= 0 || len(population) == 0 {
		return []Entry{}
	}

	sorted := make([]Standing, len(population))
	copy(sorted, population)

	value := sortValue(key)
	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) > value(sorted[j])
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}

	entries := make([]Entry, limit)
	for i := 0; i < limit; i++ {
		entries[i] = Entry{Rank: i + 1, Standing: sorted[i]}
	}
	return entries
}

// RankEntries 为已经按 key 排好序的列表补上位置名次（数据库已完成排序时使用）
func RankEntries(sorted []Standing) []Entry {
	entries := make([]Entry, len(sorted))
	for i, s := range sorted {
		entries[i] = Entry{Rank: i + 1, Standing: s}
	}
	return entries
}

func sortValue(key SortKey) func(Standing) float64 {
	switch key {
	case SortByLevel:
		return func(s Standing) float64 { return float64(s.Level) }
	case SortByDailyScore:
		return func(s Standing) float64 { return float64(s.DailyScore) }
	case SortByTotalCarbonFootprint:
		return func(s Standing) float64 { return s.TotalCarbonFootprint }
	default:
		return func(s Standing) float64 { return float64(s.Points) }
	}
}
