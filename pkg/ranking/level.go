// Package ranking 等级与排名计算
package ranking

// PointsPerLevel 每升一级所需积分
const PointsPerLevel = 100

// Level 根据积分计算等级：0-99 为 1 级，100-199 为 2 级，以此类推。
// 积分不会为负，负值按 0 处理，最低为 1 级
func Level(points int) int {
	if points < 0 {
		return 1
	}
	return points/PointsPerLevel + 1
}

// NextLevelRequirement 升到下一级的积分门槛
func NextLevelRequirement(level int) int {
	return level*PointsPerLevel + PointsPerLevel
}

// PointsForNextLevel 距离下一级还差的积分，不会为负
func PointsForNextLevel(points, level int) int {
	remaining := NextLevelRequirement(level) - points
	if remaining < 0 {
		return 0
	}
	return remaining
}
