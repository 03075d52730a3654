package repository

import (
	"ecotrack_backend/internal/model"
	"ecotrack_backend/pkg/ranking"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if user.Level == 0 {
		user.Level = 1
	}
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// ApplyFootprint 累加总排放并覆盖当日得分，单条 UPDATE 保证并发提交不丢失累加
func (r *UserRepository) ApplyFootprint(tx *gorm.DB, userID uint, totalKg float64, score int) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_carbon_footprint": gorm.Expr("total_carbon_footprint + ?", totalKg),
			"daily_score":            score,
		}).Error
}

// CountWithMorePoints 积分严格高于 points 的用户数
func (r *UserRepository) CountWithMorePoints(points int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("points > ?", points).Count(&count).Error
	return count, err
}

// StandingFilter 排行榜范围，字段为空表示不限
type StandingFilter struct {
	University string
	Department string
}

// 等级由积分单调推导，按等级排序直接用 points 列，不依赖库里的 level
var sortColumns = map[ranking.SortKey]string{
	ranking.SortByPoints:               "points",
	ranking.SortByLevel:                "points",
	ranking.SortByDailyScore:           "daily_score",
	ranking.SortByTotalCarbonFootprint: "total_carbon_footprint",
}

// FindStandings 按 key 降序取前 limit 名，同分按注册顺序
func (r *UserRepository) FindStandings(filter StandingFilter, key ranking.SortKey, limit int) ([]ranking.Standing, error) {
	column, ok := sortColumns[key]
	if !ok {
		return nil, ranking.ErrInvalidSortKey
	}
	if limit <= 0 {
		return []ranking.Standing{}, nil
	}

	query := r.DB.Model(&model.User{})
	if filter.University != "" {
		query = query.Where("university = ?", filter.University)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}

	var users []model.User
	err := query.
		Select("id", "name", "university", "department", "points", "level", "daily_score", "total_carbon_footprint", "badges").
		Order(column + " DESC").
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	standings := make([]ranking.Standing, len(users))
	for i := range users {
		standings[i] = ToStanding(&users[i])
	}
	return standings, nil
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("last_seen", time.Now()).
		Error
}

// ToStanding 等级总是由积分推导，不信任库里的 level 列
func ToStanding(u *model.User) ranking.Standing {
	badges := u.Badges
	if badges == nil {
		badges = []string{}
	}
	return ranking.Standing{
		UserID:               u.ID,
		Name:                 u.Name,
		University:           u.University,
		Department:           u.Department,
		Points:               u.Points,
		Level:                ranking.Level(u.Points),
		DailyScore:           u.DailyScore,
		TotalCarbonFootprint: u.TotalCarbonFootprint,
		Badges:               badges,
	}
}
