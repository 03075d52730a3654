// 手动写入挑战数据
//
// 不带参数时写入默认挑战（仅当挑战表为空），
// 传入 YAML 文件时按文件内容追加挑战，日期以运行当天为起点。
//
// 用法: go run scripts/seed_challenges.go [challenges.yaml]

package main

import (
	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/model"
	"ecotrack_backend/pkg/database"
	"ecotrack_backend/pkg/logger"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Challenges []seedChallenge `yaml:"challenges"`
}

type seedChallenge struct {
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	Category     string  `yaml:"category"`
	Difficulty   string  `yaml:"difficulty"`
	PointsReward int     `yaml:"points_reward"`
	TargetValue  float64 `yaml:"target_value"`
	StartInDays  int     `yaml:"start_in_days"`
	DurationDays int     `yaml:"duration_days"`
}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	now := time.Now()
	if len(os.Args) < 2 {
		if err := database.SeedChallenges(db, now); err != nil {
			log.Fatalf("写入默认挑战失败: %v", err)
		}
		log.Println("默认挑战已就绪")
		return
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("无法读取挑战文件: %v", err)
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		log.Fatalf("解析挑战文件失败: %v", err)
	}

	for _, sc := range file.Challenges {
		if sc.DurationDays <= 0 {
			sc.DurationDays = 7
		}
		if sc.Difficulty == "" {
			sc.Difficulty = string(model.DifficultyEasy)
		}
		start := now.AddDate(0, 0, sc.StartInDays)
		challenge := model.Challenge{
			Name:         sc.Name,
			Description:  sc.Description,
			Category:     model.ChallengeCategory(sc.Category),
			Difficulty:   model.ChallengeDifficulty(sc.Difficulty),
			PointsReward: sc.PointsReward,
			TargetValue:  sc.TargetValue,
			StartDate:    start,
			EndDate:      start.AddDate(0, 0, sc.DurationDays),
		}
		if err := db.Create(&challenge).Error; err != nil {
			log.Fatalf("写入挑战 %q 失败: %v", sc.Name, err)
		}
		log.Printf("已写入挑战 %q (id=%d)", challenge.Name, challenge.ID)
	}
}
