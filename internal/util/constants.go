package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 查询参数默认值
const (
	DefaultHistoryDays            = 30
	MaxHistoryDays                = 366
	DefaultGlobalLeaderboardLimit = 50
	DefaultGroupLeaderboardLimit  = 30
	MaxLeaderboardLimit           = 200
)

const MimeCSV = "text/csv"
