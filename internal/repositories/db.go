// Package repositories provides the data access layer: GORM-backed
// repositories over PostgreSQL plus a Redis-backed cache for hot reads.
package repositories

import (
	"time"

	"walletcore/internal/config"
	"walletcore/internal/models"
	"walletcore/internal/repositories/cache"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DBConfig holds database connection pool configuration
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// InitDB opens the PostgreSQL connection, configures pooling and migrates
// the ledger schema.
func InitDB(log *logrus.Logger) (*gorm.DB, error) {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "walletcore") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	sqlDB.SetConnMaxLifetime(config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour))
	sqlDB.SetConnMaxIdleTime(config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute))

	if err := db.AutoMigrate(
		&models.Wallet{},
		&models.UserWallet{},
		&models.WalletAccount{},
		&models.WalletAccountTransaction{},
		&models.Operation{},
		&models.LimitType{},
		&models.GlobalLimit{},
		&models.UserLimit{},
		&models.UserLimitTracker{},
	); err != nil {
		return nil, err
	}

	log.Info("database connected and migrated")
	return db, nil
}

// InitCache connects to Redis and wraps it in the cache service used by the
// wallet repository.
func InitCache() *cache.CacheService {
	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	client := cache.NewRedisClient(redisCfg)
	return cache.NewCacheService(client, config.GetDurationEnv("CACHE_TTL", 24*time.Hour))
}
