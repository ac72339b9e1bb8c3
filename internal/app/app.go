package app

import (
	"database/sql"

	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections every binary starts from.
type Infra struct {
	Config *config.Config
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

// Connect opens postgres and, when withRedis is set, redis.
func Connect(cfg *config.Config, withRedis bool) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	infra := &Infra{Config: cfg, GormDB: gormDB, SQLDB: sqlDB}
	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		infra.Redis = rdb
	}
	return infra, nil
}

func (i *Infra) Close() {
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	}
	if i.SQLDB != nil {
		if err := i.SQLDB.Close(); err != nil {
			zap.L().Warn("postgres close failed", zap.Error(err))
		}
	}
}
