package app

import (
	"context"
	"database/sql"

	"go-manpower/internal/config"
	"go-manpower/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container owns the process-wide connections and the services built on them.
type Container struct {
	Config     config.Config
	Scheduling config.Scheduling
	GormDB     *gorm.DB
	DB         *sql.DB
	Redis      *redis.Client
	Services   *Services
	logger     *zap.Logger
}

// Open connects to Postgres and, when withRedis is set, Redis, then builds
// every service.
func Open(cfg config.Config, withRedis bool, logger *zap.Logger) (*Container, error) {
	scheduling, err := config.LoadScheduling(cfg.SchedulingPath)
	if err != nil {
		return nil, err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.MaxConnectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:     cfg,
		Scheduling: scheduling,
		GormDB:     gormDB,
		DB:         sqlDB,
		logger:     logger.Named("app"),
	}

	if withRedis {
		c.Redis, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxConnectRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	c.Services, err = buildServices(sqlDB, gormDB, c.Redis, scheduling, logger)
	if err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Warn("close redis failed", zap.Error(err))
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.logger.Warn("close database failed", zap.Error(err))
		}
	}
}

// BuildApp connects the infrastructure, migrates the schema and registers
// every module on router.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (*Container, error) {
	c, err := Open(cfg, true, logger)
	if err != nil {
		return nil, err
	}

	if err := Migrate(context.Background(), c.GormDB); err != nil {
		c.Close()
		return nil, err
	}

	registerModules(router, c.Services, c.Redis, logger)
	return c, nil
}
