package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/krishilink/krishilink/internal/pkg/database"
	"github.com/krishilink/krishilink/internal/pkg/models"
)

// UserRepo implements the identity store over PostgreSQL plus a Redis
// cache for consumed OTP tokens
type UserRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *UserRepo {
	return &UserRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}
