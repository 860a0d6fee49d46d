package model

import (
	"time"
)

// TokenBlacklist keeps revoked access tokens until they would have
// expired anyway.
type TokenBlacklist struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"column:token;type:text;not null;uniqueIndex:uq_token_blacklist_token" json:"token"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null;index" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
