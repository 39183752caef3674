package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenModel mirrors the 'tokens' table. The bearer value itself is never stored;
// ValueHash holds its hex-encoded SHA-256 digest.
type TokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ValueHash string     `gorm:"type:char(64);uniqueIndex:idx_tokens_value_hash;index:idx_tokens_validity,priority:1;not null"`
	UserID    uuid.UUID  `gorm:"type:uuid;index:idx_tokens_user_id;not null"`
	ExpiresAt time.Time  `gorm:"index:idx_tokens_validity,priority:3;not null"`
	Revoked   bool       `gorm:"index:idx_tokens_validity,priority:2;not null;default:false"`
	RevokedAt *time.Time
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "tokens"
}
