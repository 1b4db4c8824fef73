package models

import "time"

type SubscriptionLevel string

const (
	SubscriptionFree  SubscriptionLevel = "free"
	SubscriptionPaid  SubscriptionLevel = "paid"
	SubscriptionAdmin SubscriptionLevel = "admin"
)

type User struct {
	BaseModel
	Username          string            `gorm:"uniqueIndex;not null"`
	Email             string            `gorm:"uniqueIndex;not null"`
	PasswordHash      string            `gorm:"not null"`
	SubscriptionLevel SubscriptionLevel `gorm:"type:varchar(20);default:'free'"`
	IsActive          bool              `gorm:"default:true"`

	// Relations
	Tasks   []Task   `gorm:"foreignKey:UserID"`
	ApiKeys []ApiKey `gorm:"foreignKey:UserID"`
}

// ApiKey caches the provider credential per user with a TTL. Expired rows
// are ignored and superseded, never deleted.
type ApiKey struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;index"`
	ApiKey     string
	ValidUntil time.Time `gorm:"not null"`
	CreatedAt  time.Time
}
