package models

import "time"

// ShortCodeLength базовая длина короткого кода.
// ShortCodeMaxLength длина кода после фолбека при коллизиях.
const (
	ShortCodeLength    = 6
	ShortCodeMaxLength = 10
)

// ShortURL структура модели хранения короткой ссылки.
type ShortURL struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
	OriginalURL string     `json:"originalUrl" gorm:"size:2048;not null"`
	ShortCode   string     `json:"shortCode" gorm:"size:10;uniqueIndex;not null"`
	Clicks      int64      `json:"clicks" gorm:"not null;default:0"`
	UserID      *string    `json:"userId,omitempty" gorm:"size:36;index"`
}

// Deleted запись помечена как удаленная (мягкое удаление).
func (u *ShortURL) Deleted() bool {
	return u.DeletedAt != nil
}
