package models

import "time"

// User учетная запись пользователя. В http ответы модель не попадает,
// наружу отдается только AuthResult. json теги нужны хранилищу в памяти,
// поэтому дайджест пароля сериализуется вместе с остальными полями.
type User struct {
	ID             string     `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
	Email          string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordDigest string     `json:"passwordDigest" gorm:"size:60;not null"`
	Name           string     `json:"name,omitempty" gorm:"size:255"`
}
