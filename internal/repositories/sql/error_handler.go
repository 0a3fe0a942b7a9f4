package sql

import (
	"github.com/brmartin/shortly/internal/repositories"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func convertErrorType(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repositories.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	default:
		return repositories.ErrUnknown
	}
}
