package sessionrepo

import (
	"context"
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
// Sessions carry no domain behavior beyond expiry, so the repository does not
// participate in aggregate tracking.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Add saves a new session row.
func (r *GormSessionRepository) Add(ctx context.Context, session user.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := fromDomain(session)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a session by its opaque token.
func (r *GormSessionRepository) Get(ctx context.Context, token kernel.UUID) (user.Session, error) {
	if err := token.Validate(); err != nil {
		return user.Session{}, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.Session{}, errs.NewObjectNotFoundError("session", token.String())
		}
		return user.Session{}, err
	}

	return toDomain(dto)
}

// DeleteExpired removes every session whose expiry has passed and returns
// the number of rows removed.
func (r *GormSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&SessionDTO{}, "expires_at <= ?", time.Now())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
