package postgres

import (
	"context"
	"strings"

	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts the user record under its identity UID.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if err := repo.db.WithContext(ctx).Create(fromUserDomain(user)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "email = ?", email)
}

func (repo *userRepository) first(ctx context.Context, where string, arg string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(where, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// SearchUsersByEmailPrefix matches emails starting with prefix, ordered by email.
func (repo *userRepository) SearchUsersByEmailPrefix(ctx context.Context, prefix string, limit int) ([]*entity.User, error) {
	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email LIKE ?", escapeLike(prefix)+"%").
		Order("email").
		Limit(limit).
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (repo *userRepository) UpdateProfile(ctx context.Context, id, displayName, gender string) error {
	return repo.update(ctx, id, map[string]any{"display_name": displayName, "gender": gender})
}

func (repo *userRepository) UpdatePhotoURL(ctx context.Context, id, photoURL string) error {
	return repo.update(ctx, id, map[string]any{"photo_url": photoURL})
}

func (repo *userRepository) UpdatePushToken(ctx context.Context, id, token string) error {
	return repo.update(ctx, id, map[string]any{"fcm_token": token})
}

func (repo *userRepository) update(ctx context.Context, id string, columns map[string]any) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
