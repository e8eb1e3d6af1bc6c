package firestoredb

import (
	"context"

	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// prefixRangeEnd closes a string range query so it matches every value starting with the prefix.
const prefixRangeEnd = "\uf8ff"

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for the Firestore user repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) users() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

func toUser(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	return decode(snap, (*userDocument).toEntity)
}

// CreateUser writes users/{user.ID}; an existing document is not overwritten.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := repo.users().Doc(user.ID).Create(ctx, &userDocument{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Gender:      user.Gender,
		PhotoURL:    user.PhotoURL,
		FCMToken:    user.FCMToken,
		CreatedAt:   user.CreatedAt,
	})
	if isAlreadyExists(err) {
		return repository.ErrUserAlreadyExists
	}

	return errors.Wrap(err, "failed to create user")
}

func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := repo.users().Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return toUser(snap)
}

func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := convertAll(repo.users().Where("email", "==", email).Limit(1).Documents(ctx), toUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query user by email")
	}
	if len(users) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return users[0], nil
}

func (repo *userRepository) SearchUsersByEmailPrefix(ctx context.Context, prefix string, limit int) ([]*entity.User, error) {
	q := repo.users().
		Where("email", ">=", prefix).
		Where("email", "<=", prefix+prefixRangeEnd).
		OrderBy("email", firestore.Asc).
		Limit(limit)

	users, err := convertAll(q.Documents(ctx), toUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return users, nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, id, displayName, gender string) error {
	return repo.update(ctx, id, []firestore.Update{
		{Path: "displayName", Value: displayName},
		{Path: "gender", Value: gender},
	})
}

func (repo *userRepository) UpdatePhotoURL(ctx context.Context, id, photoURL string) error {
	return repo.update(ctx, id, []firestore.Update{{Path: "photoUrl", Value: photoURL}})
}

func (repo *userRepository) UpdatePushToken(ctx context.Context, id, token string) error {
	return repo.update(ctx, id, []firestore.Update{{Path: "fcmToken", Value: token}})
}

func (repo *userRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	_, err := repo.users().Doc(id).Update(ctx, updates)
	if isNotFound(err) {
		return repository.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to update user")
}
