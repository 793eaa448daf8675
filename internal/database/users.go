package database

import (
	"context"

	"github.com/dcminogue/LightBnB/internal/models"
)

// GetUserByEmail returns the user whose email matches ignoring case, or nil.
func (d *Database) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	err := d.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		Limit(1).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// GetUserByID returns the user with the given id, or nil.
func (d *Database) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var users []models.User
	err := d.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// AddUser inserts a user and returns the stored row with its assigned id.
// The password is stored as given.
func (d *Database) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = 0
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNoRowsReturned
	}
	return &user, nil
}
