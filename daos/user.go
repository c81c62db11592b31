package daos

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// CreateUser registers a new account with a bcrypt-hashed password.
func CreateUser(db *gorm.DB, username, name, surname, password string, role models.Role) (*models.User, error) {
	if username == "" || name == "" || surname == "" || password == "" {
		return nil, fmt.Errorf("%w: username, name, surname and password are required", ErrInvalidInput)
	}
	if _, ok := models.ParseRole(string(role)); !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	var existing models.User
	err := db.First(&existing, "username = ?", username).Error
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserAlreadyExists, username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Name:         name,
		Surname:      surname,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return &user, nil
}

// CheckCredentials verifies a username/password pair and returns the user.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func CheckCredentials(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", username, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return &user, nil
}

// GetUserByUsername returns one user or ErrUserNotFound.
func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", username, err)
	}
	return &user, nil
}

// GetUsers returns all accounts.
func GetUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("username ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// GetUsersByRole returns all accounts holding one role.
func GetUsersByRole(db *gorm.DB, role models.Role) ([]models.User, error) {
	if _, ok := models.ParseRole(string(role)); !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	var users []models.User
	if err := db.Where("role = ?", role).Order("username ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users by role: %w", err)
	}
	return users, nil
}

// UpdateUserInfo updates the mutable personal fields of an account. The
// birthdate, when set, cannot be in the future.
func UpdateUserInfo(db *gorm.DB, username, name, surname, address, birthdate string) (*models.User, error) {
	user, err := GetUserByUsername(db, username)
	if err != nil {
		return nil, err
	}
	if name == "" || surname == "" {
		return nil, fmt.Errorf("%w: name and surname are required", ErrInvalidInput)
	}
	if birthdate != "" {
		parsed, err := parseDate(birthdate)
		if err != nil {
			return nil, err
		}
		if parsed > Today() {
			return nil, fmt.Errorf("%w: birthdate %s is in the future", ErrDateOrder, parsed)
		}
		birthdate = parsed
	}

	updates := map[string]interface{}{
		"name":      name,
		"surname":   surname,
		"address":   address,
		"birthdate": birthdate,
	}
	if err := db.Model(user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", username, err)
	}
	return user, nil
}

// DeleteUser removes one account. Callers enforce who may delete whom.
func DeleteUser(db *gorm.DB, username string) error {
	result := db.Where("username = ?", username).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %s: %w", username, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	return nil
}

// DeleteAllNonAdminUsers removes every Customer and Manager account.
func DeleteAllNonAdminUsers(db *gorm.DB) error {
	if err := db.Where("role <> ?", models.RoleAdmin).Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}
	return nil
}
