// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"gorm.io/gorm"

	userModel "gradebook_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByID(db *gorm.DB, userID int64) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTaken reports whether any user other than excludeID owns email.
// Pass excludeID 0 to check against every user.
func EmailTaken(db *gorm.DB, email string, excludeID int64) (bool, error) {
	var n int64
	q := db.Model(&userModel.UserModel{}).Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID int64, newHash string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("password", newHash).Error
}

func UpdateUserEmail(db *gorm.DB, userID int64, email string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("email", email).Error
}

func DeleteUser(db *gorm.DB, userID int64) error {
	return db.Delete(&userModel.UserModel{}, userID).Error
}
