package seed

import (
	"errors"

	"github.com/rockartdb/rockartdb-backend/src/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Starter vocabulary for the Lower Pecos survey area.
var rockArtTypes = []string{
	"Pictographs",
	"Figurative Petroglyphs",
	"Abstract Petroglyphs",
	"Incised Lines",
	"Grooves",
}

var rockArtCategories = []string{
	"Pecos River Style",
	"Red Linear",
	"Red Monochrome",
	"Bold Line Geometric",
	"Historic",
}

// Seed populates users and vocabulary tables. Running it twice creates
// nothing new.
func Seed(db *gorm.DB, logger *zap.Logger) {
	seedUser(db, logger, "admin", "admin", true)
	seedUser(db, logger, "field", "field", false)

	for _, name := range rockArtTypes {
		var existing models.RockArtTypeModel
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("failed to check rock art type", zap.String("name", name), zap.Error(err))
			continue
		}
		if err := db.Create(&models.RockArtTypeModel{Name: name}).Error; err != nil {
			logger.Warn("failed to create rock art type", zap.String("name", name), zap.Error(err))
		} else {
			logger.Info("rock art type created", zap.String("name", name))
		}
	}

	for _, name := range rockArtCategories {
		var existing models.RockArtCategoryModel
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("failed to check rock art category", zap.String("name", name), zap.Error(err))
			continue
		}
		if err := db.Create(&models.RockArtCategoryModel{Name: name}).Error; err != nil {
			logger.Warn("failed to create rock art category", zap.String("name", name), zap.Error(err))
		} else {
			logger.Info("rock art category created", zap.String("name", name))
		}
	}
}

func seedUser(db *gorm.DB, logger *zap.Logger, username, password string, staff bool) {
	var user models.UserModel
	if err := db.Where("username = ?", username).First(&user).Error; err == nil {
		logger.Info("user already exists", zap.String("username", username))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Warn("failed to hash password", zap.String("username", username), zap.Error(err))
		return
	}

	newUser := models.UserModel{
		Username: username,
		Password: string(hashedPassword),
		IsStaff:  staff,
	}
	if err := db.Create(&newUser).Error; err != nil {
		logger.Warn("failed to create user", zap.String("username", username), zap.Error(err))
		return
	}
	logger.Info("user created", zap.String("username", username), zap.Bool("staff", staff))
}
