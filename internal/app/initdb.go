package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"stocktrack/config"
	"stocktrack/internal/domain"
)

func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	logLevel := gormlogger.Silent
	if cfg.Debug {
		logLevel = gormlogger.Info
	}
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	switch cfg.Type {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			cfg.Host, cfg.User, cfg.Passwd, cfg.Name, cfg.Port)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		dbfile := filepath.Join(workdir, "data", cfg.Name+".db")
		db, err = gorm.Open(sqlite.Open(dbfile), gormConfig)
	}
	if err != nil {
		zap.S().Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Fatalf("failed to get sql.DB: %v", err)
	}
	if cfg.Type == "postgres" {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
	} else {
		// sqlite serializes writers anyway
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}

// checkSuper makes sure an administrator account exists. The password
// is stored bcrypt-hashed, never as submitted.
func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "stocktrack"

	var user domain.User
	err := a.gormDB.Where("username = ?", superUsername).First(&user).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		if err != nil {
			zap.L().Error("failed to query super admin", zap.Error(err))
		}
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("failed to hash default admin password", zap.Error(err))
		return
	}

	if err := a.gormDB.Create(&domain.User{
		Username: superUsername,
		Password: string(hashed),
		Role:     "admin",
		Email:    "N/A",
	}).Error; err != nil {
		zap.L().Error("failed to create default super admin", zap.Error(err))
	} else {
		zap.L().Info("initialized default super admin account", zap.String("username", superUsername))
	}
}

// checkCategories seeds starter item categories so the add-item form
// has something to offer on a fresh install.
func (a *Application) checkCategories() {
	defaultCategories := []string{"General", "Electronics", "Consumables", "Packaging"}

	for _, name := range defaultCategories {
		var count int64
		a.gormDB.Model(&domain.Category{}).Where("category_name = ?", name).Count(&count)
		if count == 0 {
			if err := a.gormDB.Create(&domain.Category{CategoryName: name}).Error; err != nil {
				zap.L().Error("failed to create default category", zap.String("name", name), zap.Error(err))
			} else {
				zap.L().Info("initialized default category", zap.String("name", name))
			}
		}
	}
}
