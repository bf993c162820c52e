package platform

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	DB *gorm.DB
)

func InitDB() {
	var dialector gorm.Dialector
	switch Cfg.SQLDriver {
	case "sqlite":
		dialector = sqlite.Open(Cfg.SQLitePath)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			Cfg.SQLUser, Cfg.SQLPassword, Cfg.SQLHost, Cfg.SQLPort, Cfg.SQLDBName)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
		return
	}
	DB = db
}
