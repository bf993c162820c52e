package model

import "docchat/platform"

func InstallDB() {
	db := platform.DB
	if err := db.AutoMigrate(
		&User{},
		&ChatHistory{},
		&Message{}); err != nil {
		panic(err)
	}
}
