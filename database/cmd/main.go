package main

import (
	"flag"

	"gather.link/configs"
	"gather.link/configs/configsdatabase"
	"gather.link/configs/configslog"
	"gather.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Run database seeders")
	flag.Parse()

	cfg := configs.Load()

	configsdatabase.InitDB(cfg.DatabaseURL)
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Running database initialization...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Database initialization done.")
}
