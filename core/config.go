package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "SMART SYAKILA")
	Conf.SetDefault("secretKey", "u8p$3kila-smart(sya)=x7!qn&24vwz#mbc9@dfghj^e5rt0")
	Conf.SetDefault("serverAddr", ":8000")
	Conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	Conf.SetDefault("adminEmail", "admin@syakila.sch.id")
	Conf.SetDefault("adminName", "Administrator")
	// the one subject whose sessions are split by gender
	Conf.SetDefault("restrictedSubject", "Keputrian")
	Conf.SetDefault("rollbarToken", "")

	// storage: "fs" (one JSON file per collection) or "postgres"
	Conf.SetDefault("storage.backend", "fs")
	Conf.SetDefault("storage.dataDir", "data")
	Conf.SetDefault("database.engine", "postgres")
	Conf.SetDefault("database.host", "localhost")
	Conf.SetDefault("database.port", "5432")
	Conf.SetDefault("database.user", "syakila")
	Conf.SetDefault("database.password", "")
	Conf.SetDefault("database.name", "syakila")
	Conf.SetDefault("database.disableTLS", true)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	}
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)
	Conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Conf.AutomaticEnv()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
}
