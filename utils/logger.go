package utils

import (
	"log"
	"os"

	"go.uber.org/zap"
)

var Log *zap.SugaredLogger

// InitLogger builds the process-wide sugared logger. GIN_MODE=release
// selects the production encoder.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("GIN_MODE") == "release" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	zl, err := cfg.Build()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	Log = zl.Sugar()
}
