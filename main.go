package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"car-dealership-api/config"
	"car-dealership-api/routes"
)

func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db, err := config.OpenDB(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	routes.Setup(r, db, cfg)

	logrus.Infof("server running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
