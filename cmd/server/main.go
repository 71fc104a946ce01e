package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Musoye/ecoflow-backend/pkg/common"
	"github.com/Musoye/ecoflow-backend/pkg/db"
	"github.com/Musoye/ecoflow-backend/pkg/ecoflow"
	ecoHttp "github.com/Musoye/ecoflow-backend/pkg/http"
	"github.com/Musoye/ecoflow-backend/pkg/vision"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	ecoDbType := os.Getenv(common.EnvKeyEcoDBType)
	switch ecoDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown ECO_DB_TYPE: " + ecoDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyEcoHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyEcoDefaultRate), 64); err != nil {
		log.Fatal("Invalid ECO_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyEcoDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid ECO_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	// vision clients are built once here and injected; their URLs and key
	// come from the environment, never from package state
	crowdClient, err := vision.NewCrowdClient(vision.CrowdConfig{
		BaseURL: strings.TrimSpace(os.Getenv(common.EnvKeyEcoCrowdBaseURL)),
	})
	if err != nil {
		log.Fatal("Failed to create crowd client: ", err)
	}

	sceneClient, err := vision.NewSceneClient(vision.SceneConfig{
		BaseURL: strings.TrimSpace(os.Getenv(common.EnvKeyEcoSceneBaseURL)),
		Model:   strings.TrimSpace(os.Getenv(common.EnvKeyEcoSceneModel)),
		APIKey:  strings.TrimSpace(os.Getenv(common.EnvKeyEcoSceneAPIKey)),
	})
	if err != nil {
		log.Fatal("Failed to create scene client: ", err)
	}

	ecoCore := ecoflow.Ecoflow{
		Db:    *dbInstance,
		Crowd: crowdClient,
		Scene: sceneClient,
	}
	ecoCore.WithServices(ecoflow.ServiceOpts{
		Zone:   ecoCore.GetIZone(),
		Alert:  ecoCore.GetIAlert(),
		Carbon: ecoCore.GetICarbon(),
		Detect: ecoCore.GetIDetect(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &ecoHttp.RestfulServer{
		Server:           gin.Default(),
		Eco:              &ecoCore,
		RateLimiterStore: ecoflow.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
