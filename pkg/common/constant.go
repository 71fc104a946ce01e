package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyEcoDBType string = "ECO_DB_TYPE"
	EnvKeyEcoDbPath string = "ECO_DB_PATH"

	EnvKeyEcoHttpHostPort string = "ECO_HTTP_HOST_PORT"

	EnvKeyEcoCrowdBaseURL string = "ECO_CROWD_BASE_URL"
	EnvKeyEcoSceneBaseURL string = "ECO_SCENE_BASE_URL"
	EnvKeyEcoSceneModel   string = "ECO_SCENE_MODEL"
	EnvKeyEcoSceneAPIKey  string = "ECO_SCENE_API_KEY"

	EnvKeyEcoDefaultRate  string = "ECO_DEFAULT_RATE"
	EnvKeyEcoDefaultBurst string = "ECO_DEFAULT_BURST"

	LoggerNameEcoCore       string = "ecoflow_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameVisionClient  string = "vision_client"
	LoggerFieldEcoCategory  string = "category"
	LoggerCategoryEcoDetect string = "detect"
	LoggerCategoryEcoAlert  string = "alert"
	LoggerCategoryEcoCarbon string = "carbon"
	LoggerCategoryEcoZone   string = "zone"
)
