package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDashDBType string = "DASH_DB_TYPE"
	EnvKeyDashDbPath string = "DASH_DB_PATH"

	EnvKeyDashHttpHostPort string = "DASH_HTTP_HOST_PORT"
	EnvKeyDashGrpcHostPort string = "DASH_GRPC_HOST_PORT"

	EnvKeyDashDefaultRate  string = "DASH_DEFAULT_RATE"
	EnvKeyDashDefaultBurst string = "DASH_DEFAULT_BURST"

	EnvKeyDashLogDir string = "DASH_LOG_DIR"

	EnvKeyDashMockSeed       string = "DASH_MOCK_SEED"
	EnvKeyDashThresholdsPath string = "DASH_THRESHOLDS_PATH"

	HeaderClientID   string = "X-Client-ID"
	MetadataClientID string = "x-client-id"

	LoggerNameDashboardCore string = "dashboard_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameClassifier    string = "classifier"

	LoggerFieldDashCategory string = "category"

	LoggerCategoryOverview  string = "overview"
	LoggerCategoryAnalytics string = "analytics"
	LoggerCategoryDevices   string = "devices"
	LoggerCategoryBattery   string = "battery"
	LoggerCategoryPanels    string = "panels"
	LoggerCategoryUsers     string = "users"
	LoggerCategorySettings  string = "settings"
	LoggerCategoryAuth      string = "auth"
)
