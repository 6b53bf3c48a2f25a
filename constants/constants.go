package constants

import "os"

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func GetOutDir() string {
	return getEnv("PERCMAP_OUT_DIR", "./out")
}

func GetListenAddr() string {
	return getEnv("PERCMAP_ADDR", ":8080")
}

func GetDynamoEndpoint() string {
	return getEnv("PERCMAP_DYNAMO_ENDPOINT", "http://localhost:8000")
}

func GetDynamoRegion() string {
	return getEnv("PERCMAP_DYNAMO_REGION", "localhost")
}

func GetOverridesTable() string {
	return getEnv("PERCMAP_OVERRIDES_TABLE", "percmap-overrides")
}

// TraceKey selects the tracer shared by all packages.
const TraceKey = "percmap"
