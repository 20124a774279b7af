package config

import (
	"os"
	"strconv"
	"sync"
)

// ServerlessConfig describes the Lambda runtime the process was started in
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
	MemoryMB     int
}

var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// DetectServerless reads the Lambda runtime environment
func DetectServerless() *ServerlessConfig {
	memory, _ := strconv.Atoi(os.Getenv("AWS_LAMBDA_FUNCTION_MEMORY_SIZE"))

	return &ServerlessConfig{
		IsLambda:     os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       os.Getenv("AWS_REGION"),
		Stage:        GetEnv("STAGE", "dev"),
		MemoryMB:     memory,
	}
}

// GetServerlessConfig returns the runtime detected at first use
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = DetectServerless()
	})
	return serverlessConfig
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// Apply adjusts cfg for the runtime. Outside Lambda cfg is returned unchanged.
func (sc *ServerlessConfig) Apply(cfg *Config) *Config {
	if sc == nil || !sc.IsLambda {
		return cfg
	}

	// CloudWatch ingests one JSON object per line
	cfg.Log.Format = "json"

	if cfg.Environment == "development" {
		cfg.Environment = sc.Stage
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = sc.FunctionName
	}

	return cfg
}

// LoadForService loads configuration for one deployable unit. service is used
// when SERVICE_NAME is not set.
func LoadForService(service string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = service
	}

	return GetServerlessConfig().Apply(cfg), nil
}
