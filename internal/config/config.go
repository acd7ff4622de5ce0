package config

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/rnote/prod/"

type Config struct {
	BindAddr    string
	DBPath      string
	TokenSecret []byte
}

// Load reads the environment: .env in development, AWS SSM Parameter
// Store when GO_ENV=production.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET must be set")
	}

	return &Config{
		BindAddr:    getEnvOr("BIND_ADDR", ":7070"),
		DBPath:      getEnvOr("DB_PATH", "database.db"),
		TokenSecret: []byte(secret),
	}, nil
}

func loadProdEnv() error {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(getEnvOr("AWS_REGION", "us-east-2")))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("unable to load prod environment: %w", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		if enverr := os.Setenv(key, value); enverr != nil {
			return fmt.Errorf("unable to set environment variable: %w", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
	return nil
}

func getEnvOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
