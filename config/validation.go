package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks values that have no usable zero value. Defaults
// cover the common case; an explicitly empty override is still an error.
func ValidateConfig(cfg *Config) error {
	var errs []string

	required := []struct {
		field string
		value string
	}{
		{"SERVER_PORT", cfg.ServerPort},
		{"MONGO_URI", cfg.MongoURI},
		{"MONGO_DATABASE", cfg.MongoDatabase},
		{"AWS_REGION", cfg.AWSRegion},
		{"S3_BUCKET", cfg.S3Bucket},
	}

	for _, r := range required {
		if r.value == "" {
			errs = append(errs, ValidationError{Field: r.field, Message: "must not be empty"}.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
