package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		setEnv       bool
		want         string
	}{
		{
			name:         "environment variable set",
			key:          "TEST_KEY_1",
			defaultValue: "default",
			envValue:     "custom",
			setEnv:       true,
			want:         "custom",
		},
		{
			name:         "environment variable not set",
			key:          "TEST_KEY_2",
			defaultValue: "default",
			setEnv:       false,
			want:         "default",
		},
		{
			name:         "empty environment variable",
			key:          "TEST_KEY_3",
			defaultValue: "default",
			envValue:     "",
			setEnv:       true,
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			got := getEnvOrDefault(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		setEnv   bool
		want     int
	}{
		{name: "valid integer", envValue: "42", setEnv: true, want: 42},
		{name: "not set", setEnv: false, want: 10},
		{name: "invalid integer", envValue: "invalid", setEnv: true, want: 10},
		{name: "negative integer", envValue: "-5", setEnv: true, want: -5},
		{name: "zero", envValue: "0", setEnv: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_INT", tt.envValue)
			}

			got := getEnvAsIntOrDefault("TEST_INT", 10)
			if got != tt.want {
				t.Errorf("getEnvAsIntOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvAsDurationOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		setEnv   bool
		want     time.Duration
	}{
		{name: "valid duration", envValue: "5m", setEnv: true, want: 5 * time.Minute},
		{name: "not set", setEnv: false, want: 10 * time.Second},
		{name: "invalid duration", envValue: "invalid", setEnv: true, want: 10 * time.Second},
		{name: "milliseconds", envValue: "500ms", setEnv: true, want: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_DUR", tt.envValue)
			}

			got := getEnvAsDurationOrDefault("TEST_DUR", 10*time.Second)
			if got != tt.want {
				t.Errorf("getEnvAsDurationOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvAsBoolOrDefault(t *testing.T) {
	t.Setenv("TEST_BOOL_TRUE", "true")
	t.Setenv("TEST_BOOL_BAD", "maybe")

	if !getEnvAsBoolOrDefault("TEST_BOOL_TRUE", false) {
		t.Error("getEnvAsBoolOrDefault() = false, want true")
	}
	if !getEnvAsBoolOrDefault("TEST_BOOL_BAD", true) {
		t.Error("getEnvAsBoolOrDefault() should fall back to default on invalid input")
	}
	if getEnvAsBoolOrDefault("TEST_BOOL_UNSET", false) {
		t.Error("getEnvAsBoolOrDefault() = true, want default false")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "ENVIRONMENT", "SESSION_SECRET", "GEOCODING_DEBOUNCE", "DEFAULT_REGION"} {
		if value, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			defer os.Setenv(key, value)
		}
	}

	if err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if AppConfig.Port != 8080 {
		t.Errorf("Port = %v, want 8080", AppConfig.Port)
	}
	if AppConfig.StoreDriver != StoreDriverMongo {
		t.Errorf("StoreDriver = %v, want %v", AppConfig.StoreDriver, StoreDriverMongo)
	}
	if AppConfig.GeocodingDebounce != 500*time.Millisecond {
		t.Errorf("GeocodingDebounce = %v, want 500ms", AppConfig.GeocodingDebounce)
	}
	if AppConfig.SessionSecret == "" {
		t.Error("SessionSecret should default outside production")
	}
	if AppConfig.DefaultRegion != "VE" {
		t.Errorf("DefaultRegion = %v, want VE", AppConfig.DefaultRegion)
	}
	if AppConfig.BeneficiaryCollection != "beneficiaries" || AppConfig.ActivityCollection != "activities" {
		t.Errorf("unexpected collections %q/%q", AppConfig.BeneficiaryCollection, AppConfig.ActivityCollection)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should fail on invalid PORT")
	}
}

func TestLoadConfig_InvalidStoreDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	if err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should fail on unknown STORE_DRIVER")
	}
}

func TestLoadConfig_ProductionRequiresSessionSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SESSION_SECRET", "")

	if err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should require SESSION_SECRET in production")
	}

	t.Setenv("SESSION_SECRET", "s3cret")
	if err := LoadConfig(); err != nil {
		t.Errorf("LoadConfig() error = %v", err)
	}
	if AppConfig.SessionSecret != "s3cret" {
		t.Errorf("SessionSecret = %v, want s3cret", AppConfig.SessionSecret)
	}
}
