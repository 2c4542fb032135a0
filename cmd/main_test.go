package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-30"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-30") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, migrationsDir,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaAddr, kafkaTopic, logLevel,
		jwtSecret, jwtExp, rateRPS, rateBurst,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "2022" || logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", appHost, appPort, logLevel)
	}

	// PostgreSQL
	if pgHost != "localhost" || pgPort != 5432 || pgUser != "user" || pgPassword != "password" || pgDB != "meetups" ||
		pgMaxOpenConns != 16 || pgMaxIdleConns != 8 || migrationsDir != "migrations" {
		t.Errorf("unexpected postgres config")
	}

	// Redis is disabled by default
	if redisHost != "" || redisPort != 6379 || redisDB != 0 || redisPassword != "" || cacheTTLSecond != 30 {
		t.Errorf("unexpected redis config")
	}

	// Kafka is disabled by default
	if kafkaAddr != "" || kafkaTopic != "meetup-events" {
		t.Errorf("unexpected kafka config")
	}

	// JWT
	if jwtSecret != "my_super_secret_key" || jwtExp != 86400 {
		t.Errorf("unexpected jwt config: %v/%v", jwtSecret, jwtExp)
	}

	// Rate limiting
	if rateRPS != 5 || rateBurst != 10 {
		t.Errorf("unexpected rate limit config: %v/%v", rateRPS, rateBurst)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	resetEnv()
	defer resetEnv()

	os.Setenv("APP_PORT", "9090")
	os.Setenv("POSTGRES_DB", "meetups_test")
	os.Setenv("REDIS_HOST", "redis.internal")
	os.Setenv("KAFKA_ADDR", "kafka.internal:9092")
	os.Setenv("JWT_EXP_SECOND", "3600")
	os.Setenv("RATE_LIMIT_RPS", "2.5")

	_, appPort,
		_, _, _, _, pgDB,
		_, _, _,
		redisHost, _, _, _, _,
		kafkaAddr, _, _,
		_, jwtExp, rateRPS, _,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appPort != "9090" || pgDB != "meetups_test" || redisHost != "redis.internal" ||
		kafkaAddr != "kafka.internal:9092" || jwtExp != 3600 || rateRPS != 2.5 {
		t.Errorf("env overrides not applied")
	}
}

func TestParseConfig_InvalidNumbers(t *testing.T) {
	resetEnv()
	defer resetEnv()

	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Error("expected error for invalid POSTGRES_PORT")
	}
}
