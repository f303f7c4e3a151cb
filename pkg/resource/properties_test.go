package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testProperties = `
app:
  name: ${TODO_TEST_APP_NAME:todo-api}
  server:
    port: ${TODO_TEST_PORT:8080}
  db:
    uri: ${TODO_TEST_URI:mongodb://localhost:27017/todo_host}
    endpoint: ${TODO_TEST_ENDPOINT:}
    label: db-${TODO_TEST_ENV:local}-primary
  cache:
    enabled: ${TODO_TEST_CACHE:false}
    ttl: 10m
  retries: 3
`

func TestLoadUsesDefaults(t *testing.T) {
	if err := Load([]byte(testProperties)); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := GetString("app.name"); got != "todo-api" {
		t.Fatalf("app.name=%q want=%q", got, "todo-api")
	}
	if got := GetInt("app.server.port"); got != 8080 {
		t.Fatalf("app.server.port=%d want=%d", got, 8080)
	}
	if got := GetString("app.db.uri"); got != "mongodb://localhost:27017/todo_host" {
		t.Fatalf("app.db.uri=%q", got)
	}
	if got := GetString("app.db.endpoint"); got != "" {
		t.Fatalf("app.db.endpoint=%q want empty", got)
	}
	if got := GetString("app.db.label"); got != "db-local-primary" {
		t.Fatalf("app.db.label=%q want=%q", got, "db-local-primary")
	}
	if GetBool("app.cache.enabled") {
		t.Fatalf("app.cache.enabled=true want=false")
	}
	if got := GetDuration("app.cache.ttl"); got != 10*time.Minute {
		t.Fatalf("app.cache.ttl=%v want=%v", got, 10*time.Minute)
	}
	if got := GetInt("app.retries"); got != 3 {
		t.Fatalf("app.retries=%d want=%d", got, 3)
	}
}

func TestLoadResolvesEnvironment(t *testing.T) {
	t.Setenv("TODO_TEST_PORT", "9090")
	t.Setenv("TODO_TEST_CACHE", "true")
	t.Setenv("TODO_TEST_ENV", "prod")
	t.Setenv("TODO_TEST_ENDPOINT", "http://localhost:4566")

	if err := Load([]byte(testProperties)); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := GetString("app.server.port"); got != "9090" {
		t.Fatalf("app.server.port=%q want=%q", got, "9090")
	}
	if !GetBool("app.cache.enabled") {
		t.Fatalf("app.cache.enabled=false want=true")
	}
	if got := GetString("app.db.label"); got != "db-prod-primary" {
		t.Fatalf("app.db.label=%q want=%q", got, "db-prod-primary")
	}
	if got := GetString("app.db.endpoint"); got != "http://localhost:4566" {
		t.Fatalf("app.db.endpoint=%q", got)
	}
}

func TestInitReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte("app:\n  name: from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := GetString("app.name"); got != "from-file" {
		t.Fatalf("app.name=%q want=%q", got, "from-file")
	}
}

func TestInitMissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
