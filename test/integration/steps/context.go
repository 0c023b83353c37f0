//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/productivity-hub/backend/config"
	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/infra/dependency"
	"github.com/productivity-hub/backend/internal/integration/persistence"
	"github.com/productivity-hub/backend/internal/integration/persistence/model"
	"github.com/productivity-hub/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	cfg      *config.Config
	storage  string
	db       *mock.Db
	redis    *redis.Client
	injector *dependency.Injector
	server   *httptest.Server
	cancel   context.CancelFunc

	client      *http.Client
	headers     map[string]string
	response    *response
	accessToken string
	lastID      string
	lastHandle  string

	ws *websocket.Conn
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"sessions": &model.SessionModel{},
		}),
		redis: mock.NewRedis(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.stopServer()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^sessions are stored in "([^"]*)"$`, test.sessionsAreStoredIn)
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the API server restarts$`, test.theAPIServerRestarts)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^a websocket client is connected$`, test.aWebsocketClientIsConnected)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Storage assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the redis key "([^"]*)" should contain "([^"]*)"$`, test.theRedisKeyShouldContain)
	ctx.Then(`^the redis key "([^"]*)" should not exist$`, test.theRedisKeyShouldNotExist)

	// Realtime steps
	ctx.Then(`^the websocket client should receive a "([^"]*)" message$`, test.theWebsocketClientShouldReceive)
	ctx.Then(`^the websocket client should receive a notification titled "([^"]*)"$`, test.theWebsocketClientShouldReceiveNotification)
}

func (t *testContext) before() error {
	t.storage = config.StorageSQLite
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.lastID = ""
	t.lastHandle = ""

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(t.redis)
}

func (t *testContext) sessionStorage() (adapter.SessionStorage, error) {
	switch t.storage {
	case config.StorageSQLite:
		return persistence.NewSQLSessionStorage(t.db.DbConn), nil
	case config.StorageRedis:
		return persistence.NewRedisSessionStorage(t.redis, ""), nil
	case config.StorageMemory:
		return persistence.NewMemorySessionStorage(), nil
	}
	return nil, fmt.Errorf("unsupported session storage %q", t.storage)
}

func (t *testContext) startServer() error {
	storage, err := t.sessionStorage()
	if err != nil {
		return err
	}

	t.cfg = config.Load()
	t.cfg.Server.Environment = "test"
	t.cfg.Session.Storage = t.storage
	t.cfg.Session.LoginDelay = 0
	t.cfg.JWT.Secret = testJWTSecret
	t.cfg.Workspace.SeedFixtures = true

	t.injector = dependency.NewInjectorWithStorage(t.cfg, storage)

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	go func() { _ = t.injector.Hub.Run(ctx) }()

	if err := t.injector.Gate.Init(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	t.server = httptest.NewServer(t.injector.Router.Setup(t.cfg.Server.Environment))
	return nil
}

func (t *testContext) stopServer() {
	if t.ws != nil {
		t.ws.Close()
		t.ws = nil
	}
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *testContext) sessionsAreStoredIn(storage string) error {
	if t.server != nil {
		return errors.New("session storage must be chosen before the server starts")
	}
	t.storage = storage
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server != nil {
		return nil
	}
	return t.startServer()
}

func (t *testContext) theAPIServerRestarts() error {
	t.stopServer()
	return t.startServer()
}

func (t *testContext) iAmLoggedInAs(email string) error {
	payload := fmt.Sprintf(`{"email":%q,"password":"secret"}`, email)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(payload)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %v", t.response.status, t.response.body)
	}

	token, ok := getFieldValue(t.response.body, "access_token").(string)
	if !ok || token == "" {
		return fmt.Errorf("login response has no access token: %v", t.response.body)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) aWebsocketClientIsConnected() error {
	url := "ws" + strings.TrimPrefix(t.server.URL, "http") + "/api/v1/ws?access_token=" + t.accessToken
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("websocket dial failed with status %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("websocket dial failed: %w", err)
	}
	t.ws = conn

	// Wait until the hub has registered the client
	for i := 0; i < 50; i++ {
		if t.injector.Hub.Clients() > 0 {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return errors.New("websocket client was not registered")
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.executeRequest(method, t.replacePlaceholders(path), []byte(t.replacePlaceholders(body.Content)))
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.NewReplacer(
		"{{access_token}}", t.accessToken,
		"{{id}}", t.lastID,
		"{{handle}}", t.lastHandle,
	).Replace(content)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.response = &response{status: resp.StatusCode}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &t.response.body); err != nil {
			t.response.body = string(raw)
		}
	}

	// Remember identifiers for later steps
	if id, ok := getFieldValue(t.response.body, "id").(string); ok && id != "" {
		t.lastID = id
	}
	if id, ok := getFieldValue(t.response.body, "record.id").(string); ok && id != "" {
		t.lastID = id
	}
	if handle, ok := getFieldValue(t.response.body, "handle").(string); ok && handle != "" {
		t.lastHandle = handle
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, t.response.body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theRedisKeyShouldContain(key, expected string) error {
	value, err := t.redis.Get(context.Background(), key).Result()
	if err != nil {
		return fmt.Errorf("failed to read redis key '%s': %w", key, err)
	}
	if !strings.Contains(value, expected) {
		return fmt.Errorf("redis key '%s' does not contain '%s': %s", key, expected, value)
	}
	return nil
}

func (t *testContext) theRedisKeyShouldNotExist(key string) error {
	n, err := t.redis.Exists(context.Background(), key).Result()
	if err != nil {
		return err
	}
	if n != 0 {
		return fmt.Errorf("redis key '%s' still exists", key)
	}
	return nil
}

func (t *testContext) readMessage(match func(entity.Message) bool) error {
	if t.ws == nil {
		return errors.New("no websocket client connected")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		_ = t.ws.SetReadDeadline(deadline)
		var msg entity.Message
		if err := t.ws.ReadJSON(&msg); err != nil {
			return fmt.Errorf("no matching websocket message: %w", err)
		}
		if match(msg) {
			return nil
		}
	}
}

func (t *testContext) theWebsocketClientShouldReceive(kind string) error {
	return t.readMessage(func(msg entity.Message) bool {
		return string(msg.Kind) == kind
	})
}

func (t *testContext) theWebsocketClientShouldReceiveNotification(title string) error {
	return t.readMessage(func(msg entity.Message) bool {
		return msg.Notification != nil && msg.Notification.Title == title
	})
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	field := object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
