package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Manager provides thread-safe access to environment variables and configuration settings
type Manager struct {
	envVars      map[string]string
	mutex        sync.RWMutex
	AppEnvConfig // Embed AppEnvConfig
}

type AppEnvConfig struct {
	GeminiAPIKey *string
	GeminiModel  *string
	RedisHost    *string
	RedisPort    *string
	RedisDb      *int
	RedisUser    *string
	RedisPw      *string
	ServerAddr   *string
	ConfigPath   *string
}

// NewManager creates a new instance of Manager and loads the configuration automatically
func NewManager() (*Manager, error) {
	manager := &Manager{envVars: make(map[string]string)}
	if err := manager.LoadEnvFile(".env"); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := manager.LoadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return manager, nil
}

// LoadConfig populates the embedded AppEnvConfig fields from environment variables
func (m *Manager) LoadConfig() error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	geminiKey := m.GetOrDefault("GEMINI_API_KEY", "")
	geminiModel := m.GetOrDefault("GEMINI_MODEL", "gemini-2.0-flash")
	redisHost := m.GetOrDefault("REDIS_HOST", "localhost")
	redisPort := m.GetOrDefault("REDIS_PORT", "6379")
	redisUser := m.GetOrDefault("REDIS_USER", "")
	redisPw := m.GetOrDefault("REDIS_PW", "")
	redisDB, _ := strconv.Atoi(m.GetOrDefault("REDIS_DB", "0"))
	serverAddr := m.GetOrDefault("SERVER_ADDR", ":8002")
	configPath := m.GetOrDefault("CONFIG_PATH", "config.yaml")

	m.AppEnvConfig = AppEnvConfig{
		GeminiAPIKey: &geminiKey,
		GeminiModel:  &geminiModel,
		RedisHost:    &redisHost,
		RedisPort:    &redisPort,
		RedisDb:      &redisDB,
		RedisUser:    &redisUser,
		RedisPw:      &redisPw,
		ServerAddr:   &serverAddr,
		ConfigPath:   &configPath,
	}

	return nil
}

// LoadEnvFile loads environment variables from a file. Process environment
// still wins for keys set both ways, and a missing file is not an error.
func (m *Manager) LoadEnvFile(filePath string) error {
	if err := validateFilePath(filePath); err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}

	tempVars := make(map[string]string)

	file, err := os.Open(filePath)
	if err == nil {
		defer file.Close()
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			if err := m.processLine(scanner.Text(), tempVars); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("error reading .env file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("could not open .env file: %w", err)
	}

	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 && parts[1] != "" {
			tempVars[parts[0]] = parts[1]
		}
	}

	m.mutex.Lock()
	m.envVars = tempVars
	m.mutex.Unlock()
	return nil
}

// Get retrieves a value from the environment variables
func (m *Manager) Get(key string) (string, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	value, exists := m.envVars[key]
	return value, exists
}

// GetOrDefault retrieves a value, falling back when it is unset or empty
func (m *Manager) GetOrDefault(key, def string) string {
	if value, exists := m.Get(key); exists && value != "" {
		return value
	}
	return def
}

// MustGet retrieves a value and panics if it doesn't exist
func (m *Manager) MustGet(key string) string {
	value, exists := m.Get(key)
	if !exists {
		panic(fmt.Sprintf("required environment variable %s not found", key))
	}
	return value
}

func (m *Manager) processLine(line string, tempVars map[string]string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format for line: %s", line)
	}

	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])

	if err := validateKeyValue(key, value); err != nil {
		return fmt.Errorf("invalid key-value pair: %w", err)
	}

	tempVars[key] = value
	return nil
}
