package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Names of the variables fenderz reads.
const (
	SeedVar          = "FENDERZ_SEED"
	PhysicsConfigVar = "FENDERZ_PHYSICS_CONFIG"
	EngineConfigVar  = "FENDERZ_ENGINE_CONFIG"
	LogFileVar       = "FENDERZ_LOG_FILE"
)

// Load reads a dotenv file (KEY=VALUE per line, # comments, optional quotes) and sets any
// variable not already present in the environment. A missing file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func parseLine(raw string) (key, value string, ok bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// Overrides are the settings that may come from the environment.
type Overrides struct {
	// Seed is nil when FENDERZ_SEED is unset.
	Seed          *int64
	PhysicsConfig string
	EngineConfig  string
	LogFile       string
}

// Read collects Overrides from the current environment.
func Read() (Overrides, error) {
	o := Overrides{
		PhysicsConfig: os.Getenv(PhysicsConfigVar),
		EngineConfig:  os.Getenv(EngineConfigVar),
		LogFile:       os.Getenv(LogFileVar),
	}
	if s := strings.TrimSpace(os.Getenv(SeedVar)); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return o, fmt.Errorf("%s: %w", SeedVar, err)
		}
		o.Seed = &seed
	}
	return o, nil
}
