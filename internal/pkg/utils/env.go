package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

func getEnv(key string, defaultValue interface{}) interface{} {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}

	var (
		parsed interface{}
		err    error
	)
	switch defaultValue.(type) {
	case string:
		return value
	case int:
		parsed, err = strconv.Atoi(value)
	case int64:
		parsed, err = strconv.ParseInt(value, 10, 64)
	case bool:
		parsed, err = strconv.ParseBool(value)
	case float64:
		parsed, err = strconv.ParseFloat(value, 64)
	default:
		return defaultValue
	}

	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue).(string)
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue).(int)
}

func GetEnvInt64(key string, defaultValue int64) int64 {
	return getEnv(key, defaultValue).(int64)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue).(bool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return getEnv(key, defaultValue).(float64)
}

// GetEnvStringSlice reads a comma separated list, dropping blank entries.
func GetEnvStringSlice(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	items := SplitAndTrim(value)
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func SplitAndTrim(value string) []string {
	return TrimNonEmpty(strings.Split(value, ","))
}
