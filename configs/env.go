package configs

import (
	_ "embed"

	"github.com/spf13/viper"
)

// ApplicationYAML is the default properties file, used when PROPERTIES_FILE_PATH is not set.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the default message catalog, used when MESSAGES_FILE_PATH is not set.
//
//go:embed messages.yml
var MessagesYAML []byte

type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	MessagesFilePath   string
}

// LoadEnv reads the process level settings that decide where the rest of the configuration comes from.
func LoadEnv() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:    getStringOrDefault(v, "APPLICATION_NAME", "todo-api"),
		PropertiesFilePath: v.GetString("PROPERTIES_FILE_PATH"),
		MessagesFilePath:   v.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
