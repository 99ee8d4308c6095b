package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`

	RedisHost     string `yaml:"redis_host"`
	RedisPassword string `yaml:"redis_password"`

	BaseUrl string `yaml:"base_url"`
	JWTKey  string `yaml:"jwt_key"`

	// LateGraceMinutes is added to the assigned shift start before a clock-in
	// is marked late.
	LateGraceMinutes int `yaml:"late_grace_minutes"`

	// HalfDayMaxHours controls the half-day leave rule: a single-day request
	// covering this many hours or fewer counts as 0.5 day.
	HalfDayMaxHours int `yaml:"half_day_max_hours"`
}

func NewConfig() (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}

	if c.LateGraceMinutes == 0 {
		c.LateGraceMinutes = 10
	}
	if c.HalfDayMaxHours == 0 {
		c.HalfDayMaxHours = 4
	}

	return &c, nil
}
