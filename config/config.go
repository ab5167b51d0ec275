package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

// Duration is a time.Duration that unmarshals from YAML strings like "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: bad duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds the simulation parameters.
type Config struct {
	Floors           int      `yaml:"Floors"`
	Elevators        int      `yaml:"Elevators"`
	Strategy         string   `yaml:"Strategy"`
	FloorTravelTime  Duration `yaml:"FloorTravelTime"`
	DoorOpenDuration Duration `yaml:"DoorOpenDuration"`
}

func Default() Config {
	return Config{
		Floors:           6,
		Elevators:        2,
		Strategy:         "NearestElevator",
		FloorTravelTime:  Duration(1 * time.Second),
		DoorOpenDuration: Duration(3 * time.Second),
	}
}

// Load reads path into a Config on top of the defaults. A missing file is
// not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Floors < 2 {
		return fmt.Errorf("config: need at least 2 floors, have %d", c.Floors)
	}
	if c.Elevators < 1 {
		return fmt.Errorf("config: need at least 1 elevator, have %d", c.Elevators)
	}
	if c.Strategy == "" {
		return fmt.Errorf("config: strategy name is empty")
	}
	if c.FloorTravelTime < 0 || c.DoorOpenDuration < 0 {
		return fmt.Errorf("config: negative duration")
	}
	return nil
}
