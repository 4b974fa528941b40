// Package config loads the planner settings from ini file.
package config

import (
	"time"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"diveplan/consumption"
	"diveplan/options"
	"diveplan/physics"
)

const DefaultPath = "conf/config.ini"

type Config struct {
	Options *options.Options
	Diver   consumption.Diver

	Addr        string        // websocket server
	ReloadDelay time.Duration // debounce of plan recalculation
	StorePath   string        // sqlite database of saved plans
	LogLevel    log.Level
}

func Default() *Config {
	return &Config{
		Options:     options.Default(),
		Diver:       consumption.DefaultDiver(),
		Addr:        ":9000",
		ReloadDelay: 100 * time.Millisecond,
		StorePath:   "plans.db",
		LogLevel:    log.InfoLevel,
	}
}

// Load falls back to defaults, if the file doesn't exist or can't be parsed.
func Load(path string) *Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path":  path,
			"error": err,
		}).Warn("unable to read config file, using defaults")
		return Default()
	}

	cfg, err := FromFile(file)
	if err != nil {
		log.WithField("error", err).Warn("invalid config, using defaults")
		return Default()
	}
	return cfg
}

// FromFile reads all sections, missing keys keep default values.
func FromFile(file *ini.File) (*Config, error) {
	cfg := Default()
	opts := cfg.Options

	planner := file.Section("planner")
	opts.MaxPpO2 = planner.Key("MaxPpO2").MustFloat64(opts.MaxPpO2)
	opts.MaxDecoPpO2 = planner.Key("MaxDecoPpO2").MustFloat64(opts.MaxDecoPpO2)
	opts.MaxEND = planner.Key("MaxEND").MustFloat64(opts.MaxEND)
	opts.OxygenNarcotic = planner.Key("OxygenNarcotic").MustBool(opts.OxygenNarcotic)
	opts.ProblemSolvingDuration = planner.Key("ProblemSolvingDuration").MustDuration(opts.ProblemSolvingDuration)
	opts.GasSwitchDuration = planner.Key("GasSwitchDuration").MustDuration(opts.GasSwitchDuration)
	opts.SafetyStop = options.ParseSafetyStop(planner.Key("SafetyStop").MustString(opts.SafetyStop.String()))
	opts.SafetyStopDepth = planner.Key("SafetyStopDepth").MustFloat64(opts.SafetyStopDepth)
	opts.SafetyStopDuration = planner.Key("SafetyStopDuration").MustDuration(opts.SafetyStopDuration)
	opts.AutoSafetyStopDepth = planner.Key("AutoSafetyStopDepth").MustFloat64(opts.AutoSafetyStopDepth)
	opts.DecoStopDistance = planner.Key("DecoStopDistance").MustFloat64(opts.DecoStopDistance)
	opts.DescentSpeed = planner.Key("DescentSpeed").MustFloat64(opts.DescentSpeed)
	opts.AscentSpeed50perc = planner.Key("AscentSpeed50perc").MustFloat64(opts.AscentSpeed50perc)
	opts.AscentSpeed50percTo6m = planner.Key("AscentSpeed50percTo6m").MustFloat64(opts.AscentSpeed50percTo6m)
	opts.AscentSpeed6m = planner.Key("AscentSpeed6m").MustFloat64(opts.AscentSpeed6m)
	opts.Salinity = physics.ParseSalinity(planner.Key("Salinity").MustString(opts.Salinity.String()))
	opts.Altitude = planner.Key("Altitude").MustFloat64(opts.Altitude)
	cfg.Diver.RMV = planner.Key("RMV").MustFloat64(cfg.Diver.RMV)

	cfg.Addr = file.Section("server").Key("Addr").MustString(cfg.Addr)
	cfg.ReloadDelay = file.Section("server").Key("ReloadDelay").MustDuration(cfg.ReloadDelay)
	cfg.StorePath = file.Section("store").Key("Path").MustString(cfg.StorePath)

	levelName := file.Section("log").Key("Level").MustString(cfg.LogLevel.String())
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, merry.Prepend(err, "log level")
	}
	cfg.LogLevel = level

	if err := opts.Validate(); err != nil {
		return nil, merry.Prepend(err, "planner")
	}
	if cfg.Diver.RMV <= 0 {
		return nil, merry.Errorf("RMV has to be positive, got %g", cfg.Diver.RMV)
	}
	return cfg, nil
}
