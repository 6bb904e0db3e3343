package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const logLevelEnv = "GLTRIANGLE_LOGLEVEL"

// ConfigureLogging sets up the default logger. It must run before any
// renderer is created, since renderers copy the level when they are made.
func ConfigureLogging() {
	log.SetReportTimestamp(true)
	log.SetTimeFormat("0102 15:04:05.000000")
	log.SetReportCaller(true)

	level := log.InfoLevel
	if v := os.Getenv(logLevelEnv); v != "" {
		l, err := log.ParseLevel(strings.ToLower(v))
		if err != nil {
			log.Warn("unknown log level", "env", logLevelEnv, "value", v)
		} else {
			level = l
		}
	}
	log.SetLevel(level)
}
