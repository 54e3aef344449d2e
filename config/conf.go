package config

import (
	"github.com/fatih/color"
)

var (
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Pink   = color.New(color.FgMagenta).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()

	SeverityMap = map[string]int{
		"critical": 5,
		"high":     4,
		"medium":   3,
		"moderate": 3,
		"low":      2,
		"info":     1,
	}

	// Pipelines are the scanning contexts a suppression config may be enabled for.
	Pipelines = []string{"audit", "advisory", "watchdog"}
)
