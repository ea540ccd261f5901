// Package env keeps names of environment variables with special significance
// to the wcwidth program.
package env

// Environment variables with special significance to the wcwidth program.
const (
	HOME            = "HOME"
	WCWIDTH_DB      = "WCWIDTH_DB"
	WCWIDTH_RC      = "WCWIDTH_RC"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	XDG_STATE_HOME  = "XDG_STATE_HOME"
)
