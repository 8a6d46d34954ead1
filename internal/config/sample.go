package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# osanpo configuration
version: "1.0"

ui:
  # Color theme: default, high-contrast, minimal, sakura
  theme: sakura
  # Screen shown at startup: dashboard, record, history, stats, settings.
  # Anything else opens the dashboard.
  initial_screen: dashboard
  # Label language: ja, en
  language: ja
  # Show emoji icons (false uses ASCII fallbacks)
  emoji: true
  # Color output: auto, always, never
  color_mode: auto
  # Click navigation entries with the mouse
  mouse: true

record:
  # Advance the walk clock once per tick while walking
  live_timer: false
  tick_interval: 1s
  # Make the toilet -/+ controls change the counters
  toilet_counters: false

output:
  # Format used by "osanpo show": text, json, markdown, csv
  default_format: text

logging:
  file: ~/.cache/osanpo/osanpo.log
  verbose: false
`
}

// MinimalSampleConfig returns a compact configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
ui:
  theme: sakura
  language: ja
record:
  live_timer: false
`
}
