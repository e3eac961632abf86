// internal/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/OsbornePro/skypelogin/internal/layout"
	"gopkg.in/yaml.v3"
)

// Points are the client-area coordinates clicked on the way to the
// credential fields.
type Points struct {
	Start        layout.Point `json:"start" yaml:"start"`
	Middle       layout.Point `json:"middle" yaml:"middle"`
	OtherAccount layout.Point `json:"other_account" yaml:"other_account"`
	StartOrBuild layout.Point `json:"start_or_build" yaml:"start_or_build"`
	AccountInput layout.Point `json:"account_input" yaml:"account_input"`
}

// Delays in milliseconds between steps of the login sequence.
type Delays struct {
	Settle       int `json:"settle_ms" yaml:"settle_ms"`               // after the new window appears
	Foreground   int `json:"foreground_ms" yaml:"foreground_ms"`       // after first foregrounding
	LayoutCheck  int `json:"layout_check_ms" yaml:"layout_check_ms"`   // before measuring the layout
	Resize       int `json:"resize_ms" yaml:"resize_ms"`               // after shrinking the window
	BeforeClicks int `json:"before_clicks_ms" yaml:"before_clicks_ms"` // before the click sequence
	Navigate     int `json:"navigate_ms" yaml:"navigate_ms"`           // after navigation clicks
	FocusInput   int `json:"focus_input_ms" yaml:"focus_input_ms"`     // after focusing the account field
	BetweenField int `json:"between_field_ms" yaml:"between_field_ms"` // between account and password
	Erase        int `json:"erase_ms" yaml:"erase_ms"`                 // around the backspace burst
	Verify       int `json:"verify_ms" yaml:"verify_ms"`               // before checking the result
	InnerSettle  int `json:"inner_settle_ms" yaml:"inner_settle_ms"`   // after the inner widget appears
}

type Config struct {
	// Executable is the Skype.exe path. Empty means ask with a file dialog.
	Executable        string `json:"executable" yaml:"executable"`
	InitialDir        string `json:"initial_dir" yaml:"initial_dir"`
	ExecutablePattern string `json:"executable_pattern" yaml:"executable_pattern"`
	SecondaryFlag     string `json:"secondary_flag" yaml:"secondary_flag"`

	TitlePattern string `json:"title_pattern" yaml:"title_pattern"`
	ClassPattern string `json:"class_pattern" yaml:"class_pattern"`

	PollIntervalMs int `json:"poll_interval_ms" yaml:"poll_interval_ms"`
	PollAttempts   int `json:"poll_attempts" yaml:"poll_attempts"`

	Layout layout.Reference `json:"layout" yaml:"layout"`
	Points Points           `json:"points" yaml:"points"`
	Delays Delays           `json:"delays" yaml:"delays"`

	// Input
	InputBackend string `json:"input_backend" yaml:"input_backend"` // "message" (default) or "robotgo"
	ClickPaceMs  int    `json:"click_pace_ms" yaml:"click_pace_ms"`

	// If set, a PNG of the window is written here when login fails.
	FailureScreenshotDir string `json:"failure_screenshot_dir" yaml:"failure_screenshot_dir"`

	// --------------------
	// Logging (optional)
	// --------------------
	// If LogFile is set, logs go to that file (with rotation).
	// Else if LogDir is set, logs go to LogDir/skypelogin.log (with rotation).
	LogFile     string `json:"log_file" yaml:"log_file"`
	LogDir      string `json:"log_dir" yaml:"log_dir"`
	LogRotateMB int    `json:"log_rotate_mb" yaml:"log_rotate_mb"` // default 10
	LogKeep     int    `json:"log_keep" yaml:"log_keep"`           // default 10
	LogStderr   *bool  `json:"log_stderr" yaml:"log_stderr"`       // default true
	LogRedact   *bool  `json:"log_redact" yaml:"log_redact"`       // default true
	LogLevel    string `json:"log_level" yaml:"log_level"`         // default info
	EventLog    bool   `json:"event_log" yaml:"event_log"`
}

const (
	defaultYAML = "skypelogin.yaml"
	defaultYML  = "skypelogin.yml"
	defaultJSON = "skypelogin.json"

	DefaultInitialDir = `C:\Program Files (x86)\Microsoft\Skype for Desktop`
)

// Load reads the config at path. An empty path picks the first default file
// present in the working directory; if none exists, defaults are returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = pickConfigPath()
	}

	c := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, c); err != nil {
			return nil, err
		}
	case !explicit && errors.Is(err, os.ErrNotExist):
		// no config file; defaults only
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	c.ApplyDefaults()
	return c, nil
}

func decode(path string, data []byte, c *Config) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config extension %q (use .json/.yaml/.yml)", ext)
	}
	return nil
}

func pickConfigPath() string {
	if fileExists(defaultYAML) {
		return defaultYAML
	}
	if fileExists(defaultYML) {
		return defaultYML
	}
	return defaultJSON
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ApplyDefaults fills every unset field with the Skype for Desktop 8.x values.
func (c *Config) ApplyDefaults() {
	if c.InitialDir == "" {
		c.InitialDir = DefaultInitialDir
	}
	if c.ExecutablePattern == "" {
		c.ExecutablePattern = `^Skype\.exe$`
	}
	if c.SecondaryFlag == "" {
		c.SecondaryFlag = "--secondary"
	}
	if c.TitlePattern == "" {
		c.TitlePattern = `^Skype`
	}
	if c.ClassPattern == "" {
		c.ClassPattern = `^Chrome_WidgetWin_1`
	}

	if c.PollIntervalMs == 0 {
		c.PollIntervalMs = 1000
	}
	if c.PollAttempts == 0 {
		c.PollAttempts = 31
	}

	def := layout.Default()
	if c.Layout.LoginWidth == 0 {
		c.Layout.LoginWidth = def.LoginWidth
	}
	if c.Layout.Tolerance == 0 {
		c.Layout.Tolerance = def.Tolerance
	}
	if c.Layout.Compact == (layout.Size{}) {
		c.Layout.Compact = def.Compact
	}
	if c.Layout.Restore == (layout.Size{}) {
		c.Layout.Restore = def.Restore
	}

	setPoint(&c.Points.Start, 227, 500)
	setPoint(&c.Points.Middle, 2250, 460)
	setPoint(&c.Points.OtherAccount, 224, 402)
	setPoint(&c.Points.StartOrBuild, 226, 375)
	setPoint(&c.Points.AccountInput, 80, 210)

	setMs(&c.Delays.Settle, 3000)
	setMs(&c.Delays.Foreground, 500)
	setMs(&c.Delays.LayoutCheck, 3000)
	setMs(&c.Delays.Resize, 1000)
	setMs(&c.Delays.BeforeClicks, 3000)
	setMs(&c.Delays.Navigate, 1000)
	setMs(&c.Delays.FocusInput, 1000)
	setMs(&c.Delays.BetweenField, 1000)
	setMs(&c.Delays.Erase, 200)
	setMs(&c.Delays.Verify, 3000)
	setMs(&c.Delays.InnerSettle, 1000)

	if c.InputBackend == "" {
		c.InputBackend = "message"
	}
	if c.ClickPaceMs == 0 {
		c.ClickPaceMs = 200
	}

	// Logging defaults
	if c.LogRotateMB == 0 {
		c.LogRotateMB = 10
	}
	if c.LogKeep == 0 {
		c.LogKeep = 10
	}
	if c.LogStderr == nil {
		v := true
		c.LogStderr = &v
	}
	if c.LogRedact == nil {
		v := true
		c.LogRedact = &v
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// PollInterval is PollIntervalMs as a duration.
func (c *Config) PollInterval() time.Duration { return Ms(c.PollIntervalMs) }

// ClickPace is ClickPaceMs as a duration.
func (c *Config) ClickPace() time.Duration { return Ms(c.ClickPaceMs) }

// Ms converts a millisecond count to a duration. Negative values mean zero.
func Ms(v int) time.Duration {
	if v < 0 {
		return 0
	}
	return time.Duration(v) * time.Millisecond
}

// BoolDeref returns *ptr, or def when ptr is nil.
func BoolDeref(ptr *bool, def bool) bool {
	if ptr == nil {
		return def
	}
	return *ptr
}

func setPoint(p *layout.Point, x, y int) {
	if *p == (layout.Point{}) {
		*p = layout.Point{X: x, Y: y}
	}
}

// A negative delay disables the pause; zero takes the default.
func setMs(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
