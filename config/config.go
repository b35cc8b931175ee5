package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// AppName names the config file, the config directories and the env prefix.
const AppName = "triptui"

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "INR"

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug" json:"debug"`
	// Backend selects where trips are stored: file, sqlite or memory
	Backend string `toml:"backend" mapstructure:"backend" json:"backend"`
	// DataFile is the path of the trips file or database
	DataFile string `toml:"data_file" mapstructure:"data_file" json:"data_file"`
	// Currency is the ISO 4217 code amounts are displayed in
	Currency string `toml:"currency" mapstructure:"currency" json:"currency"`
	// Watch reloads the TUI when the data file changes on disk
	Watch bool `toml:"watch" mapstructure:"watch" json:"watch"`
	// Colors overrides the theme
	Colors Colors `toml:"colors" mapstructure:"colors" json:"colors"`
}

// Colors holds theme overrides. Values are hex ("#ff0000") or ANSI ("21") colors.
type Colors struct {
	Primary       string `toml:"primary,omitempty" mapstructure:"primary" json:"primary,omitempty"`
	Error         string `toml:"error,omitempty" mapstructure:"error" json:"error,omitempty"`
	Success       string `toml:"success,omitempty" mapstructure:"success" json:"success,omitempty"`
	Muted         string `toml:"muted,omitempty" mapstructure:"muted" json:"muted,omitempty"`
	Border        string `toml:"border,omitempty" mapstructure:"border" json:"border,omitempty"`
	Text          string `toml:"text,omitempty" mapstructure:"text" json:"text,omitempty"`
	SecondaryText string `toml:"secondary_text,omitempty" mapstructure:"secondary_text" json:"secondary_text,omitempty"`
	Cursor        string `toml:"cursor,omitempty" mapstructure:"cursor" json:"cursor,omitempty"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Backend:  "file",
		DataFile: DefaultDataFile(),
		Currency: DefaultCurrency,
		Watch:    true,
	}
}

// DefaultDataFile is trips.json in the user data directory, falling back to the
// working directory.
func DefaultDataFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName, "trips.json")
	}
	return "trips.json"
}

// SearchPaths returns the directories searched for triptui.toml, in order of
// precedence (first found wins).
func SearchPaths() []string {
	// Current directory (highest precedence)
	paths := []string{"."}

	// User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, AppName))
	}

	// User home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, homeDir, filepath.Join(homeDir, ".config", AppName))
	}

	// System-wide config directory (lowest precedence)
	paths = append(paths, filepath.Join("/etc", AppName))

	return paths
}

// DefaultPath is where `config init` writes when no path is given.
func DefaultPath() string {
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, AppName, AppName+".toml")
	}
	return AppName + ".toml"
}

// Marshal renders cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// LoadFile reads a TOML config file on top of the defaults. Keys that do not
// name a setting are an error.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config file %s has unknown settings:\n%s", path, strict.String())
		}
		return Config{}, fmt.Errorf("failed to parse TOML config file %s: %w", path, err)
	}

	return cfg, nil
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func valueOrUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

// Rows returns the settings as setting/value/description rows.
func Rows(config Config) [][]string {
	return [][]string{
		{"debug", strconv.FormatBool(config.Debug), "Enable debug logging"},
		{"backend", valueOrUnset(config.Backend), "Storage backend: file, sqlite or memory"},
		{"data_file", valueOrUnset(config.DataFile), "Trips file or database path"},
		{"currency", valueOrUnset(config.Currency), "Currency amounts are shown in"},
		{"watch", strconv.FormatBool(config.Watch), "Reload when the data file changes"},
		{"colors.primary", valueOrUnset(config.Colors.Primary), "Primary theme color"},
		{"colors.cursor", valueOrUnset(config.Colors.Cursor), "Grid cursor color"},
	}
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	var rows []table.Row
	for _, r := range Rows(config) {
		rows = append(rows, table.Row(r))
	}
	m.configTable.SetRows(rows)
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
