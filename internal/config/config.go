package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	AppDirName            = "tasklist"
	ConfigEnv             = "TASKLIST_CONFIG"
)

const (
	DragMatchID   = "id"
	DragMatchName = "name"
)

type Keymap struct {
	Quit         string `toml:"quit"`
	Add          string `toml:"add"`
	Edit         string `toml:"edit"`
	Delete       string `toml:"delete"`
	Clear        string `toml:"clear"`
	Up           string `toml:"up"`
	Down         string `toml:"down"`
	Toggle       string `toml:"toggle"`
	Expand       string `toml:"expand"`
	Grab         string `toml:"grab"`
	FilterAll    string `toml:"filter_all"`
	FilterOpen   string `toml:"filter_open"`
	FilterDone   string `toml:"filter_done"`
	FilterNext   string `toml:"filter_next"`
	Confirm      string `toml:"confirm"`
	Save         string `toml:"save"`
	Cancel       string `toml:"cancel"`
	NextField    string `toml:"next_field"`
	PrevField    string `toml:"prev_field"`
	PriorityUp   string `toml:"priority_up"`
	PriorityDown string `toml:"priority_down"`
	DueForward   string `toml:"due_forward"`
	DueBack      string `toml:"due_back"`
}

type Icons struct {
	Add      string `toml:"add"`
	Edit     string `toml:"edit"`
	Delete   string `toml:"delete"`
	Handle   string `toml:"handle"`
	Expand   string `toml:"expand"`
	Collapse string `toml:"collapse"`
}

type Config struct {
	DefaultFilter string `toml:"default_filter"`
	DragMatch     string `toml:"drag_match"`
	Stylesheet    string `toml:"stylesheet"`
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	Keys          Keymap `toml:"keys"`
	Icons         Icons  `toml:"icons"`
}

// ResolveConfigPath prefers $TASKLIST_CONFIG, then the user config dir,
// then the working directory.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigEnv)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppDirName, DefaultConfigFileName)
}

// Load reads the config at path over the defaults. A missing file is not
// an error; nothing is ever written back.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := Default()
	switch strings.ToLower(strings.TrimSpace(c.DragMatch)) {
	case DragMatchName:
		c.DragMatch = DragMatchName
	default:
		c.DragMatch = DragMatchID
	}
	if c.DefaultFilter == "" {
		c.DefaultFilter = def.DefaultFilter
	}
	fillEmpty(&c.Icons.Add, def.Icons.Add)
	fillEmpty(&c.Icons.Edit, def.Icons.Edit)
	fillEmpty(&c.Icons.Delete, def.Icons.Delete)
	fillEmpty(&c.Icons.Handle, def.Icons.Handle)
	fillEmpty(&c.Icons.Expand, def.Icons.Expand)
	fillEmpty(&c.Icons.Collapse, def.Icons.Collapse)
}

func fillEmpty(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func Default() Config {
	return Config{
		DefaultFilter: "all",
		DragMatch:     DragMatchID,
		LogLevel:      "info",
		Keys: Keymap{
			Quit:         "q",
			Add:          "a",
			Edit:         "e",
			Delete:       "d",
			Clear:        "C",
			Up:           "k",
			Down:         "j",
			Toggle:       " ",
			Expand:       "enter",
			Grab:         "m",
			FilterAll:    "1",
			FilterOpen:   "2",
			FilterDone:   "3",
			FilterNext:   "f",
			Confirm:      "enter",
			Save:         "ctrl+s",
			Cancel:       "esc",
			NextField:    "tab",
			PrevField:    "shift+tab",
			PriorityUp:   "+",
			PriorityDown: "-",
			DueForward:   "]",
			DueBack:      "[",
		},
		Icons: Icons{
			Add:      "+",
			Edit:     "✎",
			Delete:   "✗",
			Handle:   "≡",
			Expand:   "▼",
			Collapse: "▲",
		},
	}
}
