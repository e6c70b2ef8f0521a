package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

const (
	appName         = "redsaved"
	projectFileStem = ".redsaved"
	userFileStem    = "config"
)

var keybindingExtensions = []string{".yaml", ".yml", ".toml", ".json"}

// For mocking in tests
var osGetwd = os.Getwd
var osUserHomeDir = os.UserHomeDir

// Binding is one configured key action. Exactly one of Args or Pipe is
// expected; the dispatcher rejects anything else.
type Binding struct {
	Cmd  string   `yaml:"cmd" toml:"cmd" json:"cmd"`
	Args []string `yaml:"args" toml:"args" json:"args"`
	Pipe string   `yaml:"pipe" toml:"pipe" json:"pipe"`
}

// Keybindings is the decoded keybinding file. Source is empty when no file
// was found.
type Keybindings struct {
	Bindings map[string]Binding `yaml:"keybindings" toml:"keybindings" json:"keybindings"`
	Source   string             `yaml:"-" toml:"-" json:"-"`
}

// KeybindingCandidates lists the discovery order: dotfiles in workDir first,
// then files under the user configuration directory.
func KeybindingCandidates(workDir, configHome string) []string {
	out := make([]string, 0, 2*len(keybindingExtensions))
	if workDir != "" {
		for _, ext := range keybindingExtensions {
			out = append(out, filepath.Join(workDir, projectFileStem+ext))
		}
	}
	if configHome != "" {
		for _, ext := range keybindingExtensions {
			out = append(out, filepath.Join(configHome, appName, userFileStem+ext))
		}
	}
	return out
}

// LoadKeybindings reads explicitPath when set (it must exist), otherwise the
// first discovered candidate. Finding nothing is not an error.
func LoadKeybindings(explicitPath string) (Keybindings, error) {
	if explicitPath != "" {
		return ReadKeybindings(explicitPath)
	}

	workDir, err := osGetwd()
	if err != nil {
		workDir = ""
	}
	for _, candidate := range KeybindingCandidates(workDir, userConfigHome()) {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		return ReadKeybindings(candidate)
	}
	return Keybindings{Bindings: map[string]Binding{}}, nil
}

func ReadKeybindings(path string) (Keybindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Keybindings{}, fmt.Errorf("keybindings file not found: %s", path)
		}
		return Keybindings{}, fmt.Errorf("read keybindings file: %w", err)
	}

	kb, err := decodeKeybindings(path, data)
	if err != nil {
		return Keybindings{}, fmt.Errorf("parse keybindings file %s: %w", path, err)
	}
	if kb.Bindings == nil {
		kb.Bindings = map[string]Binding{}
	}
	kb.Source = path
	return kb, nil
}

func decodeKeybindings(path string, data []byte) (Keybindings, error) {
	var kb Keybindings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &kb); err != nil {
			return Keybindings{}, err
		}
	case ".json":
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return Keybindings{}, err
		}
		if err := json.Unmarshal(standardized, &kb); err != nil {
			return Keybindings{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &kb); err != nil {
			return Keybindings{}, err
		}
	}
	return kb, nil
}

func userConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := osUserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}
