package definitions

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps command keywords to a display icon. Keywords are matched as
// lowercase substrings of the launch command.
type Rule struct {
	Keywords []string `yaml:"keywords"`
	Icon     string   `yaml:"icon"`
}

// Rules is an ordered icon table; the first matching rule wins.
type Rules struct {
	Icons       []Rule `yaml:"icons"`
	DefaultIcon string `yaml:"default_icon"`
}

// Defaults returns the built-in icon table.
func Defaults() *Rules {
	return &Rules{
		Icons: []Rule{
			{Keywords: []string{"firefox", "chrome", "browser", "web"}, Icon: "🌐"},
			{Keywords: []string{"code", "editor", "vim", "atom", "sublime", "gedit"}, Icon: "💻"},
			{Keywords: []string{"music", "audio", "sound", "spotify", "rhythmbox"}, Icon: "🎵"},
			{Keywords: []string{"video", "player", "movie", "vlc", "mpv"}, Icon: "🎬"},
			{Keywords: []string{"chat", "message", "discord", "slack", "telegram", "signal"}, Icon: "💬"},
			{Keywords: []string{"terminal", "konsole", "gnome-terminal", "kitty", "alacritty"}, Icon: "⚡"},
			{Keywords: []string{"file", "manager", "nautilus", "dolphin", "thunar"}, Icon: "📁"},
			{Keywords: []string{"steam", "game", "gaming", "lutris"}, Icon: "🎮"},
			{Keywords: []string{"mail", "thunderbird", "evolution"}, Icon: "✉️"},
			{Keywords: []string{"image", "photo", "gimp", "inkscape", "krita"}, Icon: "🎨"},
			{Keywords: []string{"office", "libreoffice", "writer", "calc"}, Icon: "📄"},
			{Keywords: []string{"torrent", "transmission", "qbittorrent"}, Icon: "📥"},
			{Keywords: []string{"snap run"}, Icon: "📦"},
			{Keywords: []string{"flatpak run"}, Icon: "📦"},
		},
		DefaultIcon: "⚙️",
	}
}

// IconFor picks the display icon for a launch command.
func (r *Rules) IconFor(command string) string {
	lower := strings.ToLower(command)

	for _, rule := range r.Icons {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(lower, keyword) {
				return rule.Icon
			}
		}
	}

	if r.DefaultIcon != "" {
		return r.DefaultIcon
	}
	return "⚙️"
}

// Store loads icon rules from a YAML file.
type Store struct {
	path string
}

// NewStore creates a new icon rules store.
func NewStore(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the default icon rules path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "startmgr", "icons.yaml")
}

// Load returns the icon rules. A missing file yields the built-in table;
// a present file replaces it entirely.
func (s *Store) Load() (*Rules, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, err
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}

	rules.Icons = sanitizeRules(rules.Icons)
	if rules.DefaultIcon == "" {
		rules.DefaultIcon = "⚙️"
	}
	return &rules, nil
}

func sanitizeRules(rules []Rule) []Rule {
	cleaned := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		rule.Icon = strings.TrimSpace(rule.Icon)
		if rule.Icon == "" {
			continue
		}

		keywords := make([]string, 0, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		if len(keywords) == 0 {
			continue
		}

		rule.Keywords = keywords
		cleaned = append(cleaned, rule)
	}
	return cleaned
}
