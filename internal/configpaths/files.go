package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "touchbridge"

// SystemConfigDir holds machine-wide configuration on unix systems.
const SystemConfigDir = "/etc/touchbridge"

// DefaultConfigDir returns the platform-specific configuration directory for touchbridge.
func DefaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", appName), nil
	}
	return "", errors.New("HOME not set")
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return os.MkdirAll(dir, 0o755)
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching loader by extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch ext := filepath.Ext(userPath); ext {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	addBase := func(dir, base string) {
		add(&jsonPaths, filepath.Join(dir, base+".json"))
		add(&yamlPaths, filepath.Join(dir, base+".yaml"))
		add(&yamlPaths, filepath.Join(dir, base+".yml"))
		add(&tomlPaths, filepath.Join(dir, base+".toml"))
	}

	// Working directory candidates
	wd, _ := os.Getwd()
	for _, base := range []string{appName, "run"} {
		addBase(wd, base)
	}

	if dir, err := DefaultConfigDir(); err == nil {
		for _, base := range []string{"config", "run"} {
			addBase(dir, base)
		}
	}

	if runtime.GOOS != "windows" {
		for _, base := range []string{"config", "run"} {
			addBase(SystemConfigDir, base)
		}
	}

	return
}
