package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gitignoreEntry keeps the log and session directory out of version control.
const gitignoreEntry = ".keychord/"

// InitFile writes a commented keychord.toml into dir. It refuses to
// overwrite an existing file.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileNames[0])
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileNames[0], path)
	}
	if err := os.WriteFile(path, []byte(initTemplate), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

// ScaffoldProject creates keychord.toml and makes sure .gitignore excludes
// the .keychord/ directory. Files that already exist are left untouched.
// Returns the list of created or modified paths.
func ScaffoldProject(dir string) ([]string, error) {
	var created []string

	tomlPath := filepath.Join(dir, FileNames[0])
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		if _, initErr := InitFile(dir); initErr != nil {
			return created, initErr
		}
		created = append(created, tomlPath)
	}

	gitignorePath := filepath.Join(dir, ".gitignore")
	existing, err := os.ReadFile(gitignorePath)
	switch {
	case os.IsNotExist(err):
		if writeErr := os.WriteFile(gitignorePath, []byte(gitignoreEntry+"\n"), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", gitignorePath, writeErr)
		}
		created = append(created, gitignorePath)
	case err != nil:
		return created, fmt.Errorf("scaffold: read %s: %w", gitignorePath, err)
	case !strings.Contains(string(existing), gitignoreEntry):
		content := string(existing)
		if len(content) > 0 && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += gitignoreEntry + "\n"
		if writeErr := os.WriteFile(gitignorePath, []byte(content), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", gitignorePath, writeErr)
		}
		created = append(created, gitignorePath)
	}

	return created, nil
}

const initTemplate = `# keychord.toml: chord dispatcher configuration.
# Place this file in the root of your project.

[dispatcher]
enabled = true
fire_policy = "repeat"      # "repeat" fires on every qualifying keydown; "edge" once per hold
release_on_disable = false  # forget held keys when the dispatcher is disabled
release_on_blur = true      # forget held keys when the terminal loses focus
active_set = ""             # set evaluated alongside "default" at startup

[log]
level = "info"              # trace, debug, info, warn, error, off
format = "console"          # console or json
file = ".keychord/chord.log"

[session]
dir = ".keychord/sessions"
retention = 20              # number of session logs to keep; 0 = unlimited

[tui]
accent_color = "#7D56F4"
latch = false               # true: each key press toggles the key's held state

[notifications]
url = ""                    # ntfy.sh topic URL or any HTTP webhook (empty = disabled)
on_fire = true

# A chord is a list of key codes: 16 = Shift, 17 = Ctrl, 18 = Alt,
# 27 = Escape, 48-57 = 0-9, 65-90 = A-Z, 112-123 = F1-F12.
# target scopes a command to one panel: "log" or "sets" (empty = everywhere).

[[commands]]
chord = [17, 83]            # Ctrl+S
action = "echo"
arg = "saved"

[[commands]]
chord = [17, 69]            # Ctrl+E
action = "activate"
arg = "edit"

[[commands]]
chord = [68]                # D
action = "echo"
arg = "sets panel only"
target = "sets"

[[commands]]
set = "edit"
chord = [27]                # Escape
action = "deactivate"

[[commands]]
chord = [17, 81]            # Ctrl+Q
action = "quit"
`
