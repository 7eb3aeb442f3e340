package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// withConfigHome points the XDG config home at dir for the duration of t.
func withConfigHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[DEFAULT]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConfigHome(t *testing.T) {
	got := ConfigHome()
	if got == "" {
		t.Error("ConfigHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ConfigHome() = %q, want absolute path", got)
	}
}

func TestUserConfigFile(t *testing.T) {
	got := UserConfigFile()
	want := filepath.Join(ConfigHome(), "qqbot", "qqbot.cfg")
	if got != want {
		t.Errorf("UserConfigFile() = %q, want %q", got, want)
	}
}

func TestResolveConfigFile(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		inCwd    bool
		inHome   bool
		want     func(home string) string
	}{
		{
			name:     "explicit path wins",
			explicit: "/etc/qqbot/custom.cfg",
			inCwd:    true,
			inHome:   true,
			want:     func(string) string { return "/etc/qqbot/custom.cfg" },
		},
		{
			name:   "working directory before user config",
			inCwd:  true,
			inHome: true,
			want:   func(string) string { return ConfigFileName },
		},
		{
			name:   "user config when working directory has none",
			inHome: true,
			want:   func(home string) string { return filepath.Join(home, "qqbot", "qqbot.cfg") },
		},
		{
			name: "falls back to working directory",
			want: func(string) string { return ConfigFileName },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			withConfigHome(t, home)
			t.Chdir(t.TempDir())

			if tt.inCwd {
				writeFile(t, ConfigFileName)
			}
			if tt.inHome {
				writeFile(t, filepath.Join(home, "qqbot", "qqbot.cfg"))
			}

			if got, want := ResolveConfigFile(tt.explicit), tt.want(home); got != want {
				t.Errorf("ResolveConfigFile(%q) = %q, want %q", tt.explicit, got, want)
			}
		})
	}
}

func TestResolveConfigFile_IgnoresDirectory(t *testing.T) {
	withConfigHome(t, t.TempDir())
	t.Chdir(t.TempDir())

	if err := os.Mkdir(ConfigFileName, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := ResolveConfigFile(""); got != ConfigFileName {
		t.Errorf("ResolveConfigFile() = %q, want %q", got, ConfigFileName)
	}
}
