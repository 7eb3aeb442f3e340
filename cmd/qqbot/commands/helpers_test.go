package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// execute runs the root command with args and returns what it printed.
// Flag values left over from earlier runs are reset first.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	resetFlags(rootCmd)
	prev := slog.Default()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		slog.SetDefault(prev)
		if err := closeLogFile(); err != nil {
			t.Error(err)
		}
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// inTempDir switches to a fresh working directory with no config files
// visible through QQBOT_CONFIG or the user config directory.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	// Registered before Setenv so it runs after the environment is restored.
	t.Cleanup(xdg.Reload)
	t.Setenv("QQBOT_CONFIG", "")
	t.Setenv("QQBOT_DEBUG", "")
	t.Setenv("QQBOT_LOG_FORMAT", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	xdg.Reload()
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const testConfig = `[DEFAULT]
chat_enabled = True
share_enabled = False
remember_enabled = yes

[PERSONAL]
account = 10001
password = hunter2hunter2

[CHATBOT]
bot_name = mtdhb
need_train = False
train_data = corpus.yml
`
