package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDir_Default(t *testing.T) {
	t.Setenv("NAMEFINDER_CONFIG_DIR", "")
	os.Unsetenv("NAMEFINDER_CONFIG_DIR")

	dir := Dir()
	if !strings.HasSuffix(dir, filepath.Join(".config", "namefinder")) {
		t.Errorf("Dir() = %q, want suffix .config/namefinder", dir)
	}
}

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("NAMEFINDER_CONFIG_DIR", "/tmp/test-namefinder")

	dir := Dir()
	if dir != "/tmp/test-namefinder" {
		t.Errorf("Dir() = %q, want /tmp/test-namefinder", dir)
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("NAMEFINDER_CONFIG_DIR", "")
	f := ConfigFile()
	if !strings.HasSuffix(f, filepath.Join("namefinder", "config.yaml")) {
		t.Errorf("ConfigFile() = %q, want suffix namefinder/config.yaml", f)
	}
}

func TestLogFile(t *testing.T) {
	t.Setenv("NAMEFINDER_CONFIG_DIR", "/tmp/nf")
	if got := LogFile(); got != filepath.Join("/tmp/nf", "namefinder.log") {
		t.Errorf("LogFile() = %q", got)
	}
}
