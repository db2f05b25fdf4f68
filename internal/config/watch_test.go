package config

import (
	"path/filepath"
	"testing"
	"time"
)

func waitReload(t *testing.T, w *Watcher) Reload {
	t.Helper()
	select {
	case r := <-w.Reloads():
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return Reload{}
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keychord.toml")
	writeFile(t, path, "[dispatcher]\nactive_set = \"one\"\n")

	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { w.Close() })

	writeFile(t, path, "[dispatcher]\nactive_set = \"two\"\n")

	r := waitReload(t, w)
	if r.Err != nil {
		t.Fatalf("reload error: %v", r.Err)
	}
	if r.Config.Dispatcher.ActiveSet != "two" {
		t.Errorf("active_set: got %q, want two", r.Config.Dispatcher.ActiveSet)
	}
}

func TestWatch_ReportsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keychord.toml")
	writeFile(t, path, "[dispatcher]\n")

	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { w.Close() })

	writeFile(t, path, "[dispatcher]\nfire_policy = \"never\"\n")

	r := waitReload(t, w)
	if r.Err == nil {
		t.Fatal("expected validation error")
	}
	if r.Config != nil {
		t.Error("config should be nil on error")
	}
}

func TestWatch_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keychord.toml")
	writeFile(t, path, "")

	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Reloads(); ok {
		t.Error("reloads channel should be closed")
	}
}
