// util/cache_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func setCacheDir(t *testing.T) string {
	if runtime.GOOS != "linux" {
		t.Skip("cache dir can only be redirected via XDG_CACHE_HOME on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	return dir
}

type session struct {
	Values map[string]float64
	Active string
}

func TestCacheStoreRetrieve(t *testing.T) {
	setCacheDir(t)

	s := session{Values: map[string]float64{"gain": 1.25, "pan": -0.5}, Active: "gain"}
	if err := CacheStoreObject("session.msgpack.zst", s); err != nil {
		t.Fatalf("store: %v", err)
	}

	var r session
	mod, err := CacheRetrieveObject("session.msgpack.zst", &r)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if time.Since(mod) > time.Minute {
		t.Errorf("unexpected modification time %v", mod)
	}
	if r.Active != "gain" || len(r.Values) != 2 || r.Values["gain"] != 1.25 || r.Values["pan"] != -0.5 {
		t.Errorf("retrieved %+v, expected %+v", r, s)
	}

	if _, err := CacheRetrieveObject("missing", &r); err == nil {
		t.Errorf("expected error for missing object")
	}
}

func TestCacheCorruptObject(t *testing.T) {
	dir := setCacheDir(t)

	path := filepath.Join(dir, "Knobs", "bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not zstd"), 0644); err != nil {
		t.Fatal(err)
	}

	var r session
	if _, err := CacheRetrieveObject("bad", &r); err == nil {
		t.Errorf("expected error for corrupt object")
	}
}

func TestCacheCullObjects(t *testing.T) {
	dir := setCacheDir(t)

	for i, name := range []string{"a", "b", "c"} {
		if err := CacheStoreObject(name, make([]byte, 4096)); err != nil {
			t.Fatal(err)
		}
		mt := time.Now().Add(time.Duration(i-3) * time.Hour)
		if err := os.Chtimes(filepath.Join(dir, "Knobs", name), mt, mt); err != nil {
			t.Fatal(err)
		}
	}

	fi, err := os.Stat(filepath.Join(dir, "Knobs", "c"))
	if err != nil {
		t.Fatal(err)
	}
	if err := CacheCullObjects(fi.Size()); err != nil {
		t.Fatal(err)
	}

	for name, exists := range map[string]bool{"a": false, "b": false, "c": true} {
		_, err := os.Stat(filepath.Join(dir, "Knobs", name))
		if (err == nil) != exists {
			t.Errorf("%s: exists = %v, expected %v", name, err == nil, exists)
		}
	}
}

func TestSortedMapKeys(t *testing.T) {
	keys := SortedMapKeys(map[string]int{"pan": 1, "gain": 2, "mix": 3})
	if len(keys) != 3 || keys[0] != "gain" || keys[1] != "mix" || keys[2] != "pan" {
		t.Errorf("got %v", keys)
	}
	if Select(true, 1, 2) != 1 || Select(false, 1, 2) != 2 {
		t.Errorf("Select")
	}
}
