package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/tileworld/logger"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun(t *testing.T) {
	cases := []struct {
		name     string
		world    string
		spawn    string
		wantOK   bool
		contains string
	}{
		{
			name:     "clean",
			world:    "0,0,0,0,0,assets/tiles.png,0,0,0,0\n16,0,64,0,1,assets/tiles.png,0,0,0,0\n",
			spawn:    "64,0",
			wantOK:   true,
			contains: "spawn (64,0) is clear",
		},
		{
			name:     "skipped_lines",
			world:    "0,0,0,0,0,assets/tiles.png,0,0,0,0\nnot a tile\n",
			wantOK:   false,
			contains: "1 lines skipped",
		},
		{
			name:     "spawn_in_wall",
			world:    "0,0,0,0,0,assets/tiles.png,0,0,0,0\n",
			spawn:    "10 10",
			wantOK:   false,
			contains: "overlaps wall at (0,0)",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			world := writeFile(t, dir, "world.txt", c.world)
			spawn := ""
			if c.spawn != "" {
				spawn = writeFile(t, dir, "spawn.txt", c.spawn)
			}
			var out bytes.Buffer
			ok, err := run(&out, checkOptions{World: world, Spawn: spawn})
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v\n%s", ok, c.wantOK, out.String())
			}
			if !strings.Contains(out.String(), c.contains) {
				t.Fatalf("output missing %q:\n%s", c.contains, out.String())
			}
		})
	}
}

func TestRunRewriteNormalises(t *testing.T) {
	dir := t.TempDir()
	world := writeFile(t, dir, "world.txt", "16.00,0.00,32.00,0.00,1,assets/tiles.png\n0,0,0,0,0,assets/tiles.png,0,0,0,0\n")
	target := filepath.Join(dir, "out.txt")

	var out bytes.Buffer
	if _, err := run(&out, checkOptions{World: world, Rewrite: target}); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read rewrite: %v", err)
	}
	want := "0,0,0,0,0,assets/tiles.png,0,0,0,0\n16,0,32,0,1,assets/tiles.png,0,0,0,0\n"
	if string(data) != want {
		t.Fatalf("rewrite = %q, want %q", data, want)
	}
}

func TestRunMissingWorld(t *testing.T) {
	var out bytes.Buffer
	if _, err := run(&out, checkOptions{World: filepath.Join(t.TempDir(), "none.txt")}); err == nil {
		t.Fatalf("expected error for a missing world")
	}
}

func TestRunCategoryFilter(t *testing.T) {
	dir := t.TempDir()
	world := writeFile(t, dir, "world.txt",
		"0,0,0,0,0,assets/tiles.png,0,0,0,0\n0,0,32,0,3,assets/buffs.png,0,0,0,0\n")

	var out bytes.Buffer
	if _, err := run(&out, checkOptions{World: world, Categories: "health_buff, wall"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	report := out.String()
	for _, want := range []string{"health_buff", "wall"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "floor") {
		t.Fatalf("filtered report should not list floor:\n%s", report)
	}

	if _, err := run(&out, checkOptions{World: world, Categories: "lava"}); err == nil {
		t.Fatalf("expected error for an unknown category name")
	}
}
