package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	want := []string{"render", "detect", "trace", "label", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "easel ") {
		t.Errorf("version output: got %q", out)
	}
}

func TestRenderTextEmitsHexFrame(t *testing.T) {
	out, err := execute(t, "render", "--text", "HELLO")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	frame := strings.TrimSpace(out)
	// 526x100 at 1bpp: 62 header+palette bytes plus 68-byte padded rows.
	wantBytes := 62 + 68*100
	if len(frame) != wantBytes*2 {
		t.Fatalf("hex frame length: got %d, want %d", len(frame), wantBytes*2)
	}
	if !strings.HasPrefix(frame, "424d") {
		t.Errorf("frame does not start with the BM magic: %q", frame[:8])
	}
}

func TestRenderRequiresInput(t *testing.T) {
	if _, err := execute(t, "render"); err == nil {
		t.Error("render without --template or --text accepted")
	}
}

func TestRenderTemplateValidation(t *testing.T) {
	if _, err := execute(t, "render", "--template", "hexagon"); err == nil {
		t.Error("unknown template name accepted")
	}
	if _, err := execute(t, "render", "--template", "circle"); err != nil {
		t.Errorf("circle template rejected: %v", err)
	}
}
