package main

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/Mavwarf/mkicns/internal/bundle"
	"github.com/Mavwarf/mkicns/internal/config"
	"github.com/Mavwarf/mkicns/internal/generator"
	"github.com/Mavwarf/mkicns/internal/imagegen"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	opts := cliOptions{
		dir:    "build/icons",
		name:   "myapp",
		color:  "#ff6600",
		strict: true,
		native: true,
	}

	got := applyOverrides(cfg, opts)
	if got.IconsDir != "build/icons" {
		t.Errorf("IconsDir = %q", got.IconsDir)
	}
	if got.Name != "myapp" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Color != "#ff6600" {
		t.Errorf("Color = %q", got.Color)
	}
	if got.OnImageError != "abort" {
		t.Errorf("OnImageError = %q, want abort", got.OnImageError)
	}
	if got.Bundler != "native" {
		t.Errorf("Bundler = %q, want native", got.Bundler)
	}
}

func TestApplyOverridesKeepsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Name = "fromconfig"

	got := applyOverrides(cfg, cliOptions{})
	if got.Name != "fromconfig" {
		t.Errorf("Name = %q, want fromconfig", got.Name)
	}
	if got.OnImageError != "continue" {
		t.Errorf("OnImageError = %q, want continue", got.OnImageError)
	}
}

func TestPolicyFor(t *testing.T) {
	if policyFor("abort") != generator.PolicyAbort {
		t.Error(`policyFor("abort") != PolicyAbort`)
	}
	if policyFor("continue") != generator.PolicyContinue {
		t.Error(`policyFor("continue") != PolicyContinue`)
	}
}

func TestPickBundler(t *testing.T) {
	if _, ok := pickBundler("native").(bundle.Native); !ok {
		t.Error("pickBundler(native) is not the native bundler")
	}
	if _, ok := pickBundler("iconutil").(bundle.Iconutil); !ok {
		t.Error("pickBundler(iconutil) is not the iconutil bundler")
	}
}

func TestPickImagerPure(t *testing.T) {
	accent := color.NRGBA{R: 6, G: 182, B: 212, A: 255}
	solid, ok := pickImager(accent, true).(imagegen.Solid)
	if !ok {
		t.Fatal("pickImager(pure=true) is not the in-process renderer")
	}
	if solid.Color != accent {
		t.Errorf("Color = %+v, want %+v", solid.Color, accent)
	}
}

func TestToEntry(t *testing.T) {
	cfg := config.Default()
	rep := generator.Report{
		Items: []generator.Item{
			{Name: "icon_16x16.png", Px: 16},
			{Name: "icon_16x16@2x.png", Px: 32, Err: errors.New("render failed")},
		},
		BundleErr: errors.New("iconutil: exit status 1"),
	}
	now := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)

	e := toEntry(cfg, rep, now)
	if e.Name != cfg.Name || e.Dir != cfg.IconsDir {
		t.Errorf("entry = %+v", e)
	}
	if e.BundlePath != "" || e.BundleErr != "iconutil: exit status 1" {
		t.Errorf("bundle fields = %q / %q", e.BundlePath, e.BundleErr)
	}
	if len(e.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(e.Items))
	}
	if e.Items[0].Err != "" || e.Items[1].Err != "render failed" {
		t.Errorf("item errors = %q / %q", e.Items[0].Err, e.Items[1].Err)
	}
	if e.Generated() != 1 {
		t.Errorf("Generated = %d, want 1", e.Generated())
	}
}
