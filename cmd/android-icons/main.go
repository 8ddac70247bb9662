// android-icons renders the Android launcher icons (mipmap-*/ic_launcher.png)
// from assets/logo_512.png on a white background.
// Usage: go run ./cmd/android-icons   (from the project root)
package main

import (
	"errors"
	"fmt"
	"os"

	"android-icons/internal/config"
	"android-icons/internal/icons"
	"android-icons/internal/ui"
)

func main() {
	os.Exit(run(config.ConfigFileName))
}

func run(configPath string) int {
	ui.Header("Generating Android Icons")

	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		ui.Error(err.Error())
		ui.Println("Fix or remove " + configPath + " and try again.")
		return 1
	}

	gen := &icons.Generator{
		Percent: cfg.IconPercent,
		OnResult: func(r icons.Result) {
			label := fmt.Sprintf("%s (%dx%d)", r.Density.Name, r.Density.Size, r.Density.Size)
			if r.Err != nil {
				ui.Error(fmt.Sprintf("%s ✗ %v", label, r.Err))
				return
			}
			ui.Success(fmt.Sprintf("%s ✓ %s", label, r.Path))
		},
	}

	ui.Info("Source: " + cfg.Source)
	ui.Info("Resources: " + cfg.ResDir)

	report, err := gen.Generate(cfg.Source, cfg.ResDir, icons.Densities())
	if err != nil {
		var missing *icons.MissingSourceError
		if errors.As(err, &missing) {
			ui.Error("Source icon not found or unreadable: " + missing.Path)
			ui.Println(fmt.Sprintf("Place a square PNG (512x512 recommended) at %s and run again.", missing.Path))
		} else {
			ui.Error(err.Error())
		}
		return 1
	}

	ui.Header("DONE")
	if report.OK() {
		ui.Success(fmt.Sprintf("All %d Android icons regenerated on a white background.", report.Succeeded()))
	} else {
		ui.Warning(fmt.Sprintf("%d icons written, %d failed.", report.Succeeded(), report.Failed()))
	}
	ui.Println("")
	ui.Println("Next steps:")
	ui.Println("1. Icons are in " + icons.IconPath(cfg.ResDir, icons.Density{Name: "*"}))
	ui.Println("2. Rebuild the app to see the new icon")
	ui.Println(fmt.Sprintf("3. To change how much of the icon the logo fills, set icon_percent (now %d) in %s", cfg.IconPercent, config.ConfigFileName))
	return 0
}
