package main

import (
	"fmt"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"io/fs"
	"log"
)

// LoadGuiData reads the config and the font. It returns the reason the config
// was rejected, if it was. When a config was loaded before, a rejected one
// leaves g.Config as it was, otherwise the rejection goes through Check().
func (g *Gui) LoadGuiData() error {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written, which happens a lot while tuning
	// the config with the program running.
	// Only do this when reading from the disk. When reading from the embedded
	// filesystem we want to crash as soon as possible. We might be in the
	// browser, in which case we want to see an error in the developer console
	// instead of a page that keeps trying to load and reports nothing.
	previousVal := CheckCrashes
	if g.folderWatcher.Folder != "" {
		CheckCrashes = false
	}
	var cfg Config
	for {
		CheckFailed = nil
		cfg = DefaultConfig()
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &cfg)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &cfg)
		}
		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	// A config that was read in full but doesn't make sense stays that way
	// until someone edits it again. Reading it again won't help.
	if err := g.checkConfig(cfg); err != nil {
		if g.configLoaded {
			log.Printf("[Gui] rejected config, keeping the previous one: %v", err)
			return err
		}
		Check(err)
		return err
	}
	g.Config = cfg
	g.configLoaded = true

	if g.defaultFont != nil {
		return nil
	}
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
	return nil
}

func (g *Gui) checkConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	// The sprite is loaded in the background and a failure there only gets
	// logged. At least make sure it exists.
	if !FileExists(g.FSys, cfg.SpritePath) {
		return fmt.Errorf("sprite %s: %w", cfg.SpritePath, fs.ErrNotExist)
	}
	return nil
}
