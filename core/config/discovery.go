// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches the usual locations for a span settings file so the
//              CLI works without an explicit --config flag.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	spanerror "github.com/msto63/span/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
	Required   bool     // Fail when nothing is found
	Load       LoadOptions
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for span.toml, span.yaml or span.yml. Finding
// nothing is not an error.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "span"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"span"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, the result carries environment overrides only.
func Discover(options DiscoveryOptions) (*Config, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		cfg, err := LoadWithOptions(candidate, options.Load)
		if err != nil {
			return nil, spanerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", candidate)).
				WithOperation("config.Discover").
				WithDetail("configPath", candidate)
		}
		return cfg, nil
	}

	if options.Required {
		searched := ListPossibleConfigFiles(options)
		return nil, spanerror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(searched, ", "))).
			WithCode(spanerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searched)
	}
	return FromEnv(options.Load), nil
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
