// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values applied to configuration fields that were not provided by
// any source.
const (
	DefaultHTTPAddress   = ":8080"
	DefaultTokenIssuer   = "go-note-keeper"
	DefaultTokenDuration = 30 * 24 * time.Hour
	DefaultDocumentPath  = "database.json"
	DefaultAvatarDir     = "uploads/profile_images"
)

// applyDefaults fills zero-valued fields of the merged configuration with
// their documented fallback values.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Storage.Document.Path == "" {
		cfg.Storage.Document.Path = DefaultDocumentPath
	}
	if cfg.Storage.Files.AvatarDir == "" {
		cfg.Storage.Files.AvatarDir = DefaultAvatarDir
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
