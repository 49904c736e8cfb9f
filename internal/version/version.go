// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package version

import "runtime/debug"

// Version is set at build time with -ldflags "-X github.com/canonical/crew-service/internal/version.Version=..."
var Version = "dev"

// Info returns the version and the vcs revision embedded by the go toolchain
func Info() (string, string) {
	revision := "unknown"

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				revision = s.Value
			}
		}
	}

	return Version, revision
}
