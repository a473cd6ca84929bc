// Copyright 2023 The Authors (see AUTHORS file)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package version defines the build information of the cmdtree binary. The
// values are read from the build info embedded by the compiler and can still
// be overridden with LDFLAGS.
package version

import (
	"runtime"
	"runtime/debug"
)

var (
	// Name is the name of the binary.
	Name = "cmdtree"

	// Version is the main module version, or "source" when unknown.
	Version = moduleVersion(debug.ReadBuildInfo)

	// Commit is the VCS revision, or "HEAD" when unknown.
	Commit = commit(debug.ReadBuildInfo)

	// OSArch is the operating system and architecture (e.g. "linux/amd64").
	OSArch = runtime.GOOS + "/" + runtime.GOARCH

	// HumanVersion is the compiled version.
	HumanVersion = Name + " " + Version + " (" + Commit + ", " + OSArch + ")"
)

type buildInfoFunc func() (*debug.BuildInfo, bool)

func moduleVersion(fn buildInfoFunc) string {
	if info, ok := fn(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v // e.g. "v0.0.1-alpha6.0.20230815191505-8628f8201363"
		}
	}
	return "source"
}

func commit(fn buildInfoFunc) string {
	if info, ok := fn(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "HEAD"
}
