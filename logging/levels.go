// Copyright 2026 The Authors (see AUTHORS file)
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

package logging

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Levels understood by this package. They map directly onto the slog levels.
const (
	LevelDebug   = slog.LevelDebug
	LevelInfo    = slog.LevelInfo
	LevelWarning = slog.LevelWarn
	LevelError   = slog.LevelError
)

var levelNames = map[string]slog.Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarning,
	"warning": LevelWarning,
	"error":   LevelError,
}

// LookupLevel attempts to get the level that corresponds to the given name.
// Names are matched case-insensitively. If no such level exists, it returns an
// error.
func LookupLevel(name string) (slog.Level, error) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("no such log level %q, valid levels are %q", name, LevelNames())
}

// LevelNames returns the sorted list of accepted level names.
func LevelNames() []string {
	names := make([]string, 0, len(levelNames))
	for k := range levelNames {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LevelString returns the lowercase name of the level. Levels between the
// named ones are printed relative to the closest lower level, for example
// "info+2".
func LevelString(l slog.Level) string {
	name := func(base string, delta slog.Level) string {
		if delta == 0 {
			return base
		}
		return fmt.Sprintf("%s%+d", base, int(delta))
	}

	switch {
	case l < LevelInfo:
		return name("debug", l-LevelDebug)
	case l < LevelWarning:
		return name("info", l-LevelInfo)
	case l < LevelError:
		return name("warning", l-LevelWarning)
	default:
		return name("error", l-LevelError)
	}
}

// LevelSlogValue returns the [slog.Value] representation of the level.
func LevelSlogValue(l slog.Level) slog.Value {
	return slog.StringValue(LevelString(l))
}
