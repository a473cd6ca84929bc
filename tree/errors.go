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

package tree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingName           = errors.New("missing name")
	ErrDuplicateName         = errors.New("duplicate command name")
	ErrMultipleDefaults      = errors.New("multiple default commands")
	ErrEmptyBranch           = errors.New("branch has no commands")
	ErrEmptyExample          = errors.New("example has no tokens")
	ErrDuplicateParameter    = errors.New("duplicate parameter")
	ErrRequiredAfterOptional = errors.New("required argument follows optional argument")
)

// ConfigurationError is returned by [Build] when the declarations do not form
// a valid tree. It wraps one of the sentinel errors in this package, so
// callers can use [errors.Is].
type ConfigurationError struct {
	// Path is the command path at which the problem was found, starting with
	// the application name.
	Path []string

	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid command configuration at %q: %s", strings.Join(e.Path, " "), e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
