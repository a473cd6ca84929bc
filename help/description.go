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

package help

import "strings"

// FormatDescription prepares a description for display. When trim is true, a
// single trailing period is removed. Ellipses and other punctuation are kept.
func FormatDescription(text string, trim bool) string {
	if !trim {
		return text
	}
	if strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "..") {
		return text[:len(text)-1]
	}
	return text
}
