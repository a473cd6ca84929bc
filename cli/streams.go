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

package cli

import (
	"bytes"
	"io"
	"os"
)

// Streams holds the standard streams of an application. The zero value uses
// the process streams.
type Streams struct {
	stdout, stderr io.Writer
	stdin          io.Reader
}

// Stdout returns the stdout stream.
func (s *Streams) Stdout() io.Writer {
	if v := s.stdout; v != nil {
		return v
	}
	return os.Stdout
}

// SetStdout sets the standard out.
func (s *Streams) SetStdout(w io.Writer) {
	s.stdout = w
}

// Stderr returns the stderr stream.
func (s *Streams) Stderr() io.Writer {
	if v := s.stderr; v != nil {
		return v
	}
	return os.Stderr
}

// SetStderr sets the standard error.
func (s *Streams) SetStderr(w io.Writer) {
	s.stderr = w
}

// Stdin returns the stdin stream.
func (s *Streams) Stdin() io.Reader {
	if v := s.stdin; v != nil {
		return v
	}
	return os.Stdin
}

// SetStdin sets the standard input.
func (s *Streams) SetStdin(r io.Reader) {
	s.stdin = r
}

// Pipe creates new unique stdin, stdout, and stderr buffers, sets them on the
// streams, and returns them. This is most useful for testing where callers
// want to simulate inputs or assert certain command outputs.
func (s *Streams) Pipe() (stdin, stdout, stderr *bytes.Buffer) {
	stdin = bytes.NewBuffer(nil)
	stdout = bytes.NewBuffer(nil)
	stderr = bytes.NewBuffer(nil)
	s.stdin = stdin
	s.stdout = stdout
	s.stderr = stderr
	return
}
