// Copyright 2024 The Rainbow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger centralizes the zerolog logger the rest of the module
// reports through, so callers can redirect or silence it without each
// package importing zerolog directly.
package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	logger  = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// Logger returns the current global logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &logger
}

// Set replaces the global logger, for callers embedding this module
// into a service with its own structured-logging conventions.
func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Disable silences all output from the package logger.
func Disable() {
	Set(zerolog.Nop())
}
