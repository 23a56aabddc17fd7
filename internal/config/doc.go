// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the go-account-mgr application configuration
// from environment variables and command-line flags.
//
// Values from the two sources are merged with mergo; because sources are
// merged in the order env, flags, a value set via an environment variable
// wins over the same value set via a flag. Use [GetConfig] to obtain the
// merged and validated configuration at startup.
package config
