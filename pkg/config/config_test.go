// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package config

import (
	"os"
	"testing"
)

func TestLoadFeatureGatesRequireExactMatch(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		unset   bool
		enabled bool
	}{
		{name: "exact true", value: "true", enabled: true},
		{name: "capitalised", value: "True"},
		{name: "numeric truthy", value: "1"},
		{name: "empty", value: ""},
		{name: "unset", unset: true},
		{name: "false", value: "false"},
		{name: "leading space", value: " true"},
		{name: "trailing space", value: "true "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// t.Setenv registers restoration even when the variable is then
			// removed to model the unset case.
			t.Setenv(envAllowWrite, tc.value)
			t.Setenv(envAllowSensitiveData, tc.value)
			if tc.unset {
				os.Unsetenv(envAllowWrite)
				os.Unsetenv(envAllowSensitiveData)
			}

			cfg := Load()
			if cfg.AllowWrite != tc.enabled {
				t.Fatalf("AllowWrite = %v for %q, want %v", cfg.AllowWrite, tc.value, tc.enabled)
			}
			if cfg.AllowSensitiveData != tc.enabled {
				t.Fatalf("AllowSensitiveData = %v for %q, want %v", cfg.AllowSensitiveData, tc.value, tc.enabled)
			}
		})
	}
}

func TestLoadForwardsPortVerbatim(t *testing.T) {
	cases := []struct {
		name  string
		value string
		unset bool
		want  string
	}{
		{name: "numeric", value: "8080", want: "8080"},
		{name: "non numeric", value: "not-a-port", want: "not-a-port"},
		{name: "padded", value: " 9000 ", want: " 9000 "},
		{name: "unset", unset: true, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(envGatewayPort, tc.value)
			if tc.unset {
				os.Unsetenv(envGatewayPort)
			}

			if got := Load().GatewayPort; got != tc.want {
				t.Fatalf("GatewayPort = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLoadLogLevel(t *testing.T) {
	t.Setenv(envLogLevel, "")
	os.Unsetenv(envLogLevel)
	if got := Load().LogLevel; got != "info" {
		t.Fatalf("default log level = %q, want info", got)
	}

	t.Setenv(envLogLevel, "DEBUG")
	if got := Load().LogLevel; got != "debug" {
		t.Fatalf("log level = %q, want debug", got)
	}
}
