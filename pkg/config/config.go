// Copyright 2025 walteh LLC
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

package config

import "time"

// Fallbacks used when neither the config file nor a per-call override
// provides a value.
const (
	DefaultPort              = 8080
	DefaultHeartbeatInterval = 30 * time.Second
	DefaultSendDelay         = 750 * time.Millisecond
)

// 📚 Config is the flat yap configuration. All keys are scalar, the file is
// read once at startup and never mutated; Merge returns overlaid copies.
type Config struct {
	Count     int    `json:"count,omitempty" yaml:"count,omitempty" hcl:"count,optional"`
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty" hcl:"separator,optional"`
	Mode      string `json:"mode,omitempty" yaml:"mode,omitempty" hcl:"mode,optional"`
	Prefix    string `json:"prefix,omitempty" yaml:"prefix,omitempty" hcl:"prefix,optional"`
	Suffix    string `json:"suffix,omitempty" yaml:"suffix,omitempty" hcl:"suffix,optional"`

	Port              int    `json:"port,omitempty" yaml:"port,omitempty" hcl:"port,optional"`
	HeartbeatInterval string `json:"heartbeat_interval,omitempty" yaml:"heartbeat_interval,omitempty" hcl:"heartbeat_interval,optional"`
	SendDelay         string `json:"send_delay,omitempty" yaml:"send_delay,omitempty" hcl:"send_delay,optional"`

	// Reserved for real integrations. The stub sender only echoes these back
	// in its notice, it never dials anything.
	APIURL string `json:"api_url,omitempty" yaml:"api_url,omitempty" hcl:"api_url,optional"`
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" hcl:"api_key,optional"`

	location string
}

// Location returns the path this config was loaded from, or "" for an
// empty/default config.
func (c *Config) Location() string {
	return c.location
}

// Merge overlays the non-zero fields of o onto a copy of c. Neither receiver
// nor argument is modified.
func (c *Config) Merge(o *Config) *Config {
	merged := *c
	merged.location = c.location
	if o == nil {
		return &merged
	}
	if o.Count != 0 {
		merged.Count = o.Count
	}
	if o.Separator != "" {
		merged.Separator = o.Separator
	}
	if o.Mode != "" {
		merged.Mode = o.Mode
	}
	if o.Prefix != "" {
		merged.Prefix = o.Prefix
	}
	if o.Suffix != "" {
		merged.Suffix = o.Suffix
	}
	if o.Port != 0 {
		merged.Port = o.Port
	}
	if o.HeartbeatInterval != "" {
		merged.HeartbeatInterval = o.HeartbeatInterval
	}
	if o.SendDelay != "" {
		merged.SendDelay = o.SendDelay
	}
	if o.APIURL != "" {
		merged.APIURL = o.APIURL
	}
	if o.APIKey != "" {
		merged.APIKey = o.APIKey
	}
	return &merged
}

// EffectivePort returns the configured port or the default.
func (c *Config) EffectivePort() int {
	if c.Port != 0 {
		return c.Port
	}
	return DefaultPort
}

// EffectiveHeartbeat returns the heartbeat interval, falling back to the
// default for empty or unparseable values.
func (c *Config) EffectiveHeartbeat() time.Duration {
	return parseDuration(c.HeartbeatInterval, DefaultHeartbeatInterval)
}

// EffectiveSendDelay returns the simulated send delay, falling back to the
// default for empty or unparseable values.
func (c *Config) EffectiveSendDelay() time.Duration {
	return parseDuration(c.SendDelay, DefaultSendDelay)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
