// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type TreeConfig struct {
	IgnoreDuplicates bool `yaml:"ignore_duplicates"`
}

type DemoConfig struct {
	RandomCount int `yaml:"random_count"`
	RandomMin   int `yaml:"random_min"`
	RandomMax   int `yaml:"random_max"` // exclusive
}

type StressConfig struct {
	Operations int `yaml:"operations"`
	KeySpace   int `yaml:"key_space"`
	CheckEvery int `yaml:"check_every"`
}

type SessionConfig struct {
	RangeCacheTTL time.Duration `yaml:"range_cache_ttl"`
	BloomSize     uint          `yaml:"bloom_size"`
	BloomHashes   uint          `yaml:"bloom_hashes"`
}

type DisplayConfig struct {
	Color bool `yaml:"color"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Demo    DemoConfig    `yaml:"demo"`
	Stress  StressConfig  `yaml:"stress"`
	Session SessionConfig `yaml:"session"`
	Display DisplayConfig `yaml:"display"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		IgnoreDuplicates: false,
	},
	Demo: DemoConfig{
		RandomCount: 20,
		RandomMin:   1,
		RandomMax:   100,
	},
	Stress: StressConfig{
		Operations: 10000,
		KeySpace:   1000,
		CheckEvery: 100,
	},
	Session: SessionConfig{
		RangeCacheTTL: 5 * time.Minute,
		BloomSize:     8192,
		BloomHashes:   4,
	},
	Display: DisplayConfig{
		Color: true,
	},
}

// LoadConfig reads ~/.avltree.yaml. A missing or unreadable file yields
// the defaults; only an invalid file is reported as an error, together
// with the defaults so callers can carry on.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	// unset keys keep their default value
	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig
		return &config, fmt.Errorf("failed to parse %s: %v", configPath, err)
	}
	if err := config.validate(); err != nil {
		config = defaultConfig
		return &config, fmt.Errorf("invalid configuration in %s: %v", configPath, err)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.Demo.RandomCount < 0 {
		return fmt.Errorf("demo.random_count must not be negative")
	}
	if c.Demo.RandomMax-c.Demo.RandomMin < c.Demo.RandomCount {
		return fmt.Errorf("demo range [%d, %d) holds fewer than %d keys", c.Demo.RandomMin, c.Demo.RandomMax, c.Demo.RandomCount)
	}
	if c.Stress.KeySpace <= 0 {
		return fmt.Errorf("stress.key_space must be positive")
	}
	if c.Session.BloomSize == 0 || c.Session.BloomHashes == 0 {
		return fmt.Errorf("session.bloom_size and session.bloom_hashes must be positive")
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}
	return writeConfigFile(configPath, &defaultConfig)
}

func onOff(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 avltree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %signore_duplicates%s: %s\n", Green, Reset, onOff(config.Tree.IgnoreDuplicates))
	if config.Tree.IgnoreDuplicates {
		fmt.Printf("    Inserting an existing key is silently skipped\n\n")
	} else {
		fmt.Printf("    Inserting an existing key is reported as an error\n\n")
	}

	fmt.Printf("🎲 %sDemo:%s\n", Green, Reset)
	fmt.Printf("  • %srandom_count%s: %d\n", Green, Reset, config.Demo.RandomCount)
	fmt.Printf("  • %srandom_min%s: %d\n", Green, Reset, config.Demo.RandomMin)
	fmt.Printf("  • %srandom_max%s: %d\n\n", Green, Reset, config.Demo.RandomMax)

	fmt.Printf("🔥 %sStress:%s\n", Green, Reset)
	fmt.Printf("  • %soperations%s: %d\n", Green, Reset, config.Stress.Operations)
	fmt.Printf("  • %skey_space%s: %d\n", Green, Reset, config.Stress.KeySpace)
	fmt.Printf("  • %scheck_every%s: %d\n\n", Green, Reset, config.Stress.CheckEvery)

	fmt.Printf("💬 %sSession:%s\n", Green, Reset)
	fmt.Printf("  • %srange_cache_ttl%s: %s\n", Green, Reset, config.Session.RangeCacheTTL)
	fmt.Printf("  • %sbloom_size%s: %d\n", Green, Reset, config.Session.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Session.BloomHashes)

	fmt.Printf("🎨 %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %scolor%s: %s\n\n", Green, Reset, onOff(config.Display.Color))

	fmt.Printf("💡 To change a setting, edit %s:\n", configPath)
	fmt.Printf("   tree:\n     ignore_duplicates: true\n")
}
