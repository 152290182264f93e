// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/json"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"strings"
	"time"
)

func modifyFromJson(cfg mutableNodeConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return errors.Wrap(err, "could not parse json config")
	}

	return populateConfig(cfg, data)
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func populateConfig(cfg mutableNodeConfig, data map[string]interface{}) error {
	for key, value := range data {
		switch typed := value.(type) {
		case bool:
			cfg.SetBool(convertKeyName(key), typed)
		case float64:
			if typed < 0 || typed > float64(^uint32(0)) || typed != float64(uint32(typed)) {
				return errors.Errorf("could not decode value for config key %s: %v is not a uint32", key, typed)
			}
			cfg.SetUint32(convertKeyName(key), uint32(typed))
		case string:
			if duration, decodeError := time.ParseDuration(typed); decodeError != nil {
				cfg.SetString(convertKeyName(key), typed)
			} else {
				cfg.SetDuration(convertKeyName(key), duration)
			}
		default:
			return errors.Errorf("could not decode value for config key %s: unsupported type %T", key, value)
		}
	}

	return nil
}

// For main reading several files into one config

type ArrayFlags []string

func (i *ArrayFlags) String() string {
	return strings.Join(*i, ",")
}

func (i *ArrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// GetNodeConfigFromFiles overlays each file on the production preset in order; a non-empty httpAddress wins over the files
func GetNodeConfigFromFiles(configFiles ArrayFlags, httpAddress string) (NodeConfig, error) {
	cfg := ForProduction("")

	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", configFile)
		}

		if err := modifyFromJson(cfg, string(contents)); err != nil {
			return nil, errors.Wrapf(err, "invalid config file %s", configFile)
		}
	}

	if httpAddress != "" {
		cfg.SetString(HTTP_ADDRESS, httpAddress)
	}

	if err := ValidateNodeConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
