// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package registrycli

import (
	"encoding/json"
	"flag"
	"github.com/orbs-network/orbs-device-registry/crypto/digest"
	"github.com/orbs-network/orbs-device-registry/crypto/encoding"
	"github.com/orbs-network/orbs-device-registry/crypto/keys"
	"github.com/orbs-network/orbs-device-registry/services/publicapi"
	"github.com/pkg/errors"
	"io/ioutil"
	"time"
)

const DEFAULT_HOST = "http://localhost:8080"

func ShowUsage() string {
	return `
Usage:  $ registry-cli keys [-out=./.orbsKeys]
Usage:  $ registry-cli register -name=<name> -model=<model> -manufacturer=<manufacturer> [-acquisition-date=<unix seconds>]
Usage:  $ registry-cli update-status -id=<device id> -status=<0|1|2>
Usage:  $ registry-cli maintenance -id=<device id>
Usage:  $ registry-cli get -id=<device id> [-min-block-height=<height>]
Usage:  $ registry-cli last-id

Every command accepts -host=<http://...>; signed commands accept -keys=<path/to/key file>
`
}

type CommandRunner struct {
	Host    string
	KeyFile string
	Now     func() time.Time
}

func NewCommandRunner() *CommandRunner {
	return &CommandRunner{Host: DEFAULT_HOST, KeyFile: DEFAULT_KEY_FILE, Now: time.Now}
}

func (r *CommandRunner) Run(args []string) (string, error) {
	if len(args) < 1 {
		return ShowUsage(), nil
	}

	switch args[0] {
	case "keys":
		return r.HandleKeysCommand(args[1:])
	case "register":
		return r.HandleRegisterCommand(args[1:])
	case "update-status":
		return r.HandleUpdateStatusCommand(args[1:])
	case "maintenance":
		return r.HandleMaintenanceCommand(args[1:])
	case "get":
		return r.HandleGetCommand(args[1:])
	case "last-id":
		return r.HandleLastIdCommand(args[1:])
	}

	return ShowUsage(), errors.Errorf("unknown command %s", args[0])
}

func (r *CommandRunner) flagSet(name string) (*flag.FlagSet, *string, *string) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(ioutil.Discard)
	host := flagSet.String("host", r.Host, "<http://...>")
	keyFile := flagSet.String("keys", r.KeyFile, "path/to/key file")
	return flagSet, host, keyFile
}

func (r *CommandRunner) HandleKeysCommand(args []string) (string, error) {
	flagSet := flag.NewFlagSet("keys", flag.ContinueOnError)
	flagSet.SetOutput(ioutil.Discard)
	out := flagSet.String("out", r.KeyFile, "path/to/key file")
	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	keyPair, err := keys.GenerateEd25519Key()
	if err != nil {
		return "", err
	}

	if err := WriteKeyFile(*out, keyPair); err != nil {
		return "", err
	}

	address, err := digest.CalcClientAddressOfEd25519PublicKey(keyPair.PublicKey())
	if err != nil {
		return "", err
	}

	return toJson(map[string]string{
		"public-key": keyPair.PublicKeyHex(),
		"address":    encoding.EncodeHex(address),
		"key-file":   *out,
	})
}

func (r *CommandRunner) HandleRegisterCommand(args []string) (string, error) {
	flagSet, host, keyFile := r.flagSet("register")
	name := flagSet.String("name", "", "device name")
	model := flagSet.String("model", "", "device model")
	manufacturer := flagSet.String("manufacturer", "", "device manufacturer")
	acquisitionDate := flagSet.Uint64("acquisition-date", 0, "unix seconds, defaults to now")
	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	keyPair, err := ReadKeyFile(*keyFile)
	if err != nil {
		return "", err
	}

	if *acquisitionDate == 0 {
		*acquisitionDate = uint64(r.Now().Unix())
	}

	res, err := NewClient(*host).RegisterDevice(keyPair, &publicapi.RegisterDeviceCall{
		Name:            *name,
		Model:           *model,
		Manufacturer:    *manufacturer,
		AcquisitionDate: *acquisitionDate,
	})
	if err != nil {
		return "", err
	}
	return toJson(res)
}

func (r *CommandRunner) HandleUpdateStatusCommand(args []string) (string, error) {
	flagSet, host, keyFile := r.flagSet("update-status")
	id := flagSet.Uint64("id", 0, "device id")
	status := flagSet.Uint("status", 0, "0 inactive, 1 active, 2 maintenance")
	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	keyPair, err := ReadKeyFile(*keyFile)
	if err != nil {
		return "", err
	}

	res, err := NewClient(*host).UpdateDeviceStatus(keyPair, &publicapi.UpdateDeviceStatusCall{DeviceId: *id, Status: uint32(*status)})
	if err != nil {
		return "", err
	}
	return toJson(res)
}

func (r *CommandRunner) HandleMaintenanceCommand(args []string) (string, error) {
	flagSet, host, keyFile := r.flagSet("maintenance")
	id := flagSet.Uint64("id", 0, "device id")
	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	keyPair, err := ReadKeyFile(*keyFile)
	if err != nil {
		return "", err
	}

	res, err := NewClient(*host).RecordMaintenance(keyPair, &publicapi.RecordMaintenanceCall{DeviceId: *id})
	if err != nil {
		return "", err
	}
	return toJson(res)
}

func (r *CommandRunner) HandleGetCommand(args []string) (string, error) {
	flagSet, host, _ := r.flagSet("get")
	id := flagSet.Uint64("id", 0, "device id")
	minBlockHeight := flagSet.Uint64("min-block-height", 0, "wait until the node reached this height")
	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	res, err := NewClient(*host).GetDevice(*id, *minBlockHeight)
	if err != nil {
		return "", err
	}
	return toJson(res)
}

func (r *CommandRunner) HandleLastIdCommand(args []string) (string, error) {
	flagSet, host, _ := r.flagSet("last-id")
	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	res, err := NewClient(*host).LastDeviceId()
	if err != nil {
		return "", err
	}
	return toJson(res)
}

func toJson(v interface{}) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode output")
	}
	return string(out), nil
}
