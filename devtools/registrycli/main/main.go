// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"fmt"
	"github.com/orbs-network/orbs-device-registry/devtools/registrycli"
	"os"
)

// registry-cli keys
// registry-cli register -name=<name> -model=<model> -manufacturer=<manufacturer>
// registry-cli get -id=<device id> [-host=<http://....>]

func main() {
	out, err := registrycli.NewCommandRunner().Run(os.Args[1:])
	if out != "" {
		fmt.Println(out)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
