// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/triagram/hdf5printer/cmd/h5printer"

func main() {
	cmd.Execute()
}
