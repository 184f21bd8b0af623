// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "gamerun/cmd/gamerun"
)

func main() {
	cmd.Execute()
}
