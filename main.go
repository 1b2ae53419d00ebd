// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os/user"

	"github.com/jdeeny/rocto/repl"
)

func main() {
	name := "there"
	if currentUser, err := user.Current(); err == nil {
		name = currentUser.Username
	}

	fmt.Printf("Welcome to the Octo REPL, %s! Type .help for commands.\n", name)
	repl.Start()
}
