// SPDX-License-Identifier: MIT

// Command lsys computes L-system string lengths without expanding strings.
package main

func main() {
	Execute()
}
