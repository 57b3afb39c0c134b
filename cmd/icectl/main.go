// Package main provides icectl, a command-line front end for the communicator
// runtime.
//
// Usage:
//
//	icectl validate --config app.cfg --strict
//	icectl run --adapter Hello --endpoints "tcp -p 10000" --metrics-addr :9090
//	icectl proxy "hello -t:tcp -h localhost -p 10000"
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "icectl:", err)
		os.Exit(1)
	}
}
