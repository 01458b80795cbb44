// Package main is the entry point for the authortrend CLI.
package main

import (
	"github.com/mattmahin/authortrend/cmd"
	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/internal/iocache"
)

func main() {
	err := cmd.Execute()
	iocache.CloseStore()
	if err != nil {
		contract.LogFatal("authortrend", err)
	}
}
