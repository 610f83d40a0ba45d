/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/golfstats/cmd"
	"github.com/josephgoksu/golfstats/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
