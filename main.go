package main

import (
	"fmt"
	"os"

	"github.com/gonewx/jannah/internal/cli"
	"github.com/gonewx/jannah/pkg/embedded"
)

func main() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
