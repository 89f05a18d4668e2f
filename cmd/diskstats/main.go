package main

import (
	"github.com/kpeletidis/perfplot/pkg/cli"
)

func main() {
	cli.Execute()
}
