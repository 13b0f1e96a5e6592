package main

import "github.com/spacemagneto/panel-fetcher/internal/cli"

func main() {
	cli.Execute()
}
