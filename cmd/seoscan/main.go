package main

import "github.com/mvp-joe/seoscan/internal/cli"

func main() {
	cli.Execute()
}
