package main

import "salary-predictor/internal/cli"

func main() {
	cli.Execute()
}
