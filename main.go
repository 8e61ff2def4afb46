package main

import "github.com/Aayushkhairnar2101/Billing-system/cmd"

func main() {
	cmd.Execute()
}
