/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/xiaomi388/kakeibo/cmd"

func main() {
	cmd.Execute()
}
