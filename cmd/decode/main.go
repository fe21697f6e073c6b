package main

import (
	"fmt"
	"os"
	"vigenere/internal/vigenere"
)

func main() {
	if len(os.Args) <= 2 {
		fmt.Println("Usage: decode <message> <key>")
		return
	}

	s, err := vigenere.Decrypt(os.Args[1], os.Args[2])
	if err != nil {
		fmt.Println("Decode error:")
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(s)
}
