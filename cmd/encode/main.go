package main

import (
	"fmt"
	"os"
	"vigenere/internal/vigenere"
)

func main() {
	if len(os.Args) <= 2 {
		fmt.Println("Usage: encode <message> <key>")
		return
	}

	s, err := vigenere.Encrypt(os.Args[1], os.Args[2])
	if err != nil {
		fmt.Println("Encode error:")
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(s)
}
