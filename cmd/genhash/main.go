package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generatePasswordHash(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func main() {
	password := flag.String("password", "", "password to hash")
	cost := flag.Int("cost", 12, "bcrypt cost")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: genhash -password <password> [-cost N]")
		os.Exit(1)
	}

	hash, err := generatePasswordHash(*password, *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
