package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/co2-watch/site/password"
)

// Prints the encoded Argon2id credential for admin.password_hash. The
// password is read from the first argument or, without one, from stdin.
func main() {
	flag.Parse()

	pw := flag.Arg(0)
	if pw == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("Failed to read password: %v", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}

	if err := password.ValidatePasswordStrength(pw); err != nil {
		log.Fatal(err)
	}

	encoded, err := password.Encode(pw)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Println(encoded)
}
