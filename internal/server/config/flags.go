package config

import (
	"flag"
	"os"
	"time"

	"github.com/syp-project/authd/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-s string   token signing secret key
//	-t int      session token validity, minutes
//	-w int      bcrypt password hash cost
//
// os.Args is first filtered to only the flags handled here using
// flagx.FilterArgs, avoiding collisions with flags owned elsewhere
// (such as the -c/-config pair read by the JSON layer).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")
	fs.IntVar(&config.PasswordHashCost, "w", config.PasswordHashCost, "bcrypt password hash cost")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}
