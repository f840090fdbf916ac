// Command folio-web serves the portfolio website. It is the container
// entry point: settings come from the environment or a .env file.
package main

import (
	_ "github.com/joho/godotenv/autoload"

	"folio/internal/cli"
)

func main() {
	cli.Main("serve")
}
