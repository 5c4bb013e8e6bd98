// csvslice selects columns and filters rows of CSV data.
package main

import (
	"os"

	"github.com/GuilhermeCAz/csvslice/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
