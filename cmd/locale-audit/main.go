package main

import (
	"os"

	"web-audit-kit/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewLocaleAuditCommand()))
}
