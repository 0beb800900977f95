// Command epoch converts between unix timestamps and formatted datetimes.
//
// Usage:
//
//	epoch 1700000000                       # 2023-11-14T22:13:20Z
//	epoch 1700000000000 --unix             # 1700000000
//	epoch "2024/02/29 12:00:00" --json     # {"input":...,"rfc3339":...,"unix":...}
package main

import (
	"fmt"
	"os"

	"github.com/roach88/epoch/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}
