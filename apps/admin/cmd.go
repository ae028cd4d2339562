package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/vedsagar/educrm/core"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf *core.Config
	log  core.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  ping         - check table store connectivity and credentials")
	fmt.Println("  hashpassword - hash an admin password for ADMIN_PASSWORD (prompted)")
	fmt.Println("  seed         - create the stock message templates in the table store")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "ping":
		pingCmd := flag.NewFlagSet("ping", flag.ExitOnError)
		if err := pingCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.ping()
	case "hashpassword":
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			cli.printUsage()
			return errHelp
		}
		return cli.hashPassword(string(pwd))
	case "seed":
		seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed()
	default:
		cli.printUsage()
		return errHelp
	}
}
