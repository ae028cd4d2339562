package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/vedsagar/educrm/core/comm"
	"github.com/vedsagar/educrm/storage/nocodb"
)

// ping checks connectivity and credentials against the configured store.
func (cli *commandLine) ping() error {
	if cli.conf.DemoMode() {
		fmt.Println("demo mode: no table store configured; nothing to ping")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := nocodb.NewClient(cli.conf, cli.log)
	if err := client.Ping(ctx); err != nil {
		return errors.Wrap(err, "pinging table store")
	}
	fmt.Println("table store OK")
	return nil
}

// hashPassword prints a bcrypt hash suitable for the ADMIN_PASSWORD env var.
func (cli *commandLine) hashPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hashing password")
	}
	fmt.Println(string(hash))
	return nil
}

// seed creates the stock fee-reminder templates in the table store,
// skipping any that already exist by name.
func (cli *commandLine) seed() error {
	if cli.conf.DemoMode() {
		fmt.Println("demo mode: store seeds itself on startup; nothing to do")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := nocodb.NewClient(cli.conf, cli.log)
	repo := nocodb.NewTemplateRepository(client)

	existing, err := repo.QueryAllTemplates(ctx)
	if err != nil {
		return errors.Wrap(err, "listing templates")
	}
	byName := make(map[string]bool, len(existing))
	for _, t := range existing {
		byName[t.Name] = true
	}

	now := time.Now().UTC()
	var created int
	for _, t := range comm.StockTemplates() {
		if byName[t.Name] {
			continue
		}
		t.IsActive = true
		t.CreatedAt = now
		t.UpdatedAt = now
		if _, err = repo.CreateTemplate(ctx, t); err != nil {
			return errors.Wrapf(err, "creating template %q", t.Name)
		}
		created++
	}
	fmt.Printf("created %d template(s)\n", created)
	return nil
}
