// Command questctl is the operator CLI for the quest service. The daily
// reset is meant to be invoked by an external cron:
//
//	questctl reset-quests
//
// Configuration is read the same way as the server (config.yaml, .env, ENV).
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/app"
)

var cli struct {
	Version kong.VersionFlag `help:"Print version and exit."`

	Migrate     MigrateCmd     `cmd:"" help:"Apply pending database migrations."`
	ResetQuests ResetQuestsCmd `cmd:"" name:"reset-quests" help:"Delete every user quest created before today."`
	Assign      AssignCmd      `cmd:"" help:"Assign today's quests to a user."`
	Quests      QuestsCmd      `cmd:"" help:"List active quest definitions."`
	UserAdd     UserAddCmd     `cmd:"" name:"user-add" help:"Create a user."`
	Token       TokenCmd       `cmd:"" help:"Issue an access token for a user."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("questctl"),
		kong.Description("Operator tooling for daily quests and missions."),
		kong.UsageOnError(),
		kong.Vars{"version": app.BuildVersion()},
	)

	if err := ctx.Run(&runContext{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
