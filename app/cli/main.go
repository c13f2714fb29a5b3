package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/x-xyz/chimera/app/container"
	"github.com/x-xyz/chimera/base/config"
	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/notify"
)

var (
	c       *container.Container
	context ctx.Ctx
)

func main() {
	app := &cli.App{
		Name:  "chimera",
		Usage: "browse, buy and list NFTs on the marketplace contract",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: config.DefaultPath, Usage: "path of the yaml config"},
		},
		Before: setup,
		After: func(*cli.Context) error {
			if c != nil {
				c.Close()
			}
			log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "connect",
				Usage:  "connect the wallet, switching it to the target network",
				Action: connect,
			},
			{
				Name:   "browse",
				Usage:  "list every active listing",
				Action: browse,
			},
			{
				Name:      "show",
				Usage:     "show a single listing",
				ArgsUsage: "<tokenId>",
				Action:    show,
			},
			{
				Name:      "buy",
				Usage:     "buy a listing at its on-chain price",
				ArgsUsage: "<tokenId>",
				Action:    buy,
			},
			{
				Name:      "toggle",
				Usage:     "toggle the listing status of a token you own",
				ArgsUsage: "<tokenId>",
				Action:    toggle,
			},
			{
				Name:   "list",
				Usage:  "upload an image with its metadata and list it for sale",
				Action: list,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "description", Required: true},
					&cli.StringFlag{Name: "price", Required: true, Usage: "price in ETH, e.g. 0.5"},
					&cli.PathFlag{Name: "image", Required: true, Usage: "image file to pin"},
				},
			},
			{
				Name:   "profile",
				Usage:  "show the listings of the connected wallet",
				Action: profile,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Log().WithField("err", err).Fatal("chimera failed")
	}
}

func setup(cc *cli.Context) error {
	if err := config.Load(cc.String("config")); err != nil {
		return err
	}
	if err := log.Init(viper.GetBool("debug")); err != nil {
		return err
	}
	context = ctx.Background()
	cont, err := container.New(context)
	if err != nil {
		return err
	}
	c = cont
	return nil
}

// render prints v as indented json, a notice at error level fails the command
func render(v interface{}, notice *notify.Notification) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	if notice != nil && notice.Level == notify.LevelError {
		return cli.Exit(notice.Message, 1)
	}
	return nil
}

func tokenArg(cc *cli.Context) (domain.TokenId, error) {
	id := domain.TokenId(cc.Args().First())
	if _, err := id.ToBigInt(); err != nil {
		return "", cli.Exit(err.Error(), 2)
	}
	return id, nil
}

func connect(cc *cli.Context) error {
	s, err := c.Session.Connect(context)
	if err != nil {
		return cli.Exit(notify.FromError(err, "").Message, 1)
	}
	return render(s, nil)
}

func browse(cc *cli.Context) error {
	state := c.Home.Load(context)
	return render(state, state.Notice)
}

func show(cc *cli.Context) error {
	id, err := tokenArg(cc)
	if err != nil {
		return err
	}
	view := c.NftPage.Load(context, id)
	return render(view, view.Notice)
}

func buy(cc *cli.Context) error {
	id, err := tokenArg(cc)
	if err != nil {
		return err
	}
	view := c.NftPage.Buy(context, id)
	return render(view, view.Notice)
}

func toggle(cc *cli.Context) error {
	id, err := tokenArg(cc)
	if err != nil {
		return err
	}
	view := c.NftPage.ToggleListing(context, id)
	return render(view, view.Notice)
}

func list(cc *cli.Context) error {
	fields := []struct {
		field listing.Field
		value string
	}{
		{listing.FieldName, cc.String("name")},
		{listing.FieldDescription, cc.String("description")},
		{listing.FieldPrice, cc.String("price")},
	}
	for _, f := range fields {
		if _, err := c.Form.SetField(f.field, f.value); err != nil {
			return cli.Exit(err.Error(), 2)
		}
	}

	path := cc.Path("image")
	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	defer f.Close()

	state := c.Form.UploadImage(context, f, filepath.Base(path))
	if len(state.Form.ImageURL) == 0 {
		return cli.Exit(state.Message, 1)
	}
	state = c.Form.Submit(context)
	if state.Notice == nil {
		// validation failures only set the inline message
		return cli.Exit(state.Message, 1)
	}
	return render(state, state.Notice)
}

func profile(cc *cli.Context) error {
	view := c.Profile.Load(context)
	return render(view, view.Notice)
}
