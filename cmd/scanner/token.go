package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/config"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/auth/jwt"
)

func runToken(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("token", pflag.ContinueOnError)
	configPath := flags.String("config", "./config", "directory containing config.yaml")
	subject := flags.StringP("subject", "s", "cli", "token subject")
	ttl := flags.Duration("ttl", 24*time.Hour, "token lifetime, 0 for no expiry")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := config.Load(*configPath); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	secret := config.GetConfig().Server.JWTSecret
	if secret == "" {
		return errors.New("server.jwt_secret is not set")
	}

	mgr, err := jwt.NewJwtManager(secret)
	if err != nil {
		return err
	}
	token, err := mgr.CreateToken(*subject, *ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
