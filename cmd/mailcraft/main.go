// Package main is the entry point for the mailcraft sending harness: it
// resolves configuration, builds one message from a YAML file and hands it
// to the selected delivery provider.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mailcraft/mailcraft/config"
	"github.com/mailcraft/mailcraft/internal/msgfile"
	"github.com/mailcraft/mailcraft/internal/provider"
	"github.com/mailcraft/mailcraft/internal/provider/ses"
	"github.com/mailcraft/mailcraft/internal/provider/smtp"
	"github.com/mailcraft/mailcraft/internal/provider/stdout"
)

func main() {
	configPath := flag.String("config", "", "path to key=value properties file (optional)")
	messagePath := flag.String("message", "", "path to YAML message file (required)")
	providerName := flag.String("provider", "", "delivery provider override: stdout, ses or smtp")
	flag.Parse()

	if *messagePath == "" {
		slog.Error("missing required -message flag")
		os.Exit(2)
	}

	props, err := loadProperties(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(props.GetBool(config.Debug))

	msg, err := msgfile.Load(*messagePath)
	if err != nil {
		slog.Error("failed to load message file", "error", err)
		os.Exit(1)
	}

	mail, err := msg.Build(props)
	if err != nil {
		slog.Error("failed to build message", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, cancelling", "signal", sig)
		cancel()
	}()

	prov := selectProvider(ctx, props, *providerName)

	slog.Info("sending message",
		"provider", prov.Name(),
		"subject", mail.Subject(),
		"recipients", len(mail.Recipients()),
	)

	if err := prov.Send(ctx, mail); err != nil {
		slog.Error("delivery failed", "error", err)
		os.Exit(1)
	}

	slog.Info("message delivered", "provider", prov.Name())
}

// loadProperties resolves configuration from the properties file (when
// given) plus environment variables, or environment variables alone.
func loadProperties(path string) (*config.Properties, error) {
	props := config.New()
	if path != "" {
		if err := props.LoadFile(path, false); err != nil {
			return nil, err
		}
		return props, nil
	}
	if err := props.Load(false); err != nil {
		return nil, err
	}
	return props, nil
}

// setupLogger configures the global slog logger with JSON output. The
// debug property switches the level.
func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// selectProvider chooses the delivery backend. The -provider flag wins,
// then the logging-only mode property forces stdout, then the transport
// strategy property; the default is stdout.
func selectProvider(ctx context.Context, props *config.Properties, override string) provider.Provider {
	strategy := override
	if strategy == "" {
		if props.GetBool(config.TransportModeLogging) {
			slog.Info("logging-only transport mode, using stdout provider")
			return stdout.New()
		}
		strategy = props.GetString(config.TransportStrategy)
	}

	switch strategy {
	case "ses":
		p, err := ses.New(ctx, ses.Config{
			Region:          os.Getenv("AWS_REGION"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})
		if err != nil {
			slog.Error("failed to create SES provider", "error", err)
			os.Exit(1)
		}
		slog.Info("using AWS SES provider")
		return p

	case "smtp":
		p, err := smtp.New(smtp.ConfigFromProperties(props))
		if err != nil {
			slog.Error("failed to create SMTP provider", "error", err)
			os.Exit(1)
		}
		slog.Info("using SMTP provider", "host", props.GetString(config.SMTPHost))
		return p

	case "", "stdout":
		slog.Info("using stdout provider")
		return stdout.New()

	default:
		slog.Error("unknown transport strategy", "strategy", strategy)
		os.Exit(1)
		return nil
	}
}
