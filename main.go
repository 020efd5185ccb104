package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guhdeats/speedwagon/home"
	"github.com/guhdeats/speedwagon/proc"
	"github.com/guhdeats/speedwagon/sys"
)

func main() {
	// Parse flags
	silent := flag.Bool("silent", false, "Disable all log output")
	flag.Parse()

	if *silent {
		sys.SetSilentMode(true)
	}

	// Setup shutdown signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Run bot (blocks until shutdown signal)
	if err := run(ctx, *silent); err != nil {
		sys.LogFatal(sys.MsgGenericError, err)
	}
}

func run(ctx context.Context, silent bool) error {
	sys.SetAppContext(ctx)

	// Load configuration
	cfg, err := sys.LoadConfig()
	if err != nil {
		return fmt.Errorf(sys.MsgConfigFailedToLoad, err)
	}

	// Open the document store
	store, err := sys.OpenStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}

	// Health endpoint comes up before the gateway so supervisors see the
	// process as live during the initial connect.
	health := proc.StartHealthServer(cfg.Port)
	if health != nil {
		defer shutdownHealth(health)
	}

	// Wire commands and the welcome greeter against the store
	home.Register(store)
	proc.RegisterGreeter(store)

	// Create Discord client
	client, err := sys.CreateClient(cfg, store)
	if err != nil {
		return fmt.Errorf("failed to create Discord client: %w", err)
	}
	defer client.Close(ctx)

	// Background command registration, built-ins plus stored custom commands
	go func() {
		if err := sys.RegisterCommands(client, cfg.GuildID, store); err != nil {
			sys.LogError(sys.MsgBotRegisterFail, err)
		}
	}()

	if err := client.OpenGateway(ctx); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}

	// Wait
	<-ctx.Done()
	if !silent {
		fmt.Println()
	}
	sys.LogInfo(sys.MsgBotShutdown)

	return nil
}

func shutdownHealth(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sys.LogWarn(sys.MsgHealthServeFail, err)
	}
}
