package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/messages"
	"github.com/cbodonnell/codewords/pkg/replay"
	"github.com/cbodonnell/codewords/pkg/version"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(fmt.Sprintf("Failed to load .env file: %v", err))
	}

	port := flag.Int("port", replay.DefaultPort, "port to listen on")
	scriptPath := flag.String("script", "scripts/demo.jsonl", "JSON lines file of server messages to replay")
	interval := flag.Duration("interval", replay.DefaultInterval, "delay between replayed messages")
	closeWhenDone := flag.Bool("close-when-done", false, "close each connection after its replay")
	logLevel := flag.String("log-level", "info", "Log level")
	compression := flag.String("compression", string(messages.CompressionZstd), "wire compression (zstd, none)")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting replay server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	script, err := replay.LoadScriptFile(*scriptPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load script: %v", err))
	}
	log.Info("Loaded %d messages from %s", len(script), *scriptPath)

	parsedCompression, err := messages.ParseCompression(*compression)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse compression: %v", err))
	}
	codec, err := messages.NewCodec(parsedCompression)
	if err != nil {
		panic(fmt.Sprintf("Failed to create codec: %v", err))
	}
	defer codec.Close()

	server := replay.NewServer(replay.NewServerOptions{
		Port:          *port,
		Script:        script,
		Codec:         codec,
		Interval:      *interval,
		CloseWhenDone: *closeWhenDone,
	})
	if err := server.Start(ctx); err != nil {
		log.Error("Replay server error: %v", err)
		os.Exit(1)
	}
}
