/**
 * @file main.go
 * @brief Hangman server
 *
 * @version 1.0.0
 *
 * Multi-player, turn-based hangman over a plain CRLF-line telnet protocol
 */

package main

import (
	// System
	"context"
	"os"
	"os/signal"
	"syscall"

	// Project
	"github.com/BaldaGo/hangman-server/conf"
	"github.com/BaldaGo/hangman-server/dict"
	"github.com/BaldaGo/hangman-server/flags"
	"github.com/BaldaGo/hangman-server/game"
	"github.com/BaldaGo/hangman-server/logger"
	"github.com/BaldaGo/hangman-server/server"
)

func main() {
	opts := flags.NewFlags()

	config, err := conf.New(string(opts.ConfigFile))
	if err != nil {
		logger.Log.Criticalf("Can't load configuration (%s)", err.Error())
		os.Exit(1)
	}

	logFile := config.Logger.File
	if opts.LogFile != "" {
		logFile = string(opts.LogFile)
	}
	if err := logger.Init(config.Logger.Format, logFile); err != nil {
		logger.Log.Criticalf("Can't initialize logger (%s)", err.Error())
		os.Exit(1)
	}

	dictionary, err := dict.Load(string(opts.Positional.DictFile))
	if err != nil {
		logger.Log.Critical(logger.Trace(err, "Can't load dictionary"))
		os.Exit(1)
	}

	g := game.New(dictionary, config.StartGuesses)
	srv := server.New(config, g)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Writes to a peer that already hung up must surface as an error from
	// conn.Write, not terminate the process.
	signal.Ignore(syscall.SIGPIPE)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		logger.Log.Info("Shutting down")
		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		logger.Log.Critical(logger.Trace(err, "Server exited with error"))
		os.Exit(1)
	}

	logger.Log.Info("Server shutdowned")
}
