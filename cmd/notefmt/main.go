package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/mroshb/notefmt/internal/config"
	"github.com/mroshb/notefmt/internal/services"
	"github.com/mroshb/notefmt/pkg/logger"
)

const (
	modeNotes    = "notes"
	modeTelegram = "telegram"
)

// sendMessage mirrors the Bot API sendMessage parameters for one note.
type sendMessage struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Flags override the environment; validation runs once both are applied.
	cfg := config.FromEnv()

	modeNames := []string{modeNotes, modeTelegram}
	for _, m := range services.Modes() {
		modeNames = append(modeNames, string(m))
	}

	mode := pflag.StringP("mode", "m", string(services.ModeFarsi), "one of: "+strings.Join(modeNames, ", "))
	pflag.BoolVar(&cfg.FarsiDigits, "farsi-digits", cfg.FarsiDigits, "show dates and counters with Farsi digits")
	pflag.BoolVar(&cfg.SanitizeOutput, "sanitize", cfg.SanitizeOutput, "sanitize generated HTML")
	pflag.StringVar(&cfg.DisplayTimezone, "timezone", cfg.DisplayTimezone, "display time zone")
	chatID := pflag.Int64("chat-id", 0, "target chat for --mode=telegram")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: notefmt [flags] [file...]\n\nReads stdin when no file is given.\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	// Initialize logger
	logger.Init(cfg.LogLevel, cfg.AppEnv)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", err)
	}

	// Validate production security settings
	if err := cfg.ValidateProductionSecurity(); err != nil {
		logger.Fatal("Production security validation failed", err)
	}

	svc := services.NewFormatterService(cfg)

	inputs := pflag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	for _, name := range inputs {
		if err := process(svc, *mode, *chatID, name, os.Stdout); err != nil {
			logger.Fatal("Failed to format input", fmt.Errorf("%s: %w", name, err))
		}
	}
}

func process(svc *services.FormatterService, mode string, chatID int64, name string, w io.Writer) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	switch mode {
	case modeNotes:
		_, err := svc.RenderNotes(r, w)
		return err
	case modeTelegram:
		return writeTelegram(svc, r, chatID, w)
	}

	m, err := services.ParseMode(mode)
	if err != nil {
		return err
	}

	text, err := svc.ReadInput(r)
	if err != nil {
		return err
	}

	out, err := svc.Apply(m, text)
	if err != nil {
		return err
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

// writeTelegram prints one sendMessage payload per note as JSON lines.
func writeTelegram(svc *services.FormatterService, r io.Reader, chatID int64, w io.Writer) error {
	msgs, err := svc.TelegramMessages(r, chatID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, msg := range msgs {
		payload := sendMessage{
			ChatID:                msg.ChatID,
			Text:                  msg.Text,
			ParseMode:             msg.ParseMode,
			DisableWebPagePreview: msg.DisableWebPagePreview,
		}
		if err := enc.Encode(payload); err != nil {
			return err
		}
	}
	return nil
}
