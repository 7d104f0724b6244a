package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"finassist/internal/chat"
	"finassist/internal/config"
	"finassist/internal/history"
	"finassist/internal/profile"
	"finassist/internal/quote"
)

// runChat wires the conversation core and drives the interactive loop.
func runChat(ctx context.Context, cfg *config.Config) error {
	completer, err := chat.NewGeminiCompleter(ctx, cfg)
	if err != nil {
		return err
	}

	var opts []chat.ManagerOption
	if cfg.HistoryEnabled {
		store, err := history.Open(filepath.Join(cfg.DataDir, "finassist.db"))
		if err != nil {
			// History is a convenience; chat works without it.
			log.Printf("turn history disabled: %v", err)
		} else {
			defer store.Close()
			opts = append(opts, chat.WithRecorder(store))
		}
	}

	manager := chat.NewManager(completer, newQuoteSource(cfg), chat.NewStore(), opts...)

	userProfile, err := PromptForProfile()
	if err != nil {
		return err
	}

	id, _, err := manager.Start(ctx, userProfile, "")
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Chat started. Ask about investments or quotes; type 'exit' to leave.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("você> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" || text == "sair" {
			fmt.Println("Até logo!")
			return nil
		}

		responses, err := sendTurn(ctx, manager, userProfile, id, text)
		if err != nil {
			if cfg.Debug {
				log.Printf("turn failed: %v", err)
			}
			renderFailure()
			continue
		}
		renderResponses(responses)
		fmt.Println()
	}
}

// sendTurn submits one turn, transparently re-seeding the session when the
// process lost it.
func sendTurn(ctx context.Context, manager *chat.Manager, p profile.UserProfile, id, text string) ([]chat.Response, error) {
	responses, err := manager.Send(ctx, id, text)
	if errors.Is(err, chat.ErrSessionNotFound) {
		_, responses, err = manager.Start(ctx, p, text)
	}
	return responses, err
}

// newQuoteSource picks the live quote source configured for enrichment.
func newQuoteSource(cfg *config.Config) quote.Source {
	if cfg.QuoteProvider == "yahoo" {
		return quote.NewYahoo()
	}
	return quote.NewAlphaVantage(cfg.AlphaVantageAPIKey,
		quote.WithBaseURL(cfg.AlphaVantageBaseURL),
		quote.WithTimeout(cfg.HTTPTimeout),
	)
}
