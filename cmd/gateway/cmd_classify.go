package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"mecanica_gateway/internal/config"
	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify a captured provider payload without replying",
	Long: "Reads a webhook delivery from file (or stdin when omitted or \"-\"), runs the\n" +
		"event classifier and intent router offline and prints the result as JSON.\n" +
		"No store, assistant or provider is contacted.",
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

type classifyReport struct {
	Status      string `json:"status"`
	Type        string `json:"type"`
	Sender      string `json:"sender,omitempty"`
	MessageID   string `json:"message_id,omitempty"`
	Text        string `json:"text,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(classifyPayload(cfg.WhatsApp, raw))
}

func classifyPayload(cfg config.WhatsAppConfig, raw []byte) classifyReport {
	var payload entities.WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return classifyReport{Status: usecase.OutcomeStatusIgnored, Type: string(usecase.DiscardInvalidPayload)}
	}

	cls := usecase.NewEventClassifier(cfg).Classify(payload, raw)
	if !cls.Actionable() {
		return classifyReport{Status: usecase.OutcomeStatusIgnored, Type: string(cls.Discard)}
	}

	intent := usecase.NewIntentRouter().Route(cls.Event.Text)
	return classifyReport{
		Status:      usecase.OutcomeStatusProcessed,
		Type:        string(intent.Kind),
		Sender:      cls.Event.Sender,
		MessageID:   cls.Event.MessageID,
		Text:        cls.Event.Text,
		OrderNumber: intent.OrderNumber,
	}
}
