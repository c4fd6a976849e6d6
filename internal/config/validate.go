package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Vault.Secret) < 16 {
		return fmt.Errorf("vault.secret must be at least 16 characters (got %d)", len(c.Vault.Secret))
	}

	if c.OCR.UpscaleFactor < 1.0 {
		return fmt.Errorf("ocr.upscale_factor must be >= 1.0 (got %v)", c.OCR.UpscaleFactor)
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be within [0, 2] (got %v)", c.LLM.Temperature)
	}

	if c.Line.WebhookPath != "" && c.Line.WebhookPath[0] != '/' {
		return fmt.Errorf("line.webhook_path must start with '/' (got %q)", c.Line.WebhookPath)
	}

	return nil
}

// ValidateTelegram checks the settings the Telegram adapter needs.
// Called by the bot binary only.
func (c *Config) ValidateTelegram() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required (TELEGRAM_BOT_TOKEN)")
	}
	return nil
}

// ValidateLine checks the settings the LINE adapter needs.
// Called by the bot binary only when the LINE webhook is enabled.
func (c *Config) ValidateLine() error {
	if c.Line.ChannelSecret == "" || c.Line.ChannelToken == "" {
		return fmt.Errorf("line.channel_secret and line.channel_token are required")
	}
	return nil
}
