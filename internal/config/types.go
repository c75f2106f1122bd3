package config

type Config struct {
	OpenAIKey    string
	AnthropicKey string
	DatabaseURL  string
	JWTSecret    string
	Environment  string
}
