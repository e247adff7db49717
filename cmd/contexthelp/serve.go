package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/contexthelp/answer"
	"github.com/a-h/contexthelp/content"
	articleget "github.com/a-h/contexthelp/handlers/article/get"
	querypost "github.com/a-h/contexthelp/handlers/query/post"
	"github.com/rs/cors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

type ServeCommand struct {
	AppRoot        string  `help:"The application root that relative paths are resolved against." env:"APP_ROOT" default:"."`
	ContentDir     string  `help:"The directory containing help content." env:"CONTENT_DIR" default:"wwwroot/content"`
	ContentFormat  string  `help:"The format of the help content." env:"CONTENT_FORMAT" enum:"markdown,html" default:"markdown"`
	Answerer       string  `help:"How questions are answered." env:"ANSWERER" enum:"mock,openai,ollama" default:"mock"`
	OpenAIAPIKey   string  `help:"The OpenAI API key." env:"OPENAI_API_KEY" default:""`
	OpenAIBaseURL  string  `help:"The OpenAI compatible API URL, leave empty for the default." env:"OPENAI_BASE_URL" default:""`
	OllamaURL      string  `help:"The URL of the Ollama server." env:"OLLAMA_URL" default:"http://127.0.0.1:11434/"`
	ChatModel      string  `help:"The model to answer questions with." env:"CHAT_MODEL" default:"gpt-4o-mini"`
	MaxTokens      int     `help:"The maximum number of tokens in an answer." env:"MAX_TOKENS" default:"500"`
	Temperature    float64 `help:"The sampling temperature." env:"TEMPERATURE" default:"0.7"`
	TimeoutSeconds int     `help:"The maximum time to wait for an answer." env:"TIMEOUT_SECONDS" default:"30"`
	ListenAddr     string  `help:"The address to listen on." env:"LISTEN_ADDR" default:"localhost:9020"`
	TLSCertFile    string  `help:"The TLS certificate file." env:"TLS_CERT_FILE" default:""`
	TLSKeyFile     string  `help:"The TLS key file." env:"TLS_KEY_FILE" default:""`
	LogLevel       string  `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c ServeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	dir := resolveContentDir(c.AppRoot, c.ContentDir)
	format := content.Format(c.ContentFormat)
	log.Info("indexing content", slog.String("dir", dir), slog.String("format", c.ContentFormat))
	index, err := content.BuildIndex(dir, format.Extensions()...)
	if err != nil {
		return fmt.Errorf("failed to index content: %w", err)
	}
	if index.Len() == 0 {
		log.Warn("no help content found", slog.String("dir", dir))
	}
	log.Info("content indexed", slog.Int("contexts", index.Len()))
	resolver, err := content.NewResolver(format, index)
	if err != nil {
		return fmt.Errorf("failed to create content resolver: %w", err)
	}

	log.Info("creating answerer", slog.String("answerer", c.Answerer))
	answerer, err := c.newAnswerer(log)
	if err != nil {
		return fmt.Errorf("failed to create answerer: %w", err)
	}

	mux := http.NewServeMux()

	qph := querypost.New(log, answerer)
	mux.Handle("POST /assistant/query", qph)

	agh := articleget.New(log, resolver)
	mux.Handle("GET /assistant/{"+articleget.PathValue+"...}", agh)

	withCORSMux := cors.AllowAll().Handler(mux)

	log.Info("Listening", slog.String("addr", c.ListenAddr))
	s := &http.Server{
		Addr:    c.ListenAddr,
		Handler: withCORSMux,
	}
	if c.TLSCertFile != "" && c.TLSKeyFile != "" {
		log.Info("Enabling TLS mode")
		var cert tls.Certificate
		cert, err = tls.LoadX509KeyPair(c.TLSCertFile, c.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load cert: %w", err)
		}
		s.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}
		return s.ListenAndServeTLS(c.TLSCertFile, c.TLSKeyFile)
	}
	return s.ListenAndServe()
}

func (c ServeCommand) newAnswerer(log *slog.Logger) (answer.Answerer, error) {
	if c.Answerer == "mock" {
		return answer.Mock{}, nil
	}
	cfg := answer.Config{
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		Timeout:     time.Duration(c.TimeoutSeconds) * time.Second,
	}
	model, err := c.newChatModel()
	if err != nil {
		return nil, err
	}
	return answer.NewLLM(log, model, cfg), nil
}

// newChatModel returns a nil model if the OpenAI API key is missing, so that
// the server still starts.
func (c ServeCommand) newChatModel() (llms.Model, error) {
	httpClient := &http.Client{}
	switch c.Answerer {
	case "ollama":
		llmc, err := ollama.New(
			ollama.WithModel(c.ChatModel),
			ollama.WithHTTPClient(httpClient),
			ollama.WithServerURL(c.OllamaURL))
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return llmc, nil
	case "openai":
		if c.OpenAIAPIKey == "" {
			return nil, nil
		}
		opts := []openai.Option{
			openai.WithToken(c.OpenAIAPIKey),
			openai.WithModel(c.ChatModel),
			openai.WithHTTPClient(httpClient),
		}
		if c.OpenAIBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(c.OpenAIBaseURL))
		}
		llmc, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return llmc, nil
	}
	return nil, fmt.Errorf("unknown answerer %q", c.Answerer)
}
