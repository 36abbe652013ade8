// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/abhikarki/custoPilot/ai"
	"github.com/abhikarki/custoPilot/ai/openai"
	"github.com/abhikarki/custoPilot/core"
	"github.com/abhikarki/custoPilot/docstore"
	"github.com/abhikarki/custoPilot/extract"
	"github.com/abhikarki/custoPilot/ingestion"
	"github.com/abhikarki/custoPilot/support"
	"github.com/abhikarki/custoPilot/vectorstore"
	"github.com/abhikarki/custoPilot/vectorstore/chroma"
	"github.com/abhikarki/custoPilot/vectorstore/memory"
)

func main() {
	app := &cli.App{
		Name:  "custopilot",
		Usage: "Customer support pipelines over an organization's knowledge base",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest a document into the knowledge base",
				ArgsUsage: "<file>",
				Action:    ingestCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "org",
						Usage:    "Organization id the document belongs to",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "department",
						Usage: "Department id the document belongs to",
					},
					&cli.StringFlag{
						Name:  "file-type",
						Usage: "Override the file type derived from the extension (txt, csv, pdf, docx)",
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the document registry directory",
						Required: true,
					},
				}, storeFlags()...),
			},
			{
				Name:      "ask",
				Usage:     "Answer a customer message from the knowledge base",
				ArgsUsage: "<message>",
				Action:    askCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "org",
						Usage:    "Organization id to answer for",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "department",
						Usage: "Route to this department instead of the intent map",
					},
					&cli.StringSliceFlag{
						Name:  "department-id",
						Usage: "Limit retrieval to these department ids",
					},
					&cli.StringSliceFlag{
						Name:  "document-id",
						Usage: "Limit retrieval to these document ids",
					},
					&cli.Float64Flag{
						Name:  "temperature",
						Usage: "Sampling temperature for reasoning and response",
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Confidence threshold below which the conversation escalates",
					},
					&cli.StringFlag{
						Name:  "system-prompt",
						Usage: "Replace the default response style contract",
					},
				}, storeFlags()...),
			},
			{
				Name:   "docs",
				Usage:  "List an organization's registered documents",
				Action: docsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "org",
						Usage:    "Organization id to list",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the document registry directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// storeFlags are shared by the commands that reach the vector index and
// the LLM services.
func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "index",
			Usage: "Knowledge index backend: chroma (server) or memory (in-process, empty per invocation)",
			Value: "chroma",
		},
		&cli.StringFlag{
			Name:  "chroma-url",
			Usage: "Chroma server URL for the knowledge index",
		},
		&cli.StringFlag{
			Name:  "collection",
			Usage: "Chroma collection name",
			Value: chroma.DefaultNamespace,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host for chat and embeddings",
		},
		&cli.StringFlag{
			Name:  "chat-host",
			Usage: "Chat service host URL (overrides --host)",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL (overrides --host)",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model name",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "API token for the LLM services",
		},
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("a file to ingest is required")
	}
	fileType := deriveFileType(path, c.String("file-type"))
	if !extract.Supported(fileType) {
		return fmt.Errorf("unsupported file type %q, supported: txt, csv, pdf, docx", fileType)
	}

	aiConfig := aiConfigFromFlags(c)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	store, err := openVectorStore(c, aiConfig, provider)
	if err != nil {
		return err
	}

	docs, err := docstore.Open(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open document registry: %w", err)
	}
	defer docs.Close()

	pipe, err := ingestion.NewPipeline(provider.Completer(), store)
	if err != nil {
		return err
	}
	dispatcher, err := ingestion.NewDispatcher(pipe, docs)
	if err != nil {
		return err
	}
	defer dispatcher.Release()

	doc := &docstore.Document{
		ID:             uuid.NewString(),
		OrganizationID: c.String("org"),
		DepartmentID:   c.String("department"),
		FilePath:       path,
		FileType:       fileType,
		Status:         docstore.StatusPending,
	}
	if err := dispatcher.Process(ctx, doc); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("document: %s\n", doc.ID)
	fmt.Printf("status:   %s\n", doc.Status)
	fmt.Printf("type:     %s\n", doc.KnowledgeType)
	fmt.Printf("chunks:   %d\n", len(doc.Chunks))
	for _, e := range doc.Errors {
		fmt.Printf("error:    %s\n", e)
	}
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	message := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if message == "" {
		return fmt.Errorf("a message to answer is required")
	}

	aiConfig := aiConfigFromFlags(c)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	store, err := openVectorStore(c, aiConfig, provider)
	if err != nil {
		return err
	}

	var opts []support.Option
	if c.IsSet("temperature") {
		opts = append(opts, support.WithTemperature(c.Float64("temperature")))
	}
	if c.IsSet("threshold") {
		opts = append(opts, support.WithConfidenceThreshold(c.Float64("threshold")))
	}
	if prompt := c.String("system-prompt"); prompt != "" {
		opts = append(opts, support.WithSystemPrompt(prompt))
	}

	pipe, err := support.NewPipeline(provider.Completer(), store, opts...)
	if err != nil {
		return err
	}

	result, err := pipe.Run(ctx, support.Input{
		UserMessage:    message,
		OrganizationID: c.String("org"),
		Department:     core.Department(c.String("department")),
		DepartmentIDs:  c.StringSlice("department-id"),
		DocumentIDs:    c.StringSlice("document-id"),
	})
	if err != nil {
		return fmt.Errorf("support run failed: %w", err)
	}

	fmt.Println(result.Response)
	fmt.Println()
	fmt.Printf("intent:     %s\n", result.Intent)
	fmt.Printf("department: %s\n", result.Department)
	fmt.Printf("confidence: %.2f\n", result.Confidence)
	if result.ShouldEscalate {
		fmt.Printf("escalate:   yes (priority %d, %s)\n", result.Escalation.Priority, result.Escalation.Reason)
	} else {
		fmt.Printf("escalate:   no\n")
	}
	for _, source := range result.Sources {
		fmt.Printf("source:     %s (%.2f)\n", source.DocumentID, source.Relevance)
	}
	return nil
}

func docsCommand(c *cli.Context) error {
	docs, err := docstore.Open(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open document registry: %w", err)
	}
	defer docs.Close()

	list, err := docs.ListByOrganization(context.Background(), c.String("org"))
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no documents registered")
		return nil
	}

	for _, doc := range list {
		fmt.Printf("%s  %-10s  %-15s  chunks=%d  %s\n",
			doc.ID, doc.Status, doc.KnowledgeType, len(doc.Chunks), doc.FilePath)
	}
	return nil
}

// deriveFileType returns the override when given, otherwise the file
// extension without its dot, lowercased.
func deriveFileType(path, override string) string {
	if override != "" {
		return strings.ToLower(override)
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func aiConfigFromFlags(c *cli.Context) *ai.Config {
	var opts []ai.ConfigOption
	if v := c.String("host"); v != "" {
		opts = append(opts, ai.WithHost(v))
	}
	if v := c.String("chat-host"); v != "" {
		opts = append(opts, ai.WithChatHost(v))
	}
	if v := c.String("embedding-host"); v != "" {
		opts = append(opts, ai.WithEmbeddingHost(v))
	}
	if v := c.String("chat-model"); v != "" {
		opts = append(opts, ai.WithChatModel(v))
	}
	if v := c.String("embedding-model"); v != "" {
		opts = append(opts, ai.WithEmbeddingModel(v))
	}
	if v := c.String("token"); v != "" {
		opts = append(opts, ai.WithToken(v))
	}
	return ai.NewConfig(opts...)
}

func openVectorStore(c *cli.Context, aiConfig *ai.Config, provider ai.Provider) (vectorstore.Store, error) {
	switch backend := c.String("index"); backend {
	case "memory":
		return memory.New(provider.Embedder()), nil
	case "chroma":
		url := c.String("chroma-url")
		if url == "" {
			return nil, fmt.Errorf("--chroma-url is required with the chroma index")
		}
		store, err := chroma.New(chroma.Config{
			URL:       url,
			Namespace: c.String("collection"),
			AI:        aiConfig,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to chroma: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown index backend %q, supported: chroma, memory", backend)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
