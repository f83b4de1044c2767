package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"chat-render/internal/config"
	"chat-render/internal/db"
	"chat-render/internal/domain"
	"chat-render/internal/index"
	"chat-render/internal/llm"
	"chat-render/internal/repository"
)

const embedBatchSize = 100

func main() {
	inputFiles := flag.String("input-files", "", "comma separated list of markdown files to process")
	inputFilter := flag.String("input-filter", "", "glob filter for markdown files to process")
	outputFile := flag.String("output-file", "", "output file for JSONL entries (.jsonl or .jsonl.gz)")
	store := flag.Bool("store", false, "embed entries and store them in postgres")
	flag.Parse()

	ctx := context.Background()

	logger := zap.NewExample()
	defer logger.Sync()

	if *outputFile == "" && !*store {
		log.Fatal("nothing to do: pass -output-file and/or -store")
	}

	var paths []string
	for _, p := range strings.Split(*inputFiles, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	files, err := index.CollectMarkdownFiles(paths, *inputFilter, logger)
	if err != nil {
		log.Fatal(err)
	}

	entries, err := index.ExtractEntries(files)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("entries extracted",
		zap.Int("files", len(files)),
		zap.Int("entries", len(entries)),
	)

	if *outputFile != "" {
		if err := index.DumpJSONL(entries, *outputFile); err != nil {
			log.Fatal(err)
		}
		logger.Info("entries dumped", zap.String("output", *outputFile))
	}

	if !*store {
		return
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	embedder := llm.NewHTTPEmbedder(cfg.EmbedBaseURL, cfg.EmbedAPIKey, cfg.EmbedModel, logger)
	entryRepo := repository.NewPgEntryRepository(pool)

	byFile := make(map[string][]domain.Entry)
	var fileOrder []string
	for _, e := range entries {
		if _, ok := byFile[e.File]; !ok {
			fileOrder = append(fileOrder, e.File)
		}
		byFile[e.File] = append(byFile[e.File], e)
	}

	for _, file := range fileOrder {
		fileEntries := byFile[file]
		vectors := make([]pgvector.Vector, 0, len(fileEntries))

		for start := 0; start < len(fileEntries); start += embedBatchSize {
			end := start + embedBatchSize
			if end > len(fileEntries) {
				end = len(fileEntries)
			}
			texts := make([]string, 0, end-start)
			for _, e := range fileEntries[start:end] {
				texts = append(texts, e.Compiled)
			}
			vecs, err := embedder.Embed(ctx, texts)
			if err != nil {
				log.Fatal(err)
			}
			for _, v := range vecs {
				vectors = append(vectors, pgvector.NewVector(v))
			}
		}

		if err := entryRepo.ReplaceForFile(ctx, file, fileEntries, vectors); err != nil {
			log.Fatal(err)
		}
		logger.Info("file indexed",
			zap.String("file", file),
			zap.Int("entries", len(fileEntries)),
		)
	}
}
