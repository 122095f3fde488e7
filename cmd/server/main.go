package main

import (
	"context"
	"flag"
	"log"

	"github.com/LingarajMishra/ModelPortfolioWebsite/config"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/blob/s3"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/catalog"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/logging"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/server"
	"github.com/aws/aws-sdk-go-v2/aws"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting portfolio server", "port", cfg.Port, "container", cfg.Storage.Container)

	var creds aws.CredentialsProvider
	if cfg.Storage.CredentialSource == config.CredentialStatic {
		creds = s3.StaticCredentials(cfg.Storage.AccessKeyID, cfg.Storage.SecretAccessKey)
	}

	blobs, err := s3.New(context.Background(), s3.Options{
		Bucket:      cfg.Storage.Container,
		Region:      cfg.Storage.Region,
		Endpoint:    cfg.Storage.Endpoint,
		Credentials: creds,
	})
	if err != nil {
		log.Fatalf("failed to initialize blob storage: %v", err)
	}

	store := catalog.New(blobs, logger)

	s, err := server.NewHTTPServer(cfg, store, blobs, logger)
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}

	if err := s.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
