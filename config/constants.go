package config

const (
	// DefaultPort is the default port of the application server
	DefaultPort = 5000

	// DefaultContainer is the blob container holding the portfolio images
	DefaultContainer = "myphoto"

	DefaultRegion   = "us-east-1"
	DefaultLogLevel = "info"
)
