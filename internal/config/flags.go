package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (normally
// os.Args[1:]). A fresh flag set is used on every call.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (server)
//	-l local database file (client)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-r remote document server address (client)
//	-adapter-grpc-address remote grpc health address (client)
//	-token bearer token (client)
//	-batch-threshold bulk upload commit threshold (client)
//	-probe-interval connectivity probe interval (client)
//	-headless run a single sync without the status UI (client)
//	-log-path client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("lineage", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, localDSN string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout time.Duration
	var remoteAddress, remoteGRPCAddress string
	var token string
	var batchThreshold int
	var probeInterval time.Duration
	var headless bool
	var logPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&localDSN, "l", "", "Local database file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&remoteAddress, "r", "", "Remote document server address")
	fs.StringVar(&remoteGRPCAddress, "adapter-grpc-address", "", "Remote grpc health address host:port")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.IntVar(&batchThreshold, "batch-threshold", 0, "Bulk upload commit threshold")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval")
	fs.BoolVar(&headless, "headless", false, "Run a single sync without the status UI")
	fs.StringVar(&logPath, "log-path", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Token:    token,
			LogPath:  logPath,
			Headless: headless,
		},
		Auth: Auth{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{DSN: localDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			GRPCAddress:    remoteGRPCAddress,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			BatchThreshold: batchThreshold,
			ProbeInterval:  probeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
