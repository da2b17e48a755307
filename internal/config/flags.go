package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses configuration flags from args (without the program name).
// A dedicated flag set is used on every call, so parsing is repeatable.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (postgres:// URL or SQLite path)
//	-c/-config json file path with configs
//	-env-file path to a .env file
//	-password-hash-algorithm argon2id or bcrypt
//	-token-mode email or jwt
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var dotEnvPath string
	var passwordHashAlgorithm string
	var tokenMode string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet("post-board", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", ".env file path")
	fs.StringVar(&passwordHashAlgorithm, "password-hash-algorithm", "", "Password hash algorithm (argon2id, bcrypt)")
	fs.StringVar(&tokenMode, "token-mode", "", "Token mode (email, jwt)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashAlgorithm: passwordHashAlgorithm,
			TokenMode:             tokenMode,
			TokenSignKey:          tokenSignKey,
			TokenIssuer:           tokenIssuer,
			TokenDuration:         tokenDuration,
			LogLevel:              logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath:   jsonConfigPath,
		DotEnvFilePath: dotEnvPath,
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
// An empty host means all interfaces; any other host must be "localhost"
// or a valid IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
