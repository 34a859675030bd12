package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a history server address, URL or host:port
//	-request-timeout upload timeout (e.g. "15s")
//	-user-id user identifier for history records
//	-token session JWT whose subject is the user identifier
//	-size QR width and height in pixels
//	-recovery QR recovery level: low, medium, high, highest
//	-render-timeout render wait window (e.g. "2s")
//	-preview-address browser front end address host:port
//	-log-level zerolog level
//	-log-file terminal client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("qr-history", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var previewAddress NetAddress
	var adapterAddress string
	var requestTimeout time.Duration
	var userID int64
	var token string
	var size int
	var recoveryLevel string
	var renderTimeout time.Duration
	var logLevel string
	var logFile string
	var jsonConfigPath string

	fs.StringVar(&adapterAddress, "a", "", "History server address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Upload timeout (e.g., 15s)")
	fs.Int64Var(&userID, "user-id", 0, "User identifier")
	fs.StringVar(&token, "token", "", "Session token")
	fs.IntVar(&size, "size", 0, "QR size in pixels")
	fs.StringVar(&recoveryLevel, "recovery", "", "QR recovery level")
	fs.DurationVar(&renderTimeout, "render-timeout", 0, "Render wait window (e.g., 2s)")
	fs.Var(&previewAddress, "preview-address", "Browser front end address host:port")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			UserID:   userID,
			Token:    token,
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Render: Render{
			Width:         size,
			Height:        size,
			RecoveryLevel: recoveryLevel,
			Timeout:       renderTimeout,
		},
		Preview: Preview{
			HTTPAddress: previewAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (listen on all interfaces).
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
