package client

import "errors"

var (
	errNoServices = errors.New("client services are not initialised")
	errNoUI       = errors.New("client ui is not initialised")
)
