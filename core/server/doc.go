// Package server holds configuration for the HTTP trigger server.
package server
