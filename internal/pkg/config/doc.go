// Package config provides functionality for loading and managing application configuration.
//
// This package holds the validated settings structs for logging and textbook
// RSA key generation and centralizes their defaults.
package config
